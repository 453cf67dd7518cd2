package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs_DefaultsToJSON(t *testing.T) {
	opt, err := parseArgs(nil, directionToJSON)
	require.NoError(t, err)
	require.Equal(t, 2, opt.indent)
	require.Equal(t, "", opt.input)
}

func TestParseArgs_MinifyDefaultsToZeroIndent(t *testing.T) {
	opt, err := parseArgs(nil, directionMinify)
	require.NoError(t, err)
	require.Equal(t, 0, opt.indent)
}

func TestParseArgs_InputFile(t *testing.T) {
	opt, err := parseArgs([]string{"in.yaml"}, directionToJSON)
	require.NoError(t, err)
	require.Equal(t, "in.yaml", opt.input)
}

func TestParseArgs_OutputFlag(t *testing.T) {
	opt, err := parseArgs([]string{"-o", "out.json", "in.yaml"}, directionToJSON)
	require.NoError(t, err)
	require.Equal(t, "out.json", opt.output)
	require.Equal(t, "in.yaml", opt.input)
}

func TestParseArgs_IndentFlag(t *testing.T) {
	opt, err := parseArgs([]string{"--indent", "4"}, directionToJSON)
	require.NoError(t, err)
	require.Equal(t, 4, opt.indent)
}

func TestParseArgs_InvalidIndentErrors(t *testing.T) {
	_, err := parseArgs([]string{"--indent", "nope"}, directionToJSON)
	require.Error(t, err)
}

func TestParseArgs_MissingIndentValueErrors(t *testing.T) {
	_, err := parseArgs([]string{"--indent"}, directionToJSON)
	require.Error(t, err)
}

func TestParseArgs_MissingOutputValueErrors(t *testing.T) {
	_, err := parseArgs([]string{"-o"}, directionToJSON)
	require.Error(t, err)
}

func TestParseArgs_YesNoBoolFlag(t *testing.T) {
	opt, err := parseArgs([]string{"--yes-no-bool"}, directionToJSON)
	require.NoError(t, err)
	require.True(t, opt.yesNo)
}

func TestParseArgs_AllowDuplicateKeysFlag(t *testing.T) {
	opt, err := parseArgs([]string{"--allow-duplicate-keys"}, directionToJSON)
	require.NoError(t, err)
	require.True(t, opt.allowDup)
}

func TestParseArgs_UnrecognizedOptionErrors(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"}, directionToJSON)
	require.Error(t, err)
}

func TestParseArgs_DashAloneTreatedAsInput(t *testing.T) {
	opt, err := parseArgs([]string{"-"}, directionToJSON)
	require.NoError(t, err)
	require.Equal(t, "-", opt.input)
}

func TestParseArgs_AllFlagsCombined(t *testing.T) {
	opt, err := parseArgs([]string{
		"--indent", "4", "--yes-no-bool", "--allow-duplicate-keys",
		"-o", "out.json", "in.yaml",
	}, directionToJSON)
	require.NoError(t, err)
	require.Equal(t, 4, opt.indent)
	require.True(t, opt.yesNo)
	require.True(t, opt.allowDup)
	require.Equal(t, "out.json", opt.output)
	require.Equal(t, "in.yaml", opt.input)
}
