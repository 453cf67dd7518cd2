package main

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/anchorq/yamlj"
)

type direction int

const (
	directionToJSON direction = iota
	directionToYAML
	directionMinify
)

type options struct {
	input    string
	output   string
	indent   int
	yesNo    bool
	allowDup bool
}

// process implements the shared "read input file(s), convert, write
// output" shape of the to-json/to-yaml/minify subcommands, grounded on
// amazon-ion-ion-go's cmd/ion-go process() flag loop.
func process(args []string, dir direction) error {
	opt, err := parseArgs(args, dir)
	if err != nil {
		return err
	}

	var in []byte
	if opt.input == "" || opt.input == "-" {
		in, err = io.ReadAll(os.Stdin)
	} else {
		in, err = os.ReadFile(opt.input)
	}
	if err != nil {
		return err
	}

	var out string
	switch dir {
	case directionToJSON:
		out, err = yamlj.YAMLToJSON(string(in),
			yamlj.WithIndent(opt.indent),
			yamlj.WithYesNoBool(opt.yesNo),
			yamlj.WithAllowDuplicateKeys(opt.allowDup))
	case directionToYAML:
		out, err = yamlj.JSONToYAML(string(in),
			yamlj.WithIndent(opt.indent),
			yamlj.WithYesNoBool(opt.yesNo))
	case directionMinify:
		out = yamlj.Minify(string(in))
	}
	if err != nil {
		return err
	}

	if opt.output == "" || opt.output == "-" {
		_, err = io.WriteString(os.Stdout, out+"\n")
		return err
	}
	return os.WriteFile(opt.output, []byte(out+"\n"), 0o644)
}

func parseArgs(args []string, dir direction) (options, error) {
	opt := options{indent: 2}
	if dir == directionMinify {
		opt.indent = 0
	}

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "-" || !hasOptionPrefix(arg) {
			break
		}
		switch arg {
		case "-o", "--output":
			i++
			if i >= len(args) {
				return opt, errors.New("no output file specified")
			}
			opt.output = args[i]
		case "--indent":
			i++
			if i >= len(args) {
				return opt, errors.New("no indent value specified")
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return opt, errors.New("invalid indent value \"" + args[i] + "\"")
			}
			opt.indent = n
		case "--yes-no-bool":
			opt.yesNo = true
		case "--allow-duplicate-keys":
			opt.allowDup = true
		default:
			return opt, errors.New("unrecognized option \"" + arg + "\"")
		}
	}
	if i < len(args) {
		opt.input = args[i]
	}
	return opt, nil
}

func hasOptionPrefix(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}
