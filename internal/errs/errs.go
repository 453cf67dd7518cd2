// Package errs defines the two error kinds spec §7 calls for (*YamlParsing*
// and *JsonParsing*) in a package every layer of the pipeline can import
// without creating an import cycle back to the top-level yamlj package,
// which re-exports these types under its own name.
package errs

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Code identifies one of the Y-side parse/resolve failure conditions
// catalogued in spec §4.1 and §4.3.
type Code string

// The 23-entry error catalogue named in spec §4.1 through §4.4.
const (
	CollectionItem     Code = "CollectionItem"
	InvalidArray       Code = "InvalidArray"
	InvalidIndent      Code = "InvalidIndent"
	AnchorAliasName    Code = "AnchorAliasName"
	CollectionBlock    Code = "CollectionBlock"
	InvalidBlock       Code = "InvalidBlock"
	UnclosedLiteral    Code = "UnclosedLiteral"
	KeyNameEmpty       Code = "KeyNameEmpty"
	KeyNameMultiline   Code = "KeyNameMultiline"
	KeyNameAnchorAlias Code = "KeyNameAnchorAlias"
	KeyNameInvalidChar Code = "KeyNameInvalidChar"
	AliasValue         Code = "AliasValue"
	InvalidTag         Code = "InvalidTag"
	ExpectedKey        Code = "ExpectedKey"
	UnclosedArray      Code = "UnclosedArray"
	MergeInArray       Code = "MergeInArray"
	CollectionInArray  Code = "CollectionInArray"
	DuplicatedKey      Code = "DuplicatedKey"
	AnchorNotFound     Code = "AnchorNotFound"
	AliasRecursive     Code = "AliasRecursive"
	MergeSingleValue   Code = "MergeSingleValue"
	MergeInvalid       Code = "MergeInvalid"
	InvalidValueForTag Code = "InvalidValueForTag"
)

// ParseError is the single Y-side error kind: every scan, build, and
// resolve failure surfaces as one of these, carrying the offending code
// and 1-based source line.
type ParseError struct {
	Code Code
	Line int
	Msg  string
	err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("yamlj: %s: line %d: %s", e.Code, e.Line, e.Msg)
}

// Unwrap exposes a wrapped cause so errors.Is/errors.As and
// xerrors.Is/xerrors.As both see through a ParseError to its cause.
func (e *ParseError) Unwrap() error { return e.err }

// Newf builds a ParseError with no wrapped cause.
func Newf(code Code, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Code: code, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a ParseError around a lower-level cause (a base64 decoding
// failure), retaining it via xerrors.Errorf for Is/As and for the frame
// xerrors attaches.
func Wrap(code Code, line int, cause error, format string, args ...interface{}) *ParseError {
	msg := fmt.Sprintf(format, args...)
	return &ParseError{
		Code: code,
		Line: line,
		Msg:  msg,
		err:  xerrors.Errorf("%s: %w", msg, cause),
	}
}

// JSONParseError is the distinct J-side error kind spec §7 calls for. It
// carries a single canned message the way the external J tree model's
// strict parser does ("parse error").
type JSONParseError struct {
	Msg string
	err error
}

func (e *JSONParseError) Error() string { return "yamlj: " + e.Msg }
func (e *JSONParseError) Unwrap() error { return e.err }

// NewJSON builds a JSONParseError with no wrapped cause.
func NewJSON(msg string) *JSONParseError {
	return &JSONParseError{Msg: msg}
}

// WrapJSON builds a JSONParseError around a lower-level cause.
func WrapJSON(msg string, cause error) *JSONParseError {
	return &JSONParseError{Msg: msg, err: xerrors.Errorf("%s: %w", msg, cause)}
}

// ErrRootNotContainer is the "root must be array or object" check spec §7
// names explicitly, distinct from the generic "parse error" message.
var ErrRootNotContainer = NewJSON("root must be array or object")
