package yamlj

import "github.com/anchorq/yamlj/internal/errs"

// ParseError is the single Y-side error kind spec §7 calls for
// (*YamlParsing*): every scan, build, and resolve failure surfaces as
// one of these, carrying an error code and 1-based source line.
type ParseError = errs.ParseError

// JSONParseError is the distinct J-side error kind spec §7 calls for
// (*JsonParsing*).
type JSONParseError = errs.JSONParseError

// ErrorCode identifies one of the Y-side parse/resolve failure
// conditions.
type ErrorCode = errs.Code

// The error codes a ParseError.Code may hold.
const (
	ErrCollectionItem     = errs.CollectionItem
	ErrInvalidArray       = errs.InvalidArray
	ErrInvalidIndent      = errs.InvalidIndent
	ErrAnchorAliasName    = errs.AnchorAliasName
	ErrCollectionBlock    = errs.CollectionBlock
	ErrInvalidBlock       = errs.InvalidBlock
	ErrUnclosedLiteral    = errs.UnclosedLiteral
	ErrKeyNameEmpty       = errs.KeyNameEmpty
	ErrKeyNameMultiline   = errs.KeyNameMultiline
	ErrKeyNameAnchorAlias = errs.KeyNameAnchorAlias
	ErrKeyNameInvalidChar = errs.KeyNameInvalidChar
	ErrAliasValue         = errs.AliasValue
	ErrInvalidTag         = errs.InvalidTag
	ErrExpectedKey        = errs.ExpectedKey
	ErrUnclosedArray      = errs.UnclosedArray
	ErrMergeInArray       = errs.MergeInArray
	ErrCollectionInArray  = errs.CollectionInArray
	ErrDuplicatedKey      = errs.DuplicatedKey
	ErrAnchorNotFound     = errs.AnchorNotFound
	ErrAliasRecursive     = errs.AliasRecursive
	ErrMergeSingleValue   = errs.MergeSingleValue
	ErrMergeInvalid       = errs.MergeInvalid
	ErrInvalidValueForTag = errs.InvalidValueForTag
)

// ErrRootNotContainer is returned by J→Y conversions when the J root is
// a bare scalar rather than an object or array.
var ErrRootNotContainer = errs.ErrRootNotContainer
