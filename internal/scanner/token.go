package scanner

// Kind distinguishes the two token shapes the structure builder consumes,
// per spec §4.1: "A token is either a key ... or a value".
type Kind int

const (
	// KeyToken is the text before ": " on the current line.
	KeyToken Kind = iota
	// ValueToken is a scalar (possibly multi-line) or, in inline-array
	// mode, one of the structural runes '[' ']' ','.
	ValueToken
)

// Token is the unit the structure builder consumes. Field names mirror
// spec §4.1's output list.
type Token struct {
	Kind Kind
	// Text is the token text, with JSON-level string escaping already
	// applied when it represents scalar content (spec §4.1 step 10).
	Text string
	// Tag is the tag string detected on this token, if any.
	Tag string
	// AnchorName is set (without the leading '&') when this token
	// defines an anchor.
	AnchorName string
	// AliasName is set (without the leading '*') when this token is an
	// alias reference.
	AliasName string
	// ItemOffset is the column of the '- ' indicator relative to the
	// line's own indent, or -1 if this token is not a collection-item
	// lead.
	ItemOffset int
	// Literal is true when Text came from a quoted scalar.
	Literal bool
	// Line is the 1-based source line the token started on.
	Line int
}

// Punctuation token text constants used only while inInlineArray.
const (
	PunctOpen  = "["
	PunctClose = "]"
	PunctComma = ","
)
