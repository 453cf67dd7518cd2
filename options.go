package yamlj

// config holds the resolved option values spec §6 names: indent width,
// the yes/no bool-alias flag, and the duplicate-key policy.
type config struct {
	indent             int
	boolAlias          bool
	allowDuplicateKeys bool
}

func defaultConfig() config {
	return config{indent: 2}
}

// Option configures a conversion call, following the functional-options
// pattern willabides/yaml itself uses for its decoder/encoder
// constructors.
type Option func(*config)

// WithIndent sets the number of spaces per nesting level in emitted
// output. Valid range is 0-8 for Y→J (0 is compact) and 2-8 for J→Y
// (Y block style always needs at least one level of visible
// indentation). J→Y raises a value below 2 to 2; no other value is
// adjusted, and Y→J treats any value of 0 or less as compact.
func WithIndent(n int) Option {
	return func(c *config) { c.indent = n }
}

// WithYesNoBool enables treating yes/no scalars as booleans on Y→J and
// emitting yes/no for booleans on J→Y.
func WithYesNoBool(enabled bool) Option {
	return func(c *config) { c.boolAlias = enabled }
}

// WithAllowDuplicateKeys controls whether a repeated key within one
// mapping is a DuplicatedKey error (the default) or silently allowed.
// When allowed, every occurrence is kept and emitted in source order;
// re-parsing that J text with jtree keeps the last value.
func WithAllowDuplicateKeys(allowed bool) Option {
	return func(c *config) { c.allowDuplicateKeys = allowed }
}

func resolveOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
