package parse

type parseOpts struct {
	loose          bool
	normalizeCRLF  bool
	tabsToSpaces   bool
	referenceOrder bool
}

// ParseOption configures dialect behavior for Parse, Build and Load. All
// behavior is carried in the option values passed per call; there are no
// process-wide switches.
type ParseOption func(*parseOpts)

// LooseSpacing splits each line on its first '=' regardless of surrounding
// whitespace. The default is strict spacing: the delimiter must be spaced
// (" = ", or trailing " =" for empty values), which lets '=' appear inside
// keys.
func LooseSpacing() ParseOption {
	return func(o *parseOpts) { o.loose = true }
}

// NormalizeCRLF rewrites CRLF line endings to LF before scanning. The
// default preserves carriage returns in values.
func NormalizeCRLF() ParseOption {
	return func(o *parseOpts) { o.normalizeCRLF = true }
}

// TabsToSpaces converts each tab in values to a single space. The default
// preserves tabs, in which case mixed tab/space continuation indentation
// that cannot be dedented consistently is a ParseError.
func TabsToSpaces() ParseOption {
	return func(o *parseOpts) { o.tabsToSpaces = true }
}

// ReferenceOrder makes duplicate-key children come out in reverse
// insertion order, matching the stack-based reference implementation.
// Retained for compatibility testing; the default is insertion order.
func ReferenceOrder() ParseOption {
	return func(o *parseOpts) { o.referenceOrder = true }
}

// Permissive bundles the lenient dialect: loose spacing, tab conversion
// and CRLF normalization.
func Permissive() ParseOption {
	return func(o *parseOpts) {
		o.loose = true
		o.tabsToSpaces = true
		o.normalizeCRLF = true
	}
}
