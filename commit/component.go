// Package commit contains code for parsing conventional commit messages.
package commit

import (
	"golang.org/x/text/cases"
)

// fold returns the Unicode case-folded form of s. Folding is
// locale-independent, so identifiers compare equal the same way
// regardless of system locale.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Type is the commit type, e.g. "feat" in "feat: add things". Identity
// is case-insensitive: "feat" and "FEAT" are the same type. The original
// rendering is preserved.
type Type struct {
	value string
}

func NewType(s string) Type { return Type{value: s} }

func (t Type) String() string { return t.value }

// Key returns the case-folded form of the type, consistent with Equal.
// It is suitable for use as a map key.
func (t Type) Key() string { return fold(t.value) }

func (t Type) Equal(other Type) bool { return t.Key() == other.Key() }

// Scope is the optional commit scope, e.g. "parser" in "feat(parser):
// add things". Identity is case-insensitive.
type Scope struct {
	value string
}

func NewScope(s string) Scope { return Scope{value: s} }

func (s Scope) String() string { return s.value }

// Key returns the case-folded form of the scope, consistent with Equal.
func (s Scope) Key() string { return fold(s.value) }

func (s Scope) Equal(other Scope) bool { return s.Key() == other.Key() }

// Description is the one-line summary following the header separator.
// Identity is exact.
type Description struct {
	value string
}

func NewDescription(s string) Description { return Description{value: s} }

func (d Description) String() string { return d.value }

func (d Description) Equal(other Description) bool { return d.value == other.value }

// Body is the free-form text between the header and the footers. It can
// span multiple paragraphs. Identity is exact.
type Body struct {
	value string
}

func NewBody(s string) Body { return Body{value: s} }

func (b Body) String() string { return b.value }

func (b Body) Equal(other Body) bool { return b.value == other.value }

// FooterToken is the key of a footer, e.g. "Reviewed-by". Identity is
// case-insensitive.
type FooterToken struct {
	value string
}

func NewFooterToken(s string) FooterToken { return FooterToken{value: s} }

func (t FooterToken) String() string { return t.value }

// Key returns the case-folded form of the token, consistent with Equal.
func (t FooterToken) Key() string { return fold(t.value) }

func (t FooterToken) Equal(other FooterToken) bool { return t.Key() == other.Key() }

// Breaking reports whether the token is the literal breaking change
// phrase. Unlike Equal, this comparison is case-sensitive.
func (t FooterToken) Breaking() bool { return t.value == BreakingToken }

// FooterValue is the value of a footer. It can span multiple lines.
// Identity is exact.
type FooterValue struct {
	value string
}

func NewFooterValue(s string) FooterValue { return FooterValue{value: s} }

func (v FooterValue) String() string { return v.value }

func (v FooterValue) Equal(other FooterValue) bool { return v.value == other.value }

// FooterSeparator separates a footer token from its value. Exactly two
// separators are recognized.
type FooterSeparator int

const (
	_ FooterSeparator = iota

	// SeparatorColonSpace is ": ", as in "Reviewed-by: Alice".
	SeparatorColonSpace
	// SeparatorSpacePound is " #", as in "Closes #123".
	SeparatorSpacePound
)

func (s FooterSeparator) String() string {
	switch s {
	case SeparatorColonSpace:
		return ": "
	case SeparatorSpacePound:
		return " #"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}

// FooterSeparatorFromString converts a separator literal back into its
// enumerated form. Anything other than ": " or " #" fails.
func FooterSeparatorFromString(s string) (FooterSeparator, error) {
	switch s {
	case ": ":
		return SeparatorColonSpace, nil
	case " #":
		return SeparatorSpacePound, nil
	}
	return 0, &ParseError{Kind: ErrInvalidSeparator, Context: s}
}

// BreakingToken is the footer token that marks a breaking change. The
// breaking flag derivation compares against it case-sensitively.
const BreakingToken = "BREAKING CHANGE"

// Footer is one trailer-like annotation, e.g. "Reviewed-by: Alice" or
// "Closes #123".
type Footer struct {
	token FooterToken
	sep   FooterSeparator
	value FooterValue
}

func NewFooter(token FooterToken, sep FooterSeparator, value FooterValue) Footer {
	return Footer{token: token, sep: sep, value: value}
}

// Token is the key of the footer.
func (f Footer) Token() FooterToken { return f.token }

// Separator separates the footer token from its value.
func (f Footer) Separator() FooterSeparator { return f.sep }

// Value is the value of the footer.
func (f Footer) Value() FooterValue { return f.value }

// Equal compares footers, using each component's own identity: the token
// case-insensitively, the separator and value exactly.
func (f Footer) Equal(other Footer) bool {
	return f.token.Equal(other.token) && f.sep == other.sep && f.value.Equal(other.value)
}

func (f Footer) String() string {
	return f.token.String() + f.sep.String() + f.value.String()
}
