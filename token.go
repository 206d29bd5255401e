package drain

// Token is a single position in a log line or template: either a literal
// atom produced by a Preprocessor, or the Wildcard sentinel. The zero
// value is the empty literal, which the core never produces itself (the
// Preprocessor contract requires non-empty literals) but which is a
// harmless, comparable zero value for map and slice use.
//
// Token is comparable (plain string + bool), so it can be used directly
// as a map key: wildcard tokens compare equal to each other because
// WildcardToken leaves Literal empty, and this module only ever
// produces wildcards by using WildcardToken.
type Token struct {
	Literal  string
	Wildcard bool
}

// WildcardToken is the singleton sentinel rendered as "<*>".
var WildcardToken = Token{Wildcard: true}

// ParamString is the external text rendering of the wildcard sentinel.
const ParamString = "<*>"

// NewLiteral builds a literal token. s must be non-empty; the
// Preprocessor contract forbids empty tokens reaching the core.
func NewLiteral(s string) Token {
	return Token{Literal: s}
}

// String renders the token the way a cluster template is displayed:
// the literal text, or "<*>" for the wildcard.
func (t Token) String() string {
	if t.Wildcard {
		return ParamString
	}
	return t.Literal
}

// hasDigit reports whether a literal token contains any ASCII digit.
// Used by the prefix tree's numeric auto-wildcard routing rule (see
// childKey in tree.go); tokens with embedded digits are overwhelmingly
// variable fields (timestamps, counters, IDs).
func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
