// Package grammar implements the URI scheme grammar on top of ABNF operators.
package grammar

import (
	"strings"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gouri/internal/constraints"
)

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." / ":" )
//
// The colon is a legal scheme character, so nested schemes like
// "scheme:child:scheme.value" are a single token.
var (
	alpha = abnf.AltFirst(
		"ALPHA",
		abnf.Range("ALPHA", []byte("A"), []byte("Z")),
		abnf.Range("ALPHA", []byte("a"), []byte("z")),
	)
	digit      = abnf.Range("DIGIT", []byte("0"), []byte("9"))
	schemeChar = abnf.AltFirst(
		"scheme-char",
		alpha,
		digit,
		abnf.Literal("scheme-char", []byte("+")),
		abnf.Literal("scheme-char", []byte("-")),
		abnf.Literal("scheme-char", []byte(".")),
		abnf.Literal("scheme-char", []byte(":")),
	)
	scheme = abnf.Concat("scheme", alpha, abnf.Repeat0Inf("scheme-tail", schemeChar))
)

// Scheme matches the scheme rule at the beginning of s.
func Scheme(s []byte, ns *abnf.Nodes) error {
	return scheme(s, 0, ns) //errtrace:skip
}

// schemeLen returns the length of the longest run of scheme characters at the beginning of s.
func schemeLen[T constraints.Byteseq](s T) int {
	if len(s) == 0 {
		return 0
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Scheme([]byte(s), ns); err != nil {
		return 0
	}
	return ns.Best().Len()
}

// IsScheme reports whether the whole s is a scheme token.
func IsScheme[T constraints.Byteseq](s T) bool {
	n := schemeLen(s)
	return n > 0 && n == len(s)
}

// SchemePrefix returns the longest scheme token at the beginning of s
// that is immediately followed by a colon.
// The returned length counts the scheme only, the colon is at s[n].
func SchemePrefix[T constraints.Byteseq](s T) (n int, ok bool) {
	run := schemeLen(s)
	if run == 0 {
		return 0, false
	}
	// Colons belong to the run, so the delimiter is the last one inside it.
	// A colon at index 0 is impossible since the run starts with ALPHA.
	i := strings.LastIndexByte(string(s[:run]), ':')
	if i < 1 {
		return 0, false
	}
	return i, true
}
