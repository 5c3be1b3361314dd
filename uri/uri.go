package uri

//go:generate go tool errtrace -w .

import (
	"math"
	"net"
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

var (
	_ types.Renderer        = (*URI)(nil)
	_ types.Cloneable[*URI] = (*URI)(nil)
	_ types.ValidFlag       = (*URI)(nil)
)

// Locality is an explicit relative/absolute flag of a URI without host.
type Locality uint8

const (
	Relative Locality = iota
	Absolute
)

func (l Locality) String() string {
	switch l {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	default:
		return "Locality(" + strconv.Itoa(int(l)) + ")"
	}
}

// optional is a string that can be unset.
type optional struct {
	val string
	ok  bool
}

func some(s string) optional { return optional{s, true} }

func (o optional) get() (string, bool) { return o.val, o.ok }

// URI is a mutable URI value.
//
// All components except the path are optional, unset components are reported
// by the second return value of the accessors.
// The zero value is an empty relative URI.
// Setters modify the URI in place and return it for chaining.
type URI struct {
	scheme   optional
	user     optional
	pass     optional
	host     optional
	port     uint64
	hasPort  bool
	path     string
	query    optional
	fragment optional
	locality Locality
}

// New returns an empty URI.
func New() *URI { return new(URI) }

// Scheme returns the lowercase scheme of the URI.
func (u *URI) Scheme() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.scheme.get()
}

// User returns the user name of the URI.
func (u *URI) User() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.user.get()
}

// Pass returns the password of the URI.
func (u *URI) Pass() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.pass.get()
}

// Host returns the host of the URI.
// An empty host is still a host: it means the URI has an empty authority.
func (u *URI) Host() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.host.get()
}

// Port returns the port of the URI.
// Ports that do not fit in uint64 are never parsed or set, see [Parse] and [URI.SetPort].
func (u *URI) Port() (uint64, bool) {
	if u == nil {
		return 0, false
	}
	return u.port, u.hasPort
}

// Path returns the path of the URI as it was given.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the query of the URI without the leading "?".
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query.get()
}

// Fragment returns the fragment of the URI without the leading "#".
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment.get()
}

// Locality returns the explicit locality flag.
// It only matters while the URI has no host, see [URI.IsAbsolute].
func (u *URI) Locality() Locality {
	if u == nil {
		return Relative
	}
	return u.locality
}

// IsSchemeless reports whether the URI has no scheme.
func (u *URI) IsSchemeless() bool {
	return u == nil || !u.scheme.ok
}

// IsAbsolute reports whether the URI has a host or was explicitly marked absolute.
func (u *URI) IsAbsolute() bool {
	return u != nil && (u.host.ok || u.locality == Absolute)
}

// IsRelative is the negation of [URI.IsAbsolute].
func (u *URI) IsRelative() bool { return !u.IsAbsolute() }

// IsScheme reports whether s is a valid scheme: a letter followed by letters,
// digits and the characters "+", "-", "." and ":".
func IsScheme[T constraints.Byteseq](s T) bool { return grammar.IsScheme(s) }

// SetScheme sets the scheme.
//
// The value may carry the usual decorations: a leading "//" and a trailing "://" or ":"
// are stripped, the rest is lowercased and must be a valid scheme.
// Anything else, including nil or an empty string, makes the URI schemeless.
//
// When the URI has no host, the first segment of the path is promoted to the host,
// so "example.org/page.html" becomes "http://example.org/page.html".
func (u *URI) SetScheme(v any) *URI {
	u.scheme = optional{}

	s, ok := asString(v)
	if !ok || s == "" {
		return u
	}
	s = strings.TrimPrefix(s, "//")
	if strings.HasSuffix(s, "://") {
		s = s[:len(s)-3]
	} else {
		s = strings.TrimSuffix(s, ":")
	}
	s = util.LCase(s)
	if !grammar.IsScheme(s) {
		return u
	}

	u.scheme = some(s)
	if !u.host.ok {
		u.promoteHost()
	}
	return u
}

func (u *URI) promoteHost() {
	p := strings.TrimPrefix(u.path, "/")
	if host, rest, ok := strings.Cut(p, "/"); ok {
		u.host = some(host)
		u.path = "/" + rest
		return
	}
	u.host = some(p)
	u.path = ""
}

// SetUser sets the user name. A non-string value unsets it.
func (u *URI) SetUser(v any) *URI {
	u.user = optionalOf(v)
	return u
}

// SetPass sets the password. A non-string value unsets it.
// The password is rendered only together with the user name.
func (u *URI) SetPass(v any) *URI {
	u.pass = optionalOf(v)
	return u
}

// SetHost sets the host. A non-string value unsets it.
func (u *URI) SetHost(v any) *URI {
	u.host = optionalOf(v)
	return u
}

// SetPort sets the port.
//
// Accepted values are non-negative whole numbers up to [math.MaxUint64]: integers,
// floats without fractional part and strings of decimal digits.
// Anything else unsets the port.
func (u *URI) SetPort(v any) *URI {
	u.port, u.hasPort = portOf(v)
	return u
}

// SetPath sets the path. A non-string value resets it to the empty string.
func (u *URI) SetPath(v any) *URI {
	u.path, _ = asString(v)
	return u
}

// SetQuery sets the query, a leading "?" is dropped. A non-string value unsets it.
func (u *URI) SetQuery(v any) *URI {
	u.query = optionalOf(v)
	if u.query.ok {
		u.query.val = strings.TrimPrefix(u.query.val, "?")
	}
	return u
}

// SetFragment sets the fragment. A non-string value unsets it.
func (u *URI) SetFragment(v any) *URI {
	u.fragment = optionalOf(v)
	return u
}

// SetAbsolute marks the URI as absolute. Other components are left untouched.
func (u *URI) SetAbsolute() *URI {
	u.locality = Absolute
	return u
}

// SetRelative marks the URI as relative.
// A relative reference has neither scheme nor host, so both are unset.
func (u *URI) SetRelative() *URI {
	u.locality = Relative
	u.scheme = optional{}
	u.host = optional{}
	return u
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// IsValid reports whether the URI is syntactically sound: its scheme, if any,
// follows the scheme grammar, and its host, if not empty, is an IP literal
// or a domain name.
func (u *URI) IsValid() bool {
	if u == nil {
		return false
	}
	if s, ok := u.scheme.get(); ok && !grammar.IsScheme(s) {
		return false
	}
	if h, ok := u.host.get(); ok && h != "" {
		return isHost(h)
	}
	return true
}

func isHost(h string) bool {
	if strings.HasPrefix(h, "[") && strings.HasSuffix(h, "]") {
		ip := net.ParseIP(h[1 : len(h)-1])
		return ip != nil && ip.To4() == nil
	}
	if net.ParseIP(h) != nil {
		return true
	}
	_, ok := dns.IsDomainName(h)
	return ok
}

func asString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func optionalOf(v any) optional {
	if s, ok := asString(v); ok {
		return some(s)
	}
	return optional{}
}

func portOf(v any) (uint64, bool) {
	switch v := v.(type) {
	case int:
		return signedPort(int64(v))
	case int8:
		return signedPort(int64(v))
	case int16:
		return signedPort(int64(v))
	case int32:
		return signedPort(int64(v))
	case int64:
		return signedPort(v)
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case float32:
		return floatPort(float64(v))
	case float64:
		return floatPort(v)
	case string:
		return digitsPort(v)
	case []byte:
		return digitsPort(string(v))
	default:
		return 0, false
	}
}

func signedPort(n int64) (uint64, bool) {
	if n < 0 {
		return 0, false
	}
	return uint64(n), true
}

func floatPort(f float64) (uint64, bool) {
	// 2^64 is the first float64 that does not fit.
	if f < 0 || f >= 1<<64 || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	return uint64(f), true
}

func digitsPort(s string) (uint64, bool) {
	if !util.IsDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
