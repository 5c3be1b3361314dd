package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// authoritySchemes lists schemes that are written with "//" before the authority.
var authoritySchemes = map[string]bool{
	"file":   true,
	"ftp":    true,
	"ftps":   true,
	"git":    true,
	"gopher": true,
	"http":   true,
	"https":  true,
	"imap":   true,
	"irc":    true,
	"ldap":   true,
	"ldaps":  true,
	"nntp":   true,
	"pop":    true,
	"rtsp":   true,
	"sftp":   true,
	"smb":    true,
	"ssh":    true,
	"svn":    true,
	"telnet": true,
	"ws":     true,
	"wss":    true,
}

// IsAuthorityScheme reports whether the scheme is rendered with "//" before the authority.
// Any other scheme is followed by a single colon.
func IsAuthorityScheme(scheme string) bool { return authoritySchemes[util.LCase(scheme)] }

// RenderTo writes the URI to the provided writer.
//
// The output is a plain concatenation of the components, nothing is escaped or normalized.
// Userinfo and port are written only together with the host.
// Schemes unknown to [IsAuthorityScheme] are followed by a bare colon,
// even if the URI has an authority, e.g. "mailto:user@example.com".
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if scheme, ok := u.scheme.get(); ok {
		cw.WriteString(scheme)
		if IsAuthorityScheme(scheme) {
			cw.WriteString("://")
		} else {
			cw.WriteString(":")
		}
	} else if u.IsAbsolute() {
		cw.WriteString("//")
	}
	if u.host.ok {
		cw.Call(func(w io.Writer) (int, error) { return u.renderAuthority(w, opts) })
	}
	cw.WriteString(u.path)
	if u.query.ok && u.query.val != "" {
		cw.WriteString("?")
		cw.WriteString(u.query.val)
	}
	if u.fragment.ok && u.fragment.val != "" {
		cw.WriteString("#")
		cw.WriteString(u.fragment.val)
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URI) renderAuthority(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if user, ok := u.user.get(); ok {
		cw.WriteString(user)
		if pass, ok := u.pass.get(); ok {
			if opts != nil && opts.Redact {
				pass = "xxxxx"
			}
			cw.WriteString(":")
			cw.WriteString(pass)
		}
		cw.WriteString("@")
	}
	cw.WriteString(u.host.val)
	if u.hasPort {
		cw.Fprint(":", u.port)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URI.
//
// The "%s" and "%v" verbs print the URI string, "%+s" prints it with the password redacted,
// "%q" prints the quoted string, any other verb prints the URI fields.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			break
		}
		if f.Flag('+') {
			u.RenderTo(f, &RenderOptions{Redact: true}) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	}

	type hideMethods URI
	type URI hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Any text is accepted, see [Parse].
func (u *URI) UnmarshalText(text []byte) error {
	*u = URI{}
	u.parse(string(text))
	return nil
}
