package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"single letter", "a", true},
		{"http", "http", true},
		{"upper case", "HTTP", true},
		{"with specials", "chrome-extension", true},
		{"with dots and digits", "v20.a", true},
		{"nested", "scheme:child:scheme.validscheme123", true},
		{"leading digit", "1http", false},
		{"leading dash", "-http", false},
		{"leading colon", ":http", false},
		{"with slash", "ht/tp", false},
		{"with space", "ht tp", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsScheme(c.str); got != c.want {
				t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestSchemePrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		str    string
		wantN  int
		wantOk bool
	}{
		{"empty", "", 0, false},
		{"no colon", "example.org/page.html", 0, false},
		{"http", "http://example.com", 4, true},
		{"mailto", "mailto:test@hi.com", 6, true},
		{"about", "about:blank", 5, true},
		{"nested", "a:b:c/path", 3, true},
		{"trailing colons", "x::", 2, true},
		{"empty scheme", "://weird-uri.com", 0, false},
		{"leading digit", "1234:5", 0, false},
		{"host and port", "example.com:81", 11, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			n, ok := grammar.SchemePrefix(c.str)
			if n != c.wantN || ok != c.wantOk {
				t.Errorf("grammar.SchemePrefix(%q) = (%d, %v), want (%d, %v)", c.str, n, ok, c.wantN, c.wantOk)
			}
		})
	}
}

func TestSchemePrefix_Bytes(t *testing.T) {
	t.Parallel()

	if n, ok := grammar.SchemePrefix([]byte("FTP://host")); n != 3 || !ok {
		t.Errorf("grammar.SchemePrefix([]byte(\"FTP://host\")) = (%d, %v), want (3, true)", n, ok)
	}
}
