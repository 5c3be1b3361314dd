package util_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/util"
)

func TestIsDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"digits", "1234", true},
		{"zero", "0", true},
		{"leading zeros", "0081", true},
		{"sign", "-1", false},
		{"decimal point", "6.5", false},
		{"letters", "12ab", false},
		{"space", " 12", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := util.IsDigits(c.str); got != c.want {
				t.Errorf("util.IsDigits(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("abc")
	util.FreeStringBuilder(sb)

	sb = util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if sb.Len() != 0 {
		t.Errorf("util.GetStringBuilder().Len() = %d, want 0", sb.Len())
	}
}
