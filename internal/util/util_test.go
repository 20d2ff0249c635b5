package util

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"", "  ", " b ", "c"}, "b"},
		{[]string{"a"}, "a"},
		{nil, ""},
		{[]string{" ", "\t"}, ""},
	}
	for _, tc := range cases {
		if got := FirstNonEmpty(tc.in...); got != tc.want {
			t.Fatalf("FirstNonEmpty(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
