package strings

import (
	"testing"

	kit "qanda/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty([]int{1, 2}, []int{9}); len(got) != 2 {
		t.Fatalf("IfEmpty kept wrong slice: %v", got)
	}
	if got := IfEmpty(nil, []string{"GET"}); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty default: %v", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"", "  ", "b", "c"}, "b"},
		{[]string{"a"}, "a"},
		{[]string{" ", ""}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := FirstNonEmpty(c.in...); got != c.want {
			t.Fatalf("FirstNonEmpty(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"questions":   "/questions",
		"/questions/": "/questions",
		"  /users  ":  "/users",
		"//api/v1//":  "/api/v1",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
	kit.MustPanic(t, func() { _ = MustPrefix("") })
}

func TestMustString(t *testing.T) {
	if got := MustString("questions", "module name"); got != "questions" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = MustString("  ", "module name") })
}
