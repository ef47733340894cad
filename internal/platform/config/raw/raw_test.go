package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	c := New().Prefix("LOG_")
	if got := c.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get = %q, want info", got)
	}
	if got := c.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get default = %q, want console", got)
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("LOG_")
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"YES", false, true},
		{"true", false, true},
		{"0", true, false},
		{"nah", true, false},
	}
	for _, tc := range cases {
		t.Setenv("LOG_CALLER", tc.val)
		if got := c.GetBool("CALLER", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("LOG_")
	t.Setenv("LOG_SAMPLE_EVERY", "10")
	if got := c.GetInt("SAMPLE_EVERY", 0); got != 10 {
		t.Fatalf("GetInt = %d, want 10", got)
	}
	t.Setenv("LOG_SAMPLE_EVERY", "-3")
	if got := c.GetInt("SAMPLE_EVERY", 1); got != 1 {
		t.Fatalf("GetInt negative = %d, want default", got)
	}
	t.Setenv("LOG_SAMPLE_EVERY", "x")
	if got := c.GetInt("SAMPLE_EVERY", 2); got != 2 {
		t.Fatalf("GetInt malformed = %d, want default", got)
	}
}
