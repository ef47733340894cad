package module

import (
	"sort"
	"testing"

	phttp "qanda/internal/platform/net/http"
	kit "qanda/internal/platform/testkit"
)

type counter interface{ Count() int }

type countImpl struct{ n int }

func (c countImpl) Count() int { return c.n }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

var _ Module = fakeModule{}

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Answers counter
		Other   int
	}
	type hidden struct {
		answers counter
	}

	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", countImpl{n: 1}, 1, true},
		{"struct field", bundle{Answers: countImpl{n: 2}}, 2, true},
		{"pointer to struct", &bundle{Answers: countImpl{n: 3}}, 3, true},
		{"unexported field ignored", hidden{answers: countImpl{n: 4}}, 0, false},
		{"nil pointer", (*bundle)(nil), 0, false},
		{"primitive", 42, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[counter](fakeModule{name: "answers", ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Count() != tc.want {
				t.Fatalf("Count = %d, want %d", got.Count(), tc.want)
			}
		})
	}

	if _, ok := PortsOf[counter](nil); ok {
		t.Fatal("nil module should report false")
	}
}

func TestMustPortsOf(t *testing.T) {
	m := fakeModule{name: "answers", ports: countImpl{n: 5}}
	if got := MustPortsOf[counter](m); got.Count() != 5 {
		t.Fatalf("Count = %d", got.Count())
	}
	kit.MustPanic(t, func() { _ = MustPortsOf[counter](fakeModule{name: "users"}) })
}

func TestRegistry(t *testing.T) {
	kit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	Register(
		fakeModule{name: "answers", ports: countImpl{n: 7}},
		fakeModule{name: "meta"},
		nil,
	)

	got, ok := PortsAs[counter]("answers")
	if !ok || got.Count() != 7 {
		t.Fatalf("PortsAs answers = %v, %v", got, ok)
	}
	if _, ok := PortsAs[counter]("meta"); ok {
		t.Fatal("nil ports should not assert")
	}
	if _, ok := PortsAs[counter]("missing"); ok {
		t.Fatal("missing name should report false")
	}

	names := Names()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "answers" || names[1] != "meta" {
		t.Fatalf("Names = %v", names)
	}
}
