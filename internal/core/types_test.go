package core

import (
	"strings"
	"testing"
)

type stubSim struct{ name string }

func (s stubSim) Name() string   { return s.name }
func (s stubSim) Size() Size     { return Size{} }
func (s stubSim) Reset(int64)    {}
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return nil }

func TestRegisterAndLookup(t *testing.T) {
	Register("zz-stub", func(map[string]string) Sim { return stubSim{name: "zz-stub"} })
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("zz-nil", nil)
	t.Cleanup(func() { delete(sims, "zz-stub") })

	f, err := Lookup("zz-stub")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got := f(nil).Name(); got != "zz-stub" {
		t.Fatalf("factory built %q", got)
	}
	if _, ok := sims[""]; ok {
		t.Fatalf("empty name registered")
	}
	if _, ok := sims["zz-nil"]; ok {
		t.Fatalf("nil factory registered")
	}

	_, err = Lookup("missing")
	if err == nil || !strings.Contains(err.Error(), "zz-stub") {
		t.Fatalf("expected error listing available sims, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	Register("zz-b", func(map[string]string) Sim { return stubSim{} })
	Register("zz-a", func(map[string]string) Sim { return stubSim{} })
	t.Cleanup(func() {
		delete(sims, "zz-a")
		delete(sims, "zz-b")
	})
	names := Names()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "zz-a":
			ia = i
		case "zz-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Fatalf("names not sorted: %v", names)
	}
}
