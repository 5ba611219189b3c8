package registry

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                          { return s.id }
func (s stubGame) Title() string                       { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)            {}
func (s stubGame) Resize(int, int)                       {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                 {}
func (s stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || !Exists("aa_stub") {
		t.Fatal("Exists() = false for a registered id")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create(aa_stub) error = %v", err)
	}
	if g.Title() != "Stub aa_stub" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub aa_stub")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) returned no error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register(dup_stub) did not panic")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
