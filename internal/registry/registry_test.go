package registry

import (
	"testing"

	"github.com/vovakirdan/dodge-rush/internal/core"
)

type stubGame struct {
	id  string
	env Env
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func(env Env) Game { return &stubGame{id: "zz_stub", env: env} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	vp := &core.Viewport{W: 800, H: 600}
	g, err := Create("zz_stub", Env{Geometry: vp})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if sg, ok := g.(*stubGame); !ok || sg.env.Geometry != vp {
		t.Error("Create should pass the env to the factory")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", Env{}); err == nil {
		t.Error("Create of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func(Env) Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func(Env) Game { return &stubGame{id: "zz_dup"} })
}
