package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtrainer/internal/screen"
	"github.com/abhisek/mathtrainer/internal/screens/configure"
	"github.com/abhisek/mathtrainer/internal/screens/drill"
	"github.com/abhisek/mathtrainer/internal/screens/summary"
	"github.com/abhisek/mathtrainer/internal/session"
	"github.com/abhisek/mathtrainer/internal/session/sessiontest"
	"github.com/abhisek/mathtrainer/internal/training"
)

func newTestModel(t *testing.T) (AppModel, *session.Controller) {
	t.Helper()
	ctrl := sessiontest.NewController(sessiontest.NewMemStore(nil))
	m := NewAppModel(context.Background(), ctrl)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 36})
	return updated.(AppModel), ctrl
}

func TestAppModel_StartsOnConfigure(t *testing.T) {
	m, _ := newTestModel(t)
	if _, ok := m.router.Active().(*configure.ConfigureScreen); !ok {
		t.Errorf("expected configure screen, got %T", m.router.Active())
	}
}

func TestAppModel_PhaseChangeReplacesScreen(t *testing.T) {
	m, ctrl := newTestModel(t)
	ctx := context.Background()

	st, _, err := ctrl.Apply(ctx, ctrl.Init(ctx), session.StartEvent{
		Config: training.Configuration{ProblemCount: 4, SelectedNumbers: []int{3}},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	updated, _ := m.Update(screen.PhaseChangedMsg{State: st})
	m = updated.(AppModel)
	if _, ok := m.router.Active().(*drill.DrillScreen); !ok {
		t.Fatalf("expected drill screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", m.router.Depth())
	}

	content := m.render()
	if !strings.Contains(content, "Training Session: 0/4") {
		t.Errorf("expected header progress in view:\n%s", content)
	}

	st, _, _ = ctrl.Apply(ctx, st, session.AbandonEvent{})
	updated, _ = m.Update(screen.PhaseChangedMsg{State: st})
	m = updated.(AppModel)
	if _, ok := m.router.Active().(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", m.router.Active())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	content := updated.(AppModel).render()
	if !strings.Contains(content, "Terminal too small") {
		t.Errorf("expected min size message, got:\n%s", content)
	}
}

func TestRun_RequiresController(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Error("expected an error without a controller")
	}
}

func TestRun_RejectsEmptyStartSelection(t *testing.T) {
	ctrl := sessiontest.NewController(sessiontest.NewMemStore(nil))
	err := Run(context.Background(), Options{
		Controller: ctrl,
		Start:      &training.Configuration{ProblemCount: 5},
	})
	var verr *session.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected a validation error, got %v", err)
	}
}
