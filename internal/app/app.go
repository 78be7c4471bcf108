package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtrainer/internal/router"
	"github.com/abhisek/mathtrainer/internal/screen"
	"github.com/abhisek/mathtrainer/internal/screens/configure"
	"github.com/abhisek/mathtrainer/internal/screens/drill"
	"github.com/abhisek/mathtrainer/internal/screens/summary"
	"github.com/abhisek/mathtrainer/internal/session"
	"github.com/abhisek/mathtrainer/internal/training"
	"github.com/abhisek/mathtrainer/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *session.Controller
	router *router.Router
	width  int
	height int
}

// NewAppModel creates an AppModel showing the configuration screen with the
// stored configuration loaded.
func NewAppModel(ctx context.Context, ctrl *session.Controller) AppModel {
	return newAppModelFor(ctrl, ctrl.Init(ctx))
}

func newAppModelFor(ctrl *session.Controller, st session.State) AppModel {
	return AppModel{
		ctrl:   ctrl,
		router: router.New(screenFor(ctrl, st)),
	}
}

// screenFor returns the screen that presents st's phase.
func screenFor(ctrl *session.Controller, st session.State) screen.Screen {
	switch st.Phase {
	case session.PhaseActive:
		return drill.New(ctrl, st)
	case session.PhaseComplete:
		return summary.New(ctrl, st)
	default:
		return configure.New(ctrl, st)
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.PhaseChangedMsg:
		slog.Debug("phase changed", "phase", msg.State.Phase.String(), "session_id", msg.State.SessionID)
		return m, m.router.Replace(screenFor(m.ctrl, msg.State))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Options configures the Bubble Tea program.
type Options struct {
	Controller *session.Controller
	// Start, when set, skips the configuration screen and begins a session
	// with this configuration.
	Start *training.Configuration
	// ProgramOptions are passed through to tea.NewProgram.
	ProgramOptions []tea.ProgramOption
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("run app: controller is required")
	}

	model := NewAppModel(ctx, opts.Controller)
	if opts.Start != nil {
		st, _, err := opts.Controller.Apply(ctx, opts.Controller.Init(ctx), session.StartEvent{Config: *opts.Start})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		model = newAppModelFor(opts.Controller, st)
	}

	progOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(model, progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
