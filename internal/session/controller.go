// Package session implements the drill state machine: configuring, answering
// problems, and summarizing the results.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathtrainer/internal/problemgen"
	"github.com/abhisek/mathtrainer/internal/training"
)

// FeedbackDelay is how long a solved problem stays on screen before the
// next one is generated.
const FeedbackDelay = 500 * time.Millisecond

// ConfigStore loads and saves the persisted training configuration.
type ConfigStore interface {
	Load(ctx context.Context) (training.Configuration, error)
	Save(ctx context.Context, cfg training.Configuration) error
}

// Outcome describes side effects of a transition that the caller must act on.
type Outcome struct {
	// Result is set for AnswerEvent.
	Result Result

	// Next is set when a problem was solved and another one should be
	// generated after FeedbackDelay.
	Next *NextProblem
}

// Controller drives State through its phases.
type Controller struct {
	gen    *problemgen.Generator
	store  ConfigStore
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDFunc overrides session ID generation.
func WithIDFunc(f func() string) Option {
	return func(c *Controller) { c.newID = f }
}

// WithLogger sets the logger used for session lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a Controller generating problems with gen and
// persisting configuration through store.
func NewController(gen *problemgen.Generator, store ConfigStore, opts ...Option) *Controller {
	c := &Controller{
		gen:    gen,
		store:  store,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init returns the initial Configuring state with the stored configuration.
func (c *Controller) Init(ctx context.Context) State {
	return State{
		Phase:  PhaseConfiguring,
		Config: c.loadConfig(ctx),
	}
}

// Apply runs ev against s and returns the resulting state. When the event is
// rejected the returned state equals s.
func (c *Controller) Apply(ctx context.Context, s State, ev Event) (State, Outcome, error) {
	switch ev := ev.(type) {
	case StartEvent:
		return c.start(ctx, s, ev)
	case AnswerEvent:
		return c.answer(s, ev)
	case AdvanceEvent:
		return c.advance(s, ev)
	case AbandonEvent:
		return c.abandon(s, ev)
	case RestartEvent:
		return c.restart(ctx, s, ev)
	}
	return s, Outcome{}, transitionError(s.Phase, ev)
}

func (c *Controller) start(ctx context.Context, s State, ev StartEvent) (State, Outcome, error) {
	if s.Phase != PhaseConfiguring {
		return s, Outcome{}, transitionError(s.Phase, ev)
	}

	cfg := ev.Config.Normalized()
	if len(cfg.SelectedNumbers) == 0 {
		s.Config = cfg
		return s, Outcome{}, &ValidationError{
			Field:   "selectedNumbers",
			Message: "please select at least one number",
		}
	}

	if err := c.store.Save(ctx, cfg); err != nil {
		c.logger.Warn("failed to save training configuration", "error", err)
	}

	next := State{
		Phase:     PhaseActive,
		Config:    cfg,
		SessionID: c.newID(),
		Stats:     NewStats(c.now()),
	}
	next = c.nextProblem(next)

	c.logger.Info("session started",
		"session_id", next.SessionID,
		"problems", cfg.ProblemCount,
		"tables", cfg.SelectedNumbers)
	return next, Outcome{}, nil
}

func (c *Controller) answer(s State, ev AnswerEvent) (State, Outcome, error) {
	if s.Phase != PhaseActive {
		return s, Outcome{}, transitionError(s.Phase, ev)
	}
	if s.AwaitingNext || s.Attempt.Solved {
		return s, Outcome{}, nil
	}

	attempt, res := Submit(ev.Selected, s.Problem, s.Attempt)
	s.Attempt = attempt
	if !res.Correct {
		return s, Outcome{Result: res}, nil
	}

	if res.FirstTry {
		s.Streak++
	} else {
		s.Streak = 0
	}
	s.Stats = RecordCompletion(s.Stats, res.FirstTry, s.Streak, s.Config, c.now())

	if s.Stats.TotalProblems >= s.Config.ProblemCount {
		s.Phase = PhaseComplete
		c.logger.Info("session complete",
			"session_id", s.SessionID,
			"first_try", s.Stats.CorrectFirstTry,
			"longest_streak", s.Stats.LongestStreak,
			"elapsed", s.Stats.Elapsed())
		return s, Outcome{Result: res}, nil
	}

	s.AwaitingNext = true
	return s, Outcome{
		Result: res,
		Next:   &NextProblem{SessionID: s.SessionID, Seq: s.Seq},
	}, nil
}

func (c *Controller) advance(s State, ev AdvanceEvent) (State, Outcome, error) {
	if s.Phase != PhaseActive || !s.AwaitingNext ||
		ev.Next.SessionID != s.SessionID || ev.Next.Seq != s.Seq {
		c.logger.Debug("ignoring stale advance",
			"session_id", ev.Next.SessionID,
			"seq", ev.Next.Seq)
		return s, Outcome{}, nil
	}
	return c.nextProblem(s), Outcome{}, nil
}

func (c *Controller) abandon(s State, ev AbandonEvent) (State, Outcome, error) {
	if s.Phase != PhaseActive {
		return s, Outcome{}, transitionError(s.Phase, ev)
	}
	s.Phase = PhaseComplete
	s.Abandoned = true
	s.AwaitingNext = false
	s.Stats = s.Stats.finish(c.now(), s.Stats.TotalProblems)

	c.logger.Info("session abandoned",
		"session_id", s.SessionID,
		"solved", s.Stats.TotalProblems,
		"of", s.Config.ProblemCount)
	return s, Outcome{}, nil
}

func (c *Controller) restart(ctx context.Context, s State, ev RestartEvent) (State, Outcome, error) {
	if s.Phase != PhaseComplete {
		return s, Outcome{}, transitionError(s.Phase, ev)
	}
	return State{
		Phase:  PhaseConfiguring,
		Config: c.loadConfig(ctx),
	}, Outcome{}, nil
}

// nextProblem replaces the current problem and clears the attempt.
func (c *Controller) nextProblem(s State) State {
	p := c.gen.Generate(s.Config.SelectedNumbers)
	s.Problem = p
	s.Options = c.gen.Options(p.Answer, s.Config.SelectedNumbers)
	s.Attempt = AttemptState{}
	s.AwaitingNext = false
	s.Seq++
	return s
}

func (c *Controller) loadConfig(ctx context.Context) training.Configuration {
	cfg, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to load training configuration, using defaults", "error", err)
		return training.Default()
	}
	return cfg
}
