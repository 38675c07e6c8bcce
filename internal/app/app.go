package app

import (
	"context"
	"log/slog"
	"time"

	"ozo-attend/internal/config"
	"ozo-attend/internal/console"
	"ozo-attend/internal/domain"
	"ozo-attend/internal/ports"
	"ozo-attend/internal/usecase"
)

// Timing defaults matched to the page's observed behavior.
const (
	defaultSettle     = 3 * time.Second
	defaultPace       = 500 * time.Millisecond
	defaultWaitBudget = 30 * time.Second
)

// App wires the browser session and the two flows.
type App struct {
	log      *slog.Logger
	console  *console.Printer
	session  ports.Session
	attend   *usecase.AttendUseCase
	register *usecase.RegisterUseCase
	url      string
	settle   time.Duration
}

// New prepares a run against an already launched session. The session is
// injected so a complete run can execute against a stub.
func New(log *slog.Logger, printer *console.Printer, cfg config.Config, projects domain.Projects, session ports.Session, waitBudget time.Duration) (*App, error) {
	page, err := session.NewPage()
	if err != nil {
		return nil, err
	}
	if waitBudget <= 0 {
		waitBudget = defaultWaitBudget
	}

	attend := &usecase.AttendUseCase{
		Log:        log,
		Console:    printer,
		Page:       page,
		URL:        cfg.OZO.URL,
		UserID:     cfg.User.ID,
		Password:   cfg.User.Password,
		Settle:     defaultSettle,
		WaitBudget: waitBudget,
	}
	register := &usecase.RegisterUseCase{
		Log:        log,
		Console:    printer,
		Page:       page,
		Projects:   projects,
		Pace:       defaultPace,
		Settle:     defaultSettle,
		WaitBudget: waitBudget,
	}

	return &App{
		log:      log,
		console:  printer,
		session:  session,
		attend:   attend,
		register: register,
		url:      cfg.OZO.URL,
		settle:   defaultSettle,
	}, nil
}

// WithTiming overrides the settle and pacing delays. Tests use zero values;
// real runs keep the defaults.
func (a *App) WithTiming(settle, pace time.Duration) *App {
	a.attend.Settle = settle
	a.register.Settle = settle
	a.register.Pace = pace
	a.settle = settle
	return a
}

// Run executes the attendance flow and, on clock-out, the registration
// flow. The first error aborts the rest of the sequence.
func (a *App) Run(ctx context.Context, op domain.Operation, today time.Weekday) error {
	if err := a.attend.Run(ctx, op); err != nil {
		return err
	}
	if err := a.register.Run(ctx, op, today); err != nil {
		return err
	}

	// The page runs its post-click processing asynchronously; closing the
	// browser too early can cut the last submission off mid-flight.
	sleep(ctx, a.settle)

	a.console.Info("See if it's properly done yourself at %s", a.url)
	return nil
}

// sleep waits for d unless ctx is cancelled first.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// Close tears the browser session down. Called on every exit path.
func (a *App) Close() error {
	return a.session.Close()
}
