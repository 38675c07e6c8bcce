package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ozo-attend/internal/console"
	"ozo-attend/internal/domain"
	"ozo-attend/internal/ports"
)

// Selectors on the OZO login and attendance screens.
const (
	loginNameInput     = "#login-name"
	loginPasswordInput = "#login-password"
	loginButton        = "#login-btn"
	loginErrorBox      = "#err-font"
	clockInButton      = "#btn03"
	clockOutButton     = "#btn04"
)

// attendanceCell addresses the day's record cell on the 実績 row: the
// second column holds the clock-in time, the third the clock-out time.
func attendanceCell(op domain.Operation) string {
	column := 2
	if op == domain.OperationClockOut {
		column = 3
	}
	return fmt.Sprintf("xpath=//th[text()='実績']/following-sibling::td[%d]", column)
}

func inOrOut(op domain.Operation) string {
	if op == domain.OperationClockIn {
		return "in"
	}
	return "out"
}

// AttendUseCase logs in and presses the clock-in or clock-out control,
// skipping the press when the day's cell is already populated.
type AttendUseCase struct {
	Log     *slog.Logger
	Console *console.Printer
	Page    ports.Page

	URL      string
	UserID   string
	Password string // never logged

	Settle     time.Duration // post-login navigation settle
	WaitBudget time.Duration
}

func (uc *AttendUseCase) Run(ctx context.Context, op domain.Operation) error {
	uc.Console.Start("Hold on, I'm clocking %s for you.", inOrOut(op))

	if err := uc.Page.Goto(ctx, uc.URL); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}
	if err := uc.Page.Locator(loginNameInput).Fill(uc.UserID); err != nil {
		return fmt.Errorf("fill user id: %w", err)
	}
	if err := uc.Page.Locator(loginPasswordInput).Fill(uc.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := uc.Page.Locator(loginButton).Click(); err != nil {
		return fmt.Errorf("submit login: %w", err)
	}

	// Give the post-login navigation time to finish before inspecting anything.
	sleep(ctx, uc.Settle)

	failed, err := uc.Page.Exists(loginErrorBox)
	if err != nil {
		return fmt.Errorf("check login result: %w", err)
	}
	if failed {
		return ErrAuthentication
	}

	cell := attendanceCell(op)
	if err := uc.Page.WaitVisible(ctx, cell, uc.WaitBudget); err != nil {
		return err
	}
	recorded, err := uc.Page.Locator(cell).Text()
	if err != nil {
		return fmt.Errorf("read attendance cell: %w", err)
	}
	if strings.Contains(recorded, ":") {
		uc.Console.Warn("Skipped clocking %s because it was already done.", inOrOut(op))
		uc.Log.Info("attendance already recorded",
			slog.String("operation", string(op)),
			slog.String("recorded", strings.TrimSpace(recorded)),
		)
		return nil
	}

	button := clockInButton
	if op == domain.OperationClockOut {
		button = clockOutButton
	}
	if err := uc.Page.Locator(button).Click(); err != nil {
		return fmt.Errorf("press clock control: %w", err)
	}

	uc.Console.Success("Clocking %s is done.", inOrOut(op))
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
