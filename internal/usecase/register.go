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

// Selectors on the 工数管理 (project time entry) panel.
const (
	openPanelLink     = "a#div_inputbutton"
	recomputeButton   = ".button_edit"
	registerButton    = "#div_sub_buttons_regist"
	remainingTimeSpan = ".footer-content-detail span:nth-of-type(3)"
)

// Project entries are addressed by position: slot 1 is the main project,
// slots 2..N the day's sub-projects in configured order. This positional
// coupling is the page's contract, not ours.
func projectCodeInput(slot int) string {
	return fmt.Sprintf("#text_project_%d", slot)
}

func workTimeInput(slot int) string {
	return fmt.Sprintf("#div_sub_editlist_WORK_TIME_row%d input", slot)
}

// emptySentinel reports whether the remaining-time indicator still shows
// one of the page's two equivalent "nothing computed yet" values.
func emptySentinel(text string) bool {
	return text == "00:00" || text == "(00:00)"
}

// RegisterUseCase fills project codes and time allocations for the day.
// It only acts on clock-out: until then the day's total does not exist.
type RegisterUseCase struct {
	Log      *slog.Logger
	Console  *console.Printer
	Page     ports.Page
	Projects domain.Projects

	Pace       time.Duration // delay after a fill; the page rejects rapid consecutive inputs
	Settle     time.Duration // delay before inspecting captured dialog state
	WaitBudget time.Duration
}

func (uc *RegisterUseCase) Run(ctx context.Context, op domain.Operation, today time.Weekday) error {
	if op == domain.OperationClockIn {
		return nil
	}

	uc.Console.Start("Now I'm setting the project codes for you.")

	if err := uc.Page.Locator(openPanelLink).Click(); err != nil {
		return fmt.Errorf("open time entry panel: %w", err)
	}
	if err := uc.Page.WaitVisible(ctx, workTimeInput(1), uc.WaitBudget); err != nil {
		return err
	}
	firstRow, err := uc.Page.Locator(workTimeInput(1)).InputValue()
	if err != nil {
		return fmt.Errorf("read first entry row: %w", err)
	}
	if strings.Contains(firstRow, ":") {
		uc.Console.Warn("Skipped setting project codes because they were already set.")
		uc.Log.Info("project codes already registered", slog.String("first_row", firstRow))
		return nil
	}

	// First wait: the indicator leaves its empty sentinels once the page has
	// finished folding the clock-out into the day's total. A blank reading
	// means the span has not rendered yet, not that it settled.
	if err := uc.Page.WaitUntil(ctx, remainingTimeSpan, func(text string) bool {
		return text != "" && !emptySentinel(text)
	}, uc.WaitBudget); err != nil {
		return err
	}

	raw, err := uc.Page.Locator(remainingTimeSpan).Text()
	if err != nil {
		return fmt.Errorf("read total worked time: %w", err)
	}
	totalWorkTime := strings.TrimSuffix(strings.TrimPrefix(raw, "("), ")")

	mainTime, err := domain.AllocateMainTime(uc.Projects, totalWorkTime, today)
	if err != nil {
		return err
	}
	uc.Log.Debug("allocated main project time",
		slog.String("total", totalWorkTime),
		slog.String("main", mainTime),
	)

	if err := uc.fillSlot(ctx, 1, uc.Projects.Main.Code, mainTime); err != nil {
		return err
	}
	for i, sub := range domain.SubsForToday(uc.Projects, today) {
		if err := uc.fillSlot(ctx, i+2, sub.Code, sub.Time); err != nil {
			return err
		}
	}

	// Clicking outside the inputs makes the page recompute the indicator.
	if err := uc.Page.Locator(recomputeButton).Click(); err != nil {
		return fmt.Errorf("trigger recomputation: %w", err)
	}

	// Second wait, opposite predicate: a fully reconciled allocation brings
	// the indicator to exactly "(00:00)".
	if err := uc.Page.WaitUntil(ctx, remainingTimeSpan, func(text string) bool {
		return text == "(00:00)"
	}, uc.WaitBudget); err != nil {
		// An unrecognized code raises a dialog instead of reconciling; a
		// captured dialog explains the timeout better than the timeout does.
		if msg, ok := uc.Page.DialogMessage(); ok {
			return &RegistrationRejectedError{Message: msg}
		}
		return err
	}

	sleep(ctx, uc.Settle)
	if msg, ok := uc.Page.DialogMessage(); ok {
		return &RegistrationRejectedError{Message: msg}
	}

	if err := uc.Page.Locator(registerButton).Click(); err != nil {
		return fmt.Errorf("submit registration: %w", err)
	}

	uc.Console.Success("Congrats! Project codes are set.")
	return nil
}

func (uc *RegisterUseCase) fillSlot(ctx context.Context, slot int, code, workTime string) error {
	if err := uc.Page.Locator(projectCodeInput(slot)).Fill(code); err != nil {
		return fmt.Errorf("fill project code in slot %d: %w", slot, err)
	}
	if err := uc.Page.Locator(workTimeInput(slot)).Fill(workTime); err != nil {
		return fmt.Errorf("fill work time in slot %d: %w", slot, err)
	}
	sleep(ctx, uc.Pace)
	return nil
}
