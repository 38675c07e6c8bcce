package ports

import (
	"context"
	"errors"
	"time"
)

// ErrWaitTimeout reports that an expected page condition never stabilized
// within its budget. Distinct from logic errors so callers can tell a slow
// page from a wrong one.
var ErrWaitTimeout = errors.New("timed out waiting for page condition")

// Session owns one live browser for the lifetime of a run.
type Session interface {
	NewPage() (Page, error)
	Close() error
}

// Page exposes the interactions the flows need from the timesheet app.
// Blocking waits take a context; element-level actions are short-lived and
// do not.
type Page interface {
	Goto(ctx context.Context, url string) error
	Locator(selector string) Element
	// Exists reports whether the selector currently matches any element.
	Exists(selector string) (bool, error)
	// WaitVisible blocks until the selector resolves to a visible element.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	// WaitUntil polls the selector's text until cond accepts it.
	WaitUntil(ctx context.Context, selector string, cond func(text string) bool, timeout time.Duration) error
	// DialogMessage returns the first dialog the page raised this session,
	// if any. The dialog itself has already been dismissed.
	DialogMessage() (string, bool)
}

// Element is a lazily resolved page element.
type Element interface {
	Fill(value string) error
	Click() error
	Hover() error
	Text() (string, error)
	InputValue() (string, error)
}
