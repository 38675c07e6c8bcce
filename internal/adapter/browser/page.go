package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"ozo-attend/internal/ports"
)

const pollInterval = 250 * time.Millisecond

type page struct {
	pw  playwright.Page
	log *slog.Logger

	mu         sync.Mutex
	dialogSeen bool
	dialogMsg  string
}

func (p *page) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.pw.Goto(url)
	return err
}

func (p *page) Locator(selector string) ports.Element {
	return element{loc: p.pw.Locator(selector)}
}

func (p *page) Exists(selector string) (bool, error) {
	n, err := p.pw.Locator(selector).Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (p *page) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := p.pw.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return mapWaitError(err, selector)
}

// mapWaitError translates Playwright's own timeout into ports.ErrWaitTimeout
// and leaves every other failure (detached frame, bad selector) as what it
// is, so a broken page is never reported as a slow one.
func mapWaitError(err error, selector string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %s", ports.ErrWaitTimeout, selector)
	}
	return fmt.Errorf("wait for %s: %w", selector, err)
}

// WaitUntil polls the selector's text. Playwright's own waiters match
// against fixed states, while the flows need arbitrary predicates over the
// indicator text, hence the poll loop.
func (p *page) WaitUntil(ctx context.Context, selector string, cond func(string) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	loc := p.pw.Locator(selector)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := loc.TextContent()
		if err == nil && cond(text) {
			return nil
		}
		if err != nil {
			p.log.Debug("selector not readable yet", slog.String("selector", selector))
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s", ports.ErrWaitTimeout, selector)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (p *page) DialogMessage() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialogMsg, p.dialogSeen
}

type element struct {
	loc playwright.Locator
}

func (e element) Fill(value string) error     { return e.loc.Fill(value) }
func (e element) Click() error                { return e.loc.Click() }
func (e element) Hover() error                { return e.loc.Hover() }
func (e element) Text() (string, error)       { return e.loc.TextContent() }
func (e element) InputValue() (string, error) { return e.loc.InputValue() }
