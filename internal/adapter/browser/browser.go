// Package browser implements the ports over a Playwright-driven Chromium.
package browser

import (
	"fmt"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	"ozo-attend/internal/ports"
)

// Session implements ports.Session.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	log     *slog.Logger
}

// Launch starts the Playwright driver and a Chromium instance.
func Launch(headless bool, log *slog.Logger) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright driver: %w", err)
	}
	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	log.Debug("browser launched", slog.Bool("headless", headless))
	return &Session{pw: pw, browser: b, log: log}, nil
}

// NewPage opens a page with dialog capture wired up. Only the first dialog
// message is kept; the dialog itself is dismissed immediately so the page
// never blocks on it. Flows inspect the captured message as an explicit,
// ordered step rather than reacting inside the callback.
func (s *Session) NewPage() (ports.Page, error) {
	pg, err := s.browser.NewPage()
	if err != nil {
		return nil, err
	}
	p := &page{pw: pg, log: s.log}
	pg.OnDialog(func(d playwright.Dialog) {
		p.mu.Lock()
		if !p.dialogSeen {
			p.dialogSeen = true
			p.dialogMsg = d.Message()
		}
		p.mu.Unlock()
		_ = d.Dismiss()
	})
	return p, nil
}

// Close tears down the browser and the driver in order.
func (s *Session) Close() error {
	err := s.browser.Close()
	if stopErr := s.pw.Stop(); err == nil {
		err = stopErr
	}
	return err
}
