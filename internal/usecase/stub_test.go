package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"ozo-attend/internal/console"
	"ozo-attend/internal/ports"
)

// stubPage records every interaction so tests can assert both outcomes and
// the absence of further page mutations.
type stubPage struct {
	texts    map[string]string   // current text per selector
	values   map[string]string   // current input value per selector
	exists   map[string]bool     // Exists results
	timeline map[string][]string // future texts a selector will show, consumed by WaitUntil

	dialogMsg string
	dialogSet bool

	calls []string
}

func newStubPage() *stubPage {
	return &stubPage{
		texts:    map[string]string{},
		values:   map[string]string{},
		exists:   map[string]bool{},
		timeline: map[string][]string{},
	}
}

func (p *stubPage) record(call string) { p.calls = append(p.calls, call) }

func (p *stubPage) mutationCalls() []string {
	var out []string
	for _, c := range p.calls {
		if strings.HasPrefix(c, "fill ") || strings.HasPrefix(c, "click ") {
			out = append(out, c)
		}
	}
	return out
}

func (p *stubPage) Goto(_ context.Context, url string) error {
	p.record("goto " + url)
	return nil
}

func (p *stubPage) Locator(selector string) ports.Element {
	return &stubElement{page: p, sel: selector}
}

func (p *stubPage) Exists(selector string) (bool, error) {
	return p.exists[selector], nil
}

func (p *stubPage) WaitVisible(_ context.Context, selector string, _ time.Duration) error {
	p.record("wait " + selector)
	return nil
}

func (p *stubPage) WaitUntil(_ context.Context, selector string, cond func(string) bool, _ time.Duration) error {
	if cond(p.texts[selector]) {
		return nil
	}
	for len(p.timeline[selector]) > 0 {
		next := p.timeline[selector][0]
		p.timeline[selector] = p.timeline[selector][1:]
		p.texts[selector] = next
		if cond(next) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ports.ErrWaitTimeout, selector)
}

func (p *stubPage) DialogMessage() (string, bool) {
	return p.dialogMsg, p.dialogSet
}

type stubElement struct {
	page *stubPage
	sel  string
}

func (e *stubElement) Fill(value string) error {
	e.page.record("fill " + e.sel + " = " + value)
	e.page.values[e.sel] = value
	return nil
}

func (e *stubElement) Click() error {
	e.page.record("click " + e.sel)
	return nil
}

func (e *stubElement) Hover() error {
	e.page.record("hover " + e.sel)
	return nil
}

func (e *stubElement) Text() (string, error) {
	return e.page.texts[e.sel], nil
}

func (e *stubElement) InputValue() (string, error) {
	return e.page.values[e.sel], nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func quietConsole() *console.Printer {
	return console.New(io.Discard)
}
