package rod

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/aistudio-video-cli/internal/adapters/browser/script"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

type session struct {
	browser *rod.Browser
	page    *rod.Page
	proc    *launcher.Launcher

	closeOnce sync.Once
	closeErr  error
}

func (s *session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

func (s *session) WaitFor(ctx context.Context, expression string) error {
	return s.until(ctx, script.Truthy(expression), "condition")
}

func (s *session) Evaluate(ctx context.Context, expression string, out any) error {
	res, err := s.page.Context(ctx).Eval(script.Func(expression))
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return res.Value.Unmarshal(out)
}

func (s *session) Fill(ctx context.Context, selector string, text string) error {
	return s.until(ctx, script.Fill(selector, text), selector)
}

func (s *session) Click(ctx context.Context, selector string) error {
	return s.until(ctx, script.Click(selector), selector)
}

func (s *session) ClickByText(ctx context.Context, selector string, texts ...string) error {
	return s.until(ctx, script.ClickByText(selector, texts...), fmt.Sprintf("%s with text %q", selector, texts))
}

// Close never removes the user-data directory: it belongs to the profile.
func (s *session) Close() error {
	s.closeOnce.Do(func() {
		err := s.browser.Close()
		s.proc.Kill()
		if err != nil && !errors.Is(err, context.Canceled) {
			s.closeErr = fmt.Errorf("close chrome: %w", err)
		}
	})
	return s.closeErr
}

func (s *session) until(ctx context.Context, expression, what string) error {
	if err := s.page.Context(ctx).Wait(rod.Eval(script.Func(expression))); err != nil {
		return fmt.Errorf("waiting for %s: %w", what, err)
	}
	return nil
}
