package chromedp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/aistudio-video-cli/internal/adapters/browser/script"
	"github.com/chromedp/chromedp"
)

const pollEvery = 250 * time.Millisecond

type session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

func (s *session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

func (s *session) WaitFor(ctx context.Context, expression string) error {
	return s.until(ctx, script.Truthy(expression), "condition")
}

func (s *session) Evaluate(ctx context.Context, expression string, out any) error {
	return s.run(ctx, chromedp.Evaluate(expression, out))
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

// Close shuts the browser down gracefully, then releases the allocator so
// the process is gone even when the graceful close fails.
func (s *session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = chromedp.Cancel(s.ctx)
		s.cancel()
		s.allocCancel()
	})
	return s.closeErr
}

// until evaluates expression every pollEvery until it returns true or ctx
// ends. Evaluation errors are retried since the page may be mid-navigation.
func (s *session) until(ctx context.Context, expression, what string) error {
	runCtx, cancel := s.bind(ctx)
	defer cancel()

	ticker := time.NewTicker(pollEvery)
	defer ticker.Stop()

	var lastErr error
	for {
		var ok bool
		err := chromedp.Run(runCtx, chromedp.Evaluate(expression, &ok))
		if err == nil && ok {
			return nil
		}
		if err != nil {
			lastErr = err
		}

		select {
		case <-runCtx.Done():
			if lastErr != nil {
				return fmt.Errorf("waiting for %s: %w (last error: %v)", what, runCtx.Err(), lastErr)
			}
			return fmt.Errorf("waiting for %s: %w", what, runCtx.Err())
		case <-ticker.C:
		}
	}
}

func (s *session) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := s.bind(ctx)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

// bind derives a context from the browser context that also honours the
// caller's deadline and cancellation.
func (s *session) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithCancel(s.ctx)
	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
		inner := cancel
		cancel = func() {
			cancelDeadline()
			inner()
		}
	}
	stop := context.AfterFunc(ctx, cancel)

	return runCtx, func() {
		stop()
		cancel()
	}
}
