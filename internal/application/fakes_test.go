package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeLauncher struct {
	session   *fakeSession
	err       error
	panicMsg  string
	launched  []domain.Profile
	launchCtx context.Context
}

func (l *fakeLauncher) Launch(ctx context.Context, profile domain.Profile) (ports.BrowserSession, error) {
	l.launched = append(l.launched, profile)
	l.launchCtx = ctx
	if l.panicMsg != "" {
		panic(l.panicMsg)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.session, nil
}

// profileLauncher hands each profile its own scripted session.
type profileLauncher struct {
	sessions map[domain.Profile]*fakeSession
	launched []domain.Profile
}

func (l *profileLauncher) Launch(_ context.Context, profile domain.Profile) (ports.BrowserSession, error) {
	l.launched = append(l.launched, profile)
	session, ok := l.sessions[profile]
	if !ok {
		return nil, domain.ErrBrowserNotFound
	}
	return session, nil
}

// fakeSession answers the page contract from scripted fields. Body texts are
// served in order and the last one repeats.
type fakeSession struct {
	mu sync.Mutex

	navigateErr      error
	waitErrs         map[string]error
	fillErr          error
	clickErrs        map[string]error
	clickByTextErrs  map[string]error
	bodies           []string
	readyAfterChecks int
	evaluateErr      error
	href             string
	panicOnNavigate  bool
	closeErr         error

	closed      int
	bodyChecks  int
	filled      string
	clicked     []string
	clickedText []string
}

func (s *fakeSession) Navigate(_ context.Context, _ string) error {
	if s.panicOnNavigate {
		panic("renderer crashed")
	}
	return s.navigateErr
}

func (s *fakeSession) WaitFor(_ context.Context, expression string) error {
	if expression == downloadPresentExpression && s.href == "" {
		return errors.New("waiting for download link: context deadline exceeded")
	}
	return s.waitErrs[expression]
}

func (s *fakeSession) Evaluate(_ context.Context, expression string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch expression {
	case bodyTextExpression:
		if s.evaluateErr != nil {
			return s.evaluateErr
		}
		body := ""
		if len(s.bodies) > 0 {
			idx := s.bodyChecks
			if idx >= len(s.bodies) {
				idx = len(s.bodies) - 1
			}
			body = s.bodies[idx]
		}
		s.bodyChecks++
		*out.(*string) = body
	case resultReadyExpression:
		*out.(*bool) = s.readyAfterChecks > 0 && s.bodyChecks >= s.readyAfterChecks
	case downloadHrefExpression:
		*out.(*string) = s.href
	default:
		return errors.New("unexpected expression")
	}
	return nil
}

func (s *fakeSession) Fill(_ context.Context, _ string, text string) error {
	if s.fillErr != nil {
		return s.fillErr
	}
	s.filled = text
	return nil
}

func (s *fakeSession) Click(_ context.Context, selector string) error {
	s.clicked = append(s.clicked, selector)
	return s.clickErrs[selector]
}

func (s *fakeSession) ClickByText(_ context.Context, selector string, texts ...string) error {
	s.clickedText = append(s.clickedText, texts...)
	return s.clickByTextErrs[selector]
}

func (s *fakeSession) Close() error {
	s.closed++
	return s.closeErr
}

func (s *fakeSession) checks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodyChecks
}

func testConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.UserDataPath = "/chrome"
	cfg.SaveDir = "/videos"
	cfg.Profiles = []domain.Profile{"Default"}
	cfg.Timeouts.MaxWait = 30 * time.Second
	cfg.Timeouts.CheckInterval = 5 * time.Second
	return cfg
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core), logs
}

// runAdvancing runs fn while advancing the fake clock by step each time a
// sleeper is waiting on it.
func runAdvancing(t *testing.T, clock *clockwork.FakeClock, step time.Duration, fn func() domain.Outcome) domain.Outcome {
	t.Helper()

	done := make(chan domain.Outcome, 1)
	go func() {
		done <- fn()
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case outcome := <-done:
			return outcome
		case <-deadline:
			t.Fatal("session did not finish")
			return domain.Outcome{}
		default:
		}

		waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		err := clock.BlockUntilContext(waitCtx, 1)
		cancel()
		if err == nil {
			clock.Advance(step)
		}
	}
}

type fakeRunner struct {
	outcomes map[domain.Profile]domain.Outcome
	calls    []domain.Profile
}

func (r *fakeRunner) RunSession(_ context.Context, profile domain.Profile) domain.Outcome {
	r.calls = append(r.calls, profile)
	outcome, ok := r.outcomes[profile]
	if !ok {
		return domain.Fatal("no scripted outcome")
	}
	return outcome
}

type inMemoryConfigRepo struct {
	cfg     domain.Config
	loadErr error
	saves   int
}

func (r *inMemoryConfigRepo) Load(_ context.Context) (domain.Config, error) {
	if r.loadErr != nil {
		return domain.Config{}, r.loadErr
	}
	cfg := r.cfg
	cfg.Profiles = append([]domain.Profile(nil), r.cfg.Profiles...)
	return cfg, nil
}

func (r *inMemoryConfigRepo) Save(_ context.Context, cfg domain.Config) error {
	r.cfg = cfg
	r.saves++
	return nil
}
