package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const artifactTimeLayout = "2006-01-02T15-04-05.000Z"

var stateMessages = map[domain.SessionState]string{
	domain.StateLaunching:              "Launching Chrome",
	domain.StateNavigating:             "Navigating to video generator",
	domain.StateAwaitingAuthentication: "Waiting for login to complete",
	domain.StateSubmittingJob:          "Submitting generation job",
	domain.StatePolling:                "Waiting for video generation",
}

// SessionDriver runs one end-to-end generation attempt under one profile.
type SessionDriver struct {
	launcher ports.BrowserLauncher
	job      domain.Job
	timeouts domain.Timeouts
	saveDir  string
	clock    clockwork.Clock
	logger   *zap.Logger
}

func NewSessionDriver(launcher ports.BrowserLauncher, cfg domain.Config, clock clockwork.Clock, logger *zap.Logger) *SessionDriver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionDriver{
		launcher: launcher,
		job:      cfg.Job,
		timeouts: cfg.Timeouts,
		saveDir:  cfg.SaveDir,
		clock:    clock,
		logger:   logger,
	}
}

// RunSession always returns exactly one outcome and always closes the browser
// it launched before returning. A panic during the attempt becomes a Fatal
// outcome for this profile only.
func (d *SessionDriver) RunSession(ctx context.Context, profile domain.Profile) (outcome domain.Outcome) {
	logger := d.logger.With(zap.String("profile", string(profile)))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected fault", zap.Any("panic", r))
			outcome = d.finish(logger, domain.Fatal(fmt.Sprintf("unexpected fault: %v", r)))
		}
	}()

	d.enter(logger, domain.StateLaunching)
	session, err := d.launcher.Launch(ctx, profile)
	if err != nil {
		logger.Error("Failed to launch browser", zap.Error(err))
		return d.finish(logger, domain.Fatal(fmt.Sprintf("launch browser: %v", err)))
	}
	defer d.teardown(logger, session)

	return d.finish(logger, d.drive(ctx, logger, session))
}

func (d *SessionDriver) drive(ctx context.Context, logger *zap.Logger, session ports.BrowserSession) domain.Outcome {
	d.enter(logger, domain.StateNavigating)
	err := d.step(ctx, d.timeouts.Navigation, func(stepCtx context.Context) error {
		return session.Navigate(stepCtx, d.job.TargetURL)
	})
	if err != nil {
		logger.Error("Navigation failed", zap.String("url", d.job.TargetURL), zap.Error(err))
		return domain.Fatal(fmt.Sprintf("navigate to %s: %v", d.job.TargetURL, err))
	}

	d.enter(logger, domain.StateAwaitingAuthentication)
	err = d.step(ctx, d.timeouts.Login, func(stepCtx context.Context) error {
		return session.WaitFor(stepCtx, loginReadyExpression)
	})
	if err != nil {
		logger.Error("Login wait timeout or error", zap.Error(err))
		return domain.Fatal("could not access interface")
	}
	logger.Info("Login completed successfully")

	d.enter(logger, domain.StateSubmittingJob)
	if err := d.submit(ctx, logger, session); err != nil {
		logger.Error("Failed to submit generation job", zap.Error(err))
		return domain.Fatal(err.Error())
	}

	d.enter(logger, domain.StatePolling)
	return d.poll(ctx, logger, session)
}

func (d *SessionDriver) submit(ctx context.Context, logger *zap.Logger, session ports.BrowserSession) error {
	err := d.step(ctx, d.timeouts.Prompt, func(stepCtx context.Context) error {
		return session.Fill(stepCtx, promptSelector, d.job.Prompt)
	})
	if err != nil {
		return fmt.Errorf("enter prompt: %w", err)
	}
	logger.Info("Entered prompt text")

	for _, option := range d.job.Video.Options() {
		if err := d.setOption(ctx, session, option); err != nil {
			logger.Warn("Failed to set video option", zap.String("option", string(option.Name)), zap.Error(err))
			continue
		}
		logger.Info("Set video option", zap.String("option", string(option.Name)), zap.String("value", option.Value))
	}

	err = d.step(ctx, d.timeouts.Submit, func(stepCtx context.Context) error {
		return session.ClickByText(stepCtx, submitSelector, submitLabels...)
	})
	if err != nil {
		return fmt.Errorf("activate submit control: %w", err)
	}
	logger.Info("Started video generation")

	return nil
}

func (d *SessionDriver) setOption(ctx context.Context, session ports.BrowserSession, option domain.VideoOption) error {
	control, ok := optionControls[option.Name]
	if !ok {
		return fmt.Errorf("no control known for option %q", option.Name)
	}

	err := d.step(ctx, d.timeouts.Option, func(stepCtx context.Context) error {
		return session.Click(stepCtx, control)
	})
	if err != nil {
		return fmt.Errorf("open control: %w", err)
	}

	err = d.step(ctx, d.timeouts.Option, func(stepCtx context.Context) error {
		return session.ClickByText(stepCtx, optionItemSelector, option.Value)
	})
	if err != nil {
		return fmt.Errorf("choose %q: %w", option.Value, err)
	}

	return nil
}

// poll checks the page every CheckInterval until a terminal condition shows up
// or the MaxWait budget is spent. The wall-clock bound of MaxWait+CheckInterval
// also caps evaluations that hang.
func (d *SessionDriver) poll(ctx context.Context, logger *zap.Logger, session ports.BrowserSession) domain.Outcome {
	state := domain.NewPollState(d.timeouts.MaxWait, d.timeouts.CheckInterval)

	pollCtx, cancel := context.WithTimeout(ctx, d.timeouts.MaxWait+d.timeouts.CheckInterval)
	defer cancel()

	for !state.Exhausted() {
		terminal, err := d.check(pollCtx, session)
		if err != nil {
			if pollBudgetSpent(ctx, pollCtx) {
				break
			}
			logger.Error("Error during video generation", zap.Error(err))
			return domain.Recoverable(domain.ReasonError, err.Error())
		}

		state.Terminal = terminal
		switch terminal {
		case domain.PollQuota:
			logger.Warn("Quota exceeded detected", zap.Duration("elapsed", state.Elapsed))
			return domain.Recoverable(domain.ReasonQuota, "")
		case domain.PollReady:
			logger.Info("Video generated successfully", zap.Duration("elapsed", state.Elapsed))
			return domain.Succeeded(d.resolveArtifact(ctx, logger, session))
		}

		select {
		case <-pollCtx.Done():
			if !pollBudgetSpent(ctx, pollCtx) {
				logger.Error("Error during video generation", zap.Error(ctx.Err()))
				return domain.Recoverable(domain.ReasonError, ctx.Err().Error())
			}
		case <-d.clock.After(state.CheckInterval):
		}
		state.Advance()
	}

	logger.Error("Timeout waiting for video generation", zap.Duration("max_wait", state.MaxWait))
	return domain.Recoverable(domain.ReasonTimeout, "")
}

func (d *SessionDriver) check(ctx context.Context, session ports.BrowserSession) (domain.PollTerminal, error) {
	var body string
	if err := session.Evaluate(ctx, bodyTextExpression, &body); err != nil {
		return domain.PollPending, fmt.Errorf("read page text: %w", err)
	}
	if domain.ContainsQuotaMarker(body) {
		return domain.PollQuota, nil
	}

	var ready bool
	if err := session.Evaluate(ctx, resultReadyExpression, &ready); err != nil {
		return domain.PollPending, fmt.Errorf("check result: %w", err)
	}
	if ready {
		return domain.PollReady, nil
	}

	return domain.PollPending, nil
}

// pollBudgetSpent reports whether pollCtx ended because of its own deadline
// rather than the caller's context.
func pollBudgetSpent(parent, pollCtx context.Context) bool {
	return parent.Err() == nil && errors.Is(pollCtx.Err(), context.DeadlineExceeded)
}

// resolveArtifact finds the result's download reference and returns the path
// the video is meant to be saved at. Failure only costs the path.
func (d *SessionDriver) resolveArtifact(ctx context.Context, logger *zap.Logger, session ports.BrowserSession) string {
	var href string
	err := d.step(ctx, d.timeouts.Download, func(stepCtx context.Context) error {
		if err := session.WaitFor(stepCtx, downloadPresentExpression); err != nil {
			return err
		}
		return session.Evaluate(stepCtx, downloadHrefExpression, &href)
	})
	if err == nil && href == "" {
		err = errors.New("download link has no href")
	}
	if err != nil {
		logger.Warn("Could not find video download link", zap.Error(err))
		return ""
	}

	stamp := strings.Replace(d.clock.Now().UTC().Format(artifactTimeLayout), ".", "-", 1)
	path := filepath.Join(d.saveDir, "video-"+stamp+".mp4")
	logger.Info("Saving video", zap.String("path", path), zap.String("href", href))
	return path
}

func (d *SessionDriver) step(ctx context.Context, budget time.Duration, fn func(context.Context) error) error {
	stepCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()
	return fn(stepCtx)
}

func (d *SessionDriver) enter(logger *zap.Logger, state domain.SessionState) {
	logger.Info(stateMessages[state], zap.Stringer("state", state))
}

func (d *SessionDriver) finish(logger *zap.Logger, outcome domain.Outcome) domain.Outcome {
	state := domain.TerminalState(outcome)
	fields := []zap.Field{zap.Stringer("state", state), zap.String("outcome", outcome.Label())}
	if outcome.Detail != "" {
		fields = append(fields, zap.String("detail", outcome.Detail))
	}

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		logger.Info("Session finished", fields...)
	case domain.OutcomeRecoverable:
		logger.Warn("Session finished", fields...)
	default:
		logger.Error("Session finished", fields...)
	}

	return outcome
}

func (d *SessionDriver) teardown(logger *zap.Logger, session ports.BrowserSession) {
	if err := session.Close(); err != nil {
		logger.Warn("Failed to close browser", zap.Error(err))
		return
	}
	logger.Info("Browser closed")
}
