// Package chromedp drives Chrome over the DevTools protocol with chromedp.
package chromedp

import (
	"context"
	"fmt"
	"runtime"

	"github.com/bnema/aistudio-video-cli/internal/adapters/browser/chrome"
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

type Launcher struct {
	cfg     domain.Config
	locator chrome.Locator
	logger  *zap.Logger
}

func NewLauncher(cfg domain.Config, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Launcher{
		cfg:     cfg,
		locator: chrome.NewLocator(runtime.GOOS),
		logger:  logger,
	}
}

// Launch starts a Chrome process on the profile's own user-data directory and
// points its downloads at the save directory. The browser stays alive until
// the returned session is closed or ctx is cancelled.
func (l *Launcher) Launch(ctx context.Context, profile domain.Profile) (ports.BrowserSession, error) {
	execPath, err := l.locator.Resolve(l.cfg.Browser.ExecPath)
	if err != nil {
		return nil, err
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, l.allocatorOptions(execPath, profile)...)

	logger := l.logger.With(zap.String("profile", string(profile)))
	browserCtx, cancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Sugar().Debugf),
		chromedp.WithErrorf(logger.Sugar().Debugf),
	)

	download := browser.SetDownloadBehavior(browser.SetDownloadBehaviorBehaviorAllow).
		WithDownloadPath(l.cfg.SaveDir).
		WithEventsEnabled(true)
	if err := chromedp.Run(browserCtx, download); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("start chrome %s: %w", execPath, err)
	}

	return &session{ctx: browserCtx, cancel: cancel, allocCancel: allocCancel}, nil
}

func (l *Launcher) allocatorOptions(execPath string, profile domain.Profile) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.ExecPath(execPath),
		chromedp.UserDataDir(l.cfg.ProfileDir(profile)),
		chromedp.Flag("headless", l.cfg.Browser.Headless),
	}
	for _, flag := range chrome.Flags(profile, l.cfg.Browser) {
		if flag.Value == "" {
			opts = append(opts, chromedp.Flag(flag.Name, true))
			continue
		}
		opts = append(opts, chromedp.Flag(flag.Name, flag.Value))
	}

	return opts
}
