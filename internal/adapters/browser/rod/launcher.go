// Package rod drives Chrome with go-rod. It is the alternate driver selected
// by browser.driver = "rod".
package rod

import (
	"context"
	"fmt"
	"runtime"

	"github.com/bnema/aistudio-video-cli/internal/adapters/browser/chrome"
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

type Launcher struct {
	cfg      domain.Config
	locator  chrome.Locator
	lookPath func() (string, bool)
	logger   *zap.Logger
}

func NewLauncher(cfg domain.Config, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Launcher{
		cfg:      cfg,
		locator:  chrome.NewLocator(runtime.GOOS),
		lookPath: launcher.LookPath,
		logger:   logger,
	}
}

func (l *Launcher) Launch(ctx context.Context, profile domain.Profile) (ports.BrowserSession, error) {
	bin, err := l.resolveBin()
	if err != nil {
		return nil, err
	}

	proc := l.newProcess(ctx, bin, profile)
	controlURL, err := proc.Launch()
	if err != nil {
		return nil, fmt.Errorf("start chrome %s: %w", bin, err)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		proc.Kill()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	err = proto.BrowserSetDownloadBehavior{
		Behavior:      proto.BrowserSetDownloadBehaviorBehaviorAllow,
		DownloadPath:  l.cfg.SaveDir,
		EventsEnabled: true,
	}.Call(b)
	if err != nil {
		l.logger.Warn("Could not set download directory", zap.String("profile", string(profile)), zap.Error(err))
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = b.Close()
		proc.Kill()
		return nil, fmt.Errorf("open page: %w", err)
	}

	return &session{browser: b, page: page, proc: proc}, nil
}

// resolveBin prefers the configured and well-known install paths, then falls
// back to rod's own lookup.
func (l *Launcher) resolveBin() (string, error) {
	bin, err := l.locator.Resolve(l.cfg.Browser.ExecPath)
	if err == nil {
		return bin, nil
	}
	if l.lookPath != nil {
		if path, ok := l.lookPath(); ok {
			return path, nil
		}
	}
	return "", err
}

func (l *Launcher) newProcess(ctx context.Context, bin string, profile domain.Profile) *launcher.Launcher {
	proc := launcher.New().
		Context(ctx).
		Bin(bin).
		UserDataDir(l.cfg.ProfileDir(profile)).
		Headless(l.cfg.Browser.Headless)

	for _, flag := range chrome.Flags(profile, l.cfg.Browser) {
		if flag.Value == "" {
			proc = proc.Set(flags.Flag(flag.Name))
			continue
		}
		proc = proc.Set(flags.Flag(flag.Name), flag.Value)
	}

	return proc
}
