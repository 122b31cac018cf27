// Package chrome holds the launch settings shared by the browser drivers.
package chrome

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/spf13/afero"
)

// Flag is one Chrome command-line switch. An empty Value is a bare switch.
type Flag struct {
	Name  string
	Value string
}

// Flags returns the switches every session is launched with. The user-data
// directory is passed separately because each driver has its own option for it.
func Flags(profile domain.Profile, opts domain.BrowserOptions) []Flag {
	port := opts.DebugPort
	if port == 0 {
		port = domain.DefaultDebugPort
	}

	return []Flag{
		{Name: "remote-debugging-port", Value: strconv.Itoa(port)},
		{Name: "profile-directory", Value: string(profile)},
		{Name: "no-sandbox"},
		{Name: "disable-setuid-sandbox"},
		{Name: "disable-dev-shm-usage"},
		{Name: "disable-gpu"},
		{Name: "no-first-run"},
		{Name: "no-default-browser-check"},
	}
}

// Candidates lists the install locations probed for goos, most common first.
func Candidates(goos string, getenv func(string) string) []string {
	switch goos {
	case "windows":
		candidates := []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
		if local := getenv("LOCALAPPDATA"); local != "" {
			candidates = append(candidates, local+`\Google\Chrome\Application\chrome.exe`)
		}
		return candidates
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	default:
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
			"/snap/bin/chromium",
		}
	}
}

// Locator finds a Chrome executable on a filesystem.
type Locator struct {
	FS     afero.Fs
	GOOS   string
	Getenv func(string) string
}

func NewLocator(goos string) Locator {
	return Locator{FS: afero.NewOsFs(), GOOS: goos, Getenv: os.Getenv}
}

// Resolve returns requested when it is set and exists, otherwise the first
// existing platform candidate.
func (l Locator) Resolve(requested string) (string, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	candidates := make([]string, 0, 6)
	if path := strings.TrimSpace(requested); path != "" {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, Candidates(l.GOOS, getenv)...)

	for _, candidate := range candidates {
		info, err := l.FS.Stat(filepath.Clean(candidate))
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", domain.ErrBrowserNotFound, strings.Join(candidates, ", "))
}
