package chromedp

import (
	"context"
	"net/url"
	"runtime"
	"testing"
	"time"

	"github.com/bnema/aistudio-video-cli/internal/adapters/browser/chrome"
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePage = `<!doctype html>
<html><body>
<textarea id="prompt"></textarea>
<div id="echo"></div>
<button>Cancel</button>
<button onclick="document.getElementById('echo').textContent = 'ran:' + document.getElementById('prompt').value">Run</button>
<script>
document.getElementById('prompt').addEventListener('input', (e) => { document.title = 'typed'; });
</script>
</body></html>`

func TestLaunchWithoutChromeIsBrowserNotFound(t *testing.T) {
	t.Parallel()

	launcher := NewLauncher(domain.Config{UserDataPath: t.TempDir(), SaveDir: t.TempDir()}, nil)
	launcher.locator = chrome.Locator{FS: afero.NewMemMapFs(), GOOS: "linux"}

	_, err := launcher.Launch(context.Background(), "Default")
	require.ErrorIs(t, err, domain.ErrBrowserNotFound)
}

func TestSessionAgainstRealChrome(t *testing.T) {
	if testing.Short() {
		t.Skip("launches a browser")
	}
	if _, err := chrome.NewLocator(runtime.GOOS).Resolve(""); err != nil {
		t.Skip("chrome not installed")
	}

	cfg := domain.DefaultConfig()
	cfg.UserDataPath = t.TempDir()
	cfg.SaveDir = t.TempDir()
	cfg.Browser.Headless = true
	cfg.Browser.DebugPort = 9311

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	session, err := NewLauncher(cfg, nil).Launch(ctx, "Default")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, session.Close())
	}()

	require.NoError(t, session.Navigate(ctx, "data:text/html,"+url.PathEscape(fixturePage)))
	require.NoError(t, session.WaitFor(ctx, `document.querySelector('textarea') !== null`))
	require.NoError(t, session.Fill(ctx, "textarea", `a "quoted" prompt`))
	require.NoError(t, session.ClickByText(ctx, "button", "Run", "Generate"))

	var echo string
	require.NoError(t, session.Evaluate(ctx, `document.getElementById('echo').textContent`, &echo))
	assert.Equal(t, `ran:a "quoted" prompt`, echo)

	var title string
	require.NoError(t, session.Evaluate(ctx, `document.title`, &title))
	assert.Equal(t, "typed", title)

	short, cancelShort := context.WithTimeout(ctx, 600*time.Millisecond)
	defer cancelShort()
	err = session.Click(short, "#missing")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
