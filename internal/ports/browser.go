package ports

import (
	"context"

	"github.com/bnema/aistudio-video-cli/internal/domain"
)

// BrowserLauncher starts a browser bound to one profile's user-data partition.
type BrowserLauncher interface {
	Launch(ctx context.Context, profile domain.Profile) (BrowserSession, error)
}

// BrowserSession drives the single page of a launched browser. Blocking calls
// are bounded by the deadline of the context they receive.
type BrowserSession interface {
	Navigate(ctx context.Context, url string) error
	// WaitFor polls a JavaScript expression until it evaluates to true.
	WaitFor(ctx context.Context, expression string) error
	// Evaluate runs a JavaScript expression against the current document and
	// decodes its result into out.
	Evaluate(ctx context.Context, expression string, out any) error
	// Fill sets the value of the first element matching selector and fires
	// input and change events so the page's reactive state observes it.
	Fill(ctx context.Context, selector string, text string) error
	Click(ctx context.Context, selector string) error
	// ClickByText clicks the first element matching selector whose text
	// contains any of texts.
	ClickByText(ctx context.Context, selector string, texts ...string) error
	Close() error
}
