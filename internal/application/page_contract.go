package application

import "github.com/bnema/aistudio-video-cli/internal/domain"

// Selectors and predicates for the generator page. They are presence checks
// against rendered markup, not a versioned interface.
const (
	promptSelector     = "textarea"
	optionItemSelector = `[role="option"]`
	submitSelector     = "button"

	loginReadyExpression = `(() => {
	if (document.querySelector('form[action*="signin"]')) return false;
	return document.querySelector('textarea') !== null;
})()`

	bodyTextExpression = `document.body ? document.body.innerText : ""`

	resultReadyExpression = `document.querySelector('video') !== null || document.querySelector('[download]') !== null`

	downloadPresentExpression = `document.querySelector('[download]') !== null`

	downloadHrefExpression = `(() => {
	const el = document.querySelector('[download]');
	return el && el.href ? String(el.href) : "";
})()`
)

var submitLabels = []string{"Run", "Generate"}

var optionControls = map[domain.OptionName]string{
	domain.OptionAspectRatio: `[aria-label*="aspect ratio"], [data-testid*="aspect-ratio"]`,
	domain.OptionDuration:    `[aria-label*="duration"], [data-testid*="duration"]`,
	domain.OptionResolution:  `[aria-label*="resolution"], [data-testid*="resolution"]`,
}
