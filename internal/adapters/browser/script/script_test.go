package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillQuotesArguments(t *testing.T) {
	t.Parallel()

	js := Fill("textarea", "a \"cinematic\" shot\nof rain")

	assert.True(t, strings.HasSuffix(js, `("textarea", "a \"cinematic\" shot\nof rain")`))
	assert.Contains(t, js, "dispatchEvent(new Event('input'")
	assert.Contains(t, js, "dispatchEvent(new Event('change'")
}

func TestClickByTextEmbedsLabelList(t *testing.T) {
	t.Parallel()

	js := ClickByText("button", "Run", "Generate")

	assert.True(t, strings.HasSuffix(js, `("button", ["Run","Generate"])`))
}

func TestClickByTextWithoutLabels(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasSuffix(ClickByText(`[role="option"]`), `("[role=\"option\"]", [])`))
}

func TestWrappers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "truthy", got: Truthy("document.querySelector('video')"), want: "Boolean(document.querySelector('video'))"},
		{name: "func", got: Func("1 + 1"), want: "() => (1 + 1)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestClickTargetsSelector(t *testing.T) {
	t.Parallel()

	js := Click(`[aria-label*="duration"]`)

	assert.True(t, strings.HasSuffix(js, `("[aria-label*=\"duration\"]")`))
	assert.Contains(t, js, "el.click()")
}
