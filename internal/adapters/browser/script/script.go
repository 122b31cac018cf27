// Package script builds the JavaScript snippets the browser drivers evaluate.
// Every builder returns a single expression; arguments are embedded as JSON
// literals so selectors and prompt text never need manual escaping.
package script

import (
	"encoding/json"
	"fmt"
)

// Truthy coerces expression to a boolean.
func Truthy(expression string) string {
	return fmt.Sprintf("Boolean(%s)", expression)
}

// Func wraps expression as an arrow function for drivers that evaluate
// function declarations.
func Func(expression string) string {
	return fmt.Sprintf("() => (%s)", expression)
}

// Fill sets the value of the first element matching selector through the
// native value setter, then fires input and change events. The expression
// evaluates to false when nothing matches.
func Fill(selector, text string) string {
	return fmt.Sprintf(`((selector, text) => {
	const el = document.querySelector(selector);
	if (!el) return false;
	el.focus();
	const proto = el instanceof HTMLTextAreaElement ? HTMLTextAreaElement.prototype : HTMLInputElement.prototype;
	const desc = Object.getOwnPropertyDescriptor(proto, 'value');
	if (desc && desc.set) {
		desc.set.call(el, text);
	} else {
		el.value = text;
	}
	el.dispatchEvent(new Event('input', { bubbles: true }));
	el.dispatchEvent(new Event('change', { bubbles: true }));
	return true;
})(%s, %s)`, quote(selector), quote(text))
}

// Click clicks the first element matching selector.
func Click(selector string) string {
	return fmt.Sprintf(`((selector) => {
	const el = document.querySelector(selector);
	if (!el) return false;
	el.click();
	return true;
})(%s)`, quote(selector))
}

// ClickByText clicks the first element matching selector whose visible text
// contains any of texts.
func ClickByText(selector string, texts ...string) string {
	if texts == nil {
		texts = []string{}
	}
	return fmt.Sprintf(`((selector, texts) => {
	for (const el of document.querySelectorAll(selector)) {
		const label = (el.innerText || el.textContent || '').trim();
		if (texts.some((t) => label.includes(t))) {
			el.click();
			return true;
		}
	}
	return false;
})(%s, %s)`, quote(selector), quote(texts))
}

func quote(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		// strings and string slices always marshal
		panic(err)
	}
	return string(raw)
}
