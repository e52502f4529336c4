//go:build js && wasm

// Package wasm bootstraps the bakery page controls inside the browser.
package wasm

import (
	"github.com/Its-donkey/sweet-treats/internal/ui/controls"
	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
	"github.com/Its-donkey/sweet-treats/internal/ui/dom/jsdom"
	"github.com/Its-donkey/sweet-treats/logging"
)

// RunApp binds every control on the current page and blocks forever so the
// registered callbacks stay alive.
func RunApp(level logging.Level) {
	done := make(chan struct{})
	logger := logging.New("ui-wasm", level, jsdom.NewConsoleWriter())

	page, err := controls.Bind(controls.Env{
		Document:  jsdom.Document(),
		Viewport:  jsdom.Window(),
		Scheduler: dom.RealScheduler,
		Logger:    logger,
	})
	if err != nil {
		// Features that resolved are still live; the rest were logged by Bind.
		logger.Warn("ui", "page bound with missing elements", map[string]any{"error": err.Error()})
	}
	logger.Info("ui", "controls ready", map[string]any{"tabs": len(page.Tabs.Tabs()), "faq": len(page.FAQ.Items())})
	<-done
}
