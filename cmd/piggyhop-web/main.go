//go:build js
// +build js

// piggyhop-web is the browser build. Compile it with gopherjs and load it
// from a page that provides the gameCanvas element and the HUD elements.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/gopherjs/gopherjs/js"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/platform/web"
)

func main() {
	logger := log.Default()

	cfg, err := config.Load("")
	if err != nil {
		logger.Warn("using built-in config", "error", err)
		cfg = config.DefaultGameConfig()
	}

	doc := js.Global.Get("document")
	start := func() { web.Start(doc, cfg, logger) }
	if doc.Get("readyState").String() == "loading" {
		doc.Call("addEventListener", "DOMContentLoaded", start)
		return
	}
	start()
}
