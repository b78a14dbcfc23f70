// This file is part of this software.

// Package statsboard optionally exposes a live runtime-stats dashboard
// (goroutines, GC, heap) while the emulator runs, for developers chasing
// down performance regressions in the CPU interpreter's hot loop.
package statsboard

import "github.com/go-echarts/statsview"

// Manager wraps the statsview server lifecycle.
type Manager struct {
	mgr *statsview.Manager
}

// New creates a stats dashboard manager. It does not start listening until
// Start is called.
func New() *Manager {
	return &Manager{mgr: statsview.New()}
}

// Start launches the dashboard's HTTP server on its default address in a
// background goroutine. Intended to be called once at emulator startup
// when the front-end has opted into diagnostics.
func (m *Manager) Start() {
	go m.mgr.Start()
}

// Stop shuts the dashboard server down.
func (m *Manager) Stop() {
	m.mgr.Stop()
}
