package runner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"

	"wordstats/internal/engine"
	"wordstats/internal/history"
)

// DefaultWindow is the debounce delay between the last submitted edit and
// the analysis run, matching the interactive editor's update interval.
const DefaultWindow = 500 * time.Millisecond

// Runner is the caller-side recompute policy the engine deliberately does
// not own: submissions are debounced, and only the latest buffer's report
// is ever delivered. A report computed from a buffer that has since been
// superseded is discarded, never merged.
type Runner struct {
	engine   *engine.Engine
	opts     engine.Options
	ring     *history.Ring
	onReport func(text string, report *engine.Report)

	debounced func(func())
	gen       atomic.Uint64

	mu     sync.Mutex
	latest string

	deliverMu sync.Mutex
}

// New builds a runner. The ring and callback may be nil; window values at
// or below zero fall back to DefaultWindow.
func New(e *engine.Engine, window time.Duration, opts engine.Options, ring *history.Ring, onReport func(string, *engine.Report)) *Runner {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Runner{
		engine:    e,
		opts:      opts,
		ring:      ring,
		onReport:  onReport,
		debounced: debounce.New(window),
	}
}

// Submit records text as the newest buffer state and schedules a debounced
// analysis. Safe to call from any goroutine; the analysis itself runs off
// the submitting goroutine so an edit loop is never blocked.
func (r *Runner) Submit(text string) {
	r.mu.Lock()
	r.latest = text
	r.mu.Unlock()

	gen := r.gen.Add(1)
	r.debounced(func() {
		go r.run(gen)
	})
}

func (r *Runner) run(gen uint64) {
	r.mu.Lock()
	text := r.latest
	r.mu.Unlock()

	report := r.engine.Analyze(text, r.opts)

	// Latest wins: a submission that arrived while this analysis was in
	// flight owns the next delivery.
	if gen != r.gen.Load() {
		return
	}

	r.deliverMu.Lock()
	defer r.deliverMu.Unlock()
	if gen != r.gen.Load() {
		return
	}
	if r.ring != nil {
		r.ring.Push(text, report)
	}
	if r.onReport != nil {
		r.onReport(text, report)
	}
}
