package console

import (
	"net/url"
	"sync"
	"time"
)

// refetcher coalesces rapid filter changes: each trigger re-arms the
// timer, and only the params of the last trigger inside the window are
// fetched. An interval of zero fetches synchronously on every trigger.
type refetcher struct {
	interval time.Duration
	fetch    func(url.Values)

	mu    sync.Mutex
	timer *time.Timer
}

func newRefetcher(interval time.Duration, fetch func(url.Values)) *refetcher {
	return &refetcher{interval: interval, fetch: fetch}
}

func (r *refetcher) Trigger(params url.Values) {
	if r.interval <= 0 {
		r.fetch(params)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.interval, func() {
		r.fetch(params)
	})
}

// Stop cancels any pending refetch.
func (r *refetcher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
