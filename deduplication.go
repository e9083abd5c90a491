package gmaps

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// deduplicator merges concurrent identical GET calls into one execution.
// Every waiter receives the same body and decodes it independently.
type deduplicator struct {
	group singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
}

// flight tracks the callers waiting on one key. Its context lives as long
// as at least one of them is still waiting.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

type flightResult struct {
	body []byte
	err  error
}

// do runs fn once per key among concurrent callers. shared reports whether
// the result came from another caller's execution. A caller whose ctx ends
// stops waiting; the execution is cancelled once the last waiter is gone.
func (d *deduplicator) do(ctx context.Context, key string, fn func(context.Context) ([]byte, error)) (body []byte, shared bool, err error) {
	f := d.join(ctx, key)
	defer d.leave(key, f)

	ch := d.group.DoChan(key, func() (interface{}, error) {
		b, err := fn(f.ctx)
		return flightResult{body: b, err: err}, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		fr := res.Val.(flightResult)
		return fr.body, res.Shared, fr.err
	}
}

func (d *deduplicator) join(ctx context.Context, key string) *flight {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.flights == nil {
		d.flights = make(map[string]*flight)
	}
	f, ok := d.flights[key]
	if !ok {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: fctx, cancel: cancel}
		d.flights[key] = f
	}
	f.waiters++
	return f
}

// leave drops one waiter. The last one out cancels the execution and makes
// singleflight forget it, so a later caller starts afresh instead of
// joining a cancelled run.
func (d *deduplicator) leave(key string, f *flight) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	if d.flights[key] == f {
		delete(d.flights, key)
		d.group.Forget(key)
	}
	f.cancel()
}

// inflight reports how many keys have waiters.
func (d *deduplicator) inflight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.flights)
}
