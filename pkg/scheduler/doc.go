// Package scheduler implements a worker pool for executing async work with futures.
//
// jogos uses it for everything that talks to the network or decodes images:
// metadata searches and cover downloads. The catalog store and the view
// pipeline never run on it.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                          Scheduler                           │
//	│                                                              │
//	│   ┌──────────┐      ┌──────────┐      ┌──────────┐           │
//	│   │ Worker 1 │      │ Worker 2 │      │ Worker N │           │
//	│   └──────────┘      └──────────┘      └──────────┘           │
//	│        ▲                 ▲                 ▲                 │
//	│        └─────────────────┼─────────────────┘                 │
//	│                    ┌─────┴──────┐                            │
//	│                    │ dispatch() │                            │
//	│                    └─────┬──────┘                            │
//	│   ┌──────────────────────┴───────────────────────────┐       │
//	│   │  pending: [req1] [req2] [req3] ...                │       │
//	│   └──────────────────────────────────────────────────┘       │
//	│                          ▲                                   │
//	│              AddWork(fn) / Submit(s, fn)                     │
//	└──────────────────────────────────────────────────────────────┘
//
// # Submitting Work
//
// AddWork takes untyped work. Submit wraps it for typed results:
//
//	f := scheduler.Submit(sched, func(ctx context.Context) ([]igdb.Game, error) {
//	    return client.Search(ctx, term, platform)
//	})
//
//	select {
//	case r := <-f.C():
//	    // r.Data is []igdb.Game
//	case <-ctx.Done():
//	    f.Stop()
//	}
//
// Every future delivers exactly one Result, including when its work was
// stopped, panicked or was still queued when the scheduler closed.
//
// # Event Loop
//
//	for {
//	    select {
//	    case r := <-s.work:       // queue and dispatch
//	    case <-s.workerDone:      // worker back to idle, dispatch
//	    case <-s.close:           // fail pending, wait for running, exit
//	    }
//	}
//
// # Cancellation
//
// Each request gets a context derived from the scheduler's main context:
//
//   - future.Stop() cancels one request.
//   - scheduler.Close() cancels all of them, fails queued requests with
//     context.Canceled and blocks until running work returns.
//
// Work functions must watch ctx.Done(); the scheduler never abandons a
// running goroutine.
//
// # Panic Recovery
//
// A panicking work function is logged and its future receives an error of
// the form "worker panicked: <value>". The worker returns to the pool.
package scheduler
