package scheduler

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type request struct {
	fn  Work[any]
	c   chan Result[any]
	ctx context.Context
}

type worker struct {
	done chan struct{}
	wg   *sync.WaitGroup
	log  *zap.SugaredLogger
}

func (w worker) Work(r request) {
	defer func() {
		if rec := recover(); rec != nil {
			w.log.Errorw("work panicked", "panic", rec)
			r.c <- Result[any]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[any]{Data: v, Err: err}
}

// Scheduler runs submitted work on a fixed number of workers. Work waiting
// for a worker is queued in submission order.
type Scheduler struct {
	idle       queue[worker]
	pending    queue[request]
	workerDone chan struct{}
	work       chan request
	close      chan struct{}
	stopped    chan struct{}
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
	log        *zap.SugaredLogger
}

func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workerDone: make(chan struct{}, nbWorkers),
		work:       make(chan request),
		close:      make(chan struct{}),
		stopped:    make(chan struct{}),
		mainCtx:    ctx,
		mainCancel: cancel,
		log:        zap.S().Named("scheduler"),
	}
	for range nbWorkers {
		s.idle.Push(s.newWorker())
	}
	go s.run()
	return s
}

// AddWork submits w and returns its future. After Close the future
// resolves immediately with context.Canceled.
func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.mainCtx.Done():
		c <- Result[any]{Err: context.Canceled}
	case s.work <- request{w, c, ctx}:
	}

	return NewFuture(c, cancel)
}

// Submit is AddWork for typed work.
func Submit[T any](s *Scheduler, w Work[T]) *Future[Result[T]] {
	f := s.AddWork(func(ctx context.Context) (any, error) {
		return w(ctx)
	})

	out := make(chan Result[T], 1)
	go func() {
		r := <-f.C()
		data, _ := r.Data.(T)
		out <- Result[T]{Data: data, Err: r.Err}
	}()

	return NewFuture(out, f.cancel)
}

// Close cancels all work, fails queued work with context.Canceled and waits
// for running work to return. It is safe to call more than once.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.stopped
	})
}

func (s *Scheduler) newWorker() worker {
	return worker{done: s.workerDone, wg: &s.wg, log: s.log}
}

func (s *Scheduler) run() {
	defer close(s.stopped)
	for {
		select {
		case r := <-s.work:
			s.pending.Push(r)
			s.dispatch()
		case <-s.workerDone:
			s.idle.Push(s.newWorker())
			s.dispatch()
		case <-s.close:
			for s.pending.Len() > 0 {
				r := s.pending.Pop()
				r.c <- Result[any]{Err: context.Canceled}
			}
			s.wg.Wait()
			return
		}
	}
}

// dispatch hands queued work to idle workers until one side runs out.
func (s *Scheduler) dispatch() {
	for s.idle.Len() > 0 && s.pending.Len() > 0 {
		r := s.pending.Pop()
		w := s.idle.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}
