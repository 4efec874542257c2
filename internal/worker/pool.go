// Package worker runs independent jobs on a fixed set of goroutines. The
// batch position audit uses it to check many positions in parallel.
package worker

import "sync"

// Job is one unit of work. Index is the job's position in the caller's input
// so results can be put back in order.
type Job[T any] struct {
	Index int
	Input T
}

// Result pairs a job's output with the job's index.
type Result[R any] struct {
	Index  int
	Output R
}

// Pool feeds submitted jobs to numWorkers goroutines running fn. Results
// arrive in completion order, not submission order.
type Pool[T, R any] struct {
	numWorkers int
	jobs       chan Job[T]
	results    chan Result[R]
	fn         func(T) R
	wg         sync.WaitGroup
}

// Option configures a Pool.
type Option func(*settings)

type settings struct {
	workers int
	buffer  int
}

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity. Values below 1
// are ignored.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		if size >= 1 {
			s.buffer = size
		}
	}
}

// New creates a pool running fn. Default: 1 worker, buffer size of 10.
func New[T, R any](fn func(T) R, opts ...Option) *Pool[T, R] {
	s := settings{workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		numWorkers: s.workers,
		jobs:       make(chan Job[T], s.buffer),
		results:    make(chan Result[R], s.buffer),
		fn:         fn,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool[T, R]) work() {
	defer p.wg.Done()

	for job := range p.jobs {
		p.results <- Result[R]{Index: job.Index, Output: p.fn(job.Input)}
	}
}

// Submit queues a job. It blocks while the job buffer is full, so results
// must be drained concurrently once more than the buffer size is queued.
func (p *Pool[T, R]) Submit(index int, input T) {
	p.jobs <- Job[T]{Index: index, Input: input}
}

// Close stops accepting jobs, waits for the workers and then closes the
// result channel.
func (p *Pool[T, R]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.results
}

// Map runs fn over inputs on a new pool and returns the outputs in input
// order.
func Map[T, R any](inputs []T, fn func(T) R, opts ...Option) []R {
	p := New(fn, opts...)
	p.Start()

	go func() {
		for i, in := range inputs {
			p.Submit(i, in)
		}
		p.Close()
	}()

	out := make([]R, len(inputs))
	for r := range p.Results() {
		out[r.Index] = r.Output
	}
	return out
}
