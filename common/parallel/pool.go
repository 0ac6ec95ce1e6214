package parallel

import (
	"sync"

	"modernc.org/mathutil"
)

// Pool schedules tasks submitted by Run. Wait blocks until every
// submitted task has finished, after which the pool holds no goroutines.
type Pool interface {
	Run(runner func())
	Wait()
}

// SequentialPool runs tasks inline on the calling goroutine.
type SequentialPool struct{}

func NewSequentialPool() *SequentialPool {
	return &SequentialPool{}
}

func (p *SequentialPool) Run(runner func()) {
	runner()
}

func (p *SequentialPool) Wait() {}

// ConcurrentPool runs tasks on at most n concurrent goroutines.
type ConcurrentPool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

func NewConcurrentPool(n int) *ConcurrentPool {
	return &ConcurrentPool{sem: make(chan struct{}, mathutil.Max(n, 1))}
}

func (p *ConcurrentPool) Run(runner func()) {
	p.sem <- struct{}{}
	p.wg.Go(func() {
		defer func() { <-p.sem }()
		runner()
	})
}

func (p *ConcurrentPool) Wait() {
	p.wg.Wait()
}

// InfinitePool starts a goroutine for every task.
type InfinitePool struct {
	wg sync.WaitGroup
}

func NewInfinitePool() *InfinitePool {
	return &InfinitePool{}
}

func (p *InfinitePool) Run(runner func()) {
	p.wg.Go(runner)
}

func (p *InfinitePool) Wait() {
	p.wg.Wait()
}

// NewPool returns a pool sized to jobs: inline execution when jobs <= 1,
// otherwise at most jobs concurrent goroutines.
func NewPool(jobs int) Pool {
	if jobs <= 1 {
		return NewSequentialPool()
	}
	return NewConcurrentPool(jobs)
}
