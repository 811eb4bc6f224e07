package workerpool

import (
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/trading-league/internal/platform/logging"
)

// Pool runs view fetches and actions on a bounded set of goroutines.
type Pool struct {
	pool   *ants.Pool
	logger *logging.Logger
}

func New(size int, logger *logging.Logger) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("worker pool size must be >= 1, got %d", size)
	}
	if logger == nil {
		logger = logging.Default()
	}

	p := &Pool{logger: logger}
	pool, err := ants.NewPool(size,
		ants.WithPanicHandler(func(rec any) {
			p.logger.Error("worker task panicked", "panic", rec)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	p.pool = pool

	return p, nil
}

// Submit blocks while every worker is busy and fails once the pool is released.
func (p *Pool) Submit(task func()) error {
	if err := p.pool.Submit(task); err != nil {
		return fmt.Errorf("submit task to worker pool: %w", err)
	}
	return nil
}

func (p *Pool) Running() int {
	return p.pool.Running()
}

func (p *Pool) Cap() int {
	return p.pool.Cap()
}

// Release waits up to timeout for running tasks before closing the pool.
func (p *Pool) Release(timeout time.Duration) error {
	if err := p.pool.ReleaseTimeout(timeout); err != nil {
		return fmt.Errorf("release worker pool: %w", err)
	}
	return nil
}
