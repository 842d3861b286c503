package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hostsmith/hostsmith/src/internal/log"
)

// RestartableRunner supervises a goroutine and restarts it with exponential
// backoff when it crashes, so one failing component does not take down the
// rest of a serve run.
type RestartableRunner struct {
	name    string
	runFunc func(ctx context.Context) error

	mu           sync.RWMutex
	running      bool
	lastError    error
	restartCount int

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	maxRestarts    int // 0 means unlimited
	restartBackoff time.Duration
	maxBackoff     time.Duration
}

// RunnerConfig contains configuration for RestartableRunner.
type RunnerConfig struct {
	Name           string
	MaxRestarts    int           // 0 = unlimited restarts
	RestartBackoff time.Duration // initial backoff (default: 1s)
	MaxBackoff     time.Duration // max backoff (default: 30s)
}

// NewRestartableRunner creates a supervised runner around runFunc.
func NewRestartableRunner(cfg RunnerConfig, runFunc func(ctx context.Context) error) *RestartableRunner {
	if cfg.RestartBackoff == 0 {
		cfg.RestartBackoff = 1 * time.Second
	}
	if cfg.MaxBackoff == 0 {
		cfg.MaxBackoff = 30 * time.Second
	}

	return &RestartableRunner{
		name:           cfg.Name,
		runFunc:        runFunc,
		maxRestarts:    cfg.MaxRestarts,
		restartBackoff: cfg.RestartBackoff,
		maxBackoff:     cfg.MaxBackoff,
	}
}

// Start launches the supervised goroutine.
func (r *RestartableRunner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%s is already running", r.name)
	}

	r.ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	r.running = true
	r.restartCount = 0
	r.lastError = nil

	go r.runLoop()

	return nil
}

// Stop cancels the runner and waits for it to finish.
func (r *RestartableRunner) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		return fmt.Errorf("%s: timeout waiting for stop", r.name)
	}

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()

	return nil
}

// IsRunning reports whether the runner is currently active.
func (r *RestartableRunner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// LastError returns the most recent error from the supervised function.
func (r *RestartableRunner) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

func (r *RestartableRunner) runLoop() {
	defer close(r.done)

	backoff := r.restartBackoff

	for {
		select {
		case <-r.ctx.Done():
			log.Infof("%s: context cancelled, stopping", r.name)
			return
		default:
		}

		err := r.runWithRecovery()

		r.mu.Lock()
		r.lastError = err
		r.mu.Unlock()

		if err == nil {
			log.Infof("%s: exited cleanly", r.name)
			return
		}

		select {
		case <-r.ctx.Done():
			log.Infof("%s: context cancelled during run, stopping", r.name)
			return
		default:
		}

		r.mu.Lock()
		r.restartCount++
		restartCount := r.restartCount
		r.mu.Unlock()

		if r.maxRestarts > 0 && restartCount >= r.maxRestarts {
			log.Errorf("%s: max restarts (%d) reached, giving up. Last error: %v", r.name, r.maxRestarts, err)
			return
		}

		log.Errorf("%s: crashed with error: %v. Restarting in %v (restart #%d)", r.name, err, backoff, restartCount)

		select {
		case <-r.ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > r.maxBackoff {
			backoff = r.maxBackoff
		}
	}
}

func (r *RestartableRunner) runWithRecovery() (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	return r.runFunc(r.ctx)
}
