package service

import (
	"log/slog"
	"sync"
	"time"
)

// Sweeper drops state that has expired by now and reports how much went.
type Sweeper interface {
	Sweep(now time.Time) int
}

// HousekeepingService periodically sweeps in-process state that would
// otherwise grow without bound, such as lapsed rate-limit windows.
type HousekeepingService struct {
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	mu       sync.Mutex
	sweepers map[string]Sweeper

	started  bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewHousekeepingService creates a worker ticking every interval. If
// interval is 0 or negative, defaults to 1 minute.
func NewHousekeepingService(logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}

	return &HousekeepingService{
		Logger:   logger,
		Interval: interval,
		Now:      time.Now,
		sweepers: make(map[string]Sweeper),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Register adds a named sweeper. Registering the same name twice replaces it.
func (s *HousekeepingService) Register(name string, sw Sweeper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepers[name] = sw
}

// Start launches the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, waiting for an in-progress sweep to finish.
// Stopping a worker that never started, or stopping twice, is a no-op.
func (s *HousekeepingService) Stop() {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return
	}

	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce()

	for {
		select {
		case <-ticker.C:
			s.RunOnce()
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce sweeps every registered sweeper and returns the total removed.
func (s *HousekeepingService) RunOnce() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	total := 0
	for name, sw := range s.sweepers {
		n := sw.Sweep(now)
		if n > 0 {
			s.Logger.Debug("swept expired entries", "sweeper", name, "removed", n)
		}
		total += n
	}

	s.Logger.Info("housekeeping sweep completed", "sweepers", len(s.sweepers), "removed", total)
	return total
}
