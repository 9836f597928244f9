package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a periodic task. LastRun zero means the job is due on the first tick.
type Job struct {
	ID       string
	Interval time.Duration
	LastRun  time.Time
	Execute  func(ctx context.Context) error
}

const (
	defaultQueueSize    = 16
	defaultTickInterval = 30 * time.Second
)

// Scheduler dispatches due jobs to a fixed set of worker goroutines.
type Scheduler struct {
	jobs    map[string]*Job
	queue   chan *Job
	workers int
	tick    time.Duration
	now     func() time.Time

	mu     sync.Mutex
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

type Option func(*Scheduler)

// WithTick overrides how often due jobs are checked.
func WithTick(d time.Duration) Option {
	return func(s *Scheduler) { s.tick = d }
}

func New(workers int, opts ...Option) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		jobs:    make(map[string]*Job),
		queue:   make(chan *Job, defaultQueueSize),
		workers: workers,
		tick:    defaultTickInterval,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) AddJob(id string, interval time.Duration, execute func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[id] = &Job{
		ID:       id,
		Interval: interval,
		Execute:  execute,
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	s.wg.Add(1)
	go s.loop()

	slog.Info("스케줄러 시작", "workers", s.workers, "jobs", len(s.jobs))
}

// Stop cancels running jobs and waits for workers to return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("스케줄러 종료")
}

func (s *Scheduler) worker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case job := <-s.queue:
			start := time.Now()
			if err := job.Execute(s.ctx); err != nil {
				slog.Error("작업 실행 실패", "id", job.ID, "error", err)
				continue
			}
			slog.Info("작업 완료", "id", job.ID, "elapsed", time.Since(start).String())
		}
	}
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.dispatch()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.dispatch()
		}
	}
}

func (s *Scheduler) dispatch() {
	now := s.now()
	for _, job := range s.dueJobs(now) {
		select {
		case s.queue <- job:
		default:
			slog.Warn("작업 큐가 가득 차 건너뜀", "id", job.ID)
		}
	}
}

// dueJobs marks the returned jobs as run at now so a slow job is not queued twice.
func (s *Scheduler) dueJobs(now time.Time) []*Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*Job
	for _, job := range s.jobs {
		if now.Sub(job.LastRun) >= job.Interval {
			job.LastRun = now
			due = append(due, job)
		}
	}
	return due
}
