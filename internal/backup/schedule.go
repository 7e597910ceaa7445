package backup

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser supports standard 5-field cron expressions and descriptors like @daily.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseSchedule parses a cron expression and returns a Schedule.
func ParseSchedule(expr string) (cron.Schedule, error) {
	return cronParser.Parse(expr)
}

// Scheduler fires a callback on a cron schedule from a single timer
// goroutine.
type Scheduler struct {
	schedule cron.Schedule
	fire     func()

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
	wg    sync.WaitGroup
}

// NewScheduler creates a Scheduler for the given cron expression.
func NewScheduler(expr string, fire func()) (*Scheduler, error) {
	schedule, err := ParseSchedule(expr)
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		schedule: schedule,
		fire:     fire,
		done:     make(chan struct{}),
	}, nil
}

// NextRunTime returns the next fire time after now.
func (s *Scheduler) NextRunTime() time.Time {
	return s.schedule.Next(time.Now())
}

// Start launches the scheduler goroutine.
func (s *Scheduler) Start() {
	s.mu.Lock()
	s.timer = time.NewTimer(time.Until(s.schedule.Next(time.Now())))
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
}

// Stop signals the scheduler goroutine to exit and waits for it.
func (s *Scheduler) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *Scheduler) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			s.mu.Lock()
			s.timer.Stop()
			s.mu.Unlock()
			return
		case <-s.timer.C:
			s.fire()
			s.mu.Lock()
			s.timer.Reset(time.Until(s.schedule.Next(time.Now())))
			s.mu.Unlock()
		}
	}
}
