// Package job runs registered background tasks on calendar or interval
// schedules. Task functions are plain callables; failures are logged and
// the next run naturally supersedes them.
package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Schedule yields the next run time strictly after the given instant.
type Schedule interface {
	Next(after time.Time) time.Time
}

type weekly struct {
	day    time.Weekday
	hour   int
	minute int
}

// Weekly runs once a week at the given weekday and wall-clock time (UTC).
func Weekly(day time.Weekday, hour, minute int) Schedule {
	return weekly{day: day, hour: hour, minute: minute}
}

func (w weekly) Next(after time.Time) time.Time {
	after = after.UTC()

	next := time.Date(after.Year(), after.Month(), after.Day(), w.hour, w.minute, 0, 0, time.UTC)
	next = next.AddDate(0, 0, int((w.day-next.Weekday()+7)%7))

	if !next.After(after) {
		next = next.AddDate(0, 0, 7)
	}

	return next
}

type monthly struct {
	day    int
	hour   int
	minute int
}

// Monthly runs once a month on the given day of month at the given
// wall-clock time (UTC).
func Monthly(day, hour, minute int) Schedule {
	return monthly{day: day, hour: hour, minute: minute}
}

func (m monthly) Next(after time.Time) time.Time {
	after = after.UTC()

	next := time.Date(after.Year(), after.Month(), m.day, m.hour, m.minute, 0, 0, time.UTC)
	if !next.After(after) {
		next = time.Date(after.Year(), after.Month()+1, m.day, m.hour, m.minute, 0, 0, time.UTC)
	}

	return next
}

type every struct {
	interval time.Duration
}

// Every runs on a fixed interval.
func Every(interval time.Duration) Schedule {
	return every{interval: interval}
}

func (e every) Next(after time.Time) time.Time {
	return after.Add(e.interval)
}

type job struct {
	name     string
	schedule Schedule
	fn       func(ctx context.Context) (string, error)
}

type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, schedule Schedule, fn func(ctx context.Context) (string, error)) *Service {
	return s.TryRegisterJob(true, name, schedule, fn)
}

func (s *Service) TryRegisterJob(isEnabled bool, name string, schedule Schedule, fn func(ctx context.Context) (string, error)) *Service {
	if !isEnabled {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		schedule: schedule,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		go s.startJob(ctx, v)
	}
}

func (s *Service) startJob(ctx context.Context, job job) {
	s.wg.Add(1)
	defer s.wg.Done()

	l := slog.Default().With("job", job.name)

	for {
		next := job.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		l.Debug("job scheduled", "next_run", next)

		select {
		case <-ctx.Done():
			timer.Stop()
			l.Debug("context done")

			return

		case <-timer.C:
		}

		result, err := s.withRecover(ctx, l, job)
		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Info("job done", "result", result)
		}
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

func (s *Service) Stop() {
	s.wg.Wait()
}
