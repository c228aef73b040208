// Package poll периодически обновляет каталог, пока витрина видима.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval — период фонового обновления каталога
const DefaultInterval = 15 * time.Second

//go:generate moq -out refresher_mock.go . Refresher

// Refresher выполняет одно обновление каталога с сервера
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler запускает обновления по таймеру. Все обновления выполняются
// на одной горутине цикла: второй цикл не стартует, пока не закончился
// предыдущий. Тики в скрытом состоянии пропускаются; возврат видимости
// запускает обновление немедленно, не дожидаясь таймера.
// Ошибки обновления логируются и никогда не останавливают цикл.
type Scheduler struct {
	refresher Refresher
	logger    *slog.Logger
	interval  time.Duration

	mu      sync.Mutex
	visible bool
	started bool

	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler создает планировщик обновлений.
// interval <= 0 заменяется на DefaultInterval.
func NewScheduler(refresher Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
		visible:   true,
		wake:      make(chan struct{}, 1),
	}
}

// Start запускает цикл обновлений. Повторный Start — no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.loop(ctx)
}

// Stop останавливает цикл и дожидается завершения текущего обновления
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
}

// SetVisible сообщает планировщику о смене видимости витрины.
// Переход из скрытого состояния в видимое запускает обновление сразу.
func (s *Scheduler) SetVisible(visible bool) {
	s.mu.Lock()
	wasVisible := s.visible
	s.visible = visible
	s.mu.Unlock()

	if visible && !wasVisible {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// Wake запускает внеочередное обновление (например, после checkout)
func (s *Scheduler) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.isVisible() {
				continue
			}
			s.refresh(ctx)
		case <-s.wake:
			s.refresh(ctx)
		}
	}
}

func (s *Scheduler) isVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Scheduler) refresh(ctx context.Context) {
	if err := s.refresher.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("Catalog refresh failed", "error", err)
	}
}
