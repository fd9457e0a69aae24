package lockguard

import (
	"sync"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
}

// Gauge интерфейс метрики числа живых блокировок
type Gauge interface {
	SetLocksHeld(n int)
}

// Coordinator кооперативный координатор блокировок слотов
//
// Сериализует конкурентные попытки бронирования одного слота внутри одного
// процесса: на каждый ключ (date, time) может существовать не более одной
// живой (не истёкшей) блокировки. Это не распределённая блокировка —
// в многопроцессном развёртывании корректность гарантирует уникальный
// индекс в хранилище, а координатор лишь быстро отклоняет заведомо
// конфликтующие запросы
type Coordinator struct {
	mu    sync.Mutex
	locks map[domain.SlotKey]time.Time // ключ -> момент истечения

	ttl         time.Duration
	sweepPeriod time.Duration
	now         func() time.Time

	logger Logger
	gauge  Gauge

	stopCh  chan struct{}
	stopped sync.Once
}

// NewCoordinator создает координатор блокировок
// gauge может быть nil, если метрики отключены
func NewCoordinator(ttl, sweepPeriod time.Duration, logger Logger, gauge Gauge) *Coordinator {
	return &Coordinator{
		locks:       make(map[domain.SlotKey]time.Time),
		ttl:         ttl,
		sweepPeriod: sweepPeriod,
		now:         time.Now,
		logger:      logger,
		gauge:       gauge,
		stopCh:      make(chan struct{}),
	}
}

// TryLock пытается захватить блокировку на слот
// Возвращает true, если блокировка захвачена (ключ свободен или предыдущая
// блокировка истекла); захват атомарен и не блокирует вызывающего
func (c *Coordinator) TryLock(key domain.SlotKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if expiresAt, ok := c.locks[key]; ok && expiresAt.After(now) {
		return false
	}

	c.locks[key] = now.Add(c.ttl)
	c.reportLocksHeld()
	return true
}

// Unlock снимает блокировку со слота
// Снятие несуществующей блокировки — no-op
func (c *Coordinator) Unlock(key domain.SlotKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.locks, key)
	c.reportLocksHeld()
}

// SweepExpired удаляет истёкшие блокировки, ограничивая рост памяти
func (c *Coordinator) SweepExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, expiresAt := range c.locks {
		if !expiresAt.After(now) {
			delete(c.locks, key)
			removed++
		}
	}

	if removed > 0 && c.logger != nil {
		c.logger.Debug("lockguard: swept %d expired locks, %d remain", removed, len(c.locks))
	}
	c.reportLocksHeld()
}

// Len возвращает число записей в карте блокировок (включая истёкшие)
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.locks)
}

// Start запускает периодическую очистку истёкших блокировок
// Неположительный период очистки отключает её: time.NewTicker
// паникует на нулевом интервале
func (c *Coordinator) Start() {
	if c.sweepPeriod <= 0 {
		if c.logger != nil {
			c.logger.Info("lockguard: sweep disabled, non-positive period %s", c.sweepPeriod)
		}
		return
	}

	go func() {
		ticker := time.NewTicker(c.sweepPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.SweepExpired()
			case <-c.stopCh:
				return
			}
		}
	}()

	if c.logger != nil {
		c.logger.Info("lockguard: started, ttl=%s, sweep period=%s", c.ttl, c.sweepPeriod)
	}
}

// Stop останавливает периодическую очистку
func (c *Coordinator) Stop() {
	c.stopped.Do(func() {
		close(c.stopCh)
	})
}

// reportLocksHeld вызывается под c.mu
func (c *Coordinator) reportLocksHeld() {
	if c.gauge != nil {
		c.gauge.SetLocksHeld(len(c.locks))
	}
}
