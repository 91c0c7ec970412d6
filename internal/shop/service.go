package shop

import (
	"context"
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// DayFunc is called with the day number and the item list after each day.
// Day 0 is the initial state.
type DayFunc func(day int, items []*domain.Item) error

// Service defines the interface for running the daily update over an inventory
type Service interface {
	// AdvanceOneDay advances every item by exactly one day
	AdvanceOneDay(ctx context.Context, items []*domain.Item)
	// Simulate applies AdvanceOneDay once per day for the given number of days
	Simulate(ctx context.Context, items []*domain.Item, days int, onDay DayFunc) error
}

type service struct {
	engine *Engine
}

// NewService creates a new simulation service
func NewService(engine *Engine) Service {
	if engine == nil {
		engine = NewEngine()
	}
	return &service{engine: engine}
}

func (s *service) AdvanceOneDay(ctx context.Context, items []*domain.Item) {
	s.engine.AdvanceOneDay(items)
	logger.FromContext(ctx).Debug(LogMsgDayAdvanced, "items", len(items))
}

// Simulate reports the initial state, then advances the inventory one day at
// a time. Cancellation is checked between days; a day is never half-applied.
func (s *service) Simulate(ctx context.Context, items []*domain.Item, days int, onDay DayFunc) error {
	if days < 0 {
		return fmt.Errorf(ErrFmtNegativeDays, domain.ErrInvalidDays, days)
	}
	if onDay == nil {
		onDay = func(int, []*domain.Item) error { return nil }
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSimulationStarting, "items", len(items), "days", days)

	if err := onDay(0, items); err != nil {
		log.Error(LogMsgDayCallbackFailed, "day", 0, "error", err)
		return fmt.Errorf(ErrFmtDayCallback, 0, err)
	}

	for day := 1; day <= days; day++ {
		if err := ctx.Err(); err != nil {
			log.Warn(LogMsgSimulationCancelled, "completed_days", day-1)
			return fmt.Errorf(ErrFmtSimulationStop, day-1, err)
		}

		s.AdvanceOneDay(ctx, items)

		if err := onDay(day, items); err != nil {
			log.Error(LogMsgDayCallbackFailed, "day", day, "error", err)
			return fmt.Errorf(ErrFmtDayCallback, day, err)
		}
	}

	log.Info(LogMsgSimulationCompleted, "days", days)
	return nil
}
