package usecase

import (
	"time"

	"order-intake/internal/order"
	"order-intake/internal/order/repository"
	"order-intake/pkg/log"
	"order-intake/pkg/metrics"
)

type implUseCase struct {
	l         log.Logger
	extractor order.Extractor
	repo      repository.Repository
	metrics   *metrics.Registry
	publisher Publisher
	calendar  Calendar
	cfg       Config
	now       func() time.Time
}

// New creates the order UseCase. Publisher and Calendar may be nil.
func New(
	l log.Logger,
	extractor order.Extractor,
	repo repository.Repository,
	m *metrics.Registry,
	publisher Publisher,
	calendar Calendar,
	cfg Config,
) order.UseCase {
	if cfg.DefaultChannel == "" {
		cfg.DefaultChannel = order.ChannelManual
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &implUseCase{
		l:         l,
		extractor: extractor,
		repo:      repo,
		metrics:   m,
		publisher: publisher,
		calendar:  calendar,
		cfg:       cfg,
		now:       time.Now,
	}
}

// NewWithClock is New with an injected clock.
func NewWithClock(
	l log.Logger,
	extractor order.Extractor,
	repo repository.Repository,
	m *metrics.Registry,
	publisher Publisher,
	calendar Calendar,
	cfg Config,
	now func() time.Time,
) order.UseCase {
	uc := New(l, extractor, repo, m, publisher, calendar, cfg).(*implUseCase)
	uc.now = now
	return uc
}
