package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
)

type AlertService struct {
	prefs  ports.AlertPrefsRepository
	sink   ports.FeedbackSink
	logger *slog.Logger
}

func NewAlertService(prefs ports.AlertPrefsRepository, sink ports.FeedbackSink, logger *slog.Logger) *AlertService {
	return &AlertService{prefs: prefs, sink: sink, logger: loggerOrDiscard(logger)}
}

// Trigger plays the alert feedback the user has enabled. When preferences
// cannot be read both channels fire.
func (s *AlertService) Trigger(ctx context.Context) {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		s.logger.Warn("read alert prefs", "err", err)
		prefs = domain.DefaultAlertPrefs()
	}

	if s.sink == nil {
		return
	}
	if prefs.Haptic {
		s.sink.Haptic()
	}
	if prefs.Sound {
		s.sink.Sound()
	}
}

func (s *AlertService) Prefs(ctx context.Context) (domain.AlertPrefs, error) {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return domain.AlertPrefs{}, fmt.Errorf("get alert prefs: %w", err)
	}
	return prefs, nil
}

func (s *AlertService) SetPrefs(ctx context.Context, update AlertPrefsUpdate) (domain.AlertPrefs, error) {
	prefs, err := s.Prefs(ctx)
	if err != nil {
		return domain.AlertPrefs{}, err
	}
	if update.Empty() {
		return prefs, nil
	}

	prefs = update.apply(prefs)
	if err := s.prefs.Save(ctx, prefs); err != nil {
		return domain.AlertPrefs{}, fmt.Errorf("save alert prefs: %w", err)
	}

	return prefs, nil
}
