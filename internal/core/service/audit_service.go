package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sokol-matija/medical-system-gateway/internal/api/metrics"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// AuditService persists audit events. Invoked from dispatcher workers, never
// from the request path.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditErrorsTotal.Inc()
		s.logger.Error().Err(err).
			Str("actor", event.Actor).
			Str("action", event.Action).
			Msg("audit event insert failed")
		return err
	}

	metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
	return nil
}
