package service

import (
	"context"
	"time"

	"github.com/portfolio/portfolio-backend/pkg/dto"
)

type HealthService interface {
	Health(ctx context.Context) *dto.HealthStatus
}

const (
	StatusHealthy = "healthy"
	HealthMessage = "Portfolio backend is running!"
)

type healthService struct {
	now func() time.Time
}

func NewHealthService() HealthService {
	return NewHealthServiceWithClock(time.Now)
}

// NewHealthServiceWithClock is NewHealthService with an injectable clock.
func NewHealthServiceWithClock(now func() time.Time) HealthService {
	return &healthService{
		now: now,
	}
}

// Health reads the clock on every call; the timestamp is never cached.
func (s *healthService) Health(ctx context.Context) *dto.HealthStatus {
	return &dto.HealthStatus{
		Status:    StatusHealthy,
		Message:   HealthMessage,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}
