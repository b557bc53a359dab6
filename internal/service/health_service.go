package service

import (
	"context"
	"os"
	"time"
)

type HealthStatus string

const (
	StatusOK          HealthStatus = "ok"
	StatusDegraded    HealthStatus = "degraded"
	StatusUnavailable HealthStatus = "unavailable"
)

type HealthCheckResponse struct {
	Status    HealthStatus      `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp time.Time         `json:"timestamp"`
}

type HealthService struct {
	repo RequestRepository
}

func NewHealthService(repo RequestRepository) *HealthService {
	return &HealthService{
		repo: repo,
	}
}

func (s *HealthService) CheckHealth(ctx context.Context) HealthCheckResponse {
	checks := make(map[string]string)
	aggregatedStatus := StatusOK

	// 1. Base de dados (crítica: sem ela a API não serve nada)
	if err := s.repo.Ping(ctx); err != nil {
		checks["database"] = "error: " + err.Error()
		aggregatedStatus = StatusUnavailable
	} else {
		checks["database"] = "ok"
	}

	// 2. Disco: verifica se o diretório temporário é gravável como proxy de
	// "disco ok"; medir espaço livre real cross-platform exigiria cgo.
	if err := s.checkDiskWritable(); err != nil {
		checks["disk"] = "error: " + err.Error()
		if aggregatedStatus == StatusOK {
			aggregatedStatus = StatusDegraded
		}
	} else {
		checks["disk"] = "ok"
	}

	return HealthCheckResponse{
		Status:    aggregatedStatus,
		Checks:    checks,
		Timestamp: time.Now(),
	}
}

func (s *HealthService) checkDiskWritable() error {
	f, err := os.CreateTemp("", "healthcheck")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	return f.Close()
}
