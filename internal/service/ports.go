package service

import (
	"context"

	"lab-requests/internal/domain"
)

// RequestRepository é a fronteira de persistência do serviço. GetRequestByID
// devolve (nil, nil) quando o registo não existe; DeleteRequest reporta se
// algo foi de facto removido.
type RequestRepository interface {
	CreateRequest(ctx context.Context, req *domain.LabRequest) (int64, error)
	GetRequestByID(ctx context.Context, id int64) (*domain.LabRequest, error)
	ListRequests(ctx context.Context, filter *domain.Status, skip, limit int) ([]*domain.LabRequest, error)
	UpdateRequest(ctx context.Context, req *domain.LabRequest) error
	DeleteRequest(ctx context.Context, id int64) (bool, error)
	CountRequests(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
