package service

import (
	"context"
	"fmt"
	"time"

	"lab-requests/internal/domain"
)

type RequestService struct {
	repo RequestRepository
	now  func() time.Time
}

func NewRequestService(repo RequestRepository) *RequestService {
	return &RequestService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateRequest valida o payload e persiste uma nova solicitação com
// status active e created_at == updated_at.
func (s *RequestService) CreateRequest(
	ctx context.Context,
	title string,
	description *string,
	studentName string,
	deadline time.Time,
) (*domain.LabRequest, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateStudentName(studentName); err != nil {
		return nil, err
	}
	if description != nil {
		if err := validateDescription(*description); err != nil {
			return nil, err
		}
	}

	now := s.now()
	if err := validateDeadline(deadline, now); err != nil {
		return nil, err
	}

	req := &domain.LabRequest{
		Title:       title,
		Description: description,
		StudentName: studentName,
		Deadline:    deadline.UTC(),
		Status:      domain.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.CreateRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar solicitação: %w", err)
	}
	req.ID = id

	return req, nil
}

// ListRequests devolve as solicitações ordenadas por deadline ascendente
// (empate resolvido por id). Filtro de status desconhecido é rejeitado.
func (s *RequestService) ListRequests(
	ctx context.Context,
	statusFilter string,
	skip, limit int,
) ([]*domain.LabRequest, error) {
	if err := validatePagination(skip, limit); err != nil {
		return nil, err
	}

	var filter *domain.Status
	if statusFilter != "" {
		status, err := domain.ParseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		filter = &status
	}

	requests, err := s.repo.ListRequests(ctx, filter, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar solicitações: %w", err)
	}
	return requests, nil
}

func (s *RequestService) GetRequest(ctx context.Context, id int64) (*domain.LabRequest, error) {
	req, err := s.repo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar solicitação %d: %w", id, err)
	}
	if req == nil {
		return nil, fmt.Errorf("solicitação %d: %w", id, domain.ErrNotFound)
	}
	return req, nil
}

// UpdateRequest aplica uma atualização parcial: só os campos presentes no
// patch são validados e escritos; status segue a máquina permissiva.
func (s *RequestService) UpdateRequest(
	ctx context.Context,
	id int64,
	patch domain.RequestPatch,
) (*domain.LabRequest, error) {
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyPatch(req, patch); err != nil {
		return nil, err
	}
	req.UpdatedAt = s.now()

	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("falha ao atualizar solicitação %d: %w", id, err)
	}
	return req, nil
}

// RescheduleRequest troca apenas o deadline. É operação dedicada, separada do
// update genérico, por ser o caminho de escrita mais comum.
func (s *RequestService) RescheduleRequest(
	ctx context.Context,
	id int64,
	newDeadline time.Time,
) (*domain.LabRequest, error) {
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := validateDeadline(newDeadline, now); err != nil {
		return nil, err
	}

	req.Deadline = newDeadline.UTC()
	req.UpdatedAt = now

	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("falha ao reagendar solicitação %d: %w", id, err)
	}
	return req, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("falha ao apagar solicitação %d: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("solicitação %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

type RequestStats struct {
	Total     int64     `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *RequestService) Stats(ctx context.Context) (*RequestStats, error) {
	total, err := s.repo.CountRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao contar solicitações: %w", err)
	}
	return &RequestStats{Total: total, Timestamp: s.now()}, nil
}

func applyPatch(req *domain.LabRequest, patch domain.RequestPatch) error {
	if patch.Title.Set {
		if !patch.Title.Valid {
			return domain.NewValidationError("title", "título não pode ser nulo")
		}
		if err := validateTitle(patch.Title.Value); err != nil {
			return err
		}
		req.Title = patch.Title.Value
	}

	if patch.Description.Set {
		if !patch.Description.Valid {
			req.Description = nil // null explícito limpa o campo
		} else {
			if err := validateDescription(patch.Description.Value); err != nil {
				return err
			}
			value := patch.Description.Value
			req.Description = &value
		}
	}

	if patch.StudentName.Set {
		if !patch.StudentName.Valid {
			return domain.NewValidationError("student_name", "nome do estudante não pode ser nulo")
		}
		if err := validateStudentName(patch.StudentName.Value); err != nil {
			return err
		}
		req.StudentName = patch.StudentName.Value
	}

	if patch.Deadline.Set {
		if !patch.Deadline.Valid {
			return domain.NewValidationError("deadline", "deadline não pode ser nulo")
		}
		req.Deadline = patch.Deadline.Value.UTC()
	}

	if patch.Status.Set {
		if !patch.Status.Valid {
			return domain.NewValidationError("status", "status não pode ser nulo")
		}
		status, err := domain.ParseStatus(patch.Status.Value)
		if err != nil {
			return err
		}
		req.Status = status
	}

	return nil
}
