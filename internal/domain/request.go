package domain

import "time"

type Status string

// Estados do ciclo de vida de uma solicitação. A máquina de estados é
// permissiva: qualquer status pode ser trocado por qualquer outro via update,
// inclusive cancelled -> active.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus valida um status vindo do cliente.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusActive, StatusCompleted, StatusCancelled:
		return Status(value), nil
	}
	return "", invalidStatus(value)
}

type LabRequest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StudentName string    `json:"student_name"`
	Deadline    time.Time `json:"deadline"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RequestPatch é o payload de atualização parcial: campo ausente fica
// intocado; null explícito só é aceite onde o campo é anulável (description).
type RequestPatch struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	StudentName Optional[string]    `json:"student_name"`
	Deadline    Optional[time.Time] `json:"deadline"`
	Status      Optional[string]    `json:"status"`
}
