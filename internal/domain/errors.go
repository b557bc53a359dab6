package domain

import (
	"errors"
	"fmt"
)

// Erros de entrada do cliente. O transporte mapeia ErrNotFound para 404 e
// qualquer ValidationError para 400; o resto é falha interna.
var (
	ErrNotFound          = errors.New("solicitação não encontrada")
	ErrInvalidDeadline   = errors.New("deadline não pode estar no passado")
	ErrInvalidStatus     = errors.New("status inválido")
	ErrInvalidPagination = errors.New("paginação inválida")
)

type ValidationError struct {
	Field   string
	Message string
	kind    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap expõe o tipo do erro (ErrInvalidDeadline, ErrInvalidStatus, ...)
// para verificação com errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.kind
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func InvalidDeadline() *ValidationError {
	return &ValidationError{
		Field:   "deadline",
		Message: ErrInvalidDeadline.Error(),
		kind:    ErrInvalidDeadline,
	}
}

func invalidStatus(value string) *ValidationError {
	return &ValidationError{
		Field:   "status",
		Message: fmt.Sprintf("status inválido: %s", value),
		kind:    ErrInvalidStatus,
	}
}

func InvalidPagination(field string, value int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s não pode ser negativo: %d", field, value),
		kind:    ErrInvalidPagination,
	}
}
