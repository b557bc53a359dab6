package service

import (
	"fmt"
	"time"
	"unicode/utf8"

	"lab-requests/internal/domain"
)

// Limites em caracteres, não em bytes: títulos e nomes chegam em cirílico.
const (
	maxTitleLen       = 255
	maxStudentNameLen = 255
	maxDescriptionLen = 1000
)

func validateTitle(title string) error {
	if title == "" {
		return domain.NewValidationError("title", "título é obrigatório")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return domain.NewValidationError("title",
			fmt.Sprintf("título excede %d caracteres", maxTitleLen))
	}
	return nil
}

func validateStudentName(name string) error {
	if name == "" {
		return domain.NewValidationError("student_name", "nome do estudante é obrigatório")
	}
	if utf8.RuneCountInString(name) > maxStudentNameLen {
		return domain.NewValidationError("student_name",
			fmt.Sprintf("nome do estudante excede %d caracteres", maxStudentNameLen))
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return domain.NewValidationError("description",
			fmt.Sprintf("descrição excede %d caracteres", maxDescriptionLen))
	}
	return nil
}

// validateDeadline compara em UTC; só a escrita (create/reschedule) valida o
// prazo, o relógio avançar depois não invalida o registo.
func validateDeadline(deadline, now time.Time) error {
	if deadline.Before(now) {
		return domain.InvalidDeadline()
	}
	return nil
}

func validatePagination(skip, limit int) error {
	if skip < 0 {
		return domain.InvalidPagination("skip", skip)
	}
	if limit < 0 {
		return domain.InvalidPagination("limit", limit)
	}
	return nil
}
