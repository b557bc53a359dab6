package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"lab-requests/internal/domain"
	"lab-requests/internal/service"

	"github.com/labstack/echo/v4"
)

const defaultListLimit = 100

type Handler struct {
	requestService *service.RequestService
	healthService  *service.HealthService
}

func NewHandler(requestSvc *service.RequestService, healthSvc *service.HealthService) *Handler {
	return &Handler{
		requestService: requestSvc,
		healthService:  healthSvc,
	}
}

type CreateRequestPayload struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StudentName string    `json:"student_name"`
	Deadline    time.Time `json:"deadline"`
}

type ReschedulePayload struct {
	NewDeadline time.Time `json:"new_deadline"`
}

func (h *Handler) HandleListRequests(c echo.Context) error {
	statusFilter := c.QueryParam("status_filter")

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("skip inválido"))
	}
	limit, err := queryInt(c, "limit", defaultListLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("limit inválido"))
	}

	requests, err := h.requestService.ListRequests(c.Request().Context(), statusFilter, skip, limit)
	if err != nil {
		return errorResponse(c, err)
	}

	if requests == nil {
		requests = []*domain.LabRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) HandleCreateRequest(c echo.Context) error {
	var payload CreateRequestPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Payload inválido"))
	}

	req, err := h.requestService.CreateRequest(
		c.Request().Context(),
		payload.Title, payload.Description, payload.StudentName, payload.Deadline,
	)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, req)
}

func (h *Handler) HandleGetRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("id inválido"))
	}

	req, err := h.requestService.GetRequest(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, req)
}

func (h *Handler) HandleUpdateRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("id inválido"))
	}

	var patch domain.RequestPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Payload inválido"))
	}

	req, err := h.requestService.UpdateRequest(c.Request().Context(), id, patch)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, req)
}

func (h *Handler) HandleRescheduleRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("id inválido"))
	}

	var payload ReschedulePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Payload inválido"))
	}

	req, err := h.requestService.RescheduleRequest(c.Request().Context(), id, payload.NewDeadline)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, req)
}

func (h *Handler) HandleDeleteRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("id inválido"))
	}

	if err := h.requestService.DeleteRequest(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) HandleStatsRequests(c echo.Context) error {
	stats, err := h.requestService.Stats(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// errorResponse traduz a taxonomia de erros do domínio para códigos HTTP:
// NotFound -> 404, erro de validação -> 400, resto -> 500.
func errorResponse(c echo.Context, err error) error {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, errorBody(validationErr.Error()))
	default:
		log.Printf("ERRO [Handler]: falha interna: %v", err)
		return c.JSON(http.StatusInternalServerError, errorBody("erro interno"))
	}
}

func errorBody(detail string) map[string]string {
	return map[string]string{"detail": detail}
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
