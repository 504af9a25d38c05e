package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	getCalendar "github.com/Abdo0422/GestionReservation/internal/usecase/get_calendar"
)

const (
	msgInvalidDepartmentID = "identifiant de département invalide"
	msgInvalidParams       = "paramètres invalides: month au format YYYY-MM, selected au format YYYY-MM-DD, nav previous ou next"
	msgDepartmentNotFound  = "département introuvable"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/departments/{departmentId}/calendar
// Query params: month (YYYY-MM), selected (YYYY-MM-DD), nav (previous|next), lang (fr|ar), все опционально
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departmentIDStr := mux.Vars(r)["departmentId"]
	departmentID, err := strconv.ParseInt(departmentIDStr, 10, 64)
	if err != nil || departmentID <= 0 {
		h.logger.Warn("GET /departments/{id}/calendar - Invalid department ID: %q", departmentIDStr)
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(departmentID, r))
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /departments/{id}/calendar - Invalid params: department_id=%d, error=%v", departmentID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getCalendar.ErrDepartmentNotFound):
			h.logger.Warn("GET /departments/{id}/calendar - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, getCalendar.ErrSourceUnavailable):
			h.logger.Error("GET /departments/{id}/calendar - Reservation source unavailable: department_id=%d, error=%v", departmentID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /departments/{id}/calendar - Failed to render calendar: department_id=%d, error=%v", departmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /departments/{id}/calendar - Calendar rendered: department_id=%d, month=%s, reservations=%d",
		departmentID, response.Month, len(response.Reservations))
	handlers.RespondJSON(w, http.StatusOK, response)
}
