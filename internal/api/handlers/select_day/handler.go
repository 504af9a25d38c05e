package select_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	selectDay "github.com/Abdo0422/GestionReservation/internal/usecase/select_day"
)

const (
	msgInvalidDepartmentID = "identifiant de département invalide"
	msgInvalidDay          = "jour invalide pour le mois affiché"
	msgInvalidMonth        = "mois invalide, format attendu YYYY-MM"
	msgDepartmentNotFound  = "département introuvable"
)

type Handler struct {
	useCase SelectDayUseCase
	logger  Logger
}

func NewHandler(useCase SelectDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/departments/{departmentId}/calendar/days/{day}
// Query params: month (YYYY-MM, по умолчанию текущий), lang (fr|ar)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	departmentID, err := strconv.ParseInt(vars["departmentId"], 10, 64)
	if err != nil || departmentID <= 0 {
		h.logger.Warn("POST /departments/{id}/calendar/days/{day} - Invalid department ID: %q", vars["departmentId"])
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		h.logger.Warn("POST /departments/{id}/calendar/days/{day} - Invalid day: %q", vars["day"])
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(departmentID, day, r))
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, selectDay.ErrInvalidDay):
			h.logger.Warn("POST /departments/{id}/calendar/days/{day} - Day outside month: department_id=%d, error=%v", departmentID, err)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, selectDay.ErrInvalidInput):
			h.logger.Warn("POST /departments/{id}/calendar/days/{day} - Invalid params: department_id=%d, error=%v", departmentID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, selectDay.ErrDepartmentNotFound):
			h.logger.Warn("POST /departments/{id}/calendar/days/{day} - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, selectDay.ErrSourceUnavailable):
			h.logger.Error("POST /departments/{id}/calendar/days/{day} - Reservation source unavailable: department_id=%d, error=%v", departmentID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /departments/{id}/calendar/days/{day} - Failed to select day: department_id=%d, error=%v", departmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /departments/{id}/calendar/days/{day} - Day selected: department_id=%d, date=%s, reservations=%d",
		departmentID, result.FormattedDate, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
