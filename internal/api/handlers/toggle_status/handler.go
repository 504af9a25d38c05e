package toggle_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	toggleStatus "github.com/Abdo0422/GestionReservation/internal/usecase/toggle_status"
)

const (
	msgInvalidDepartmentID  = "identifiant de département invalide"
	msgInvalidReservationID = "identifiant de réservation invalide"
	msgInvalidMonth         = "mois invalide, format attendu YYYY-MM"
	msgDepartmentNotFound   = "département introuvable"
	msgReservationNotFound  = "Réservation non trouvée"
)

type Handler struct {
	useCase ToggleStatusUseCase
	logger  Logger
}

func NewHandler(useCase ToggleStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/departments/{departmentId}/reservations/{reservationId}/status
// Query params: month (YYYY-MM месяца бронирования, по умолчанию текущий), lang (fr|ar)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	departmentID, err := strconv.ParseInt(vars["departmentId"], 10, 64)
	if err != nil || departmentID <= 0 {
		h.logger.Warn("PATCH /departments/{id}/reservations/{id}/status - Invalid department ID: %q", vars["departmentId"])
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /departments/{id}/reservations/{id}/status - Invalid reservation ID: %q", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Переключаем статус
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(departmentID, reservationID, r))
	if err != nil {
		switch {
		case errors.Is(err, toggleStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /departments/{id}/reservations/{id}/status - Invalid params: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, toggleStatus.ErrDepartmentNotFound):
			h.logger.Warn("PATCH /departments/{id}/reservations/{id}/status - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, toggleStatus.ErrReservationNotFound):
			h.logger.Warn("PATCH /departments/{id}/reservations/{id}/status - Reservation not found: department_id=%d, reservation_id=%d",
				departmentID, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, toggleStatus.ErrSourceUnavailable):
			h.logger.Error("PATCH /departments/{id}/reservations/{id}/status - Reservation source unavailable: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("PATCH /departments/{id}/reservations/{id}/status - Failed to toggle status: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /departments/{id}/reservations/{id}/status - Status changed: reservation_id=%d, status=%q",
		reservationID, result.Reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
