package get_departments

import (
	"errors"
	"net/http"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	"github.com/Abdo0422/GestionReservation/internal/service/reservations"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/departments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.ListDepartments(r.Context())
	if err != nil {
		if errors.Is(err, reservations.ErrSourceUnavailable) {
			h.logger.Error("GET /departments - Reservation source unavailable: %v", err)
			handlers.RespondBadGateway(w)
			return
		}
		h.logger.Error("GET /departments - Failed to list departments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		response = append(response, handlers.FromDomainDepartment(d))
	}

	h.logger.Info("GET /departments - Departments retrieved: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
