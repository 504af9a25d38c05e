package toggle_status

import (
	"context"

	toggleStatus "github.com/Abdo0422/GestionReservation/internal/usecase/toggle_status"
)

type ToggleStatusUseCase interface {
	Execute(ctx context.Context, req *toggleStatus.Request) (*toggleStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
