package select_day

import (
	"context"

	selectDay "github.com/Abdo0422/GestionReservation/internal/usecase/select_day"
)

type SelectDayUseCase interface {
	Execute(ctx context.Context, req *selectDay.Request) (*selectDay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
