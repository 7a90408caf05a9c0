package usecase

import (
	"intent-classifier/internal/registry"
	"intent-classifier/internal/validation"
	"intent-classifier/pkg/gsheets"
	pkgLog "intent-classifier/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	registry  registry.Manager
	validator validation.Engine
	sheets    gsheets.ISheets
}

// New creates a new intent UseCase instance. The sheets reader may be nil
// when the deployment does not import from spreadsheets.
func New(l pkgLog.Logger, reg registry.Manager, validator validation.Engine, sheets gsheets.ISheets) *implUseCase {
	return &implUseCase{
		l:         l,
		registry:  reg,
		validator: validator,
		sheets:    sheets,
	}
}
