package customvalidator

import (
	"time"

	"github.com/go-playground/validator/v10"

	"vivere-estoque/pkg/constants"
)

// RegisterCustomValidations wires the project-specific rules into the
// validator instance used by echo.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("data_iso", isISODate); err != nil {
		return err
	}
	// "Gestor de Depósito" contains spaces, so the stock `oneof` tag
	// cannot express it.
	if err := v.RegisterValidation("perfil", isKnownPerfil); err != nil {
		return err
	}
	if err := v.RegisterValidation("status_evento", isKnownEventStatus); err != nil {
		return err
	}
	return nil
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func isKnownPerfil(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.PerfilAdministrador, constants.PerfilGestor:
		return true
	}
	return false
}

func isKnownEventStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.EventoConfirmado, constants.EventoEmAndamento,
		constants.EventoFinalizado, constants.EventoCancelado:
		return true
	}
	return false
}
