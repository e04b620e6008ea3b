package dto

import "github.com/aarondl/null/v8"

type CreateUsuarioDTO struct {
	Nome       string  `json:"nome" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Senha      string  `json:"senha" validate:"required,min=6"`
	Perfil     string  `json:"perfil" validate:"required,perfil"`
	DepositoID *uint64 `json:"deposito_id" validate:"omitempty,gt=0"`
}

type UpdateUsuarioDTO struct {
	Nome       null.String `json:"nome"`
	Email      null.String `json:"email" validate:"omitempty"`
	Senha      null.String `json:"senha"`
	Perfil     null.String `json:"perfil" validate:"omitempty"`
	DepositoID null.Uint64 `json:"deposito_id"`
}

type UsuarioDTO struct {
	ID         uint64  `json:"id"`
	Nome       string  `json:"nome"`
	Email      string  `json:"email"`
	Perfil     string  `json:"perfil"`
	DepositoID *uint64 `json:"deposito_id,omitempty"`
}
