package entities

import "vivere-estoque/pkg/types"

// Usuario has exactly two perfis. DepositoID is set iff the perfil is
// Gestor de Depósito; an administrator is never bound to a warehouse.
type Usuario struct {
	ID    uint64 `json:"id" db:"id"`
	Nome  string `json:"nome" db:"nome"`
	Email string `json:"email" db:"email"`

	Senha string `json:"-" db:"senha"`

	Perfil     string  `json:"perfil" db:"perfil"`
	DepositoID *uint64 `json:"deposito_id,omitempty" db:"deposito_id"`

	Deposito *Deposito `json:"deposito,omitempty" db:"-"`

	types.BaseEntity
}
