package entities

import "vivere-estoque/pkg/types"

type Deposito struct {
	ID           uint64 `json:"id" db:"id"`
	NomeDeposito string `json:"nome_deposito" db:"nome"`
	Endereco     string `json:"endereco" db:"endereco"`

	types.BaseEntity
}
