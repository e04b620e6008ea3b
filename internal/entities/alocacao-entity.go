package entities

import "vivere-estoque/pkg/types"

// Alocacao reserves a quantity of one material, drawn from one
// depósito, for one evento.
type Alocacao struct {
	ID                uint64 `json:"id" db:"id"`
	EventoID          uint64 `json:"evento_id" db:"evento_id"`
	MaterialID        uint64 `json:"material_id" db:"material_id"`
	DepositoID        uint64 `json:"deposito_id" db:"deposito_id"`
	QuantidadeAlocada int    `json:"quantidade_alocada" db:"quantidade_alocada"`
	Observacao        string `json:"observacao,omitempty" db:"observacao"`

	Evento   *Evento   `json:"evento,omitempty" db:"-"`
	Material *Material `json:"material,omitempty" db:"-"`
	Deposito *Deposito `json:"deposito,omitempty" db:"-"`

	types.BaseEntity
}
