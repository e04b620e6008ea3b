package entities

import "vivere-estoque/pkg/types"

// Estoque is one (material, depósito) inventory row. The quantity is
// only ever changed through entrada/saida adjustments and never goes
// negative.
type Estoque struct {
	ID                   uint64 `json:"id" db:"id"`
	MaterialID           uint64 `json:"material_id" db:"material_id"`
	DepositoID           uint64 `json:"deposito_id" db:"deposito_id"`
	QuantidadeDisponivel int    `json:"quantidade_disponivel" db:"quantidade_disponivel"`

	Material *Material `json:"material,omitempty" db:"-"`
	Deposito *Deposito `json:"deposito,omitempty" db:"-"`

	types.BaseEntity
}
