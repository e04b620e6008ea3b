package entities

import "vivere-estoque/pkg/types"

// Material is a catalog entry, independent of any stocked quantity.
type Material struct {
	ID        uint64 `json:"id" db:"id"`
	NomeItem  string `json:"nome_item" db:"nome_item"`
	Categoria string `json:"categoria" db:"categoria"`

	types.BaseEntity
}
