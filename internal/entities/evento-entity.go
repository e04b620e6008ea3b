package entities

import (
	"time"

	"vivere-estoque/pkg/types"
)

type Evento struct {
	ID         uint64    `json:"id" db:"id"`
	NomeEvento string    `json:"nome_evento" db:"nome_evento"`
	Cliente    string    `json:"cliente" db:"cliente"`
	Status     string    `json:"status" db:"status"`
	DataInicio time.Time `json:"data_inicio" db:"data_inicio"`
	DataFim    time.Time `json:"data_fim" db:"data_fim"`

	types.BaseEntity
}
