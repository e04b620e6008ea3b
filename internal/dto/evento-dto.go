package dto

import "github.com/aarondl/null/v8"

type CreateEventoDTO struct {
	NomeEvento string `json:"nome_evento" validate:"required"`
	Cliente    string `json:"cliente" validate:"required"`
	Status     string `json:"status" validate:"omitempty,status_evento"`
	DataInicio string `json:"data_inicio" validate:"required,data_iso"`
	DataFim    string `json:"data_fim" validate:"required,data_iso"`
}

type UpdateEventoDTO struct {
	NomeEvento null.String `json:"nome_evento"`
	Cliente    null.String `json:"cliente"`
	Status     null.String `json:"status" validate:"omitempty"`
	DataInicio null.String `json:"data_inicio"`
	DataFim    null.String `json:"data_fim"`
}

type EventoDTO struct {
	ID         uint64 `json:"id"`
	NomeEvento string `json:"nome_evento"`
	Cliente    string `json:"cliente"`
	Status     string `json:"status"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}
