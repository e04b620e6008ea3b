package entities

import "time"

// LogEntry is one row of the append-only audit trail. Written on every
// successful mutation, exposed read-only over HTTP.
type LogEntry struct {
	ID            uint64    `json:"id" db:"id"`
	UsuarioID     uint64    `json:"usuario_id" db:"usuario_id"`
	Usuario       string    `json:"usuario,omitempty" db:"-"`
	Acao          string    `json:"acao" db:"acao"`
	Descricao     string    `json:"descricao" db:"descricao"`
	RotaAfetada   string    `json:"rota_afetada" db:"rota_afetada"`
	CorrelationID string    `json:"correlation_id,omitempty" db:"correlation_id"`
	DataHora      time.Time `json:"data_hora" db:"data_hora"`
}
