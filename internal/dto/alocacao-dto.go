package dto

import (
	"encoding/json"
	"fmt"
)

// Allocation payloads historically keyed the warehouse reference under
// `deposito_id`, `depositoId` or plain `deposito` depending on the
// screen that produced them. Decoding normalizes every variant onto the
// canonical DepositoID; an id that is neither a number nor a numeric
// string is rejected instead of silently defaulting to zero.

type alocacaoPayload struct {
	EventoID          uint64          `json:"evento_id"`
	MaterialID        uint64          `json:"material_id"`
	DepositoID        json.RawMessage `json:"deposito_id"`
	DepositoIDCamel   json.RawMessage `json:"depositoId"`
	Deposito          json.RawMessage `json:"deposito"`
	QuantidadeAlocada int             `json:"quantidade_alocada"`
	Observacao        string          `json:"observacao"`
}

func (p *alocacaoPayload) depositoID() (uint64, error) {
	for _, raw := range [][]byte{p.DepositoID, p.DepositoIDCamel, p.Deposito} {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}

		var id uint64
		if err := json.Unmarshal(raw, &id); err == nil {
			return id, nil
		}

		// Older clients sent the id as a string.
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			var parsed uint64
			if _, err := fmt.Sscanf(s, "%d", &parsed); err == nil {
				return parsed, nil
			}
		}

		return 0, fmt.Errorf("referência de depósito em formato não reconhecido: %s", raw)
	}
	return 0, nil
}

type CreateAlocacaoDTO struct {
	EventoID          uint64 `json:"evento_id" validate:"required"`
	MaterialID        uint64 `json:"material_id" validate:"required"`
	DepositoID        uint64 `json:"deposito_id" validate:"required"`
	QuantidadeAlocada int    `json:"quantidade_alocada" validate:"required,gt=0"`
	Observacao        string `json:"observacao" validate:"omitempty,max=500"`
}

func (d *CreateAlocacaoDTO) UnmarshalJSON(data []byte) error {
	var raw alocacaoPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	depositoID, err := raw.depositoID()
	if err != nil {
		return err
	}

	d.EventoID = raw.EventoID
	d.MaterialID = raw.MaterialID
	d.DepositoID = depositoID
	d.QuantidadeAlocada = raw.QuantidadeAlocada
	d.Observacao = raw.Observacao
	return nil
}

type UpdateAlocacaoDTO struct {
	DepositoID        uint64 `json:"deposito_id" validate:"required"`
	QuantidadeAlocada int    `json:"quantidade_alocada" validate:"required,gt=0"`
	Observacao        string `json:"observacao" validate:"omitempty,max=500"`
}

func (d *UpdateAlocacaoDTO) UnmarshalJSON(data []byte) error {
	var raw alocacaoPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	depositoID, err := raw.depositoID()
	if err != nil {
		return err
	}

	d.DepositoID = depositoID
	d.QuantidadeAlocada = raw.QuantidadeAlocada
	d.Observacao = raw.Observacao
	return nil
}

type AlocacaoDTO struct {
	ID                uint64 `json:"id"`
	EventoID          uint64 `json:"evento_id"`
	MaterialID        uint64 `json:"material_id"`
	DepositoID        uint64 `json:"deposito_id"`
	QuantidadeAlocada int    `json:"quantidade_alocada"`
	Observacao        string `json:"observacao,omitempty"`

	NomeEvento   string `json:"nome_evento,omitempty"`
	NomeItem     string `json:"nome_item,omitempty"`
	NomeDeposito string `json:"nome_deposito,omitempty"`
}
