package dto

import "encoding/json"

// The catalog name field is canonically `nome_item`; older endpoints
// produced `material` instead. The alias is accepted on input only and
// never written back.

type CreateMaterialDTO struct {
	NomeItem  string `json:"nome_item" validate:"required"`
	Categoria string `json:"categoria" validate:"required"`
}

func (d *CreateMaterialDTO) UnmarshalJSON(data []byte) error {
	var raw struct {
		NomeItem  string `json:"nome_item"`
		Material  string `json:"material"` // deprecated alias
		Categoria string `json:"categoria"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.NomeItem = raw.NomeItem
	if d.NomeItem == "" {
		d.NomeItem = raw.Material
	}
	d.Categoria = raw.Categoria
	return nil
}

type UpdateMaterialDTO struct {
	NomeItem  string `json:"nome_item" validate:"required"`
	Categoria string `json:"categoria" validate:"required"`
}

func (d *UpdateMaterialDTO) UnmarshalJSON(data []byte) error {
	var raw struct {
		NomeItem  string `json:"nome_item"`
		Material  string `json:"material"`
		Categoria string `json:"categoria"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.NomeItem = raw.NomeItem
	if d.NomeItem == "" {
		d.NomeItem = raw.Material
	}
	d.Categoria = raw.Categoria
	return nil
}

type MaterialDTO struct {
	ID        uint64 `json:"id"`
	NomeItem  string `json:"nome_item"`
	Categoria string `json:"categoria"`
}
