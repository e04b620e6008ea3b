package dto

type CreateDepositoDTO struct {
	NomeDeposito string `json:"nome_deposito" validate:"required"`
	Endereco     string `json:"endereco" validate:"required"`
}

type UpdateDepositoDTO struct {
	NomeDeposito string `json:"nome_deposito" validate:"required"`
	Endereco     string `json:"endereco" validate:"required"`
}

type DepositoDTO struct {
	ID           uint64 `json:"id"`
	NomeDeposito string `json:"nome_deposito"`
	Endereco     string `json:"endereco"`
}
