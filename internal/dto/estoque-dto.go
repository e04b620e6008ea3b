package dto

type CreateEstoqueDTO struct {
	MaterialID uint64 `json:"material_id" validate:"required"`
	DepositoID uint64 `json:"deposito_id" validate:"required"`
	Quantidade int    `json:"quantidade" validate:"gte=0"`
}

// AjusteEstoqueDTO is the only way a stock quantity changes: an
// entrada adds, a saida removes. A saida beyond the available quantity
// is rejected before any write.
type AjusteEstoqueDTO struct {
	MaterialID uint64 `json:"material_id" validate:"required"`
	DepositoID uint64 `json:"deposito_id" validate:"required"`
	Tipo       string `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
	Observacao string `json:"observacao" validate:"omitempty,max=500"`
}

type EstoqueDTO struct {
	ID                   uint64 `json:"id"`
	MaterialID           uint64 `json:"material_id"`
	DepositoID           uint64 `json:"deposito_id"`
	QuantidadeDisponivel int    `json:"quantidade_disponivel"`

	NomeItem     string `json:"nome_item,omitempty"`
	Categoria    string `json:"categoria,omitempty"`
	NomeDeposito string `json:"nome_deposito,omitempty"`
}
