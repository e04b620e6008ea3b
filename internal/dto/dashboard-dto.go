package dto

// DashboardDTO is shaped by perfil: the admin block covers every
// warehouse, the gestor block only the session's own depósito.
type DashboardDTO struct {
	Admin  *DashboardAdminDTO  `json:"admin,omitempty"`
	Gestor *DashboardGestorDTO `json:"gestor,omitempty"`
}

type DashboardAdminDTO struct {
	EventosAtivos   int `json:"eventos_ativos"`
	NovosEventosMes int `json:"novos_eventos_mes"`
	TotalDepositos  int `json:"total_depositos"`
	TotalMateriais  int `json:"total_materiais"`
}

type DashboardGestorDTO struct {
	EventosAPreparar  int `json:"eventos_a_preparar"`
	ItensBaixoEstoque int `json:"itens_baixo_estoque"`
	ItensSemEstoque   int `json:"itens_sem_estoque"`
	TotalDisponivel   int `json:"total_disponivel"`
}
