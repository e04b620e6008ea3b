package constants

// Perfis de usuário. The system has exactly two roles: the
// administrator sees every warehouse, the gestor only their own.
const (
	PerfilAdministrador = "Administrador"
	PerfilGestor        = "Gestor de Depósito"
)

// Status de evento.
const (
	EventoConfirmado  = "Confirmado"
	EventoEmAndamento = "Em Andamento"
	EventoFinalizado  = "Finalizado"
	EventoCancelado   = "Cancelado"
)

// Tipos de ajuste de estoque.
const (
	AjusteEntrada = "entrada"
	AjusteSaida   = "saida"
)
