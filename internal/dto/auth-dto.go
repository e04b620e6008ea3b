package dto

type LoginDTO struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type LoginResponseDTO struct {
	AccessToken string     `json:"access_token"`
	Usuario     UsuarioDTO `json:"usuario"`
}
