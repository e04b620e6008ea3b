package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/constants"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/types"
	"vivere-estoque/pkg/utils"
)

type UsuarioServiceInterface interface {
	GetUsuarios(ctx context.Context, filter types.Filter) ([]dto.UsuarioDTO, uint64, error)
	FindUsuario(ctx context.Context, id uint64) (*dto.UsuarioDTO, error)
	CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error)
	UpdateUsuario(ctx context.Context, id uint64, payload dto.UpdateUsuarioDTO) (*dto.UsuarioDTO, error)
	DeleteUsuario(ctx context.Context, id uint64) error
}

type UsuarioService struct {
	usuarioRepo  repositories.UsuarioRepositoryInterface
	depositoRepo repositories.DepositoRepositoryInterface
	txManager    repositories.TxManagerInterface
	audit        AuditServiceInterface
	logger       *zap.Logger
}

func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	depositoRepo repositories.DepositoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	audit AuditServiceInterface,
	logger *zap.Logger,
) UsuarioServiceInterface {
	return &UsuarioService{
		usuarioRepo:  usuarioRepo,
		depositoRepo: depositoRepo,
		txManager:    txManager,
		audit:        audit,
		logger:       logger,
	}
}

func toUsuarioDTO(u entities.Usuario) dto.UsuarioDTO {
	return dto.UsuarioDTO{
		ID:         u.ID,
		Nome:       u.Nome,
		Email:      u.Email,
		Perfil:     u.Perfil,
		DepositoID: u.DepositoID,
	}
}

// checkPerfilBinding enforces the perfil/depósito pairing: a gestor is
// always bound to an existing warehouse, an administrador never is.
func (s *UsuarioService) checkPerfilBinding(ctx context.Context, perfil string, depositoID *uint64) error {
	switch perfil {
	case constants.PerfilGestor:
		if depositoID == nil {
			return apperrors.NewBadRequestError("um Gestor de Depósito precisa de um deposito_id")
		}
		if _, err := s.depositoRepo.FindDeposito(ctx, *depositoID); err != nil {
			return apperrors.NewBadRequestError(fmt.Sprintf("depósito %d não existe", *depositoID))
		}
	case constants.PerfilAdministrador:
		if depositoID != nil {
			return apperrors.NewBadRequestError("um Administrador não pode estar vinculado a um depósito")
		}
	default:
		return apperrors.NewBadRequestError("perfil inválido")
	}
	return nil
}

func (s *UsuarioService) GetUsuarios(ctx context.Context, filter types.Filter) ([]dto.UsuarioDTO, uint64, error) {
	usuarios, total, err := s.usuarioRepo.GetUsuarios(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.UsuarioDTO, 0, len(usuarios))
	for _, u := range usuarios {
		result = append(result, toUsuarioDTO(u))
	}
	return result, total, nil
}

func (s *UsuarioService) FindUsuario(ctx context.Context, id uint64) (*dto.UsuarioDTO, error) {
	usuario, err := s.usuarioRepo.FindUsuario(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toUsuarioDTO(*usuario)
	return &result, nil
}

func (s *UsuarioService) CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error) {
	if err := s.checkPerfilBinding(ctx, payload.Perfil, payload.DepositoID); err != nil {
		return nil, err
	}

	senhaHash, err := utils.HashPassword(payload.Senha)
	if err != nil {
		return nil, err
	}

	var newID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newID, err = s.usuarioRepo.CreateUsuario(ctx, tx, entities.Usuario{
			Nome:       payload.Nome,
			Email:      payload.Email,
			Senha:      senhaHash,
			Perfil:     payload.Perfil,
			DepositoID: payload.DepositoID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "CRIAR_USUARIO", fmt.Sprintf("usuário %q criado (id %d, perfil %s)", payload.Email, newID, payload.Perfil))
	return s.FindUsuario(ctx, newID)
}

func (s *UsuarioService) UpdateUsuario(ctx context.Context, id uint64, payload dto.UpdateUsuarioDTO) (*dto.UsuarioDTO, error) {
	existing, err := s.usuarioRepo.FindUsuario(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if payload.Nome.Valid {
		updated.Nome = payload.Nome.String
	}
	if payload.Email.Valid {
		updated.Email = payload.Email.String
	}
	if payload.Senha.Valid && payload.Senha.String != "" {
		senhaHash, err := utils.HashPassword(payload.Senha.String)
		if err != nil {
			return nil, err
		}
		updated.Senha = senhaHash
	}
	if payload.Perfil.Valid {
		updated.Perfil = payload.Perfil.String
	}
	if payload.DepositoID.Valid {
		depositoID := payload.DepositoID.Uint64
		updated.DepositoID = &depositoID
	}
	// Switching to administrador drops any warehouse binding.
	if updated.Perfil == constants.PerfilAdministrador {
		updated.DepositoID = nil
	}

	if err := s.checkPerfilBinding(ctx, updated.Perfil, updated.DepositoID); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.usuarioRepo.UpdateUsuario(ctx, tx, id, updated)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "ATUALIZAR_USUARIO", fmt.Sprintf("usuário %d atualizado", id))
	return s.FindUsuario(ctx, id)
}

func (s *UsuarioService) DeleteUsuario(ctx context.Context, id uint64) error {
	if err := s.usuarioRepo.DeleteUsuario(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, "EXCLUIR_USUARIO", fmt.Sprintf("usuário %d excluído", id))
	return nil
}
