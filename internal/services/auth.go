package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/config"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.Usuario, error)
	GetUsuarioByID(ctx context.Context, userID uint64) (*entities.Usuario, error)
}

type AuthService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	audit       AuditServiceInterface
	logger      *zap.Logger
	cfg         *config.AuthConfig
}

func NewAuthService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	audit AuditServiceInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		cacheRepo:   cacheRepo,
		audit:       audit,
		logger:      logger,
		cfg:         cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.Usuario, error) {
	logger := s.logger.With(zap.String("email", payload.Email))

	lockoutKey := fmt.Sprintf("login_attempts:%s", payload.Email)
	attemptsStr, _ := s.cacheRepo.Get(ctx, lockoutKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		logger.Warn("conta temporariamente bloqueada por excesso de tentativas")
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Muitas tentativas de login. Tente novamente em %.0f minutos.", s.cfg.LockoutDuration.Minutes()),
			nil,
			nil,
		)
	}

	usuario, err := s.usuarioRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		s.registerFailedAttempt(ctx, lockoutKey)
		logger.Warn("tentativa de login com e-mail desconhecido")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(usuario.Senha, payload.Senha); err != nil {
		s.registerFailedAttempt(ctx, lockoutKey)
		logger.Warn("tentativa de login com senha incorreta", zap.Uint64("usuarioID", usuario.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Del(ctx, lockoutKey); err != nil {
		logger.Debug("falha ao limpar contador de tentativas", zap.Error(err))
	}

	ctx = sessionForAudit(ctx, usuario)
	s.audit.Record(ctx, nil, "LOGIN", fmt.Sprintf("usuário %q autenticado", usuario.Email))

	return usuario, nil
}

// sessionForAudit attaches the just-authenticated identity so the login
// audit row carries the right usuario_id; the request itself is still
// anonymous at this point.
func sessionForAudit(ctx context.Context, usuario *entities.Usuario) context.Context {
	return authz.WithSession(ctx, authz.Session{
		UserID:     usuario.ID,
		Perfil:     usuario.Perfil,
		DepositoID: usuario.DepositoID,
	})
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	if _, err := s.cacheRepo.Incr(ctx, key); err != nil {
		s.logger.Debug("falha ao incrementar contador de tentativas", zap.Error(err))
		return
	}
	if _, err := s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration); err != nil {
		s.logger.Debug("falha ao definir TTL do contador de tentativas", zap.Error(err))
	}
}

func (s *AuthService) GetUsuarioByID(ctx context.Context, userID uint64) (*entities.Usuario, error) {
	return s.usuarioRepo.FindUsuario(ctx, userID)
}
