package services

import (
	"context"

	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/contextkeys"
)

type AuditServiceInterface interface {
	Record(ctx context.Context, q repositories.Querier, acao, descricao string)
}

// AuditService appends one audit row per successful mutation. The
// affected route and correlation id come from the request context, put
// there by the audit middleware.
type AuditService struct {
	logRepo repositories.LogRepositoryInterface
	logger  *zap.Logger
}

func NewAuditService(logRepo repositories.LogRepositoryInterface, logger *zap.Logger) AuditServiceInterface {
	return &AuditService{logRepo: logRepo, logger: logger}
}

// Record writes one audit row, after the mutation it describes has
// committed. A nil q writes through the pool. A failed audit write
// never fails the request: it is logged and dropped.
func (s *AuditService) Record(ctx context.Context, q repositories.Querier, acao, descricao string) {
	session := authz.FromContext(ctx)

	entry := entities.LogEntry{
		UsuarioID: session.UserID,
		Acao:      acao,
		Descricao: descricao,
	}
	if rota, ok := ctx.Value(contextkeys.RotaKey).(string); ok {
		entry.RotaAfetada = rota
	}
	if cid, ok := ctx.Value(contextkeys.CorrelationIDKey).(string); ok {
		entry.CorrelationID = cid
	}

	if err := s.logRepo.CreateLog(ctx, q, entry); err != nil {
		s.logger.Error("falha ao gravar log de auditoria",
			zap.String("acao", acao),
			zap.Error(err),
		)
	}
}
