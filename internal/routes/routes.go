package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vivere-estoque/internal/controllers"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/internal/services"
	"vivere-estoque/pkg/config"
	"vivere-estoque/pkg/middleware"
	"vivere-estoque/pkg/service"
)

// InitRouter wires repositories, services and controllers and mounts
// every route group. /api/auth/login and /api/auth/refresh are open;
// everything else under /api requires a valid access token, and the
// user/log groups additionally require the Administrador perfil.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// repositories
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	depositoRepo := repositories.NewDepositoRepository(dbConn, logger)
	materialRepo := repositories.NewMaterialRepository(dbConn, logger)
	estoqueRepo := repositories.NewEstoqueRepository(dbConn, logger)
	eventoRepo := repositories.NewEventoRepository(dbConn, logger)
	alocacaoRepo := repositories.NewAlocacaoRepository(dbConn, logger)
	usuarioRepo := repositories.NewUsuarioRepository(dbConn, logger)
	logRepo := repositories.NewLogRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	// services
	auditService := services.NewAuditService(logRepo, logger)
	authService := services.NewAuthService(usuarioRepo, cacheRepo, auditService, logger, &cfg.Auth)
	depositoService := services.NewDepositoService(depositoRepo, txManager, auditService, logger)
	materialService := services.NewMaterialService(materialRepo, txManager, auditService, logger)
	estoqueService := services.NewEstoqueService(estoqueRepo, txManager, auditService, logger, &cfg.Inventory)
	eventoService := services.NewEventoService(eventoRepo, alocacaoRepo, txManager, auditService, logger)
	alocacaoService := services.NewAlocacaoService(alocacaoRepo, eventoRepo, materialRepo, depositoRepo, txManager, auditService, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, depositoRepo, txManager, auditService, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, estoqueRepo, logger, &cfg.Inventory)
	logService := services.NewLogService(logRepo, logger)
	reportService := services.NewReportService(estoqueRepo, logger)

	// controllers
	authController := controllers.NewAuthController(authService, jwtSvc, logger)
	depositoController := controllers.NewDepositoController(depositoService, logger)
	materialController := controllers.NewMaterialController(materialService, logger)
	estoqueController := controllers.NewEstoqueController(estoqueService, logger)
	eventoController := controllers.NewEventoController(eventoService, logger)
	alocacaoController := controllers.NewAlocacaoController(alocacaoService, logger)
	usuarioController := controllers.NewUsuarioController(usuarioService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	logController := controllers.NewLogController(logService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	secureGroup := api.Group("", authMW.Auth, middleware.AuditContext())

	runAuthRouter(api, secureGroup, authController)
	runDepositoRouter(secureGroup, depositoController)
	runMaterialRouter(secureGroup, materialController)
	runEstoqueRouter(secureGroup, estoqueController)
	runEventoRouter(secureGroup, eventoController)
	runAlocacaoRouter(secureGroup, alocacaoController)
	runUsuarioRouter(secureGroup, usuarioController, authMW)
	runDashboardRouter(secureGroup, dashboardController)
	runLogRouter(secureGroup, logController, authMW)
	runReportRouter(secureGroup, reportController)
}
