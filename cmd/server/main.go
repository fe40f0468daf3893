package main

import (
	"log"
	"strings"

	"gadkin-backend/internal/audit"
	"gadkin-backend/internal/auth"
	"gadkin-backend/internal/config"
	"gadkin-backend/internal/database"
	"gadkin-backend/internal/lotes"
	"gadkin-backend/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuração inválida: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("falha ao inicializar o logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := database.Init(cfg); err != nil {
		logger.Fatal("inicialização do banco falhou", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Error("erro inesperado", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Auth público
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protegido
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Catálogos do formulário de produção
	protected.Get("/catalogo", lotes.CatalogoHandler())

	// Lotes de produção
	// (estatisticas antes de :id para não colidir com o parâmetro)
	protected.Get("/lotes/estatisticas", lotes.EstatisticasHandler())
	protected.Post("/lotes", lotes.CreateLoteHandler())
	protected.Get("/lotes", lotes.ListLotesHandler())
	protected.Get("/lotes/:id", lotes.GetLoteHandler())
	protected.Post("/lotes/:id/concluir", lotes.ConcluirLoteHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	logger.Info("servidor iniciado", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("servidor encerrou com erro", zap.Error(err))
	}
}
