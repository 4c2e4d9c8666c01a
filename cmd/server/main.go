package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/api"
	"github.com/Sanzzyy/management-finasial/internal/api/controller"
	"github.com/Sanzzyy/management-finasial/internal/config"
	"github.com/Sanzzyy/management-finasial/internal/infrastructure/database"
	"github.com/Sanzzyy/management-finasial/internal/infrastructure/embedding"
	"github.com/Sanzzyy/management-finasial/internal/infrastructure/llm"
	"github.com/Sanzzyy/management-finasial/internal/infrastructure/vectordb"
	"github.com/Sanzzyy/management-finasial/internal/repository"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           Money Manager API
// @version         1.0
// @description     Personal finance tracker: transactions, budgets, goals, schedules, reports, and an AI assistant.

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>" (note the space)

func main() {
	// 1. Logger: JSON output for easy parsing, source locations included.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; config.yaml plus FINTRACK_* env vars are the source
	// of truth.
	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	// 2. Infra
	db := database.NewMySQLConnection(conf.Database.DSN)
	llmClient := llm.NewChatClient(conf.LLM.APIKey, conf.LLM.BaseURL, conf.LLM.Model)
	embedder := embedding.NewOpenAIClient(conf.OpenAI.APIKey, conf.OpenAI.BaseURL, conf.OpenAI.Model)

	vecClient, err := vectordb.NewQdrantClient(conf.Qdrant.Host, conf.Qdrant.Port)
	if err != nil {
		log.Fatalf("failed to init vector DB: %v", err)
	}
	defer vecClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := vecClient.InitCollection(ctx); err != nil {
		log.Fatalf("failed to init qdrant collection: %v", err)
	}

	if conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer wiring
	userRepo := repository.NewUserRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	budgetRepo := repository.NewBudgetRepo(db)
	goalRepo := repository.NewGoalRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	memoryRepo := vectordb.NewQdrantRepository(vecClient)

	ctrls := api.Controllers{
		Auth:        controller.NewAuthController(service.NewAuthService(userRepo)),
		Transaction: controller.NewTransactionController(service.NewTransactionService(txRepo, embedder, memoryRepo)),
		Budget:      controller.NewBudgetController(service.NewBudgetService(budgetRepo, txRepo)),
		Goal:        controller.NewGoalController(service.NewGoalService(goalRepo)),
		Schedule:    controller.NewScheduleController(service.NewScheduleService(scheduleRepo)),
		Report:      controller.NewReportController(service.NewReportService(txRepo)),
		Chat:        controller.NewChatController(service.NewChatService(llmClient, embedder, txRepo, budgetRepo, memoryRepo)),
	}

	// 4. Server start
	r := gin.Default()
	api.RegisterRoutes(r, ctrls)

	slog.Info("money manager server starting", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("server failed", "error", err)
	}
}
