package bootstrap

import (
	"log"

	"complaint-assistant-be/internal/config"
	"complaint-assistant-be/internal/controller"
	"complaint-assistant-be/internal/pkg/logger"
	"complaint-assistant-be/internal/pkg/serverutils"
	"complaint-assistant-be/internal/repository/casefile"
	"complaint-assistant-be/internal/repository/memory"
	"complaint-assistant-be/internal/service"
	"complaint-assistant-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	CaseController      controller.ICaseController
	ChatController      controller.IChatController
	ChecklistController controller.IChecklistController

	// Exposed for server wiring
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenAIAPIKey,
		providerBaseURL(cfg),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Repositories
	sessionRepo := memory.NewSessionRepository()
	historyRepo := memory.NewHistoryRepository()
	caseFileRepo := casefile.NewRepository(cfg.App.HistoryBasePath)

	// 4. Services
	authService := service.NewAuthService(sessionRepo, historyRepo, cfg.Auth.JwtSecret, sysLogger)
	chatService := service.NewChatService(sessionRepo, historyRepo, llmProvider, sysLogger)
	caseService := service.NewCaseService(sessionRepo, historyRepo, caseFileRepo, sysLogger)

	// 5. Controllers
	sessionMW := serverutils.SessionMiddleware(cfg.Auth.JwtSecret)

	return &Container{
		AuthController:      controller.NewAuthController(authService, sessionMW),
		CaseController:      controller.NewCaseController(caseService, chatService, sessionMW),
		ChatController:      controller.NewChatController(chatService, sessionMW),
		ChecklistController: controller.NewChecklistController(sessionMW),
		Logger:              sysLogger,
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}
