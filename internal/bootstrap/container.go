package bootstrap

import (
	"context"
	"log"
	"os"

	"hr-assist-be/internal/config"
	"hr-assist-be/internal/controller"
	"hr-assist-be/internal/handler"
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/pkg/mailer"
	"hr-assist-be/internal/repository/implementation"
	"hr-assist-be/internal/service"
	"hr-assist-be/internal/websocket"
	"hr-assist-be/pkg/embedding"
	"hr-assist-be/pkg/llm/factory"
	"hr-assist-be/pkg/pipeline"
	"hr-assist-be/pkg/retrieval"

	pktNats "hr-assist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	QueryController      controller.IQueryController
	DocumentController   controller.IDocumentController
	AnalyticsController  controller.IAnalyticsController
	EscalationController controller.IEscalationController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	EscalationFeedHandler *handler.EscalationFeedHandler
	WebSocketHub          *websocket.Hub

	// Core services, exposed for the CLI tools
	QueryService     service.IQueryService
	IngestionService service.IIngestionService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pipelineLogger := log.New(os.Stdout, "", log.LstdFlags)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbeddingModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.OllamaEmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GroqAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/escalation_feed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Repositories
	queryLogRepo := implementation.NewQueryLogRepository(db)
	feedbackRepo := implementation.NewQueryFeedbackRepository(db)
	escalationRepo := implementation.NewEscalationRepository(db)
	documentRepo := implementation.NewPolicyDocumentRepository(db)
	policyEmbeddingRepo := implementation.NewPolicyEmbeddingRepository(db)
	employeeRepo := implementation.NewEmployeeRepository(db)
	faqRepo := implementation.NewFAQPatternRepository(db)

	// 6. Query pipeline
	retrievalService := retrieval.NewService(policyEmbeddingRepo, embeddingProvider, pipelineLogger)
	analyticsSink := service.NewQueryAnalyticsSink(queryLogRepo, natsPub, sysLogger)
	orchestrator := pipeline.NewOrchestrator(llmProvider, retrievalService, analyticsSink, pipelineLogger)

	// 7. Services
	escalationService := service.NewEscalationService(
		escalationRepo,
		employeeRepo,
		emailService,
		natsPub,
		wsHub,
		cfg.HR.TeamEmail,
		sysLogger,
	)
	queryService := service.NewQueryService(
		orchestrator,
		escalationService,
		queryLogRepo,
		feedbackRepo,
		faqRepo,
		sysLogger,
	)
	ingestionService := service.NewIngestionService(
		documentRepo,
		policyEmbeddingRepo,
		pubSub,
		cfg.HR.EmbedTopic,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.HR.EmbedTopic,
		documentRepo,
		policyEmbeddingRepo,
		embeddingProvider,
		natsPub,
	)
	analyticsService := service.NewAnalyticsService(
		queryLogRepo,
		escalationRepo,
		feedbackRepo,
		faqRepo,
		sysLogger,
	)
	authService := service.NewAuthService(
		employeeRepo,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTLMin,
		sysLogger,
	)

	feedHandler := handler.NewEscalationFeedHandler(wsHub, wsLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		QueryController:      controller.NewQueryController(queryService),
		DocumentController:   controller.NewDocumentController(ingestionService),
		AnalyticsController:  controller.NewAnalyticsController(analyticsService),
		EscalationController: controller.NewEscalationController(escalationService),

		ConsumerService: consumerService,

		EscalationFeedHandler: feedHandler,
		WebSocketHub:          wsHub,

		QueryService:     queryService,
		IngestionService: ingestionService,
	}
}
