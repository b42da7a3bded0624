package bootstrap

import (
	"context"
	"log"

	"eva-support-be/internal/config"
	"eva-support-be/internal/controller"
	"eva-support-be/internal/handler"
	"eva-support-be/internal/kv"
	"eva-support-be/internal/pkg/logger"
	"eva-support-be/internal/runtime"
	"eva-support-be/internal/service"
	"eva-support-be/internal/store"
	"eva-support-be/internal/websocket"
	"eva-support-be/pkg/completion/factory"

	pktNats "eva-support-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const chatEventsTopic = "chat.events"

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	TrashController     controller.ITrashController
	SettingsController  controller.ISettingsController
	WellbeingController controller.IWellbeingController

	// Background Services (Exposed for main.go to run)
	NotifierService *service.NotifierService

	// WebSockets
	EventsHandler *handler.EventsHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional mirror; the app runs fine without it)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	// Redis
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// Persistence backend for sessions, trash, settings and moods
	kvStore, err := kv.NewFromConfig(cfg, rdb)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize storage driver: %v", err)
	}
	log.Printf("[INFO] Using storage driver: %s", cfg.Storage.Driver)

	// Completion Provider based on Config
	provider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize completion provider: %v", err)
	}
	log.Printf("[INFO] Using completion provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Stores
	sessionStore := store.NewSessionStore(kvStore, sysLogger)
	trashLog := store.NewTrashLog(kvStore, sysLogger)
	settingsStore := store.NewSettingsStore(kvStore, sysLogger)
	moodStore := store.NewMoodStore(kvStore, sysLogger)
	stateRepo := runtime.NewStateRepository()

	// 4. Services
	publisherService := service.NewPublisherService(chatEventsTopic, pubSub)
	notifierService := service.NewNotifierService(pubSub, chatEventsTopic, wsHub, natsPub, sysLogger)

	conversationService := service.NewConversationService(
		sessionStore,
		stateRepo,
		provider,
		publisherService,
		sysLogger,
		cfg.Chat.RevealIntervalMs,
		cfg.Ai.RequestTimeout,
	)
	trashService := service.NewTrashService(
		sessionStore,
		trashLog,
		publisherService,
		sysLogger,
		cfg.Chat.TrashRetainOnDelete,
	)
	settingsService := service.NewSettingsService(settingsStore, sysLogger)
	wellbeingService := service.NewWellbeingService(moodStore, sessionStore, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController:      controller.NewChatController(conversationService),
		TrashController:     controller.NewTrashController(trashService),
		SettingsController:  controller.NewSettingsController(settingsService),
		WellbeingController: controller.NewWellbeingController(wellbeingService),

		NotifierService: notifierService,

		EventsHandler: handler.NewEventsHandler(wsHub, wsLogger),
		WebSocketHub:  wsHub,
	}
}
