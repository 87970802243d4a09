package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"project_cloudi/internal/config"
	"project_cloudi/internal/infrastructure"
	"project_cloudi/internal/interfaces"
	"project_cloudi/internal/interfaces/http"
	"project_cloudi/internal/repository"
	"project_cloudi/internal/usecases"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	store := infrastructure.NewJSONStore(cfg.Storage.DataDir, logger)

	faqTable := repository.LoadFAQ(cfg.Storage.DataDir, logger)
	casualTable := repository.CasualReplies()

	generator := infrastructure.NewOpenAIGenerator(cfg.OpenAI, logger)
	resolver := usecases.NewResolver(
		usecases.NewCasualMatcher(casualTable),
		usecases.NewFAQMatcher(faqTable),
		usecases.NewStyler(nil),
		generator,
		store,
		logger,
	)

	analytics := usecases.NewAnalyticsRecorder(store, logger)
	sessions := infrastructure.NewSessionManager()
	twilio := infrastructure.NewTwilioClient(cfg.Twilio)

	var facebook interfaces.Messenger
	if cfg.FacebookEnabled() {
		facebook = infrastructure.NewGraphClient(cfg.Facebook.PageAccessToken)
	} else {
		logger.Info("facebook channel disabled (credentials missing)")
	}

	handler := http.NewHandler(resolver, sessions, analytics, store, twilio, facebook, cfg.Facebook.VerifyToken, cfg.Session.Secret, logger)
	admin := http.NewAdminHandler(cfg.Admin.Username, cfg.Admin.Password, cfg.Session.Secret, analytics, store, logger)
	middleware := http.NewMiddleware(cfg.Session.Secret)

	r := gin.Default()
	http.SetupRoutes(r, handler, admin, middleware)

	logger.Info("starting cloudi chatbot",
		zap.String("port", cfg.Server.Port),
		zap.Int("faq_entries", len(faqTable)),
		zap.Int("casual_replies", len(casualTable)),
	)
	if err := r.Run("0.0.0.0:" + cfg.Server.Port); err != nil {
		logger.Fatal("http server exited", zap.Error(err))
	}
}
