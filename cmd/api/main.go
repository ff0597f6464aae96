package main

import (
	"context"

	dbadapter "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/db"
	httpadapter "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/handlers"
	httpmiddleware "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/middleware"
	appservice "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/app/service"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/config"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.DbAutoMigrate {
		if err := dbadapter.Migrate(context.Background(), db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	store := dbadapter.NewStore(db)
	todoService := appservice.NewTodoListService(store)
	taskService := appservice.NewTaskService(store)
	categoryService := appservice.NewCategoryService(store)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.CORSMiddleware(cfg.CorsAllowedOrigins),
	)
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Todo:     handlers.NewTodoHandler(todoService),
		Task:     handlers.NewTaskHandler(taskService),
		Category: handlers.NewCategoryHandler(categoryService, todoService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("db_driver", db.DriverName()))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
