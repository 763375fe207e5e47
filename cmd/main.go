package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/storeline/storeline-server/internal/api/http/context"
	"github.com/storeline/storeline-server/internal/api/http/handler"
	"github.com/storeline/storeline-server/internal/api/http/middleware"
	"github.com/storeline/storeline-server/internal/api/http/router"
	"github.com/storeline/storeline-server/internal/config"
	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
	"github.com/storeline/storeline-server/internal/password"
	"github.com/storeline/storeline-server/internal/repository/postgres"
	redisrepo "github.com/storeline/storeline-server/internal/repository/redis"
	"github.com/storeline/storeline-server/internal/server"
	"github.com/storeline/storeline-server/internal/service"
	storage "github.com/storeline/storeline-server/internal/storage/minio"
	"github.com/storeline/storeline-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	sessions, err := redisrepo.NewSessionRegistry(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("failed to initialize session registry", "error", err)
	}
	defer sessions.Close()
	if err := sessions.Ping(ctx); err != nil {
		logger.Fatal("failed to reach session registry", "error", err)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	sessionService := service.NewSession(tokenManager, sessions, model.SessionPolicySingle, logger)
	authService := service.NewAuth(userRepo, password.NewBcrypt(), sessionService, logger)
	productService := service.NewProduct(productRepo, storageClient, cfg.Storage.ImageURLTTL, logger)

	ctxMgr := httpctx.NewManager()

	authHandler := handler.NewAuth(authService, sessionService, cfg.IsProduction(), logger)
	productHandler := handler.NewProduct(productService, logger)
	authMW := middleware.NewAuth(sessionService, ctxMgr, logger)
	adminMW := middleware.NewAdmin(userRepo, ctxMgr, logger)

	e := router.New(authHandler, productHandler, authMW, adminMW, logger)

	httpServer := server.NewHTTPServer(e, fmt.Sprintf(":%s", cfg.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
