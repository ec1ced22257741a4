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
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/jmfontan/docchat-server/internal/api/grpc/context"
	"github.com/jmfontan/docchat-server/internal/api/grpc/router"
	grpcServer "github.com/jmfontan/docchat-server/internal/api/grpc/server"
	"github.com/jmfontan/docchat-server/internal/config"
	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
	"github.com/jmfontan/docchat-server/internal/observability"
	"github.com/jmfontan/docchat-server/internal/password"
	"github.com/jmfontan/docchat-server/internal/repository/postgres"
	"github.com/jmfontan/docchat-server/internal/resolver"
	"github.com/jmfontan/docchat-server/internal/server"
	"github.com/jmfontan/docchat-server/internal/service"
	"github.com/jmfontan/docchat-server/internal/session"
	storage "github.com/jmfontan/docchat-server/internal/storage/minio"
	"github.com/jmfontan/docchat-server/internal/token"
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

	userRepo := postgres.NewUserRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	metricsRepo := postgres.NewMetricsRepository(db)

	hasher := password.NewHasher(password.Params{
		Time:        cfg.Argon2.Time,
		MemoryKiB:   cfg.Argon2.MemoryKiB,
		Parallelism: cfg.Argon2.Parallelism,
		KeyLength:   cfg.Argon2.KeyLength,
		SaltLength:  cfg.Argon2.SaltLength,
	})

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.DefaultTTL, logger)
	if err != nil {
		logger.Fatal("failed to create token manager", "error", err)
	}

	sessions := session.NewStore(cfg.Session.Capacity, cfg.Session.TTL)
	refResolver := resolver.New(documentRepo, sessions, cfg.Resolver.LookupTimeout, logger.With("component", "resolver"))

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

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger.With("component", "auth"))
	chatService := service.NewChat(refResolver, sessions, documentRepo, storageClient, metricsRepo, logger.With("component", "chat"))
	ctxMgr := grpcctx.NewManager()

	obsServer := observability.NewServer(cfg.Observability.Addr, func(ctx context.Context) bool {
		return db.Ping(ctx) == nil
	}, logger)
	obsErrCh, err := obsServer.Start()
	if err != nil {
		logger.Fatal("failed to start observability server", "error", err)
	}

	srv := registerGRPCServer(authService, chatService, ctxMgr, logger, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer

	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
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
	}(srv)

	logAppVersion()

	select {
	case <-ctx.Done():
		logger.Info("received interruption signal, shutting down")
	case err := <-obsErrCh:
		logger.Error("observability server failed, shutting down", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}
	if err := obsServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during observability server shutdown", "error", err)
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

func registerGRPCServer(
	authService *service.Auth,
	chatService *service.Chat,
	ctxMgr model.ContextManager,
	logger *logger.Logger,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(authService, chatService, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
