package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	grpcctx "github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/context"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/router"
	grpcServer "github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/server"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/assistant"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/backend"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/config"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/directory"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/persist"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/server"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/service"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/file"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/memory"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/minio"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/postgres"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/storage/redis"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// storage bundles the persistence seams chosen by PERSIST_BACKEND.
type storage struct {
	snapshots  model.SnapshotStore
	challenges model.ChallengeStore
	close      func() error
}

func openStorage(ctx context.Context, cfg *config.Config) (storage, error) {
	st := storage{
		challenges: memory.NewChallengeStore(),
		close:      func() error { return nil },
	}

	switch cfg.Persist.Backend {
	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return st, err
		}
		st.snapshots = postgres.NewSnapshotRepository(db)
		st.challenges = postgres.NewChallengeRepository(db)
		st.close = db.Close

	case config.BackendMinio:
		store, err := minio.Dial(ctx, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
		if err != nil {
			return st, err
		}
		st.snapshots = store

	case config.BackendRedis:
		store, client, err := redis.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return st, err
		}
		st.snapshots = store
		st.close = client.Close

	default:
		store, err := file.NewStore(cfg.Persist.Dir)
		if err != nil {
			return st, err
		}
		st.snapshots = store
	}

	return st, nil
}

func loadTemplates(path string) ([]assistant.Template, error) {
	if path == "" {
		return assistant.DefaultTemplates(), nil
	}
	return assistant.LoadTemplates(path)
}

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogJSON)

	st, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "backend", cfg.Persist.Backend, "error", err)
	}

	store := state.NewStore()
	persister := persist.NewPersister(store, st.snapshots, logger,
		persist.WithKey(cfg.Persist.Key),
		persist.WithDebounce(cfg.Persist.Debounce),
	)
	if err := persister.Rehydrate(ctx); err != nil {
		logger.Fatal("failed to rehydrate state", "error", err)
	}
	persister.Start()

	templates, err := loadTemplates(cfg.Assistant.TemplatesFile)
	if err != nil {
		logger.Fatal("failed to load assistant templates", "error", err)
	}
	generator := assistant.NewGenerator(templates)

	sim, err := backend.NewSimulated(backend.Latency{
		List:   cfg.Backend.ListLatency,
		Create: cfg.Backend.CreateLatency,
		Delete: cfg.Backend.DeleteLatency,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create room backend", "error", err)
	}

	source := directory.NewHTTPSource(&http.Client{Timeout: cfg.Directory.Timeout}, cfg.Directory.URL)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	authService, err := service.NewAuth(store, st.challenges, tokenManager, persister, logger, service.AuthConfig{
		TTL:           cfg.OTP.TTL,
		SendDelay:     cfg.OTP.SendDelay,
		VerifyDelay:   cfg.OTP.VerifyDelay,
		SweepSchedule: cfg.OTP.SweepSchedule,
	})
	if err != nil {
		logger.Fatal("failed to create auth service", "error", err)
	}
	if err := authService.StartSweeper(); err != nil {
		logger.Fatal("failed to start otp sweeper", "error", err)
	}

	roomsService := service.NewRooms(store, sim, generator, logger, cfg.Assistant.ReplyDelay)
	directoryService := service.NewDirectory(store, source, logger)
	ctxMgr := grpcctx.NewManager()

	r := router.New(authService, roomsService, directoryService, authService.Tokens(), ctxMgr, logger)
	grpcSrv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	sl := server.NewSecurityLayer(cfg.GRPC)

	go func(s model.Server) {
		logger.Info("Starting server on", "address", s.Address(), "persist_backend", cfg.Persist.Backend)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(grpcSrv)

	logAppVersion()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"chat-server": func(ctx context.Context) error {
			logger.Info("received interruption signal, shutting down")
			if err := grpcSrv.Stop(ctx); err != nil {
				logger.Error("error during server shutdown", "error", err, "address", grpcSrv.Address())
			}
			if err := persister.Close(ctx); err != nil {
				logger.Error("failed to persist final state", "error", err)
				return err
			}
			return st.close()
		},
		"otp-sweeper": func(ctx context.Context) error {
			return authService.StopSweeper(ctx)
		},
	})

	exitCode := <-wait
	logger.Info("shutdown complete", "exit_code", exitCode)
	os.Exit(exitCode)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
