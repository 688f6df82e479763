package main

import (
	"context"
	"log/slog"
	"os"

	"authhub/config"
	"authhub/internal/delivery"
	"authhub/internal/delivery/http"
	"authhub/internal/delivery/http/middleware"
	"authhub/internal/delivery/http/router/handler"
	"authhub/internal/infra/audit"
	"authhub/internal/infra/auth"
	"authhub/internal/infra/auth/google"
	logs "authhub/internal/infra/log"
	"authhub/internal/infra/persistence/postgres"
	"authhub/internal/infra/provider/local"
	"authhub/internal/infra/provider/supabase"
	"authhub/internal/infra/pubsub"
	"authhub/internal/infra/qrcode"
	"authhub/internal/infra/ratelimit"
	"authhub/internal/infra/storage"
	"authhub/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(cfg),
		injectProvider(cfg),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Provide(
			logs.New,
			context.Background,
			clockwork.NewRealClock,
			qrcode.NewQRCodeService,
			audit.NewAuditLogger,
		),
		pubsub.Module,
		storage.Module(cfg),
	)
}

// injectProvider selects the identity backend from auth.provider.
func injectProvider(cfg *config.Config) fx.Option {
	if cfg.Auth.Provider != config.ProviderLocal {
		return fx.Provide(supabase.NewProvider)
	}

	return fx.Options(
		injectRepo(),
		injectService(cfg),
		fx.Provide(
			ratelimit.New,
			local.NewProvider,
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewMFARepository,
			postgres.NewVerificationTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService(cfg *config.Config) fx.Option {
	services := []fx.Option{
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewPasswordValidator,
			auth.NewJWTService,
			auth.NewTOTPService,
		),
	}

	// Google sign-in is only offered when a client is configured.
	if cfg.GoogleOAuth != nil && cfg.GoogleOAuth.ClientID != "" {
		services = append(services, fx.Provide(
			fx.Annotate(
				google.NewOAuthService,
				fx.ResultTags(`group:"oauth_services"`),
			),
		))
	}

	return fx.Options(services...)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthServiceFactory,
			impl.NewSessionRegistry,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionCookie,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
