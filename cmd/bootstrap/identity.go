package bootstrap

import (
	"context"

	"coachbook/internal/handler/middleware"
	"coachbook/internal/pkg/config"
	"coachbook/internal/pkg/identity"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		fx.Annotate(
			NewTokenResolver,
			fx.As(new(middleware.TokenResolver)),
		),
	),
)

// NewTokenResolver prefers the shared secret; the JWKS refresh goroutine
// lives until the app stops.
func NewTokenResolver(lc fx.Lifecycle, cfg config.Config) (*identity.Resolver, error) {
	if cfg.Auth.JWTSecret != "" {
		return identity.NewHMACResolver(cfg.Auth.JWTSecret, cfg.Auth), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	resolver, err := identity.NewJWKSResolver(ctx, cfg.Auth)
	if err != nil {
		cancel()
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return resolver, nil
}
