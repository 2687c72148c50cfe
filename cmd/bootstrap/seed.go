package bootstrap

import (
	"context"
	"log/slog"

	"campus-parking/internal/pkg/config"
	"campus-parking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedSampleLots),
)

func SeedSampleLots(lc fx.Lifecycle, cfg config.Config, occupancy commands.OccupancyCommands, logger *slog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			n, err := occupancy.SeedIfEmpty(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("Seeded sample parking lots", "count", n)
			}
			return nil
		},
	})
}
