package bootstrap

import (
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/timegrid"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewSlotGrid,
	),
)

// NewSlotGrid builds the single slot-grid policy every availability and
// booking call site shares.
func NewSlotGrid(cfg config.Config) (timegrid.Grid, error) {
	return timegrid.New(cfg.Slots.Open, cfg.Slots.Close, cfg.Slots.Step)
}
