package bootstrap

import (
	"log/slog"

	"salon-booking/internal/infra/notify"
	"salon-booking/internal/infra/payment"
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewRefundProvider,
		NewNotifier,
	),
)

func NewRefundProvider(cfg config.Config, logger *slog.Logger) (payment.RefundProvider, error) {
	if cfg.Payment.OmiseSecretKey == "" {
		logger.Info("payment keys not configured, refunds disabled")
		return payment.NoopRefunds{}, nil
	}

	client, err := payment.NewOmiseClient(cfg.Payment.OmisePublicKey, cfg.Payment.OmiseSecretKey)
	if err != nil {
		return nil, err
	}
	return payment.NewOmiseRefunds(client), nil
}

func NewNotifier(cfg config.Config, logger *slog.Logger) notify.Notifier {
	if cfg.Webhook.BookingURL == "" {
		return notify.NoopNotifier{}
	}
	return notify.NewWebhookNotifier(cfg.Webhook.BookingURL, cfg.Webhook.Timeout, logger)
}
