package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/shopline/storefront/internal/config"
)

// Module exposes the webhook sender implementation to fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	if p.Config.WebhookAddress == "" {
		p.Logger.Info("webhook notifications disabled")
		return NoopSender{}, nil
	}
	return NewHTTPSender(p.Config.WebhookAddress, p.Logger)
}
