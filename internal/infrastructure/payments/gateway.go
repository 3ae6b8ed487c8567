package payments

import (
	"fmt"

	appconfig "zap_shift/internal/config"
	"zap_shift/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NewCheckoutGateway picks the checkout provider from configuration. Mock
// mode wins over any provider so local runs need no credentials.
func NewCheckoutGateway(cfg appconfig.PaymentsConfig, logger *zap.Logger) (interfaces.ICheckoutGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Mock {
		logger.Warn("payment gateway mock mode enabled")
		return NewMockGateway(cfg.SiteDomain, cfg.Currency, logger), nil
	}

	switch cfg.Provider {
	case "", appconfig.ProviderStripe:
		return NewStripeGateway(cfg.StripeSecretKey, cfg.SiteDomain, cfg.Currency, logger)
	case appconfig.ProviderMercadoPago:
		return NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.SiteDomain, cfg.Currency, logger)
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}
