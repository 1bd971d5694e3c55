package revenue

import (
	"github.com/relaycrm/relay/internal/revenue/repository"
	"github.com/relaycrm/relay/internal/revenue/service"
	"go.uber.org/fx"
)

var Module = fx.Module("revenue.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
