package deal

import (
	"github.com/relaycrm/relay/internal/deal/repository"
	"github.com/relaycrm/relay/internal/deal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("deal.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
