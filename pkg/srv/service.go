package srv

import (
	"context"

	"github.com/halcyondev/jarvis/pkg/log"
)

// Service is anything with a lifecycle tied to the process: background
// workers, open resources, transports.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// ShutdownServices waits for the context to be cancelled and then shuts the
// services down in order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for _, service := range services {
		if err := service.Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}
