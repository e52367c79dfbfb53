package events_fx

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"beacon/internal/events"
)

var Module = fx.Options(
	fx.Provide(provideHub, providePublisher),
	fx.Invoke(runHub))

func provideHub(logger *logrus.Logger) *events.Hub {
	return events.NewHub(logger)
}

func providePublisher(hub *events.Hub) events.Publisher {
	return hub
}

func runHub(lc fx.Lifecycle, hub *events.Hub) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
