package blocknotify

import (
	"context"

	"github.com/gabapcia/blocknotify/internal/pkg/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instruments groups the tracer and metric instruments used by the loop.
// They come from the global providers, so they are no-ops until telemetry is
// initialized.
type instruments struct {
	tracer        trace.Tracer
	polls         metric.Int64Counter
	notifications metric.Int64Counter
	latestHeight  metric.Int64Gauge
}

func newInstruments() instruments {
	meter := otel.Meter(telemetry.InstrumentationName)

	polls, err := meter.Int64Counter("blocknotify.polls",
		metric.WithDescription("Poll cycles by outcome"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	notifications, err := meter.Int64Counter("blocknotify.notifications",
		metric.WithDescription("Block notifications by delivery result"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	latestHeight, err := meter.Int64Gauge("blocknotify.block.height",
		metric.WithDescription("Height of the latest announced block"),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return instruments{
		tracer:        otel.Tracer(telemetry.InstrumentationName),
		polls:         polls,
		notifications: notifications,
		latestHeight:  latestHeight,
	}
}

func (i instruments) recordPoll(ctx context.Context, outcome pollOutcome) {
	i.polls.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

func (i instruments) recordNotification(ctx context.Context, delivered bool) {
	i.notifications.Add(ctx, 1, metric.WithAttributes(attribute.Bool("delivered", delivered)))
}

func (i instruments) recordHeight(ctx context.Context, height int64) {
	i.latestHeight.Record(ctx, height)
}
