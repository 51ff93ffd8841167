package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Event is a best-effort notification about a booking. Delivery to the
// push gateway happens out of process; this service only publishes.
type Event struct {
	Type         string `json:"type"`
	BookingID    uint   `json:"booking_id"`
	BarberID     uint   `json:"barber_id"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

// Notifier publishes events to a redis channel from a worker
// goroutine. Dispatch never blocks and failures never reach the
// caller; a full queue drops the event.
type Notifier struct {
	rdb     *redis.Client
	channel string
	queue   chan Event
	logger  *zerolog.Logger
}

func New(rdb *redis.Client, channel string, logger *zerolog.Logger) *Notifier {
	n := &Notifier{
		rdb:     rdb,
		channel: channel,
		queue:   make(chan Event, 100),
		logger:  logger,
	}

	go n.worker()
	return n
}

func (n *Notifier) worker() {
	for ev := range n.queue {
		if n.rdb == nil {
			n.logger.Debug().Str("type", ev.Type).Msg("notifications disabled, dropping event")
			continue
		}

		payload, err := json.Marshal(ev)
		if err != nil {
			n.logger.Error().Err(err).Msg("notify marshal error")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
			n.logger.Error().Err(err).Str("type", ev.Type).Msg("notify publish error")
		}
		cancel()
	}
}

func (n *Notifier) Dispatch(ev Event) {
	select {
	case n.queue <- ev:
	default:
		n.logger.Warn().Str("type", ev.Type).Msg("notify queue full, dropping event")
	}
}
