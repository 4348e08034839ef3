package broker

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// exchange is the events exchange declared for product changes. No route
// publishes to it yet; the connection is held so deployments that consume
// catalogue events keep working.
const exchange = "products"

// Broker is an explicitly owned AMQP connection handle. It is created once
// at startup, passed to whoever needs it, and closed during shutdown.
type Broker struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  zerolog.Logger
}

// Connect dials the broker and declares the product events exchange.
func Connect(url string, logger zerolog.Logger) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open broker channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}

	logger.Info().Str("exchange", exchange).Msg("message broker connected")

	return &Broker{
		conn:    conn,
		channel: channel,
		logger:  logger.With().Str("component", "broker").Logger(),
	}, nil
}

// Close releases the channel and the underlying connection.
func (b *Broker) Close() {
	if err := b.channel.Close(); err != nil {
		b.logger.Warn().Err(err).Msg("failed to close broker channel")
	}
	if err := b.conn.Close(); err != nil {
		b.logger.Warn().Err(err).Msg("failed to close broker connection")
	}
}
