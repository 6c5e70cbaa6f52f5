package messaging

import (
	"fmt"
	"log"
	"posyandu-console/internal/app/config"
	"time"

	"github.com/avast/retry-go"
	"github.com/rabbitmq/amqp091-go"
)

const (
	dialAttempts     = 5
	dialInitialDelay = time.Second
	dialMaxDelay     = 10 * time.Second
)

// NewRabbitMQ dials the broker with exponential backoff. It returns nil when no host
// is configured, in which case events stay in-process.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if driverConfig.RabbitMQ.Host == "" {
		log.Println("RABBITMQ_HOST not set, using in-process event delivery")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	var conn *amqp091.Connection
	err := retry.Do(
		func() error {
			var err error
			conn, err = amqp091.Dial(connectionString)
			return err
		},
		retry.Attempts(dialAttempts),
		retry.Delay(dialInitialDelay),
		retry.MaxDelay(dialMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("rabbitMQ dial retry %d: %v", n+1, err)
		}),
	)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
