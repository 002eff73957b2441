package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/connecta/identity-service/config"
	"github.com/connecta/identity-service/internal/application"
	"github.com/connecta/identity-service/pkg/helpers"
)

// Drains the registered-identity queue and logs each event. Stands in
// for the downstream services that consume registrations in production.
func main() {
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch across worker replicas.
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if err := ch.ExchangeDeclare(cfg.RabbitMQExchange, "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare: %v", err)
	}
	if _, err := ch.QueueDeclare(cfg.RegisteredQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}
	if err := ch.QueueBind(cfg.RegisteredQueue, helpers.RoutingKeyRegistered, cfg.RabbitMQExchange, false, nil); err != nil {
		log.Fatalf("queue bind: %v", err)
	}

	msgs, err := ch.Consume(cfg.RegisteredQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var event application.RegisteredEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				logger.WithError(err).Warn("bad registered event")
				_ = msg.Nack(false, false)
				continue
			}
			logger.WithField("identity_id", event.ID).
				WithField("profile_kind", event.ProfileKind).
				Info("identity registered")
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("notify worker listening on queue=%s", cfg.RegisteredQueue)
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
