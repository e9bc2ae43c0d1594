package redisnotify

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const notifyBuffer = 16

// Notifier доставляет изменения коллекций через Redis Pub/Sub
type Notifier struct {
	client  redis.UniversalClient
	channel string
	logger  Logger
}

// New создает notifier поверх готового клиента
func New(client redis.UniversalClient, channel string, logger Logger) *Notifier {
	return &Notifier{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Publish публикует имя изменённой коллекции
func (n *Notifier) Publish(ctx context.Context, collection string) error {
	if err := n.client.Publish(ctx, n.channel, collection).Err(); err != nil {
		return fmt.Errorf("%w: collection=%s: %v", ErrPublish, collection, err)
	}
	return nil
}

// Listen подписывается на канал. Канал результата закрывается после отмены ctx
func (n *Notifier) Listen(ctx context.Context) (<-chan string, error) {
	sub := n.client.Subscribe(ctx, n.channel)

	// Дожидаемся подтверждения подписки, чтобы не потерять первые сообщения
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("%w: channel=%s: %v", ErrSubscribe, n.channel, err)
	}
	n.logger.Info("redisnotify: subscribed to channel=%s", n.channel)

	out := make(chan string, notifyBuffer)
	go func() {
		defer close(out)
		defer func() {
			if err := sub.Close(); err != nil {
				n.logger.Warn("redisnotify: close subscription: %v", err)
			}
		}()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
