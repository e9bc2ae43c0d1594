package pgnotify

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/parlourease/pkg/dbmetrics"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	notifyBuffer         = 16
)

// Notifier доставляет изменения коллекций через LISTEN/NOTIFY PostgreSQL
// Полезная нагрузка уведомления - имя коллекции
type Notifier struct {
	db           DBExecutor
	dsn          string
	channel      string
	pingInterval time.Duration
	logger       Logger
}

// New создает notifier. dsn используется отдельным соединением listener'а
func New(db DBExecutor, dsn, channel string, pingInterval time.Duration, logger Logger) *Notifier {
	if pingInterval <= 0 {
		pingInterval = 90 * time.Second
	}
	return &Notifier{
		db:           db,
		dsn:          dsn,
		channel:      channel,
		pingInterval: pingInterval,
		logger:       logger,
	}
}

// Publish отправляет pg_notify. Внутри транзакции уведомление уходит при коммите
func (n *Notifier) Publish(ctx context.Context, collection string) error {
	executor := dbmetrics.GetExecutor(ctx, n.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_notify($1, $2)", n.channel, collection); err != nil {
		return fmt.Errorf("%w: collection=%s: %v", ErrPublish, collection, err)
	}
	return nil
}

// Listen открывает listener и возвращает канал с именами изменённых коллекций
// Пустая строка означает, что соединение переподключалось и перечитать нужно всё
// Канал закрывается после отмены ctx
func (n *Notifier) Listen(ctx context.Context) (<-chan string, error) {
	listener := pq.NewListener(n.dsn, minReconnectInterval, maxReconnectInterval, n.onEvent)
	if err := listener.Listen(n.channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("%w: channel=%s: %v", ErrListen, n.channel, err)
	}
	n.logger.Info("pgnotify: listening on channel=%s", n.channel)

	out := make(chan string, notifyBuffer)
	go n.forward(ctx, listener, out)

	return out, nil
}

func (n *Notifier) forward(ctx context.Context, listener *pq.Listener, out chan<- string) {
	defer close(out)
	defer func() {
		if err := listener.Close(); err != nil {
			n.logger.Warn("pgnotify: close listener: %v", err)
		}
	}()

	ticker := time.NewTicker(n.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case notification, ok := <-listener.Notify:
			if !ok {
				return
			}
			// nil приходит после переподключения: часть уведомлений могла потеряться
			payload := ""
			if notification != nil {
				payload = notification.Extra
			}
			select {
			case out <- payload:
			case <-ctx.Done():
				return
			}

		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				n.logger.Warn("pgnotify: ping failed: %v", err)
			}
		}
	}
}

func (n *Notifier) onEvent(event pq.ListenerEventType, err error) {
	switch event {
	case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
		n.logger.Warn("pgnotify: listener event=%d: %v", event, err)
	case pq.ListenerEventReconnected:
		n.logger.Info("pgnotify: listener reconnected")
	}
}
