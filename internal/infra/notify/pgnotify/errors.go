package pgnotify

import "errors"

var (
	// ErrListen возвращается, если не удалось подписаться на канал
	ErrListen = errors.New("pgnotify: failed to listen")

	// ErrPublish возвращается при ошибке отправки уведомления
	ErrPublish = errors.New("pgnotify: failed to publish")
)
