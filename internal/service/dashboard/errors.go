package dashboard

import "errors"

var (
	// ErrAlreadyStarted возвращается при повторном запуске проекции
	ErrAlreadyStarted = errors.New("dashboard: projection already started")

	// ErrSubscribe возвращается, если не удалось подписаться на коллекцию
	ErrSubscribe = errors.New("dashboard: failed to subscribe")
)
