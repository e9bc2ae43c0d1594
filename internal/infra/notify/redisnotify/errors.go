package redisnotify

import "errors"

var (
	// ErrSubscribe возвращается, если не удалось подписаться на канал
	ErrSubscribe = errors.New("redisnotify: failed to subscribe")

	// ErrPublish возвращается при ошибке публикации
	ErrPublish = errors.New("redisnotify: failed to publish")
)
