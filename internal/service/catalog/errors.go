package catalog

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных услуги
	ErrInvalidInput = errors.New("catalog.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
