package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (с ошибками по полям)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
