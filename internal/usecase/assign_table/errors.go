package assign_table

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrTableNotFound возвращается, когда стол не найден в ресторане брони
	ErrTableNotFound = errors.New("table not found")

	// ErrTableInactive возвращается при попытке назначить деактивированный стол
	ErrTableInactive = errors.New("table is not active")

	// ErrTableOccupied возвращается, когда стол занят другой активной бронью
	// в окне этого бронирования
	ErrTableOccupied = errors.New("table is occupied for this time slot")

	// ErrInvalidStatus возвращается, когда статус брони не допускает
	// назначение стола (только pending и confirmed допускают)
	ErrInvalidStatus = errors.New("booking status does not allow table assignment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
