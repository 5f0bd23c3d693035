package assign_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rms-platform/table-service/internal/api/handlers"
	assignTable "github.com/rms-platform/table-service/internal/usecase/assign_table"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgTableNotFound      = "стол не найден"
	msgTableInactive      = "стол деактивирован"
	msgTableOccupied      = "стол занят в это время"
	msgInvalidStatus      = "статус бронирования не допускает назначение стола"
)

type Handler struct {
	useCase AssignTableUseCase
	logger  Logger
}

func NewHandler(useCase AssignTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/table
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/table - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Декодируем body
	var req AssignTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/table - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, assignTable.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/table - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignTable.ErrTableNotFound):
			h.logger.Warn("PATCH /bookings/{id}/table - Table not found: booking_id=%d, table_id=%v",
				bookingID, req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, assignTable.ErrTableInactive):
			h.logger.Warn("PATCH /bookings/{id}/table - Table inactive: booking_id=%d, table_id=%v",
				bookingID, req.TableID)
			handlers.RespondConflict(w, msgTableInactive)

		case errors.Is(err, assignTable.ErrTableOccupied):
			h.logger.Warn("PATCH /bookings/{id}/table - Table occupied: booking_id=%d, table_id=%v",
				bookingID, req.TableID)
			handlers.RespondConflict(w, msgTableOccupied)

		case errors.Is(err, assignTable.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/table - Invalid booking status: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /bookings/{id}/table - Failed to assign table: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id}/table - Table assignment updated: booking_id=%d, table_id=%v, status=%s",
		result.ID, result.TableID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
