package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rms-platform/table-service/internal/api/handlers"
	checkAvailability "github.com/rms-platform/table-service/internal/usecase/check_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGuests       = "некорректное число гостей"
	msgRestaurantNotFound  = "ресторан не найден"
	msgInvalidParams       = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/availability
// и GET /api/v1/availability (ресторан по умолчанию)
// Query params: date (required, YYYY-MM-DD), guests (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// restaurantId отсутствует в URL для роута по умолчанию - тогда 0
	var restaurantID int64
	if restaurantIDStr, ok := vars["restaurantId"]; ok {
		var err error
		restaurantID, err = strconv.ParseInt(restaurantIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid restaurant ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRestaurantID)
			return
		}
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /restaurants/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем guests из query параметров (опционально, по умолчанию 1)
	var guests int
	if guestsStr := r.URL.Query().Get("guests"); guestsStr != "" {
		var err error
		guests, err = strconv.Atoi(guestsStr)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid guests: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(restaurantID, dateStr, guests)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/availability - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /restaurants/{id}/availability - Failed to get availability: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /restaurants/{id}/availability - Availability computed: restaurant_id=%d, date=%s, slots_count=%d",
		result.RestaurantID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
