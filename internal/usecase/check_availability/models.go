package check_availability

import (
	"time"

	"github.com/rms-platform/table-service/internal/domain"
)

// AllocationConfig явная конфигурация расчета доступности.
// Передается при создании usecase вместо обращения к глобальным настройкам.
type AllocationConfig struct {
	DefaultDurationMinutes int    // длительность брони по умолчанию (120)
	SlotIntervalMinutes    int    // шаг сетки слотов (30)
	DefaultOpenTime        string // окно по умолчанию при отсутствии расписания
	DefaultCloseTime       string
}

// Request модель запроса на расчет доступности
type Request struct {
	RestaurantID int64     // 0 = ресторан по умолчанию
	Date         time.Time // дата без времени
	Guests       int       // 0 = значение по умолчанию (1 гость)
}

// Response модель ответа со слотами на день.
// Слоты идут в порядке генерации; недоступность выражается флагом
// Available=false, слот никогда не пропадает из списка.
type Response struct {
	RestaurantID int64
	Date         time.Time
	Slots        []domain.TimeSlot
}
