package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rms-platform/table-service/internal/api/handlers"
)

type contextKey string

const staffIDKey contextKey = "staffID"

// StaffHeader заголовок с идентификатором сотрудника ресторана
const StaffHeader = "X-Staff-ID"

// Auth проверяет наличие корректного X-Staff-ID заголовка и кладет
// идентификатор сотрудника в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffIDStr := r.Header.Get(StaffHeader)
		if staffIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+StaffHeader)
			return
		}

		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+StaffHeader)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID извлекает идентификатор сотрудника из контекста
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
