package deactivate_table

import (
	"context"
)

type TableService interface {
	Deactivate(ctx context.Context, tableID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
