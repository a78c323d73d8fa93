// Package oplog adapts the reservation service's operation log to zap.
package oplog

import (
	"context"

	"github.com/MarkoPoloResearchLab/reservation/pkg/hotel"
	"go.uber.org/zap"
)

// ZapLogger emits one structured log line per service operation.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps a zap logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

func (adapter *ZapLogger) LogOperation(_ context.Context, entry hotel.OperationLog) {
	fields := make([]zap.Field, 0, 8)
	fields = append(fields, zap.String("operation", entry.Operation), zap.String("status", entry.Status))
	if value := entry.RoomID.String(); value != "" {
		fields = append(fields, zap.String("room_id", value))
	}
	if value := entry.CustomerID.String(); value != "" {
		fields = append(fields, zap.String("customer_id", value))
	}
	if value := entry.BookingID.String(); value != "" {
		fields = append(fields, zap.String("booking_id", value))
	}
	if entry.Amount > 0 {
		fields = append(fields, zap.Int64("amount_cents", entry.Amount.Int64()))
	}
	if entry.Error != nil {
		fields = append(fields, zap.Error(entry.Error))
		adapter.logger.Warn("operation failed", fields...)
		return
	}
	adapter.logger.Info("operation completed", fields...)
}
