package oplog

import (
	"context"
	"errors"
	"testing"

	"github.com/MarkoPoloResearchLab/reservation/pkg/hotel"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogOperationEmitsInfoOnSuccess(test *testing.T) {
	test.Parallel()
	core, recorded := observer.New(zap.InfoLevel)
	adapter := NewZapLogger(zap.New(core))

	roomID, err := hotel.NewRoomID("room-1")
	if err != nil {
		test.Fatalf("room id: %v", err)
	}
	adapter.LogOperation(context.Background(), hotel.OperationLog{
		Operation: "add_room",
		RoomID:    roomID,
		Status:    "ok",
	})

	entries := recorded.All()
	if len(entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].Level != zap.InfoLevel || entries[0].Message != "operation completed" {
		test.Fatalf("unexpected entry: %+v", entries[0])
	}
	fields := entries[0].ContextMap()
	if fields["operation"] != "add_room" || fields["room_id"] != "room-1" {
		test.Fatalf("unexpected fields: %v", fields)
	}
	if _, present := fields["customer_id"]; present {
		test.Fatalf("empty ids should be omitted: %v", fields)
	}
}

func TestLogOperationEmitsWarnOnError(test *testing.T) {
	test.Parallel()
	core, recorded := observer.New(zap.InfoLevel)
	adapter := NewZapLogger(zap.New(core))

	adapter.LogOperation(context.Background(), hotel.OperationLog{
		Operation: "cancel_booking",
		Status:    "error",
		Error:     errors.New("boom"),
	})

	entries := recorded.All()
	if len(entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel || entries[0].Message != "operation failed" {
		test.Fatalf("unexpected entry: %+v", entries[0])
	}
}
