package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
)

func TestRecordRejectsInvalidEntries(t *testing.T) {
	svc := &service{repo: NewRepository(nil)}
	ctx := context.Background()

	tests := []struct {
		name  string
		entry Entry
	}{
		{"missing user", Entry{Action: enums.AuditActionCreate, EntityType: enums.EntityTypeProduct}},
		{"invalid action", Entry{UserID: uuid.New(), Action: "DESTROY", EntityType: enums.EntityTypeProduct}},
		{"invalid entity type", Entry{UserID: uuid.New(), Action: enums.AuditActionCreate, EntityType: "widget"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Record(ctx, nil, tt.entry)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error code, got %v", err)
			}
		})
	}
}

func TestNewLogDTO(t *testing.T) {
	entityID := uuid.New()
	changes, _ := json.Marshal(map[string]string{"product_name": "Widget"})
	log := &models.AuditLog{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Action:     enums.AuditActionUpdate,
		EntityType: enums.EntityTypeProduct,
		EntityID:   &entityID,
		Changes:    changes,
		Timestamp:  time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC),
		User: &models.User{
			Name:  "Dana Ops",
			Email: "dana@example.com",
		},
	}

	dto := NewLogDTO(log)
	if dto.Action != "UPDATE" {
		t.Fatalf("expected action UPDATE, got %s", dto.Action)
	}
	if dto.EntityType != "product" {
		t.Fatalf("expected entity type product, got %s", dto.EntityType)
	}
	if dto.EntityID == nil || *dto.EntityID != entityID {
		t.Fatal("entity id not preserved")
	}
	if dto.UserName == nil || *dto.UserName != "Dana Ops" {
		t.Fatalf("expected user name, got %v", dto.UserName)
	}
	if dto.UserEmail == nil || *dto.UserEmail != "dana@example.com" {
		t.Fatalf("expected user email, got %v", dto.UserEmail)
	}
	if string(dto.Changes) != string(changes) {
		t.Fatalf("changes not preserved: %s", dto.Changes)
	}
}

func TestNewLogDTOWithoutUser(t *testing.T) {
	dto := NewLogDTO(&models.AuditLog{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Action:     enums.AuditActionLogin,
		EntityType: enums.EntityTypeUser,
	})
	if dto.UserName != nil || dto.UserEmail != nil {
		t.Fatal("expected nil user fields when join row is absent")
	}
	if dto.Changes != nil {
		t.Fatal("expected nil changes")
	}
}
