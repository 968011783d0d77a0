package product

import (
	"testing"

	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
)

func asConflict(t *testing.T, err error) *pkgerrors.Error {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict code, got %s", typed.Code())
	}
	return typed
}
