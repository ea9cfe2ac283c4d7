package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
	"github.com/google/go-cmp/cmp"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "forbidden", err: E(KindForbidden, "forbidden"), want: http.StatusForbidden},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "unknown", err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "storage failure", err: fmt.Errorf("put: %w", storage.ErrPersistence), want: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus(err) = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorStringFallsBackToCauseThenKind(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindForbidden}).Error(); got != string(KindForbidden) {
		t.Fatalf("Error() = %q, want %q", got, string(KindForbidden))
	}
	cause := errors.New("disk full")
	if got := (Error{Kind: KindUnavailable, Err: cause}).Error(); got != "disk full" {
		t.Fatalf("Error() = %q, want %q", got, "disk full")
	}
}

func TestWrapKeepsCauseReachable(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("list registrants: %w", storage.ErrPersistence)
	err := Wrap(KindUnavailable, " flash.admin.load_failed ", cause)
	if !errors.Is(err, storage.ErrPersistence) {
		t.Fatalf("errors.Is(err, ErrPersistence) = false, want true")
	}
	if got := LocalizationKey(err); got != "flash.admin.load_failed" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "flash.admin.load_failed")
	}
	if Wrap(KindUnavailable, "k", nil) != nil {
		t.Fatal("Wrap(nil) should return nil")
	}
}

func TestLocalizationKeyAndArgs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("validate: %w", EK(KindInvalidInput, "flash.register.missing_field", "first_name is required", "first_name"))
	if got := LocalizationKey(err); got != "flash.register.missing_field" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if diff := cmp.Diff([]any{"first_name"}, LocalizationArgs(err)); diff != "" {
		t.Fatalf("LocalizationArgs mismatch (-want +got):\n%s", diff)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
	if LocalizationArgs(nil) != nil {
		t.Fatal("LocalizationArgs(nil) should be nil")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(nil); got != "" {
		t.Fatalf("KindOf(nil) = %q, want empty", got)
	}
	if got := KindOf(E(KindNotFound, "missing")); got != KindNotFound {
		t.Fatalf("KindOf(not found) = %q", got)
	}
	if got := KindOf(storage.ErrPersistence); got != KindUnavailable {
		t.Fatalf("KindOf(ErrPersistence) = %q", got)
	}
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Fatalf("KindOf(plain) = %q", got)
	}
}
