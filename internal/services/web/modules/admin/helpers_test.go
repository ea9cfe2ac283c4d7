package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/requestmeta"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage/sqlite"
)

// failingStore fails every call with a persistence error.
type failingStore struct{}

var errBroken = fmt.Errorf("sqlite: %w", storage.ErrPersistence)

func (failingStore) PutRegistrant(context.Context, storage.Registrant) (int64, error) {
	return 0, errBroken
}

func (failingStore) ListRegistrants(context.Context) ([]storage.Registrant, error) {
	return nil, errBroken
}

func (failingStore) DeleteRegistrant(context.Context, int64) error { return errBroken }

func (failingStore) PutWorkshopRegistrant(context.Context, storage.WorkshopRegistrant) (int64, error) {
	return 0, errBroken
}

func (failingStore) ListWorkshopRegistrants(context.Context) ([]storage.WorkshopRegistrant, error) {
	return nil, errBroken
}

func (failingStore) DeleteWorkshopRegistrant(context.Context, int64) error { return errBroken }

// steppingClock advances one minute per call so insert order is visible.
type steppingClock struct {
	mu   sync.Mutex
	next time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(time.Minute)
	return now
}

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	clock := &steppingClock{next: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)}
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "cyntas.db"), sqlite.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func newTestJar(t *testing.T) *flashnotice.Jar {
	t.Helper()
	jar, err := flashnotice.NewJar([]byte("test-secret"), requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("NewJar() error = %v", err)
	}
	return jar
}

func mountAdmin(t *testing.T, store Store, jar *flashnotice.Jar) http.Handler {
	t.Helper()
	mount, err := New(store, publichandler.NewBase(publichandler.WithFlash(jar))).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func readNotice(t *testing.T, jar *flashnotice.Jar, rr *httptest.ResponseRecorder) flashnotice.Notice {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}
	notice, ok := jar.ReadAndClear(httptest.NewRecorder(), req)
	if !ok {
		t.Fatalf("no flash notice in response cookies %v", rr.Result().Cookies())
	}
	return notice
}

func seedRegistrant(t *testing.T, store Store, firstName string) int64 {
	t.Helper()
	id, err := store.PutRegistrant(t.Context(), storage.Registrant{
		FirstName:       firstName,
		LastName:        "Moyo",
		Email:           firstName + "@example.com",
		Phone:           "555-0100",
		Location:        "Harare",
		InterestArea:    "Agriculture",
		InvestmentLevel: "Starter ($10 - $100)",
	})
	if err != nil {
		t.Fatalf("seed registrant: %v", err)
	}
	return id
}

func seedWorkshopRegistrant(t *testing.T, store Store, firstName string) int64 {
	t.Helper()
	id, err := store.PutWorkshopRegistrant(t.Context(), storage.WorkshopRegistrant{
		FirstName:     firstName,
		LastName:      "Doe",
		Email:         firstName + "@example.com",
		Phone:         "555-0100",
		WorkshopType:  "Financial Literacy",
		PaymentMethod: "EcoCash",
	})
	if err != nil {
		t.Fatalf("seed workshop registrant: %v", err)
	}
	return id
}
