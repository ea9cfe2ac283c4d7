package registration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/requestmeta"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
)

type fakeStore struct {
	mu          sync.Mutex
	registrants []storage.Registrant
	workshops   []storage.WorkshopRegistrant
	putErr      error
}

func (f *fakeStore) PutRegistrant(_ context.Context, r storage.Registrant) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return 0, f.putErr
	}
	r.ID = int64(len(f.registrants) + 1)
	f.registrants = append(f.registrants, r)
	return r.ID, nil
}

func (f *fakeStore) ListRegistrants(context.Context) ([]storage.Registrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]storage.Registrant(nil), f.registrants...), nil
}

func (f *fakeStore) DeleteRegistrant(context.Context, int64) error { return nil }

func (f *fakeStore) PutWorkshopRegistrant(_ context.Context, r storage.WorkshopRegistrant) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return 0, f.putErr
	}
	r.ID = int64(len(f.workshops) + 1)
	f.workshops = append(f.workshops, r)
	return r.ID, nil
}

func (f *fakeStore) ListWorkshopRegistrants(context.Context) ([]storage.WorkshopRegistrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]storage.WorkshopRegistrant(nil), f.workshops...), nil
}

func (f *fakeStore) DeleteWorkshopRegistrant(context.Context, int64) error { return nil }

func failingStore() *fakeStore {
	return &fakeStore{putErr: fmt.Errorf("put: %w", storage.ErrPersistence)}
}

func newTestJar(t *testing.T) *flashnotice.Jar {
	t.Helper()
	jar, err := flashnotice.NewJar([]byte("test-secret"), requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("NewJar() error = %v", err)
	}
	return jar
}

func mountHandler(t *testing.T, store Store, jar *flashnotice.Jar) http.Handler {
	t.Helper()
	mount, err := New(store, publichandler.NewBase(publichandler.WithFlash(jar))).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

// readNotice decodes the flash cookie set on rr.
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

func newBaseForTest(t *testing.T) publichandler.Base {
	t.Helper()
	return publichandler.NewBase(publichandler.WithFlash(newTestJar(t)))
}
