package notices

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func dismissRequest(id, ret string) *http.Request {
	body := "return=" + ret
	r := httptest.NewRequest(http.MethodPost, "/notices/"+id+"/dismiss", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleDismiss_RemovesNotice(t *testing.T) {
	bus := notify.NewBus(0)
	id := bus.Success("User deleted")
	h := NewHandler(bus, zap.NewNop())

	w := httptest.NewRecorder()
	h.HandleDismiss(w, dismissRequest(id, "/users"))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/users" {
		t.Errorf("Location = %q, want %q", loc, "/users")
	}
	if got := bus.Active(); len(got) != 0 {
		t.Errorf("Active() = %+v, want empty", got)
	}
}

func TestHandleDismiss_UnknownIDIsNoop(t *testing.T) {
	bus := notify.NewBus(0)
	bus.Info("still here")
	h := NewHandler(bus, zap.NewNop())

	w := httptest.NewRecorder()
	h.HandleDismiss(w, dismissRequest("nope", "/users"))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := bus.Active(); len(got) != 1 {
		t.Errorf("Active() = %+v, want the surviving notice", got)
	}
}
