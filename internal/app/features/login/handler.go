// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"

	uierrors "github.com/alqabasi/driver-dashboard-mini/internal/app/features/errors"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/session"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/normalize"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/timeouts"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *session.Manager
	Bus        *notify.Bus
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(sessionMgr *session.Manager, bus *notify.Bus, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr: sessionMgr,
		Bus:        bus,
		ErrLog:     errLog,
		Log:        logger,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error       string
	MobilePhone string // what the admin typed, kept on re-render
	ReturnURL   string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if session.IsAuthenticated(r) {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, h.Bus, "Login", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	mobilePhone := normalize.Phone(r.FormValue("mobile_phone"))
	password := r.FormValue("password")
	ret := r.FormValue("return")

	if mobilePhone == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your phone number and password.", mobilePhone, ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.SessionMgr.Login(w, r.WithContext(ctx), mobilePhone, password); err != nil {
		// The session manager already queued the matching notification.
		h.renderFormWithError(w, r, "", mobilePhone, ret)
		return
	}

	dest := urlutil.SafeReturn(ret, "", "/users")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// renderFormWithError re-renders the login form, keeping the typed phone
// number. An empty msg relies on the queued notifications for feedback.
func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, mobilePhone, ret string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:      viewdata.NewBaseVM(r, h.Bus, "Login", "/"),
		Error:       msg,
		MobilePhone: mobilePhone,
		ReturnURL:   ret,
	})
}
