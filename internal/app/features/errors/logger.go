// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with a rendered error page, so
// handlers report failures in one call. The internal message and error
// go to the log; only userMsg is shown to the admin.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogBadRequest logs a client-side failure and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Warn(msg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	e.renderPage(w, r, http.StatusBadRequest, "Invalid request", userMsg, backURL)
}

// LogServerError logs an upstream or internal failure and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Error(msg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	e.renderPage(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

func (e *ErrorLogger) renderPage(w http.ResponseWriter, r *http.Request, status int, title, userMsg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, title, urlutil.SafeReturn(backURL, "", "/")),
		Message: userMsg,
	}

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
