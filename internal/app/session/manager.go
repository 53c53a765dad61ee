// internal/app/session/manager.go

// Package session owns the bearer token for the signed-in admin. The token
// lives in an encrypted browser cookie, which is the durable client storage
// here: it survives console restarts and disappears only on logout or when
// the API rejects it with a 401.
//
// No other package touches the raw token. The gateway reads it per-request
// (and evicts it on 401) through the narrow Tokens interface this package
// satisfies.
package session

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	tokenKey = "auth_token"

	// cookieMaxAge keeps the token across browser and console restarts.
	cookieMaxAge = 30 * 24 * 60 * 60 // seconds
)

// State is the session's position in its lifecycle. A request starts
// Unknown and is resolved exactly once by LoadSession before any
// protected handler runs.
type State int

const (
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Authenticator is the slice of the gateway the login flow needs.
type Authenticator interface {
	Login(ctx context.Context, mobilePhone, password string) (string, error)
}

var errEmptyKey = errors.New("session key must not be empty")

// Manager is the session store: it resolves the per-request session from
// the cookie, performs login/logout, and evicts sessions the API rejects.
type Manager struct {
	store *sessions.CookieStore
	name  string
	api   Authenticator
	bus   *notify.Bus
	log   *zap.Logger
}

// NewManager builds a Manager around a signed cookie store.
//
// In production (secure=true) cookies are Secure + SameSite=None; in local
// dev over plain http, Lax so the browser accepts them.
func NewManager(sessionKey, name, domain string, secure bool, api Authenticator, bus *notify.Bus, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, errEmptyKey
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	return &Manager{
		store: store,
		name:  name,
		api:   api,
		bus:   bus,
		log:   logger,
	}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Per-request state                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// browserSession is the request-scoped view of the cookie. LoadSession
// creates it; the gateway reaches it through the context.
type browserSession struct {
	mu    sync.Mutex
	state State
	token string
	evict func() // writes the deletion cookie; set by LoadSession
}

func (s *browserSession) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *browserSession) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if token == "" {
		s.state = StateUnauthenticated
	} else {
		s.state = StateAuthenticated
	}
}

type ctxKey struct{}

func fromContext(ctx context.Context) *browserSession {
	s, _ := ctx.Value(ctxKey{}).(*browserSession)
	return s
}

// LoadSession resolves the session cookie into request context. It is the
// initialize step: after it runs the state is never Unknown, and it runs
// before any protected view renders.
func (m *Manager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.name)
		if err != nil {
			if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
				m.log.Warn("session cookie invalid, starting fresh", zap.Error(err))
			} else {
				m.log.Error("session store error, starting fresh", zap.Error(err))
			}
		}

		token, _ := sess.Values[tokenKey].(string)

		bs := &browserSession{token: token}
		if token != "" {
			bs.state = StateAuthenticated
		} else {
			bs.state = StateUnauthenticated
		}
		bs.evict = func() {
			delete(sess.Values, tokenKey)
			opts := *m.store.Options
			opts.MaxAge = -1
			sess.Options = &opts
			if err := sess.Save(r, w); err != nil {
				m.log.Error("evict: save session", zap.Error(err))
			}
		}

		r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, bs))
		next.ServeHTTP(w, r)
	})
}

// StateFrom reports the request's resolved session state. Unknown means
// LoadSession has not run, which is a wiring bug.
func StateFrom(r *http.Request) State {
	if bs := fromContext(r.Context()); bs != nil {
		return bs.state
	}
	return StateUnknown
}

// IsAuthenticated reports whether this request carries a live token.
func IsAuthenticated(r *http.Request) bool {
	return StateFrom(r) == StateAuthenticated
}

// WithToken returns a request whose context carries an already-resolved
// session. Handler tests use it in place of the LoadSession middleware.
func WithToken(r *http.Request, token string) *http.Request {
	bs := &browserSession{token: token, evict: func() {}}
	if token != "" {
		bs.state = StateAuthenticated
	} else {
		bs.state = StateUnauthenticated
	}
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, bs))
}

/*─────────────────────────────────────────────────────────────────────────────*
| gateway.Tokens                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// Token hands the gateway the bearer token for this request, read-only.
func (m *Manager) Token(ctx context.Context) string {
	if bs := fromContext(ctx); bs != nil {
		return bs.currentToken()
	}
	return ""
}

// Evict clears the session after the API rejected its token. It fires at
// most one deletion cookie per request.
func (m *Manager) Evict(ctx context.Context) {
	bs := fromContext(ctx)
	if bs == nil {
		return
	}
	bs.mu.Lock()
	evict := bs.evict
	bs.evict = nil
	bs.token = ""
	bs.state = StateUnauthenticated
	bs.mu.Unlock()

	if evict != nil {
		m.log.Info("session evicted after 401")
		evict()
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Login / Logout                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// Login exchanges credentials for a token and persists it. On failure it
// pushes the matching error notification and returns the error, so the
// login form can re-render without losing what the admin typed.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, mobilePhone, password string) error {
	token, err := m.api.Login(r.Context(), mobilePhone, password)
	if err != nil {
		switch {
		case gateway.IsForbidden(err):
			m.bus.Error("Account is inactive. Please contact support.")
		case gateway.IsUnauthorized(err):
			m.bus.Error("Invalid credentials.")
		default:
			m.bus.Error("Login failed. Please try again.")
		}
		m.log.Warn("login failed", zap.Error(err))
		return err
	}

	sess, err := m.store.Get(r, m.name)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			m.log.Warn("session cookie invalid, using fresh session", zap.Error(err))
		} else {
			m.log.Error("session store error during login, using fresh session", zap.Error(err))
		}
	}

	sess.Values[tokenKey] = token
	if err := sess.Save(r, w); err != nil {
		m.log.Error("save session failed", zap.Error(err))
		m.bus.Error("Login failed. Please try again.")
		return err
	}

	// Let the rest of this request observe the new state.
	if bs := fromContext(r.Context()); bs != nil {
		bs.setToken(token)
	}

	m.bus.Success("Welcome back!")
	return nil
}

// Logout clears the token cookie. It never fails; problems are logged and
// the deletion cookie is sent regardless.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		m.log.Warn("session decode failed during logout", zap.Error(err))
	}

	// Deletion cookie must match the original store settings.
	if opts := m.store.Options; opts != nil {
		copied := *opts
		sess.Options = &copied
	}
	sess.Options.MaxAge = -1
	delete(sess.Values, tokenKey)

	if err := sess.Save(r, w); err != nil {
		m.log.Error("logout: save session", zap.Error(err))
	}

	if bs := fromContext(r.Context()); bs != nil {
		bs.setToken("")
	}

	m.bus.Info("Logged out successfully")
}

/*─────────────────────────────────────────────────────────────────────────────*
| Gating middleware                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// RequireSignedIn gates protected routes.
//   - HTML: 303 redirect to /login?return=...
//   - API callers: plain 401.
func (m *Manager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsAuthenticated(r) {
			next.ServeHTTP(w, r)
			return
		}

		if wantsHTML(r) {
			ret := url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}

		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
