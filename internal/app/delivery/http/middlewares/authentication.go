package middlewares

import (
	"context"
	"geics-service/internal/pkg/constvars"
	"geics-service/internal/pkg/exceptions"
	"geics-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

// Authenticate gates admin-only routes on a valid session. Rejection is
// content-negotiated: browser navigations are redirected to the login page,
// API calls get a 401 with a JSON error body.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.InternalConfig.Session.CookieName)
		if err != nil {
			m.reject(w, r, exceptions.ErrSessionCookieMissing(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		user, err := m.AuthUsecase.Resolve(ctx, cookie.Value)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == "" {
			m.reject(w, r, exceptions.ErrSessionNotFound(nil))
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), constvars.ContextSessionUserKey, user),
		))
	})
}

func (m *Middlewares) reject(w http.ResponseWriter, r *http.Request, err error) {
	if acceptsHTML(r) {
		http.Redirect(w, r, "/login", constvars.StatusFound)
		return
	}
	utils.BuildErrorResponse(m.Log, w, err)
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get(constvars.HeaderAccept), constvars.MIMETextHTML)
}
