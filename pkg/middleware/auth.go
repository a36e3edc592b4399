package middleware

import (
	"net/http"

	"groupstudy/pkg/claims"
	"groupstudy/pkg/session"
)

const (
	// CookieName is the session cookie carrying the signed token.
	CookieName = "token"

	unauthorizedBody = `{"status":"unAuthorized","code":"401"}`
)

// Auth gates a protected handler behind the session cookie. A missing
// cookie or a failed verification writes exactly one 401 response and
// never invokes the downstream handler; on success the decoded claims
// are attached to the request context.
func Auth(codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				reject(w)
				return
			}

			decoded, err := codec.Verify(cookie.Value)
			if err != nil {
				reject(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(claims.NewContext(r.Context(), decoded)))
		})
	}
}

func reject(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(unauthorizedBody)); err != nil {
		return
	}
}
