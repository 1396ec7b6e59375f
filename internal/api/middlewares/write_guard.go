package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/5w1tchy/isbn-books/internal/api/apperr"
	jwtutil "github.com/5w1tchy/isbn-books/internal/security/jwt"
)

// RequireWriteToken demands a bearer token carrying the write scope on
// every request except GET, HEAD and OPTIONS.
func RequireWriteToken(cfg jwtutil.Config, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			tok, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="books"`)
				apperr.Write(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			claims, err := jwtutil.Parse(cfg, tok)
			if err != nil {
				log.Info("write token rejected", "request_id", GetRequestID(r), "err", err)
				w.Header().Set("WWW-Authenticate", `Bearer realm="books", error="invalid_token"`)
				apperr.Write(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if !claims.HasScope(jwtutil.ScopeWrite) {
				apperr.Write(w, http.StatusForbidden, "token lacks "+jwtutil.ScopeWrite+" scope")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(h string) (string, bool) {
	scheme, tok, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}
