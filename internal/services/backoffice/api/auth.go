package api

import (
	"net/http"
	"strings"

	"github.com/tppb-bridge/backoffice/internal/platform/authtoken"
	"github.com/tppb-bridge/backoffice/internal/platform/i18n"
	"github.com/tppb-bridge/backoffice/internal/platform/requestctx"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// TokenCookieName carries the operator session token for browser requests.
const TokenCookieName = "tppb_token"

// requireAuth resolves the operator from a bearer token or the session
// cookie. Without a configured secret every request passes anonymously.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	if !h.auth.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := authtoken.Verify(h.auth, requestToken(r))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		ctx := requestctx.WithOperator(r.Context(), requestctx.Operator{Name: claims.Operator, Role: claims.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

func isAuthExempt(path string) bool {
	return path == routepath.Health
}

// withLocale stores the resolved request language in context, persisting a
// ?lang= choice as a cookie.
func withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, fromQuery := i18n.ResolveTag(r)
		if fromQuery {
			i18n.SetLanguageCookie(w, tag)
		}
		ctx := requestctx.WithLocale(r.Context(), tag.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
