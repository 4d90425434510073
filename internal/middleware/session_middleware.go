package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
)

// Context keys set by RequireRole for downstream handlers.
const (
	ContextSessionID      = "sessionID"
	ContextSessionPayload = "sessionPayload"
)

// SessionMiddleware gates routes on a live server-side session.
type SessionMiddleware struct {
	store      session.Store
	cookieName string
}

// NewSessionMiddleware creates the middleware over the given store.
func NewSessionMiddleware(store session.Store, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{store: store, cookieName: cookieName}
}

// RequireRole rejects the request unless the session cookie resolves to a
// live session with the given role. A missing cookie, an unknown or expired
// id, and a role mismatch all produce the same 401; the handler behind this
// middleware can rely on the payload being present in the context.
func (m *SessionMiddleware) RequireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(m.cookieName)
		if err != nil || sid == "" {
			unauthorized(c)
			return
		}

		payload, err := m.store.Get(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				HandleAPIError(c, err)
				return
			}
			unauthorized(c)
			return
		}

		if payload.Role != role {
			unauthorized(c)
			return
		}

		c.Set(ContextSessionID, sid)
		c.Set(ContextSessionPayload, *payload)
		c.Next()
	}
}

// PayloadFrom returns the session payload placed by RequireRole.
func PayloadFrom(c *gin.Context) (session.Payload, bool) {
	v, ok := c.Get(ContextSessionPayload)
	if !ok {
		return session.Payload{}, false
	}
	payload, ok := v.(session.Payload)
	return payload, ok
}

// SessionIDFrom returns the session id placed by RequireRole.
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "authentication required")))
}
