package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderKey lets API clients carry the session without cookies.
	HeaderKey  = "X-Session-ID"
	contextKey = "session_id"
)

// Options configures the anonymous visitor cookie.
type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Middleware makes sure every request carries an anonymous session id. The id
// only scopes transient shell state; it is not an identity.
func Middleware(opts Options) gin.HandlerFunc {
	if opts.CookieName == "" {
		opts.CookieName = "campushub_session"
	}
	if opts.TTL <= 0 {
		opts.TTL = 12 * time.Hour
	}
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderKey)
		if !valid(id) {
			if cookie, err := c.Cookie(opts.CookieName); err == nil && valid(cookie) {
				id = cookie
			}
		}
		if !valid(id) {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Writer.Header().Set(HeaderKey, id)
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     opts.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(opts.TTL.Seconds()),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		c.Next()
	}
}

// Value returns the session id stored in the Gin context.
func Value(c *gin.Context) string {
	if v, exists := c.Get(contextKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func valid(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
