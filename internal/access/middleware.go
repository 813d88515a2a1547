package access

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const sessionKey = "setoran-session"

// Authenticator turns a bearer token into a session.
type Authenticator interface {
	Authenticate(token string) (Session, error)
}

type httpError struct {
	Error string `json:"error"`
}

// Middleware authenticates the request and stores the session in the context.
// Requests without a valid bearer token are aborted with 401.
func Middleware(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrUnauthenticated.Error()})
			return
		}

		session, err := a.Authenticate(strings.TrimSpace(token))
		if err == nil {
			err = session.Validate()
		}

		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: fmt.Sprintf("%s: %s", ErrUnauthenticated, err)})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// FromContext returns the session stored by Middleware.
func FromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}

	session, ok := v.(Session)
	return session, ok
}
