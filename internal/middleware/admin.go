package middleware

import (
	"net/http"
	"strings"

	"github.com/dimitrije/kisan-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

const AdminSubjectKey = "admin_subject"

// AdminValidator is satisfied by services.JWTService.
type AdminValidator interface {
	ValidateAdminToken(token string) (*services.Claims, error)
}

// Admin requires an admin bearer token on requests that modify records. Reads
// pass through untouched. A nil validator disables the check.
func Admin(validator AdminValidator) drift.HandlerFunc {
	return func(c *drift.Context) {
		if validator == nil || !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := validator.ValidateAdminToken(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(AdminSubjectKey, claims.Subject)

		c.Next()
	}
}

func GetAdminSubject(c *drift.Context) string {
	if subject, ok := c.Get(AdminSubjectKey); ok {
		if s, ok := subject.(string); ok {
			return s
		}
	}
	return ""
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
