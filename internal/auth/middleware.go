package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const roleKey = "role"

var (
	errMissingHeader = errors.New("authorization header is required")
	errBadHeader     = errors.New("invalid authorization header format")
)

// AuthMiddleware guards the staff API with bearer tokens
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and stores the subject and role on
// the context. A token naming an unknown role is answered with 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := m.service.ValidateJWT(token)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, apperrors.ErrUnknownRole) {
				status = http.StatusForbidden
			}
			c.AbortWithStatusJSON(status, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set(logger.SubjectKey, claims.Subject)
		c.Set(roleKey, Role(claims.Role))
		c.Next()
	}
}

// RequireCapability rejects callers whose role does not grant capability.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireCapability(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !role.Can(capability) {
			logger.WithContext(c).WithFields(map[string]interface{}{
				"role":       role,
				"capability": capability,
			}).Warn("Capability denied")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions", "capability": capability})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errBadHeader
	}
	return strings.TrimSpace(token), nil
}

// GetSubject returns the token subject set by RequireAuth
func GetSubject(c *gin.Context) (string, bool) {
	subject := c.GetString(logger.SubjectKey)
	return subject, subject != ""
}

// GetRole returns the caller role set by RequireAuth
func GetRole(c *gin.Context) (Role, bool) {
	value, exists := c.Get(roleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(Role)
	return role, ok
}
