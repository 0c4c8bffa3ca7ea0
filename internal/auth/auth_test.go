package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "lead-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key"

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(testSecret, "lead-crm-backend", time.Hour)
	require.NoError(t, err)
	return service
}

func TestNewAuthService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		service, err := NewAuthService("", "lead-crm-backend", time.Hour)
		assert.Nil(t, service)
		assert.ErrorIs(t, err, apperrors.ErrJWTSecretNotSet)
	})

	t.Run("default ttl", func(t *testing.T) {
		service, err := NewAuthService(testSecret, "lead-crm-backend", 0)
		require.NoError(t, err)
		assert.Equal(t, defaultTokenTTL, service.ttl)
	})
}

func TestRoles(t *testing.T) {
	tests := []struct {
		role       Role
		capability Capability
		allowed    bool
	}{
		{RoleAdmin, CapManageDirectory, true},
		{RoleAdmin, CapRunDistribution, true},
		{RoleManager, CapAssignLeads, true},
		{RoleManager, CapManageDirectory, false},
		{RoleManager, CapRunDistribution, false},
		{RoleAgent, CapViewLeads, true},
		{RoleAgent, CapAssignLeads, false},
		{RoleAgent, CapManageClients, true},
		{RoleAgent, CapManageSales, true},
		{RoleAgent, CapDeleteClients, false},
		{RoleManager, CapViewBanks, true},
		{RoleManager, CapManageBanks, false},
		{RoleAdmin, CapManageBanks, true},
		{Role("guest"), CapViewLeads, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.capability), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.role.Can(tt.capability))
		})
	}

	assert.Len(t, Roles(), 3)
	assert.Contains(t, CapabilitiesOf(RoleManager), CapAssignLeads)
	assert.Empty(t, CapabilitiesOf(Role("guest")))

	_, err := ParseRole("guest")
	assert.ErrorIs(t, err, apperrors.ErrUnknownRole)
	role, err := ParseRole("manager")
	assert.NoError(t, err)
	assert.Equal(t, RoleManager, role)
}

func TestJWTOperations(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateJWT("jan.nowak", RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "jan.nowak", claims.Subject)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "lead-crm-backend", claims.Issuer)

	_, err = service.ValidateJWT("invalid.token.here")
	assert.Error(t, err)
}

func TestGenerateJWT_UnknownRole(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateJWT("jan.nowak", Role("owner"))

	assert.Empty(t, token)
	assert.ErrorIs(t, err, apperrors.ErrUnknownRole)
}

func TestValidateJWT_Rejections(t *testing.T) {
	service := newTestService(t)
	now := time.Now()

	sign := func(claims *AuthClaims, secret string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	t.Run("wrong secret", func(t *testing.T) {
		token := sign(&AuthClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			Subject: "x", Issuer: "lead-crm-backend", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}, "other-secret")
		_, err := service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(&AuthClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			Subject: "x", Issuer: "lead-crm-backend", ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}}, testSecret)
		_, err := service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token := sign(&AuthClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			Subject: "x", Issuer: "someone-else", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}, testSecret)
		_, err := service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		token := sign(&AuthClaims{Role: "owner", RegisteredClaims: jwt.RegisteredClaims{
			Subject: "x", Issuer: "lead-crm-backend", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}, testSecret)
		_, err := service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrUnknownRole)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := sign(&AuthClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "lead-crm-backend", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}, testSecret)
		_, err := service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/leads", middleware.RequireAuth(), middleware.RequireCapability(CapAssignLeads), func(c *gin.Context) {
		subject, _ := GetSubject(c)
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject, "role": role})
	})

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/leads", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		w := request("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := request("Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := request("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("insufficient role", func(t *testing.T) {
		token, err := service.GenerateJWT("ewa", RoleAgent)
		require.NoError(t, err)

		w := request("Bearer " + token)

		assert.Equal(t, http.StatusForbidden, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "assign_leads", body["capability"])
	})

	t.Run("allowed", func(t *testing.T) {
		token, err := service.GenerateJWT("jan", RoleManager)
		require.NoError(t, err)

		w := request("Bearer " + token)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "jan", body["subject"])
		assert.Equal(t, "manager", body["role"])
	})
}

func TestRequireCapability_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(newTestService(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequireCapability(CapViewLeads)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		token   string
		wantErr error
	}{
		{"Bearer abc.def", "abc.def", nil},
		{"bearer  abc.def ", "abc.def", nil},
		{"", "", errMissingHeader},
		{"Token abc", "", errBadHeader},
		{"Bearer", "", errBadHeader},
		{"Bearer   ", "", errBadHeader},
	}
	for _, tt := range tests {
		token, err := bearerToken(tt.header)
		assert.Equal(t, tt.token, token, tt.header)
		assert.Equal(t, tt.wantErr, err, tt.header)
	}
}
