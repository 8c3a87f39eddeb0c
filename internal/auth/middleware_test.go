package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := TokenService{Secret: []byte("secret"), Issuer: "flixhub", Duration: time.Hour}

	r := gin.New()
	r.POST("/admin/reload", AuthMiddleware(ts, ScopeAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": MustGetClaims(c).Subject})
	})

	admin, _, err := ts.Sign("ops", ScopeAdmin)
	require.NoError(t, err)
	reader, _, err := ts.Sign("viewer", "read")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"basic auth", "Basic b3BzOnB3", http.StatusUnauthorized},
		{"bad token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"wrong scope", "Bearer " + reader, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
		{"lowercase scheme", "bearer " + admin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"subject":"ops"}`, w.Body.String())
			}
		})
	}
}

func TestMustGetClaims_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, MustGetClaims(c))
}
