package middleware

import (
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": user.UserID})
	})
	return r
}

func tokenFor(t *testing.T, secret string, ttl time.Duration) string {
	user := &model.User{Username: "alice", Email: "alice@example.com"}
	user.ID = 7
	token, err := util.GenerateJWT(user, secret, ttl)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		header string
		query  string
		status int
	}{
		{"missing token", "", "", http.StatusUnauthorized},
		{"bearer header", "Bearer " + tokenFor(t, testSecret, time.Hour), "", http.StatusOK},
		{"query token", "", tokenFor(t, testSecret, time.Hour), http.StatusOK},
		{"wrong secret", "Bearer " + tokenFor(t, "other-secret", time.Hour), "", http.StatusUnauthorized},
		{"expired", "Bearer " + tokenFor(t, testSecret, -time.Minute), "", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/me"
			if tt.query != "" {
				url += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"id":7}`, w.Body.String())
			}
		})
	}
}
