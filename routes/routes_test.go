package routes

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/controllers"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/upload"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *int64) {
	t.Helper()

	var loginCalls int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost && r.URL.Path == "/api/auth/login" {
			atomic.AddInt64(&loginCalls, 1)
			json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"msg":"not found"}`))
	}))
	t.Cleanup(backend.Close)

	apiClient := api.NewClient(backend.URL, 2*time.Second, zerolog.Nop())
	images := upload.NewSaver(t.TempDir())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	router.LoadHTMLGlob("../web/templates/*.html")

	RegisterAdminRoutes(router, AdminControllers{
		Auth:           controllers.NewAuthController(apiClient, false, zerolog.Nop()),
		News:           controllers.NewNewsAdminController(apiClient, nil, images, zerolog.Nop()),
		Categories:     controllers.NewCategoryAdminController(apiClient, nil, zerolog.Nop()),
		Blogs:          controllers.NewBlogAdminController(apiClient, nil, zerolog.Nop()),
		Advertisements: controllers.NewAdvertisementAdminController(apiClient, nil, images, zerolog.Nop()),
		Profile:        controllers.NewProfileController(apiClient, images, false, zerolog.Nop()),
		Settings:       controllers.NewSettingsController(apiClient, zerolog.Nop()),
	}, false)

	return router, &loginCalls
}

func TestLoginReachableWithoutSession(t *testing.T) {
	router, loginCalls := newAdminRouter(t)

	form := url.Values{"username": {"admin"}, "password": {"right"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	assert.EqualValues(t, 1, atomic.LoadInt64(loginCalls))

	issued := false
	for _, cookie := range w.Header().Values("Set-Cookie") {
		if strings.HasPrefix(cookie, session.CookieName+"=issued-token") {
			issued = true
		}
	}
	assert.True(t, issued, "token cookie should be set")
}

func TestLogoutReachableWithExpiredSession(t *testing.T) {
	router, _ := newAdminRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-jwt"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestDashboardStillGated(t *testing.T) {
	router, _ := newAdminRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}
