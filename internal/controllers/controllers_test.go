package controllers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/middleware"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/seo"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/upload"
)

// backend is a fake content API that records every request it serves.
type backend struct {
	mu       sync.Mutex
	requests []string
	handlers map[string]http.HandlerFunc
	server   *httptest.Server
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{handlers: map[string]http.HandlerFunc{}}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.requests = append(b.requests, key)
		b.mu.Unlock()
		if h, ok := b.handlers[key]; ok {
			h(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"msg":"not found"}`))
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *backend) handle(key string, status int, body any) {
	b.handlers[key] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
}

func (b *backend) calls(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, req := range b.requests {
		if req == key {
			n++
		}
	}
	return n
}

func (b *backend) client() *api.Client {
	return api.NewClient(b.server.URL, 2*time.Second, zerolog.Nop())
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	router.LoadHTMLGlob("../../web/templates/*.html")
	return router
}

func testSite() *seo.Site {
	return seo.NewSite("https://devopstic.example")
}

func withSession(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "test-token"})
}

func TestPublicListingsHidePendingArticles(t *testing.T) {
	b := newBackend(t)
	b.handle("GET /api/news", http.StatusOK, []map[string]any{
		{"id": 1, "title": "Published Lesson", "status": "APPROVED", "author": "Dana"},
		{"id": 2, "title": "Draft Lesson", "status": "PENDING", "author": "Dana"},
	})

	router := newRouter(t)
	public := NewPublicController(b.client(), testSite(), zerolog.Nop())
	router.GET("/news", public.News)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Published Lesson")
	assert.NotContains(t, w.Body.String(), "Draft Lesson")
}

func TestHomeDegradesWhenBackendDown(t *testing.T) {
	b := newBackend(t)
	b.handle("GET /api/news", http.StatusInternalServerError, map[string]string{"msg": "boom"})
	b.handle("GET /api/blogs", http.StatusInternalServerError, map[string]string{"msg": "boom"})

	router := newRouter(t)
	public := NewPublicController(b.client(), testSite(), zerolog.Nop())
	router.GET("/", public.Home)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No lessons published yet")
}

func TestLegacyArticleRedirectsToLessonPath(t *testing.T) {
	b := newBackend(t)
	b.handle("GET /api/news/5", http.StatusOK, map[string]any{
		"id": 5, "title": "CI/CD Basics!", "status": "APPROVED", "category_name": "Pipelines",
	})

	router := newRouter(t)
	public := NewPublicController(b.client(), testSite(), zerolog.Nop())
	router.GET("/news/:category/:id", public.LegacyArticle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news/old-slug/5", nil))

	require.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/lessons/pipelines/cicd-basics", w.Header().Get("Location"))
}

func TestAuthorsIndexSkipsUnsluggableNames(t *testing.T) {
	b := newBackend(t)
	b.handle("GET /api/news", http.StatusOK, []map[string]any{
		{"id": 1, "title": "First", "status": "APPROVED", "author": "Dana Ops"},
		{"id": 2, "title": "Second", "status": "APPROVED", "author": "!!!"},
	})

	router := newRouter(t)
	public := NewPublicController(b.client(), testSite(), zerolog.Nop())
	router.GET("/authors", public.Authors)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `href="/authors/dana-ops"`)
	assert.NotContains(t, body, `href="/authors/"`)
	assert.NotContains(t, body, "!!!")
}

func TestContactValidationSkipsNetwork(t *testing.T) {
	b := newBackend(t)

	router := newRouter(t)
	public := NewPublicController(b.client(), testSite(), zerolog.Nop())
	router.POST("/contact", public.SubmitContact)

	form := url.Values{"name": {"Sam"}, "message": {"Hello there"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
	assert.Equal(t, 0, b.calls("POST /api/contact"))
}

func TestContactSubmitsWhenValid(t *testing.T) {
	b := newBackend(t)
	b.handle("POST /api/contact", http.StatusCreated, map[string]string{"message": "ok"})

	router := newRouter(t)
	public := NewPublicController(b.client(), testSite(), zerolog.Nop())
	router.POST("/contact", public.SubmitContact)

	form := url.Values{"name": {"Sam"}, "email": {"sam@example.com"}, "message": {"Hello there"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your message has been sent successfully!")
	assert.Equal(t, 1, b.calls("POST /api/contact"))
}

func TestDeleteAccountRequiresBothConfirmations(t *testing.T) {
	cases := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			name:    "missing password",
			form:    url.Values{"confirmText": {"DELETE"}},
			message: "Current password is required",
		},
		{
			name:    "wrong confirmation text",
			form:    url.Values{"currentPassword": {"hunter22"}, "confirmText": {"delete"}},
			message: "Type DELETE to confirm",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBackend(t)
			b.handle("GET /api/profile", http.StatusOK, map[string]any{"id": 1, "username": "sam"})

			router := newRouter(t)
			profile := NewProfileController(b.client(), upload.NewSaver(t.TempDir()), false, zerolog.Nop())
			router.POST("/admin/dashboard/profile/delete", profile.DeleteAccount)

			req := httptest.NewRequest(http.MethodPost, "/admin/dashboard/profile/delete", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			withSession(req)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
			assert.Equal(t, 0, b.calls("DELETE /api/profile"))
		})
	}
}

func TestDeleteAccountClearsSessionOnSuccess(t *testing.T) {
	b := newBackend(t)
	b.handle("DELETE /api/profile", http.StatusOK, map[string]string{"message": "deleted"})

	router := newRouter(t)
	profile := NewProfileController(b.client(), upload.NewSaver(t.TempDir()), false, zerolog.Nop())
	router.POST("/admin/dashboard/profile/delete", profile.DeleteAccount)

	form := url.Values{"currentPassword": {"hunter22"}, "confirmText": {"DELETE"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/dashboard/profile/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSession(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, 1, b.calls("DELETE /api/profile"))

	cleared := false
	for _, cookie := range w.Header().Values("Set-Cookie") {
		if strings.HasPrefix(cookie, session.CookieName+"=") && strings.Contains(cookie, "Max-Age=0") {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie should be cleared")
}

func TestCreateEditorRejectsShortPassword(t *testing.T) {
	b := newBackend(t)

	router := newRouter(t)
	settings := NewSettingsController(b.client(), zerolog.Nop())
	router.POST("/admin/dashboard/settings/editors", func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, session.Claims{RoleID: 1})
		settings.CreateEditor(c)
	})

	form := url.Values{"username": {"newbie"}, "password": {"short"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/dashboard/settings/editors", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSession(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "at least 6")
	assert.Equal(t, 0, b.calls("POST /api/auth/register-editor"))
}

func TestCreateEditorRequiresAdminRole(t *testing.T) {
	b := newBackend(t)

	router := newRouter(t)
	settings := NewSettingsController(b.client(), zerolog.Nop())
	router.POST("/admin/dashboard/settings/editors", func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, session.Claims{Role: "editor", RoleID: 2})
		settings.CreateEditor(c)
	})

	form := url.Values{"username": {"newbie"}, "password": {"longenough"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/dashboard/settings/editors", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSession(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	assert.Equal(t, 0, b.calls("POST /api/auth/register-editor"))
}

func TestAdvertisementUploadReachesAPI(t *testing.T) {
	b := newBackend(t)
	b.handle("GET /api/advertisements", http.StatusOK, []map[string]any{})

	var posted struct {
		ImageURL string `json:"imageUrl"`
	}
	b.handlers["POST /api/advertisements"] = func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&posted)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"created"}`))
	}

	router := newRouter(t)
	ads := NewAdvertisementAdminController(b.client(), nil, upload.NewSaver(t.TempDir()), zerolog.Nop())
	router.POST("/admin/dashboard/ads", ads.Create)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("title", "Spring promo")
	mw.WriteField("placement", "homepage-top")
	mw.WriteField("isActive", "true")
	part, err := mw.CreateFormFile("mediaFile", "promo.png")
	require.NoError(t, err)
	part.Write([]byte("png-bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/dashboard/ads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	withSession(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Advertisement created successfully")
	assert.Equal(t, 1, b.calls("POST /api/advertisements"))
	assert.True(t, strings.HasPrefix(posted.ImageURL, upload.PublicPrefix),
		"uploaded media path should be sent, got %q", posted.ImageURL)
}

func TestLoginFailurePassesBackendMessageThrough(t *testing.T) {
	b := newBackend(t)
	b.handle("POST /api/auth/login", http.StatusUnauthorized, map[string]string{"msg": "Invalid credentials"})

	router := newRouter(t)
	auth := NewAuthController(b.client(), false, zerolog.Nop())
	router.POST("/admin/login", auth.Login)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	b := newBackend(t)
	b.handle("POST /api/auth/login", http.StatusOK, map[string]string{"token": "issued-token"})

	router := newRouter(t)
	auth := NewAuthController(b.client(), false, zerolog.Nop())
	router.POST("/admin/login", auth.Login)

	form := url.Values{"username": {"admin"}, "password": {"right"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	found := false
	for _, cookie := range w.Header().Values("Set-Cookie") {
		if strings.HasPrefix(cookie, session.CookieName+"=issued-token") {
			found = true
		}
	}
	assert.True(t, found, "token cookie should be set")
}

func TestRobotsDisallowsAdminAndSearch(t *testing.T) {
	b := newBackend(t)

	router := newRouter(t)
	seoController := NewSEOController(b.client(), testSite(), zerolog.Nop())
	router.GET("/robots.txt", seoController.Robots)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Disallow: /admin")
	assert.Contains(t, body, "Disallow: /search")
	assert.Contains(t, body, "Sitemap: https://devopstic.example/sitemap.xml")
}

func TestSitemapDegradesToStaticRoutes(t *testing.T) {
	b := newBackend(t)
	b.handle("GET /api/news", http.StatusInternalServerError, map[string]string{"msg": "boom"})

	router := newRouter(t)
	seoController := NewSEOController(b.client(), testSite(), zerolog.Nop())
	router.GET("/sitemap.xml", seoController.Sitemap)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "https://devopstic.example/news")
	assert.Contains(t, body, "https://devopstic.example/topics")
	assert.Contains(t, body, "https://devopstic.example/authors")
	assert.Contains(t, body, "https://devopstic.example/contact")
	assert.NotContains(t, body, "/lessons/")
}
