package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, 5*time.Second, zerolog.Nop(), opts...)
	return client, server
}

func TestAuthHeadersAttached(t *testing.T) {
	var gotAuth, gotCustom string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCustom = r.Header.Get("x-access-token")
		w.Write([]byte(`[]`))
	}))

	_, err := client.ListArticles(context.Background(), ListOptions{}, "tok123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "tok123", gotCustom)
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"msg field", http.StatusBadRequest, `{"msg":"title taken"}`, "title taken"},
		{"message field", http.StatusUnauthorized, `{"message":"bad token"}`, "bad token"},
		{"plain body falls back to status text", http.StatusInternalServerError, `boom`, "500 Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			err := client.CreateArticle(context.Background(), models.ArticleInput{Title: "x"}, "tok")
			require.Error(t, err)
			apiErr, ok := err.(*Error)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expected, apiErr.Message)
		})
	}
}

func TestPaginationSynthesized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/categories" {
			w.Write([]byte(`[]`))
			return
		}
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "9", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"items":[{"id":1,"title":"a"},{"id":2,"title":"b"}]}`))
	}))

	page, err := client.ListArticles(context.Background(), ListOptions{Page: 2, Limit: 9}, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 9, page.Pagination.Limit)
	assert.Equal(t, 1, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNextPage)
	assert.False(t, page.Pagination.HasPreviousPage)
}

func TestPaginationPassedThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/categories" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{"items":[{"id":1,"title":"a"}],"pagination":{"page":3,"limit":1,"total":7,"totalPages":7,"hasNextPage":true,"hasPreviousPage":true}}`))
	}))

	page, err := client.ListArticles(context.Background(), ListOptions{Page: 3, Limit: 1}, "")
	require.NoError(t, err)
	assert.Equal(t, 7, page.Pagination.Total)
	assert.True(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPreviousPage)
}

func TestAuthorFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{"explicit author wins", `{"id":1,"author":"Jane","author_name":"ignored"}`, "Jane"},
		{"author_name", `{"id":1,"author_name":"Joe"}`, "Joe"},
		{"created_by", `{"id":1,"created_by":"ops"}`, "ops"},
		{"user full name", `{"id":1,"user":{"fullName":"Ana B"}}`, "Ana B"},
		{"user name", `{"id":1,"user":{"name":"Ana"}}`, "Ana"},
		{"user username", `{"id":1,"user":{"username":"ana42"}}`, "ana42"},
		{"numeric user id placeholder", `{"id":1,"user_id":7}`, "Author #7"},
		{"nothing at all", `{"id":1}`, "Unknown"},
		{"whitespace is empty", `{"id":1,"author":"   ","author_name":"Joe"}`, "Joe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/api/categories" {
					w.Write([]byte(`[]`))
					return
				}
				w.Write([]byte(`[` + tt.doc + `]`))
			}))

			page, err := client.ListArticles(context.Background(), ListOptions{}, "")
			require.NoError(t, err)
			require.Len(t, page.Items, 1)
			assert.Equal(t, tt.expected, page.Items[0].Author)
		})
	}
}

func TestCategoryNameResolution(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/categories" {
			w.Write([]byte(`[{"id":3,"name":"Kubernetes"}]`))
			return
		}
		w.Write([]byte(`[{"id":1,"title":"a","category":3},{"id":2,"title":"b","category":99}]`))
	}))

	page, err := client.ListArticles(context.Background(), ListOptions{}, "")
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes", page.Items[0].CategoryName)
	assert.Equal(t, "general", page.Items[1].CategoryName)
}

func TestCategoryLookupFailureSwallowed(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/categories" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"msg":"db down"}`))
			return
		}
		w.Write([]byte(`[{"id":1,"title":"a","category":3}]`))
	}))

	page, err := client.ListArticles(context.Background(), ListOptions{}, "")
	require.NoError(t, err)
	assert.Equal(t, "general", page.Items[0].CategoryName)
}

func TestAdvertisementPathFallback(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/api/advertisements" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"id":1,"title":"promo","placement":"homepage-top"}]`))
	}))

	ads, err := client.Advertisements(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, []string{"/api/advertisements", "/api/ads"}, paths)
	assert.True(t, ads[0].Active(), "isActive defaults to true when omitted")
}

func TestAdvertisementFirstSuccessShortCircuits(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))

	_, err := client.Advertisements(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestAdvertisementNonNotFoundErrorStops(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"no"}`))
	}))

	_, err := client.Advertisements(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestSetArticleStatusUsesPatch(t *testing.T) {
	var method, path, body string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusOK)
	}))

	err := client.SetArticleStatus(context.Background(), "12", models.StatusApproved, "tok")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/news/12/status", path)
	assert.JSONEq(t, `{"status":"APPROVED"}`, body)
}

func TestLoginTokenRequired(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := client.Login(context.Background(), "admin", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token received")
}

func TestContentFieldAliases(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/categories" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"id":"7","title":"a","content":"short","full_content":"long","image_url":"/i.png","createdAt":"2024-01-01"}]`))
	}))

	page, err := client.ListArticles(context.Background(), ListOptions{}, "")
	require.NoError(t, err)
	a := page.Items[0]
	assert.Equal(t, "7", a.ID)
	assert.Equal(t, "long", a.Content, "full_content wins over content")
	assert.Equal(t, "/i.png", a.ImageURL)
	assert.Equal(t, "2024-01-01", a.CreatedAt)
}
