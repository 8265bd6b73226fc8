package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/cache"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/forms"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/middleware"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/upload"
)

const authFailedMessage = "Authentication failed. Please log in again."

// newsPaths are the public pages that render article data and go stale on
// any article mutation.
var newsPaths = []string{"/", "/news", "/topics", "/authors"}

type NewsAdminController struct {
	api    *api.Client
	pages  *cache.Pages
	images *upload.Saver
	log    zerolog.Logger
}

func NewNewsAdminController(apiClient *api.Client, pages *cache.Pages, images *upload.Saver, log zerolog.Logger) *NewsAdminController {
	return &NewsAdminController{api: apiClient, pages: pages, images: images, log: log}
}

// formToken reads the bearer token from the session cookie, falling back to
// the hidden form field some dashboard forms carry.
func formToken(c *gin.Context) string {
	if token := session.Token(c); token != "" {
		return token
	}
	return strings.TrimSpace(c.PostForm("token"))
}

// Dashboard renders the admin landing page with content counts. Each count
// degrades independently.
func (nc *NewsAdminController) Dashboard(c *gin.Context) {
	token := session.Token(c)
	ctx := c.Request.Context()

	articleCount, pendingCount := 0, 0
	if articles, err := nc.api.Articles(ctx, token); err == nil {
		articleCount = len(articles)
		for _, a := range articles {
			if !a.Approved() {
				pendingCount++
			}
		}
	}
	categoryCount := 0
	if categories, err := nc.api.Categories(ctx, token); err == nil {
		categoryCount = len(categories)
	}
	blogCount := 0
	if blogs, err := nc.api.Blogs(ctx, token); err == nil {
		blogCount = len(blogs)
	}

	claims, _ := middleware.GetClaims(c)
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Title":         "Dashboard",
		"ArticleCount":  articleCount,
		"PendingCount":  pendingCount,
		"CategoryCount": categoryCount,
		"BlogCount":     blogCount,
		"IsAdmin":       claims.Admin(),
	})
}

// List renders the article management table, every status included.
func (nc *NewsAdminController) List(c *gin.Context) {
	nc.renderList(c, forms.State{})
}

func (nc *NewsAdminController) renderList(c *gin.Context, state forms.State) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	token := session.Token(c)

	listing, err := nc.api.ListArticles(c.Request.Context(), api.ListOptions{Page: page, Limit: 20}, token)
	if err != nil {
		nc.log.Warn().Err(err).Msg("admin article listing failed")
		listing = &models.PaginatedArticles{Pagination: models.SinglePage(page, 20, 0)}
		if state.Message == "" {
			state = forms.Failed("Failed to load articles: " + err.Error())
		}
	}

	claims, _ := middleware.GetClaims(c)
	c.HTML(http.StatusOK, "admin_news.html", gin.H{
		"Title":      "Manage news",
		"Articles":   listing.Items,
		"Pagination": listing.Pagination,
		"State":      state,
		"IsAdmin":    claims.Admin(),
	})
}

// New renders the blank article form.
func (nc *NewsAdminController) New(c *gin.Context) {
	categories, err := nc.api.Categories(c.Request.Context(), session.Token(c))
	if err != nil {
		categories = nil
	}
	c.HTML(http.StatusOK, "admin_news_form.html", gin.H{
		"Title":      "New article",
		"Categories": categories,
		"State":      forms.State{},
		"Form":       forms.Article{Status: models.StatusPending},
	})
}

func (nc *NewsAdminController) renderForm(c *gin.Context, title string, form forms.Article, article *models.Article, state forms.State) {
	categories, err := nc.api.Categories(c.Request.Context(), session.Token(c))
	if err != nil {
		categories = nil
	}
	c.HTML(http.StatusOK, "admin_news_form.html", gin.H{
		"Title":      title,
		"Categories": categories,
		"State":      state,
		"Form":       form,
		"Article":    article,
	})
}

func bindArticleForm(c *gin.Context) forms.Article {
	return forms.Article{
		Title:    strings.TrimSpace(c.PostForm("title")),
		Content:  strings.TrimSpace(c.PostForm("content")),
		Author:   strings.TrimSpace(c.PostForm("author")),
		Category: strings.TrimSpace(c.PostForm("category")),
		Status:   strings.TrimSpace(c.PostForm("status")),
	}
}

// Create handles the new-article form: authenticate, validate, upload, then
// mutate. New articles default to PENDING on the backend.
func (nc *NewsAdminController) Create(c *gin.Context) {
	form := bindArticleForm(c)

	token := formToken(c)
	if token == "" {
		nc.renderForm(c, "New article", form, nil, forms.Failed(authFailedMessage))
		return
	}

	if errs := forms.Check(form); errs != nil {
		nc.renderForm(c, "New article", form, nil, forms.Invalid(errs))
		return
	}

	imageURL, err := nc.saveImage(c)
	if err != nil {
		nc.renderForm(c, "New article", form, nil, forms.Failed("Failed to create article: "+err.Error()))
		return
	}

	input := models.ArticleInput{
		Title:    form.Title,
		Content:  form.Content,
		Author:   form.Author,
		Category: form.Category,
		ImageURL: imageURL,
	}
	if err := nc.api.CreateArticle(c.Request.Context(), input, token); err != nil {
		nc.renderForm(c, "New article", form, nil, forms.Failed("Failed to create article: "+err.Error()))
		return
	}

	nc.pages.Invalidate(c.Request.Context(), newsPaths...)
	nc.renderForm(c, "New article", forms.Article{}, nil, forms.Ok("Article created successfully"))
}

// Edit renders the form pre-filled with an existing article.
func (nc *NewsAdminController) Edit(c *gin.Context) {
	article, err := nc.api.GetArticle(c.Request.Context(), c.Param("id"), session.Token(c))
	if err != nil {
		nc.renderList(c, forms.Failed("Failed to load article: "+err.Error()))
		return
	}
	form := forms.Article{
		Title:    article.Title,
		Content:  article.Content,
		Author:   article.Author,
		Category: article.CategoryID,
		Status:   article.Status,
	}
	nc.renderForm(c, "Edit article", form, article, forms.State{})
}

// Update handles the edit form. A newly uploaded image wins; otherwise the
// hidden currentImagePath field keeps the stored one.
func (nc *NewsAdminController) Update(c *gin.Context) {
	id := c.Param("id")
	form := bindArticleForm(c)

	token := formToken(c)
	if token == "" {
		nc.renderForm(c, "Edit article", form, nil, forms.Failed(authFailedMessage))
		return
	}

	if errs := forms.Check(form); errs != nil {
		nc.renderForm(c, "Edit article", form, nil, forms.Invalid(errs))
		return
	}

	imageURL, err := nc.saveImage(c)
	if err != nil {
		nc.renderForm(c, "Edit article", form, nil, forms.Failed("Failed to update article: "+err.Error()))
		return
	}
	if imageURL == "" {
		imageURL = strings.TrimSpace(c.PostForm("currentImagePath"))
	}

	input := models.ArticleInput{
		Title:    form.Title,
		Content:  form.Content,
		Author:   form.Author,
		Category: form.Category,
		Status:   form.Status,
		ImageURL: imageURL,
	}
	if err := nc.api.UpdateArticle(c.Request.Context(), id, input, token); err != nil {
		nc.renderForm(c, "Edit article", form, nil, forms.Failed("Failed to update article: "+err.Error()))
		return
	}

	nc.pages.Invalidate(c.Request.Context(), newsPaths...)
	nc.renderForm(c, "Edit article", form, nil, forms.Ok("Article updated successfully"))
}

// Delete removes an article and returns to the listing.
func (nc *NewsAdminController) Delete(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		nc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	if err := nc.api.DeleteArticle(c.Request.Context(), c.Param("id"), token); err != nil {
		nc.renderList(c, forms.Failed("Failed to delete article: "+err.Error()))
		return
	}

	nc.pages.Invalidate(c.Request.Context(), newsPaths...)
	c.Redirect(http.StatusSeeOther, "/admin/dashboard/news")
}

// SetStatus flips the approval flag through the narrow status endpoint.
func (nc *NewsAdminController) SetStatus(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		nc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	status := strings.TrimSpace(c.PostForm("status"))
	if status != models.StatusPending && status != models.StatusApproved {
		nc.renderList(c, forms.Failed("Unknown status value"))
		return
	}

	if err := nc.api.SetArticleStatus(c.Request.Context(), c.Param("id"), status, token); err != nil {
		nc.renderList(c, forms.Failed("Failed to update status: "+err.Error()))
		return
	}

	nc.pages.Invalidate(c.Request.Context(), newsPaths...)
	c.Redirect(http.StatusSeeOther, "/admin/dashboard/news")
}

func (nc *NewsAdminController) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("imageFile")
	if err != nil {
		// No file part in the form at all.
		return "", nil
	}
	return nc.images.SaveImage(file)
}
