package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/cache"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/forms"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
)

var blogPaths = []string{"/", "/blog"}

type BlogAdminController struct {
	api   *api.Client
	pages *cache.Pages
	log   zerolog.Logger
}

func NewBlogAdminController(apiClient *api.Client, pages *cache.Pages, log zerolog.Logger) *BlogAdminController {
	return &BlogAdminController{api: apiClient, pages: pages, log: log}
}

// List renders the blog management page.
func (bc *BlogAdminController) List(c *gin.Context) {
	bc.renderList(c, forms.State{})
}

func (bc *BlogAdminController) renderList(c *gin.Context, state forms.State) {
	blogs, err := bc.api.Blogs(c.Request.Context(), session.Token(c))
	if err != nil {
		bc.log.Warn().Err(err).Msg("admin blog listing failed")
		if state.Message == "" {
			state = forms.Failed("Failed to load blogs: " + err.Error())
		}
	}
	c.HTML(http.StatusOK, "admin_blogs.html", gin.H{
		"Title": "Manage blogs",
		"Blogs": blogs,
		"State": state,
	})
}

func bindBlogForm(c *gin.Context) forms.Blog {
	return forms.Blog{
		Title:   strings.TrimSpace(c.PostForm("title")),
		Content: strings.TrimSpace(c.PostForm("content")),
	}
}

// Create adds a blog post.
func (bc *BlogAdminController) Create(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		bc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	form := bindBlogForm(c)
	if errs := forms.Check(form); errs != nil {
		bc.renderList(c, forms.Invalid(errs))
		return
	}

	if err := bc.api.CreateBlog(c.Request.Context(), models.BlogInput(form), token); err != nil {
		bc.renderList(c, forms.Failed("Failed to create blog: "+err.Error()))
		return
	}

	bc.pages.Invalidate(c.Request.Context(), blogPaths...)
	bc.renderList(c, forms.Ok("Blog created successfully"))
}

// Update replaces a blog post's fields.
func (bc *BlogAdminController) Update(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		bc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	form := bindBlogForm(c)
	if errs := forms.Check(form); errs != nil {
		bc.renderList(c, forms.Invalid(errs))
		return
	}

	if err := bc.api.UpdateBlog(c.Request.Context(), c.Param("id"), models.BlogInput(form), token); err != nil {
		bc.renderList(c, forms.Failed("Failed to update blog: "+err.Error()))
		return
	}

	bc.pages.Invalidate(c.Request.Context(), append(blogPaths, "/blog/"+c.Param("id"))...)
	bc.renderList(c, forms.Ok("Blog updated successfully"))
}

// Delete removes a blog post.
func (bc *BlogAdminController) Delete(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		bc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	if err := bc.api.DeleteBlog(c.Request.Context(), c.Param("id"), token); err != nil {
		bc.renderList(c, forms.Failed("Failed to delete blog: "+err.Error()))
		return
	}

	bc.pages.Invalidate(c.Request.Context(), append(blogPaths, "/blog/"+c.Param("id"))...)
	bc.renderList(c, forms.Ok("Blog deleted successfully"))
}
