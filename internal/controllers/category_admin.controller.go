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

var categoryPaths = []string{"/", "/news", "/topics"}

type CategoryAdminController struct {
	api   *api.Client
	pages *cache.Pages
	log   zerolog.Logger
}

func NewCategoryAdminController(apiClient *api.Client, pages *cache.Pages, log zerolog.Logger) *CategoryAdminController {
	return &CategoryAdminController{api: apiClient, pages: pages, log: log}
}

// List renders the category management page with its inline create form.
func (cc *CategoryAdminController) List(c *gin.Context) {
	cc.renderList(c, forms.State{})
}

func (cc *CategoryAdminController) renderList(c *gin.Context, state forms.State) {
	categories, err := cc.api.Categories(c.Request.Context(), session.Token(c))
	if err != nil {
		cc.log.Warn().Err(err).Msg("admin category listing failed")
		if state.Message == "" {
			state = forms.Failed("Failed to load categories: " + err.Error())
		}
	}
	c.HTML(http.StatusOK, "admin_categories.html", gin.H{
		"Title":      "Manage categories",
		"Categories": categories,
		"State":      state,
	})
}

// Create adds a category.
func (cc *CategoryAdminController) Create(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		cc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	form := forms.Category{Name: strings.TrimSpace(c.PostForm("name"))}
	if errs := forms.Check(form); errs != nil {
		cc.renderList(c, forms.Invalid(errs))
		return
	}

	if err := cc.api.CreateCategory(c.Request.Context(), models.CategoryInput(form), token); err != nil {
		cc.renderList(c, forms.Failed("Failed to create category: "+err.Error()))
		return
	}

	cc.pages.Invalidate(c.Request.Context(), categoryPaths...)
	cc.renderList(c, forms.Ok("Category created successfully"))
}

// Update renames a category.
func (cc *CategoryAdminController) Update(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		cc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	form := forms.Category{Name: strings.TrimSpace(c.PostForm("name"))}
	if errs := forms.Check(form); errs != nil {
		cc.renderList(c, forms.Invalid(errs))
		return
	}

	if err := cc.api.UpdateCategory(c.Request.Context(), c.Param("id"), models.CategoryInput(form), token); err != nil {
		cc.renderList(c, forms.Failed("Failed to update category: "+err.Error()))
		return
	}

	cc.pages.Invalidate(c.Request.Context(), categoryPaths...)
	cc.renderList(c, forms.Ok("Category updated successfully"))
}

// Delete removes a category. Articles pointing at it fall back to the
// "general" name on their next render.
func (cc *CategoryAdminController) Delete(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		cc.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	if err := cc.api.DeleteCategory(c.Request.Context(), c.Param("id"), token); err != nil {
		cc.renderList(c, forms.Failed("Failed to delete category: "+err.Error()))
		return
	}

	cc.pages.Invalidate(c.Request.Context(), categoryPaths...)
	cc.renderList(c, forms.Ok("Category deleted successfully"))
}
