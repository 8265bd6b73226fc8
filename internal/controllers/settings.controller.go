package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/forms"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/middleware"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
)

// SettingsController hosts the admin-only settings page, currently the
// editor-account creation form.
type SettingsController struct {
	api *api.Client
	log zerolog.Logger
}

func NewSettingsController(apiClient *api.Client, log zerolog.Logger) *SettingsController {
	return &SettingsController{api: apiClient, log: log}
}

// requireAdmin redirects editors away from the settings page. Only the UI is
// gated here; the registration endpoint enforces the role again server-side.
func (sc *SettingsController) requireAdmin(c *gin.Context) bool {
	claims, ok := middleware.GetClaims(c)
	if !ok || !claims.Admin() {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		c.Abort()
		return false
	}
	return true
}

func (sc *SettingsController) render(c *gin.Context, state forms.State) {
	c.HTML(http.StatusOK, "admin_settings.html", gin.H{
		"Title": "Settings",
		"State": state,
	})
}

// Show renders the settings page.
func (sc *SettingsController) Show(c *gin.Context) {
	if !sc.requireAdmin(c) {
		return
	}
	sc.render(c, forms.State{})
}

// CreateEditor registers a new editor account through the remote API.
func (sc *SettingsController) CreateEditor(c *gin.Context) {
	if !sc.requireAdmin(c) {
		return
	}

	form := forms.Editor{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
	}
	if errs := forms.Check(form); errs != nil {
		sc.render(c, forms.Invalid(errs))
		return
	}

	token := session.Token(c)
	if token == "" {
		sc.render(c, forms.Failed(authFailedMessage))
		return
	}

	if err := sc.api.RegisterEditor(c.Request.Context(), form.Username, form.Password, token); err != nil {
		sc.render(c, forms.Failed("Failed to create editor: "+err.Error()))
		return
	}
	sc.render(c, forms.Ok("Editor account created successfully"))
}
