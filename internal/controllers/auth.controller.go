package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/forms"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
)

type AuthController struct {
	api    *api.Client
	secure bool
	log    zerolog.Logger
}

func NewAuthController(apiClient *api.Client, secureCookies bool, log zerolog.Logger) *AuthController {
	return &AuthController{api: apiClient, secure: secureCookies, log: log}
}

// ShowLogin renders the admin login page. The session=expired marker set by
// the gate turns into an explanatory message.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	state := forms.State{}
	if c.Query("session") == "expired" {
		state = forms.Failed("Your session has expired. Please log in again.")
	}
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Title": "Admin login",
		"State": state,
	})
}

// Login exchanges the form credentials for a token, stores the session
// cookie, and lands on the dashboard. The backend's error message passes
// through unmodified.
func (ac *AuthController) Login(c *gin.Context) {
	form := forms.Login{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
	}

	if errs := forms.Check(form); errs != nil {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Title": "Admin login",
			"State": forms.Failed("Username and password are required"),
		})
		return
	}

	token, err := ac.api.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Title": "Admin login",
			"State": forms.Failed(err.Error()),
		})
		return
	}

	session.Set(c, token, ac.secure)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	session.Clear(c, ac.secure)
	c.Redirect(http.StatusFound, "/admin")
}
