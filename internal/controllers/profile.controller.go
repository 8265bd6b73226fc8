package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/forms"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/upload"
)

// deleteConfirmText is the literal the user must type to destroy their
// account.
const deleteConfirmText = "DELETE"

type ProfileController struct {
	api    *api.Client
	images *upload.Saver
	secure bool
	log    zerolog.Logger
}

func NewProfileController(apiClient *api.Client, images *upload.Saver, secureCookies bool, log zerolog.Logger) *ProfileController {
	return &ProfileController{api: apiClient, images: images, secure: secureCookies, log: log}
}

func (pc *ProfileController) render(c *gin.Context, profile *models.UserProfile, state forms.State) {
	c.HTML(http.StatusOK, "admin_profile.html", gin.H{
		"Title":   "Profile",
		"Profile": profile,
		"State":   state,
	})
}

// Show renders the self-service profile form.
func (pc *ProfileController) Show(c *gin.Context) {
	profile, err := pc.api.Profile(c.Request.Context(), session.Token(c))
	if err != nil {
		pc.render(c, nil, forms.Failed("Failed to load profile: "+err.Error()))
		return
	}
	pc.render(c, profile, forms.State{})
}

// Update saves the profile form. A new avatar upload wins over the hidden
// current-avatar field; the password pair travels only when both fields are
// filled.
func (pc *ProfileController) Update(c *gin.Context) {
	form := forms.Profile{
		FullName:        strings.TrimSpace(c.PostForm("fullName")),
		Email:           strings.TrimSpace(c.PostForm("email")),
		Phone:           strings.TrimSpace(c.PostForm("phone")),
		Bio:             strings.TrimSpace(c.PostForm("bio")),
		CurrentPassword: c.PostForm("currentPassword"),
		NewPassword:     c.PostForm("newPassword"),
	}

	token := session.Token(c)
	if token == "" {
		pc.render(c, nil, forms.Failed(authFailedMessage))
		return
	}

	if errs := forms.CheckProfile(form); errs != nil {
		profile, _ := pc.api.Profile(c.Request.Context(), token)
		pc.render(c, profile, forms.Invalid(errs))
		return
	}

	avatarURL := strings.TrimSpace(c.PostForm("currentAvatarUrl"))
	if file, err := c.FormFile("avatarFile"); err == nil {
		uploaded, err := pc.images.SaveImage(file)
		if err != nil {
			pc.render(c, nil, forms.Failed("Failed to update profile: "+err.Error()))
			return
		}
		if uploaded != "" {
			avatarURL = uploaded
		}
	}

	input := models.ProfileInput{
		FullName:        form.FullName,
		Email:           form.Email,
		Phone:           form.Phone,
		Bio:             form.Bio,
		AvatarURL:       avatarURL,
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	}
	if err := pc.api.UpdateProfile(c.Request.Context(), input, token); err != nil {
		profile, _ := pc.api.Profile(c.Request.Context(), token)
		pc.render(c, profile, forms.Failed("Failed to update profile: "+err.Error()))
		return
	}

	profile, _ := pc.api.Profile(c.Request.Context(), token)
	pc.render(c, profile, forms.Ok("Profile updated successfully"))
}

// DeleteAccount destroys the logged-in account. Two independent
// confirmations are required before the API is called: the current password
// and the literal confirmation text.
func (pc *ProfileController) DeleteAccount(c *gin.Context) {
	token := session.Token(c)
	if token == "" {
		pc.render(c, nil, forms.Failed(authFailedMessage))
		return
	}

	currentPassword := c.PostForm("currentPassword")
	confirm := c.PostForm("confirmText")

	if strings.TrimSpace(currentPassword) == "" {
		profile, _ := pc.api.Profile(c.Request.Context(), token)
		pc.render(c, profile, forms.Failed("Current password is required to delete your account"))
		return
	}
	if confirm != deleteConfirmText {
		profile, _ := pc.api.Profile(c.Request.Context(), token)
		pc.render(c, profile, forms.Failed("Type DELETE to confirm account deletion"))
		return
	}

	if err := pc.api.DeleteAccount(c.Request.Context(), currentPassword, token); err != nil {
		profile, _ := pc.api.Profile(c.Request.Context(), token)
		pc.render(c, profile, forms.Failed("Failed to delete account: "+err.Error()))
		return
	}

	session.Clear(c, pc.secure)
	c.Redirect(http.StatusSeeOther, "/admin")
}
