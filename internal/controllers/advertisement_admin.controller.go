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
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/upload"
)

type AdvertisementAdminController struct {
	api    *api.Client
	pages  *cache.Pages
	images *upload.Saver
	log    zerolog.Logger
}

func NewAdvertisementAdminController(apiClient *api.Client, pages *cache.Pages, images *upload.Saver, log zerolog.Logger) *AdvertisementAdminController {
	return &AdvertisementAdminController{api: apiClient, pages: pages, images: images, log: log}
}

// List renders the advertisement management page.
func (ac *AdvertisementAdminController) List(c *gin.Context) {
	ac.renderList(c, forms.State{})
}

func (ac *AdvertisementAdminController) renderList(c *gin.Context, state forms.State) {
	ads, err := ac.api.Advertisements(c.Request.Context(), session.Token(c))
	if err != nil {
		ac.log.Warn().Err(err).Msg("admin advertisement listing failed")
		if state.Message == "" {
			state = forms.Failed("Failed to load advertisements: " + err.Error())
		}
	}
	c.HTML(http.StatusOK, "admin_ads.html", gin.H{
		"Title":          "Manage advertisements",
		"Advertisements": ads,
		"State":          state,
	})
}

// bindAdForm reads the typed ad form fields. The URL tag must only ever see
// what the user typed; uploads are applied after validation.
func bindAdForm(c *gin.Context) forms.Advertisement {
	return forms.Advertisement{
		Title:     strings.TrimSpace(c.PostForm("title")),
		ImageURL:  strings.TrimSpace(c.PostForm("imageUrl")),
		LinkURL:   strings.TrimSpace(c.PostForm("linkUrl")),
		Placement: strings.TrimSpace(c.PostForm("placement")),
		IsActive:  c.PostForm("isActive") != "",
	}
}

// applyUpload stores an uploaded media file and swaps its local public path
// in over the image URL field.
func (ac *AdvertisementAdminController) applyUpload(c *gin.Context, form *forms.Advertisement) error {
	file, err := c.FormFile("mediaFile")
	if err != nil {
		return nil
	}
	uploaded, err := ac.images.SaveImage(file)
	if err != nil {
		return err
	}
	if uploaded != "" {
		form.ImageURL = uploaded
	}
	return nil
}

// Create adds an advertisement.
func (ac *AdvertisementAdminController) Create(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		ac.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	form := bindAdForm(c)
	if errs := forms.Check(form); errs != nil {
		ac.renderList(c, forms.Invalid(errs))
		return
	}
	if err := ac.applyUpload(c, &form); err != nil {
		ac.renderList(c, forms.Failed("Failed to create advertisement: "+err.Error()))
		return
	}

	if err := ac.api.CreateAdvertisement(c.Request.Context(), models.AdvertisementInput(form), token); err != nil {
		ac.renderList(c, forms.Failed("Failed to create advertisement: "+err.Error()))
		return
	}

	ac.pages.Invalidate(c.Request.Context(), "/")
	ac.renderList(c, forms.Ok("Advertisement created successfully"))
}

// Update replaces an advertisement's fields.
func (ac *AdvertisementAdminController) Update(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		ac.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	form := bindAdForm(c)
	if errs := forms.Check(form); errs != nil {
		ac.renderList(c, forms.Invalid(errs))
		return
	}
	if err := ac.applyUpload(c, &form); err != nil {
		ac.renderList(c, forms.Failed("Failed to update advertisement: "+err.Error()))
		return
	}

	if err := ac.api.UpdateAdvertisement(c.Request.Context(), c.Param("id"), models.AdvertisementInput(form), token); err != nil {
		ac.renderList(c, forms.Failed("Failed to update advertisement: "+err.Error()))
		return
	}

	ac.pages.Invalidate(c.Request.Context(), "/")
	ac.renderList(c, forms.Ok("Advertisement updated successfully"))
}

// Delete removes an advertisement.
func (ac *AdvertisementAdminController) Delete(c *gin.Context) {
	token := formToken(c)
	if token == "" {
		ac.renderList(c, forms.Failed(authFailedMessage))
		return
	}

	if err := ac.api.DeleteAdvertisement(c.Request.Context(), c.Param("id"), token); err != nil {
		ac.renderList(c, forms.Failed("Failed to delete advertisement: "+err.Error()))
		return
	}

	ac.pages.Invalidate(c.Request.Context(), "/")
	ac.renderList(c, forms.Ok("Advertisement deleted successfully"))
}
