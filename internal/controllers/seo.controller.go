package controllers

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/seo"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/slug"
)

type SEOController struct {
	api  *api.Client
	site *seo.Site
	log  zerolog.Logger
}

func NewSEOController(apiClient *api.Client, site *seo.Site, log zerolog.Logger) *SEOController {
	return &SEOController{api: apiClient, site: site, log: log}
}

// Robots serves robots.txt: the admin area and search results stay out of
// indexes.
func (sc *SEOController) Robots(c *gin.Context) {
	body := "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /admin\n" +
		"Disallow: /admin/\n" +
		"Disallow: /search\n" +
		"\n" +
		"Sitemap: " + sc.site.URL() + "/sitemap.xml\n" +
		"Host: " + sc.site.URL() + "\n"
	c.String(http.StatusOK, body)
}

type sitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap serves sitemap.xml: the static routes plus every approved lesson
// and its topic hub. A failed fetch degrades to the static routes alone.
func (sc *SEOController) Sitemap(c *gin.Context) {
	now := time.Now().UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: sc.site.AbsoluteURL("/"), LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: sc.site.AbsoluteURL("/news"), LastMod: now, ChangeFreq: "daily", Priority: "0.9"},
		{Loc: sc.site.AbsoluteURL("/topics"), LastMod: now, ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: sc.site.AbsoluteURL("/authors"), LastMod: now, ChangeFreq: "weekly", Priority: "0.7"},
		{Loc: sc.site.AbsoluteURL("/blog"), LastMod: now, ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: sc.site.AbsoluteURL("/contact"), LastMod: now, ChangeFreq: "monthly", Priority: "0.6"},
	}

	articles, err := sc.api.Articles(c.Request.Context(), "")
	if err != nil {
		sc.log.Warn().Err(err).Msg("sitemap article fetch failed, serving static routes only")
		articles = nil
	}
	approved := models.ApprovedOnly(articles)

	seenTopics := map[string]bool{}
	for _, a := range approved {
		topic := slug.Category(a.CategoryName)
		if !seenTopics[topic] {
			seenTopics[topic] = true
			urls = append(urls, sitemapURL{
				Loc:        sc.site.AbsoluteURL("/topics/" + topic),
				LastMod:    now,
				ChangeFreq: "weekly",
				Priority:   "0.7",
			})
		}

		lastMod := now
		if d := articleDate(a); d != "" {
			if t, err := time.Parse(time.RFC3339, d); err == nil {
				lastMod = t.UTC().Format("2006-01-02")
			}
		}
		urls = append(urls, sitemapURL{
			Loc:        sc.site.AbsoluteURL(slug.LessonPath(a)),
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}

	payload, err := xml.MarshalIndent(sitemapSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "", "  ")
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), payload...))
}
