package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/forms"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/seo"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/slug"
)

const newsPageSize = 9
const blogPageSize = 6

type PublicController struct {
	api  *api.Client
	site *seo.Site
	log  zerolog.Logger
}

func NewPublicController(apiClient *api.Client, site *seo.Site, log zerolog.Logger) *PublicController {
	return &PublicController{api: apiClient, site: site, log: log}
}

// approvedArticles fetches the full article list and keeps only publicly
// visible entries, newest first.
func (pc *PublicController) approvedArticles(c *gin.Context) ([]models.Article, error) {
	articles, err := pc.api.Articles(c.Request.Context(), "")
	if err != nil {
		return nil, err
	}
	approved := models.ApprovedOnly(articles)
	sort.SliceStable(approved, func(i, j int) bool {
		return articleDate(approved[i]) > articleDate(approved[j])
	})
	return approved, nil
}

func articleDate(a models.Article) string {
	if a.PublishedAt != "" {
		return a.PublishedAt
	}
	if a.UpdatedAt != "" {
		return a.UpdatedAt
	}
	return a.CreatedAt
}

// Home renders the landing page. The three fetches run concurrently and each
// failure degrades to an empty section rather than failing the page.
func (pc *PublicController) Home(c *gin.Context) {
	var (
		articles []models.Article
		blogs    []models.Blog
		ads      []models.Advertisement
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		all, err := pc.api.Articles(ctx, "")
		if err != nil {
			pc.log.Warn().Err(err).Msg("homepage article fetch failed")
			return nil
		}
		articles = models.ApprovedOnly(all)
		return nil
	})
	g.Go(func() error {
		all, err := pc.api.Blogs(ctx, "")
		if err != nil {
			pc.log.Warn().Err(err).Msg("homepage blog fetch failed")
			return nil
		}
		blogs = all
		return nil
	})
	g.Go(func() error {
		all, err := pc.api.Advertisements(ctx, "")
		if err != nil {
			pc.log.Warn().Err(err).Msg("homepage advertisement fetch failed")
			return nil
		}
		ads = all
		return nil
	})
	g.Wait()

	sort.SliceStable(articles, func(i, j int) bool {
		return articleDate(articles[i]) > articleDate(articles[j])
	})
	if len(articles) > newsPageSize {
		articles = articles[:newsPageSize]
	}
	if len(blogs) > 3 {
		blogs = blogs[:3]
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":     "DevOpsTic",
		"Canonical": pc.site.AbsoluteURL("/"),
		"Articles":  withPaths(articles),
		"Blogs":     blogs,
		"Ad":        models.PickAd(ads, "homepage-top"),
	})
}

// lessonView pairs an article with its canonical path for templates.
type lessonView struct {
	models.Article
	Path string
}

func withPaths(articles []models.Article) []lessonView {
	views := make([]lessonView, len(articles))
	for i, a := range articles {
		views[i] = lessonView{Article: a, Path: slug.LessonPath(a)}
	}
	return views
}

// News renders the paginated public listing.
func (pc *PublicController) News(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	listing, err := pc.api.ListArticles(c.Request.Context(), api.ListOptions{
		Page:   page,
		Limit:  newsPageSize,
		Status: models.StatusApproved,
	}, "")
	if err != nil {
		pc.log.Warn().Err(err).Msg("news listing fetch failed")
		listing = &models.PaginatedArticles{Pagination: models.SinglePage(page, newsPageSize, 0)}
	}
	// The status filter is advisory; the visibility invariant is enforced
	// here regardless of what the backend returned.
	approved := models.ApprovedOnly(listing.Items)

	c.HTML(http.StatusOK, "news.html", gin.H{
		"Title":      "News",
		"Canonical":  pc.site.AbsoluteURL("/news"),
		"Articles":   withPaths(approved),
		"Pagination": listing.Pagination,
	})
}

// LegacyArticle serves the old /news/{category}/{id} URLs with a permanent
// redirect to the canonical lesson path.
func (pc *PublicController) LegacyArticle(c *gin.Context) {
	article, err := pc.api.GetArticle(c.Request.Context(), c.Param("id"), "")
	if err != nil || !article.Approved() {
		pc.notFound(c)
		return
	}
	c.Redirect(http.StatusMovedPermanently, slug.LessonPath(*article))
}

// Lesson renders an article detail page found by its canonical slug pair.
func (pc *PublicController) Lesson(c *gin.Context) {
	categorySlug := c.Param("category")
	lessonSlug := c.Param("lesson")

	approved, err := pc.approvedArticles(c)
	if err != nil {
		pc.log.Warn().Err(err).Msg("lesson fetch failed")
		pc.notFound(c)
		return
	}

	var match *models.Article
	for i := range approved {
		if slug.Lesson(approved[i].Title) == lessonSlug {
			match = &approved[i]
			break
		}
	}
	if match == nil {
		pc.notFound(c)
		return
	}

	canonical := slug.LessonPath(*match)
	if slug.Category(match.CategoryName) != categorySlug {
		c.Redirect(http.StatusMovedPermanently, canonical)
		return
	}

	ads, err := pc.api.Advertisements(c.Request.Context(), "")
	if err != nil {
		ads = nil
	}

	c.HTML(http.StatusOK, "lesson.html", gin.H{
		"Title":     match.Title,
		"Canonical": pc.site.AbsoluteURL(canonical),
		"Article":   match,
		"Ad":        models.PickAd(ads, "lesson-sidebar"),
		"Breadcrumb": []gin.H{
			{"Name": "Home", "Path": "/"},
			{"Name": match.CategoryName, "Path": "/topics/" + slug.Category(match.CategoryName)},
			{"Name": match.Title, "Path": ""},
		},
	})
}

type topicView struct {
	Name  string
	Slug  string
	Count int
}

// Topics renders the category hub.
func (pc *PublicController) Topics(c *gin.Context) {
	approved, err := pc.approvedArticles(c)
	if err != nil {
		pc.log.Warn().Err(err).Msg("topics fetch failed")
		approved = nil
	}

	bySlug := map[string]*topicView{}
	var order []string
	for _, a := range approved {
		s := slug.Category(a.CategoryName)
		if t, ok := bySlug[s]; ok {
			t.Count++
			continue
		}
		bySlug[s] = &topicView{Name: a.CategoryName, Slug: s, Count: 1}
		order = append(order, s)
	}
	topics := make([]topicView, 0, len(order))
	for _, s := range order {
		topics = append(topics, *bySlug[s])
	}
	sort.SliceStable(topics, func(i, j int) bool { return topics[i].Count > topics[j].Count })

	c.HTML(http.StatusOK, "topics.html", gin.H{
		"Title":     "Topics",
		"Canonical": pc.site.AbsoluteURL("/topics"),
		"Topics":    topics,
	})
}

// Topic renders the listing for one category slug.
func (pc *PublicController) Topic(c *gin.Context) {
	topicSlug := c.Param("slug")

	approved, err := pc.approvedArticles(c)
	if err != nil {
		pc.log.Warn().Err(err).Msg("topic fetch failed")
		approved = nil
	}

	var matched []models.Article
	name := topicSlug
	for _, a := range approved {
		if slug.Category(a.CategoryName) == topicSlug {
			matched = append(matched, a)
			name = a.CategoryName
		}
	}

	c.HTML(http.StatusOK, "topic.html", gin.H{
		"Title":     name,
		"Canonical": pc.site.AbsoluteURL("/topics/" + topicSlug),
		"Topic":     name,
		"Articles":  withPaths(matched),
	})
}

type authorView struct {
	Name  string
	Slug  string
	Count int
}

// Authors renders the contributor index, busiest authors first.
func (pc *PublicController) Authors(c *gin.Context) {
	approved, err := pc.approvedArticles(c)
	if err != nil {
		pc.log.Warn().Err(err).Msg("authors fetch failed")
		approved = nil
	}

	bySlug := map[string]*authorView{}
	var order []string
	for _, a := range approved {
		name := strings.TrimSpace(a.Author)
		s := slug.Author(name)
		// A name with no sluggable characters has no reachable page;
		// leave it out of the index rather than linking a 404.
		if s == "" {
			continue
		}
		if v, ok := bySlug[s]; ok {
			v.Count++
			continue
		}
		bySlug[s] = &authorView{Name: name, Slug: s, Count: 1}
		order = append(order, s)
	}
	authors := make([]authorView, 0, len(order))
	for _, s := range order {
		authors = append(authors, *bySlug[s])
	}
	sort.SliceStable(authors, func(i, j int) bool { return authors[i].Count > authors[j].Count })

	c.HTML(http.StatusOK, "authors.html", gin.H{
		"Title":     "Authors",
		"Canonical": pc.site.AbsoluteURL("/authors"),
		"Authors":   authors,
	})
}

// Author renders one contributor's published lessons.
func (pc *PublicController) Author(c *gin.Context) {
	authorSlug := c.Param("slug")

	approved, err := pc.approvedArticles(c)
	if err != nil {
		pc.log.Warn().Err(err).Msg("author fetch failed")
		approved = nil
	}

	var matched []models.Article
	name := ""
	for _, a := range approved {
		if slug.Author(a.Author) == authorSlug {
			matched = append(matched, a)
			name = a.Author
		}
	}
	if name == "" {
		pc.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "author.html", gin.H{
		"Title":     name,
		"Canonical": pc.site.AbsoluteURL("/authors/" + authorSlug),
		"Author":    name,
		"Articles":  withPaths(matched),
	})
}

// Blog renders the paginated blog listing.
func (pc *PublicController) Blog(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	listing, err := pc.api.ListBlogs(c.Request.Context(), page, blogPageSize, "")
	if err != nil {
		pc.log.Warn().Err(err).Msg("blog listing fetch failed")
		listing = &models.PaginatedBlogs{Pagination: models.SinglePage(page, blogPageSize, 0)}
	}

	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Title":      "Blog",
		"Canonical":  pc.site.AbsoluteURL("/blog"),
		"Blogs":      listing.Items,
		"Pagination": listing.Pagination,
	})
}

// BlogPost renders a single blog post.
func (pc *PublicController) BlogPost(c *gin.Context) {
	post, err := pc.api.GetBlog(c.Request.Context(), c.Param("id"), "")
	if err != nil {
		pc.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "blog_post.html", gin.H{
		"Title":     post.Title,
		"Canonical": pc.site.AbsoluteURL("/blog/" + post.ID),
		"Blog":      post,
	})
}

// Search filters approved articles by a case-insensitive substring match on
// title, summary, and content.
func (pc *PublicController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var matched []models.Article
	if query != "" {
		approved, err := pc.approvedArticles(c)
		if err != nil {
			pc.log.Warn().Err(err).Msg("search fetch failed")
			approved = nil
		}
		needle := strings.ToLower(query)
		for _, a := range approved {
			haystack := strings.ToLower(a.Title + " " + a.Summary + " " + a.Content)
			if strings.Contains(haystack, needle) {
				matched = append(matched, a)
			}
		}
	}

	c.HTML(http.StatusOK, "search.html", gin.H{
		"Title":    "Search",
		"Query":    query,
		"Articles": withPaths(matched),
	})
}

// ShowContact renders the contact form.
func (pc *PublicController) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title":     "Contact",
		"Canonical": pc.site.AbsoluteURL("/contact"),
		"State":     forms.State{},
	})
}

// SubmitContact validates the contact form and forwards it to the backend.
// Validation failures never reach the network.
func (pc *PublicController) SubmitContact(c *gin.Context) {
	form := forms.Contact{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}

	state := forms.State{}
	if errs := forms.Check(form); errs != nil {
		state = forms.Invalid(errs)
	} else if err := pc.api.SubmitContact(c.Request.Context(), api.ContactMessage(form)); err != nil {
		pc.log.Error().Err(err).Msg("contact submission failed")
		state = forms.Failed("Failed to send message")
	} else {
		state = forms.Ok("Your message has been sent successfully!")
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title":     "Contact",
		"Canonical": pc.site.AbsoluteURL("/contact"),
		"State":     state,
		"Form":      form,
	})
}

// StaticPage returns a handler rendering a fixed template.
func (pc *PublicController) StaticPage(template, title, path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{
			"Title":     title,
			"Canonical": pc.site.AbsoluteURL(path),
		})
	}
}

// NotFound renders the shared 404 page.
func (pc *PublicController) NotFound(c *gin.Context) {
	pc.notFound(c)
}

func (pc *PublicController) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Title": "Not found",
	})
}
