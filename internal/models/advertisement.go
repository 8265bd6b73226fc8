package models

import (
	"regexp"
	"strings"
)

// Advertisement occupies a named placement slot on public pages. The media
// kind is sniffed from the URL pattern since the backend stores a single
// free-form URL that may point at an image, a video file, or YouTube.
type Advertisement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl,omitempty"`
	LinkURL   string `json:"linkUrl,omitempty"`
	Placement string `json:"placement,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AdvertisementInput is the payload sent to the backend on create/update.
type AdvertisementInput struct {
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl,omitempty"`
	LinkURL   string `json:"linkUrl,omitempty"`
	Placement string `json:"placement,omitempty"`
	IsActive  bool   `json:"isActive"`
}

// MediaKind classifies how an ad should be rendered.
type MediaKind int

const (
	MediaNone MediaKind = iota
	MediaImage
	MediaVideo
	MediaYouTube
)

var (
	youtubeRe      = regexp.MustCompile(`(?i)(?:youtube\.com|youtu\.be)`)
	youtubeWatchRe = regexp.MustCompile(`(?i)[?&]v=([^&]+)`)
	youtubeShortRe = regexp.MustCompile(`(?i)youtu\.be/([^?&/]+)`)
	videoFileRe    = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)([?#]|$)`)
	imageFileRe    = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|gif|avif|svg)([?#]|$)`)
	blobStoreRe    = regexp.MustCompile(`(?i)^https://.*\.public\.blob\.vercel-storage\.com/`)
)

// Active reports whether the ad may be picked for rendering. The flag
// defaults to true when the backend omits it.
func (a Advertisement) Active() bool {
	return a.IsActive == nil || *a.IsActive
}

// Media resolves the renderable media for the ad: the kind and the URL to
// embed. The image URL field wins; the link URL is consulted when it clearly
// carries the media itself.
func (a Advertisement) Media() (MediaKind, string) {
	mediaURL := strings.TrimSpace(a.ImageURL)
	linkURL := strings.TrimSpace(a.LinkURL)

	for _, u := range []string{mediaURL, linkURL} {
		if u != "" && youtubeRe.MatchString(u) {
			if embed := YouTubeEmbedURL(u); embed != "" {
				return MediaYouTube, embed
			}
		}
	}
	for _, u := range []string{mediaURL, linkURL} {
		if u != "" && videoFileRe.MatchString(u) {
			return MediaVideo, u
		}
	}
	if mediaURL != "" {
		return MediaImage, mediaURL
	}
	if linkURL != "" && (imageFileRe.MatchString(linkURL) || blobStoreRe.MatchString(linkURL)) {
		return MediaImage, linkURL
	}
	return MediaNone, ""
}

// MediaView is the single-value form of Media for template use.
type MediaView struct {
	Kind MediaKind
	URL  string
}

func (a Advertisement) MediaInfo() MediaView {
	kind, url := a.Media()
	return MediaView{Kind: kind, URL: url}
}

func (v MediaView) YouTube() bool { return v.Kind == MediaYouTube }
func (v MediaView) Video() bool   { return v.Kind == MediaVideo }
func (v MediaView) Image() bool   { return v.Kind == MediaImage }

// YouTubeEmbedURL converts a watch or short-form YouTube URL into its embed
// form. Returns "" when no video id can be extracted.
func YouTubeEmbedURL(url string) string {
	if m := youtubeWatchRe.FindStringSubmatch(url); len(m) == 2 {
		return "https://www.youtube.com/embed/" + m[1]
	}
	if m := youtubeShortRe.FindStringSubmatch(url); len(m) == 2 {
		return "https://www.youtube.com/embed/" + m[1]
	}
	return ""
}

// PickAd chooses the ad to show for a placement: the first active ad with a
// matching placement key, falling back to the first active ad.
func PickAd(ads []Advertisement, placement string) *Advertisement {
	active := make([]Advertisement, 0, len(ads))
	for _, ad := range ads {
		if ad.Active() {
			active = append(active, ad)
		}
	}
	if len(active) == 0 {
		return nil
	}

	want := strings.ToLower(strings.TrimSpace(placement))
	if want != "" {
		for i := range active {
			if strings.ToLower(strings.TrimSpace(active[i].Placement)) == want {
				return &active[i]
			}
		}
	}
	return &active[0]
}
