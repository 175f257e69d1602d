package store

import (
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Sections lists the ten page sections in their canonical order. The store
// itself treats section records as opaque JSON; these identifiers are the
// contract between the editors, the loader, and the settings document.
var Sections = []string{
	"navbar",
	"hero",
	"highlights",
	"about",
	"focus",
	"strategy",
	"benefits",
	"resources",
	"contact",
	"footer",
}

func IsSection(name string) bool {
	return slices.Contains(Sections, name)
}

// SectionTitle renders a section name for user-facing messages, e.g.
// "navbar" -> "Navbar".
func SectionTitle(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Content maps a section name to its stored record. Records pass through the
// API verbatim; the typed section structs below exist for seeding and tests.
type Content map[string]json.RawMessage

type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type Button struct {
	Text string `json:"text"`
	Href string `json:"href"`
	Type string `json:"type"`
}

type Navbar struct {
	Logo      string `json:"logo"`
	BrandText string `json:"brandText"`
	Links     []Link `json:"links"`
}

type Hero struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	BackgroundImage string   `json:"backgroundImage"`
	Buttons         []Button `json:"buttons"`
}

type Highlight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Highlights struct {
	Items []Highlight `json:"items"`
}

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

type CTA struct {
	Title      string   `json:"title"`
	Paragraph1 string   `json:"paragraph1"`
	Paragraph2 string   `json:"paragraph2"`
	Buttons    []Button `json:"buttons,omitempty"`
}

type Partner struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type About struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Team     []TeamMember `json:"team"`
	CTA      CTA          `json:"cta"`
	Partners []Partner    `json:"partners"`
}

type FocusItem struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type Focus struct {
	Title string      `json:"title"`
	Items []FocusItem `json:"items"`
}

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Strategy struct {
	Title string `json:"title"`
	Steps []Step `json:"steps"`
}

type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Benefits struct {
	Title string    `json:"title"`
	Items []Benefit `json:"items"`
}

type ResourceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DownloadGuide struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
	FileURL    string `json:"fileUrl"`
}

type StaticBlogPost struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type StaticBlog struct {
	Title string           `json:"title"`
	Posts []StaticBlogPost `json:"posts"`
}

// Resources carries both the legacy singular download guide and the current
// plural form; the loader prefers downloadGuides when it is non-empty.
type Resources struct {
	Title          string          `json:"title"`
	Subtitle       string          `json:"subtitle"`
	Items          []ResourceItem  `json:"items"`
	DownloadGuide  *DownloadGuide  `json:"downloadGuide,omitempty"`
	DownloadGuides []DownloadGuide `json:"downloadGuides,omitempty"`
	Blog           *StaticBlog     `json:"blog,omitempty"`
}

type Contact struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	FormURL         string `json:"formUrl"`
	BackgroundImage string `json:"backgroundImage"`
}

type SocialLink struct {
	Platform string `json:"platform,omitempty"`
	Icon     string `json:"icon,omitempty"`
	URL      string `json:"url"`
	Name     string `json:"name,omitempty"`
}

type Footer struct {
	Copyright   string       `json:"copyright"`
	Tagline     string       `json:"tagline"`
	Buttons     []Button     `json:"buttons"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
}

// Settings is the typed view of the settings document.
type Settings struct {
	Version           string            `json:"version"`
	SectionOrder      []string          `json:"sectionOrder"`
	SectionSpacing    map[string]string `json:"sectionSpacing"`
	SectionVisibility map[string]bool   `json:"sectionVisibility"`
	Colors            map[string]string `json:"colors"`
	Typography        map[string]string `json:"typography"`
	CustomCSS         string            `json:"customCSS"`
}

// NormalizeSectionOrder forces order into a permutation of Sections: known
// identifiers keep their submitted relative order, duplicates and unknown
// identifiers drop out, and missing identifiers are appended in canonical
// order. A reorder submitted by the editor can therefore never lose a section.
func NormalizeSectionOrder(order []string) []string {
	normalized := make([]string, 0, len(Sections))
	for _, id := range order {
		if IsSection(id) && !slices.Contains(normalized, id) {
			normalized = append(normalized, id)
		}
	}
	for _, id := range Sections {
		if !slices.Contains(normalized, id) {
			normalized = append(normalized, id)
		}
	}
	return normalized
}

// Admin is a stored credential record. Password is a bcrypt hash.
type Admin struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}

type Blog struct {
	Posts []Post `json:"posts"`
}

// Post keeps whatever fields the author submitted plus the server-managed
// id, slug, createdAt and updatedAt keys.
type Post map[string]any

func (p Post) stringField(key string) string {
	v, _ := p[key].(string)
	return v
}

func (p Post) ID() string        { return p.stringField("id") }
func (p Post) Slug() string      { return p.stringField("slug") }
func (p Post) Title() string     { return p.stringField("title") }
func (p Post) CreatedAt() string { return p.stringField("createdAt") }
func (p Post) UpdatedAt() string { return p.stringField("updatedAt") }

// Timestamp layout matching the original documents (ISO 8601 with millis).
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// NewPost builds a post from the author's fields. The id is the creation time
// in milliseconds, the slug derives from the title once and is never
// recomputed afterwards.
func NewPost(fields map[string]any, now time.Time) Post {
	post := Post{}
	for k, v := range fields {
		post[k] = v
	}
	post["id"] = strconv.FormatInt(now.UnixMilli(), 10)
	post["slug"] = Slugify(post.Title())
	post["createdAt"] = FormatTime(now)
	post["updatedAt"] = FormatTime(now)
	return post
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases the title, collapses every run of characters outside
// [a-z0-9] into a single hyphen and strips hyphens from both ends. A title
// consisting only of symbols yields an empty slug.
func Slugify(title string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// FindBySlug returns the first post carrying slug.
func (b Blog) FindBySlug(slug string) (Post, bool) {
	for _, post := range b.Posts {
		if post.Slug() == slug {
			return post, true
		}
	}
	return nil, false
}

// Update merges fields over the post with the given id, pins the id and
// stamps updatedAt. Everything else, slug and createdAt included, is only
// changed if fields carries it.
func (b *Blog) Update(id string, fields map[string]any, now time.Time) (Post, bool) {
	for i, post := range b.Posts {
		if post.ID() != id {
			continue
		}
		for k, v := range fields {
			post[k] = v
		}
		post["id"] = id
		post["updatedAt"] = FormatTime(now)
		b.Posts[i] = post
		return post, true
	}
	return nil, false
}

// Delete removes the post with the given id. Deleting an unknown id is a
// no-op, not an error.
func (b *Blog) Delete(id string) {
	b.Posts = slices.DeleteFunc(b.Posts, func(p Post) bool {
		return p.ID() == id
	})
}
