package models

// Rendered is the WordPress convention for server-formatted text.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// RawPost is a post as returned by /wp/v2/posts.
type RawPost struct {
	ID            int            `json:"id"`
	Slug          string         `json:"slug"`
	Date          string         `json:"date"`
	Title         *Rendered      `json:"title"`
	Content       *Rendered      `json:"content"`
	Excerpt       *Rendered      `json:"excerpt"`
	Categories    *[]int         `json:"categories"`
	FeaturedMedia FeaturedMedia  `json:"featured_media"`
	Embedded      *EmbeddedLinks `json:"_embedded,omitempty"`
}

// EmbeddedLinks holds relations inlined by ?_embed.
type EmbeddedLinks struct {
	Author        []RawUser  `json:"author"`
	FeaturedMedia []RawMedia `json:"wp:featuredmedia"`
}

// RawUser is a user as returned by /wp/v2/users or embedded in a post.
type RawUser struct {
	ID         int               `json:"id"`
	Slug       string            `json:"slug"`
	Name       string            `json:"name"`
	AvatarURLs map[string]string `json:"avatar_urls"`
}

type RawMedia struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

type Image struct {
	ImgixURL string `json:"imgix_url"`
}

type Category struct {
	Title string `json:"title"`
}

type PostMetadata struct {
	PublishedDate string     `json:"published_date"`
	Content       string     `json:"content"`
	Teaser        string     `json:"teaser"`
	Categories    []Category `json:"categories"`
	Hero          *Image     `json:"hero,omitempty"`
	Author        *Author    `json:"author,omitempty"`
}

// Post is the normalized post handed to the frontend.
type Post struct {
	ID       int          `json:"id"`
	Slug     string       `json:"slug"`
	Title    string       `json:"title"`
	Metadata PostMetadata `json:"metadata"`
}

type AuthorMetadata struct {
	Image *Image `json:"image,omitempty"`
}

// Author is the normalized author handed to the frontend.
type Author struct {
	ID       int            `json:"id"`
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Metadata AuthorMetadata `json:"metadata"`
}

type SiteMetadata struct {
	SiteTitle string `json:"site_title"`
	SiteTag   string `json:"site_tag"`
}

type GlobalData struct {
	Metadata SiteMetadata `json:"metadata"`
}

// IsZero reports whether p is the zero record a flattened lookup returns.
func (p Post) IsZero() bool {
	m := p.Metadata
	return p.ID == 0 && p.Slug == "" && p.Title == "" &&
		m.PublishedDate == "" && m.Content == "" && m.Teaser == "" &&
		len(m.Categories) == 0 && m.Hero == nil && m.Author == nil
}

func (a Author) IsZero() bool { return a == Author{} }
