package content

import (
	"strconv"

	"github.com/douglaspoa/wordpress-react/internal/models"
)

// avatarSize is the avatar_urls key used for author images.
const avatarSize = "96"

// ProjectPost maps a raw WordPress post to the normalized shape. Category
// titles are placeholders built from the numeric id; names are not resolved.
func ProjectPost(p models.RawPost) (models.Post, error) {
	switch {
	case p.Title == nil:
		return models.Post{}, missingFieldError{"title.rendered"}
	case p.Content == nil:
		return models.Post{}, missingFieldError{"content.rendered"}
	case p.Excerpt == nil:
		return models.Post{}, missingFieldError{"excerpt.rendered"}
	case p.Categories == nil:
		return models.Post{}, missingFieldError{"categories"}
	}

	cats := make([]models.Category, 0, len(*p.Categories))
	for _, id := range *p.Categories {
		cats = append(cats, models.Category{Title: "Category " + strconv.Itoa(id)})
	}

	out := models.Post{
		ID:    p.ID,
		Slug:  p.Slug,
		Title: p.Title.Rendered,
		Metadata: models.PostMetadata{
			PublishedDate: p.Date,
			Content:       p.Content.Rendered,
			Teaser:        p.Excerpt.Rendered,
			Categories:    cats,
		},
	}
	if p.FeaturedMedia.Set {
		out.Metadata.Hero = &models.Image{ImgixURL: heroURL(p)}
	}
	if p.Embedded != nil && len(p.Embedded.Author) > 0 {
		a := ProjectAuthor(p.Embedded.Author[0])
		out.Metadata.Author = &a
	}
	return out, nil
}

func heroURL(p models.RawPost) string {
	if p.FeaturedMedia.SourceURL != "" {
		return p.FeaturedMedia.SourceURL
	}
	if p.Embedded != nil && len(p.Embedded.FeaturedMedia) > 0 {
		return p.Embedded.FeaturedMedia[0].SourceURL
	}
	return ""
}

func ProjectAuthor(u models.RawUser) models.Author {
	a := models.Author{ID: u.ID, Slug: u.Slug, Title: u.Name}
	if u.AvatarURLs != nil {
		a.Metadata.Image = &models.Image{ImgixURL: u.AvatarURLs[avatarSize]}
	}
	return a
}

// ProjectPosts projects every record in upstream order. The first record
// that cannot be projected fails the whole batch.
func ProjectPosts(raw []models.RawPost) ([]models.Post, error) {
	out := make([]models.Post, 0, len(raw))
	for _, p := range raw {
		np, err := ProjectPost(p)
		if err != nil {
			return nil, err
		}
		out = append(out, np)
	}
	return out, nil
}
