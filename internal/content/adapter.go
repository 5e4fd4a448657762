package content

import (
	"context"
	"net/url"
	"strconv"

	"github.com/douglaspoa/wordpress-react/internal/models"
)

const (
	OpGlobalData   = "global_data"
	OpAllPosts     = "all_posts"
	OpPost         = "post"
	OpRelatedPosts = "related_posts"
	OpAuthor       = "author"
	OpAuthorPosts  = "author_posts"
)

var globalData = models.GlobalData{
	Metadata: models.SiteMetadata{
		SiteTitle: "Meu Site WordPress",
		SiteTag:   "Bem-vindo ao meu site WordPress",
	},
}

// Adapter translates content queries into WordPress REST requests. Every
// failure is returned to the caller; see Lenient for the flattening variant.
type Adapter struct {
	fetcher Fetcher
}

func New(fetcher Fetcher) *Adapter {
	return &Adapter{fetcher: fetcher}
}

func (a *Adapter) Endpoint() string { return a.fetcher.Endpoint() }

// GlobalData returns static site metadata. WordPress has no equivalent
// endpoint, so no request is made.
func (a *Adapter) GlobalData() models.GlobalData {
	return globalData
}

func (a *Adapter) AllPosts(ctx context.Context) ([]models.Post, error) {
	return a.posts(ctx, OpAllPosts, "posts", nil)
}

// Post returns the post with the exact slug, or ErrNotFound.
func (a *Adapter) Post(ctx context.Context, slug string) (models.Post, error) {
	path := "posts?slug=" + url.QueryEscape(slug) + "&_embed"
	var raw []models.RawPost
	if err := a.fetcher.Get(ctx, OpPost, path, &raw); err != nil {
		return models.Post{}, err
	}
	if len(raw) == 0 {
		return models.Post{}, ErrNotFound
	}
	p, err := ProjectPost(raw[0])
	if err != nil {
		return models.Post{}, a.missing(OpPost, path, err)
	}
	return p, nil
}

// RelatedPosts returns every post except the one with slug, in upstream
// order. There is no similarity ranking.
func (a *Adapter) RelatedPosts(ctx context.Context, slug string) ([]models.Post, error) {
	return a.posts(ctx, OpRelatedPosts, "posts?_embed", func(p models.RawPost) bool {
		return p.Slug != slug
	})
}

// Author returns the user with the exact slug, or ErrNotFound.
func (a *Adapter) Author(ctx context.Context, slug string) (models.Author, error) {
	path := "users?slug=" + url.QueryEscape(slug)
	var raw []models.RawUser
	if err := a.fetcher.Get(ctx, OpAuthor, path, &raw); err != nil {
		return models.Author{}, err
	}
	if len(raw) == 0 {
		return models.Author{}, ErrNotFound
	}
	return ProjectAuthor(raw[0]), nil
}

func (a *Adapter) AuthorPosts(ctx context.Context, authorID int) ([]models.Post, error) {
	return a.posts(ctx, OpAuthorPosts, "posts?author="+strconv.Itoa(authorID)+"&_embed", nil)
}

// posts fetches a post collection and projects the records accepted by keep
// (all of them when keep is nil).
func (a *Adapter) posts(ctx context.Context, op, path string, keep func(models.RawPost) bool) ([]models.Post, error) {
	var raw []models.RawPost
	if err := a.fetcher.Get(ctx, op, path, &raw); err != nil {
		return nil, err
	}
	if keep != nil {
		kept := make([]models.RawPost, 0, len(raw))
		for _, p := range raw {
			if keep(p) {
				kept = append(kept, p)
			}
		}
		raw = kept
	}
	out, err := ProjectPosts(raw)
	if err != nil {
		return nil, a.missing(op, path, err)
	}
	return out, nil
}

func (a *Adapter) missing(op, path string, err error) error {
	return &FetchError{Kind: KindMissingField, Op: op, URL: a.fetcher.Endpoint() + path, Err: err}
}
