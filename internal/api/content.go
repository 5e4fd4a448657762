package api

import (
	"context"
	"errors"

	"github.com/douglaspoa/wordpress-react/internal/content"
	"github.com/douglaspoa/wordpress-react/internal/models"
)

// ErrNoSink is returned by RecentFailures when failures are not stored.
var ErrNoSink = errors.New("api: failure sink not configured")

func (api *API) GlobalData() models.GlobalData {
	return api.content.GlobalData()
}

func (api *API) AllPosts(ctx context.Context) ([]models.Post, error) {
	return api.content.AllPosts(ctx)
}

func (api *API) Post(ctx context.Context, slug string) (models.Post, error) {
	return api.content.Post(ctx, slug)
}

func (api *API) RelatedPosts(ctx context.Context, slug string) ([]models.Post, error) {
	return api.content.RelatedPosts(ctx, slug)
}

func (api *API) Author(ctx context.Context, slug string) (models.Author, error) {
	return api.content.Author(ctx, slug)
}

func (api *API) AuthorPosts(ctx context.Context, authorID int) ([]models.Post, error) {
	return api.content.AuthorPosts(ctx, authorID)
}

// Lenient exposes the flattening adapter for callers that render "nothing"
// on any failure.
func (api *API) Lenient() *content.Lenient {
	return api.lenient
}

func (api *API) RecentFailures(ctx context.Context, limit, offset int) ([]content.Failure, error) {
	if api.failures == nil {
		return nil, ErrNoSink
	}
	return api.failures.QueryRecent(ctx, limit, offset)
}

// OrEmpty returns v, or an empty JSON object when v is a zero record.
func OrEmpty[T interface{ IsZero() bool }](v T) any {
	if v.IsZero() {
		return struct{}{}
	}
	return v
}
