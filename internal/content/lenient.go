package content

import (
	"context"
	"time"

	"github.com/douglaspoa/wordpress-react/internal/models"
)

const sinkTimeout = 3 * time.Second

// OpRecordFailure tags the diagnostic emitted when the sink itself fails.
const OpRecordFailure = "record_failure"

// Lenient never returns an error: each failure is logged once, handed to
// the optional sink, and flattened to an empty slice or zero record.
type Lenient struct {
	adapter *Adapter
	log     Logger
	sink    FailureSink
	now     func() time.Time
}

func NewLenient(a *Adapter, log Logger, sink FailureSink, now func() time.Time) *Lenient {
	if now == nil {
		now = time.Now
	}
	return &Lenient{adapter: a, log: log, sink: sink, now: now}
}

func (l *Lenient) GlobalData() models.GlobalData {
	return l.adapter.GlobalData()
}

func (l *Lenient) AllPosts(ctx context.Context) []models.Post {
	posts, err := l.adapter.AllPosts(ctx)
	if err != nil {
		l.fail(ctx, OpAllPosts, err, map[string]any{"endpoint": l.adapter.Endpoint()})
		return []models.Post{}
	}
	return posts
}

func (l *Lenient) Post(ctx context.Context, slug string) models.Post {
	p, err := l.adapter.Post(ctx, slug)
	if err != nil {
		l.fail(ctx, OpPost, err, map[string]any{"slug": slug})
		return models.Post{}
	}
	return p
}

func (l *Lenient) RelatedPosts(ctx context.Context, slug string) []models.Post {
	posts, err := l.adapter.RelatedPosts(ctx, slug)
	if err != nil {
		l.fail(ctx, OpRelatedPosts, err, map[string]any{"slug": slug})
		return []models.Post{}
	}
	return posts
}

func (l *Lenient) Author(ctx context.Context, slug string) models.Author {
	a, err := l.adapter.Author(ctx, slug)
	if err != nil {
		l.fail(ctx, OpAuthor, err, map[string]any{"slug": slug})
		return models.Author{}
	}
	return a
}

func (l *Lenient) AuthorPosts(ctx context.Context, authorID int) []models.Post {
	posts, err := l.adapter.AuthorPosts(ctx, authorID)
	if err != nil {
		l.fail(ctx, OpAuthorPosts, err, map[string]any{"author_id": authorID})
		return []models.Post{}
	}
	return posts
}

func (l *Lenient) fail(ctx context.Context, op string, err error, fields map[string]any) {
	if l.log != nil {
		l.log.Failure(ctx, op, err, fields)
	}
	if l.sink == nil {
		return
	}
	// The caller's ctx is often already expired here (upstream timeouts).
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
	defer cancel()
	serr := l.sink.Record(rctx, Failure{
		Operation:  op,
		Endpoint:   l.adapter.Endpoint(),
		Kind:       KindOf(err),
		Message:    err.Error(),
		OccurredAt: l.now().UTC(),
	})
	if serr != nil && l.log != nil {
		l.log.Failure(ctx, OpRecordFailure, serr, map[string]any{"failed_op": op})
	}
}
