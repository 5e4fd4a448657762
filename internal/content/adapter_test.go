package content

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/douglaspoa/wordpress-react/internal/models"
)

// fakeFetcher serves canned JSON bodies keyed by request path.
type fakeFetcher struct {
	bodies map[string]string
	err    error
	paths  []string
}

func (f *fakeFetcher) Endpoint() string { return "http://cms.test/wp-json/wp/v2/" }

func (f *fakeFetcher) Get(ctx context.Context, op, path string, v any) error {
	f.paths = append(f.paths, path)
	if f.err != nil {
		return f.err
	}
	body, ok := f.bodies[path]
	if !ok {
		body = `[]`
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return &FetchError{Kind: KindMalformed, Op: op, URL: f.Endpoint() + path, Err: err}
	}
	return nil
}

const threePosts = `[
 {"id":1,"slug":"first","title":{"rendered":"One"},"content":{"rendered":"c1"},"excerpt":{"rendered":"e1"},"categories":[1]},
 {"id":2,"slug":"second","title":{"rendered":"Two"},"content":{"rendered":"c2"},"excerpt":{"rendered":"e2"},"categories":[2]},
 {"id":3,"slug":"third","title":{"rendered":"Three"},"content":{"rendered":"c3"},"excerpt":{"rendered":"e3"},"categories":[3]}
]`

func TestAdapter_GlobalData(t *testing.T) {
	f := &fakeFetcher{err: errors.New("network down")}
	g := New(f).GlobalData()
	if g.Metadata.SiteTitle != "Meu Site WordPress" || g.Metadata.SiteTag != "Bem-vindo ao meu site WordPress" {
		t.Fatalf("unexpected global data: %+v", g)
	}
	if len(f.paths) != 0 {
		t.Fatalf("GlobalData must not fetch, got %v", f.paths)
	}
}

func TestAdapter_AllPosts_PreservesOrder(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"posts": threePosts}}
	posts, err := New(f).AllPosts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 3 || posts[0].Slug != "first" || posts[2].Slug != "third" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if f.paths[0] != "posts" {
		t.Errorf("path = %q", f.paths[0])
	}
}

func TestAdapter_Post(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{
		"posts?slug=second&_embed": `[{"id":2,"slug":"second","title":{"rendered":"Two"},"content":{"rendered":"c"},"excerpt":{"rendered":"e"},"categories":[]}]`,
	}}
	p, err := New(f).Post(context.Background(), "second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 2 || p.Title != "Two" {
		t.Fatalf("unexpected post: %+v", p)
	}
}

func TestAdapter_Post_EscapesSlug(t *testing.T) {
	f := &fakeFetcher{}
	_, _ = New(f).Post(context.Background(), "a b&c")
	if f.paths[0] != "posts?slug=a+b%26c&_embed" {
		t.Fatalf("path = %q", f.paths[0])
	}
}

func TestAdapter_Post_NotFound(t *testing.T) {
	f := &fakeFetcher{}
	_, err := New(f).Post(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if KindOf(err) != KindNotFound {
		t.Errorf("kind = %q", KindOf(err))
	}
}

func TestAdapter_RelatedPosts_ExcludesSlug(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"posts?_embed": threePosts}}
	a := New(f)
	for _, slug := range []string{"first", "second", "third", "none", ""} {
		posts, err := a.RelatedPosts(context.Background(), slug)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", slug, err)
		}
		for _, p := range posts {
			if p.Slug == slug {
				t.Errorf("%q: related posts include the current post", slug)
			}
		}
	}

	posts, _ := a.RelatedPosts(context.Background(), "second")
	if len(posts) != 2 || posts[0].Slug != "first" || posts[1].Slug != "third" {
		t.Fatalf("unexpected related posts: %+v", posts)
	}
}

func TestAdapter_Author(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{
		"users?slug=ana": `[{"id":3,"slug":"ana","name":"Ana","avatar_urls":{"96":"https://a/96"}}]`,
	}}
	a, err := New(f).Author(context.Background(), "ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 3 || a.Title != "Ana" || a.Metadata.Image == nil || a.Metadata.Image.ImgixURL != "https://a/96" {
		t.Fatalf("unexpected author: %+v", a)
	}

	if _, err := New(f).Author(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdapter_AuthorPosts(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"posts?author=3&_embed": threePosts}}
	posts, err := New(f).AuthorPosts(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
}

func TestAdapter_MissingField(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"posts": `[{"id":1,"slug":"a"}]`}}
	_, err := New(f).AllPosts(context.Background())
	if KindOf(err) != KindMissingField {
		t.Fatalf("expected missing field error, got %v", err)
	}
}

func TestAdapter_FetchErrorPassesThrough(t *testing.T) {
	want := &FetchError{Kind: KindStatus, Op: OpAllPosts, Status: 500}
	f := &fakeFetcher{err: want}
	_, err := New(f).AllPosts(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) || fe != want {
		t.Fatalf("expected the fetch error, got %v", err)
	}
}

func TestAdapter_AllPosts_WorkedExample(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"posts": `[{"id":1,"slug":"a","title":{"rendered":"A"},"date":"2024-01-01",
		"content":{"rendered":"C"},"excerpt":{"rendered":"E"},"categories":[5,9],"featured_media":null}]`}}
	posts, err := New(f).AllPosts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.Post{{
		ID:    1,
		Slug:  "a",
		Title: "A",
		Metadata: models.PostMetadata{
			PublishedDate: "2024-01-01",
			Content:       "C",
			Teaser:        "E",
			Categories:    []models.Category{{Title: "Category 5"}, {Title: "Category 9"}},
		},
	}}
	if !reflect.DeepEqual(posts, want) {
		t.Fatalf("projection mismatch:\n got=%+v\nwant=%+v", posts, want)
	}
	if posts[0].Metadata.Hero != nil || posts[0].Metadata.Author != nil {
		t.Errorf("hero and author must be absent")
	}
}
