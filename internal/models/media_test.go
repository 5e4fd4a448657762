package models

import (
	"encoding/json"
	"testing"
)

func TestFeaturedMedia_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want FeaturedMedia
	}{
		{`null`, FeaturedMedia{}},
		{`0`, FeaturedMedia{}},
		{`false`, FeaturedMedia{}},
		{`""`, FeaturedMedia{}},
		{`12`, FeaturedMedia{ID: 12, Set: true}},
		{`{"id":12,"source_url":"https://img/a.png"}`, FeaturedMedia{ID: 12, SourceURL: "https://img/a.png", Set: true}},
		{`{}`, FeaturedMedia{Set: true}},
		{`"https://img/b.png"`, FeaturedMedia{SourceURL: "https://img/b.png", Set: true}},
	}
	for _, c := range cases {
		var p struct {
			M FeaturedMedia `json:"m"`
		}
		if err := json.Unmarshal([]byte(`{"m":`+c.in+`}`), &p); err != nil {
			t.Errorf("%s: unexpected error: %v", c.in, err)
			continue
		}
		if p.M != c.want {
			t.Errorf("%s: got %+v, want %+v", c.in, p.M, c.want)
		}
	}
}

func TestFeaturedMedia_UnmarshalInvalid(t *testing.T) {
	var p struct {
		M FeaturedMedia `json:"m"`
	}
	if err := json.Unmarshal([]byte(`{"m":[1]}`), &p); err == nil {
		t.Fatalf("expected error for array media")
	}
}

func TestFeaturedMedia_Absent(t *testing.T) {
	var p RawPost
	if err := json.Unmarshal([]byte(`{"id":1}`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FeaturedMedia.Set {
		t.Fatalf("absent featured_media must not be set")
	}
}

func TestIsZero(t *testing.T) {
	if !(Post{}).IsZero() || !(Author{}).IsZero() {
		t.Fatalf("zero records must report IsZero")
	}
	if (Post{ID: 1}).IsZero() || (Post{Metadata: PostMetadata{Categories: []Category{{Title: "Category 1"}}}}).IsZero() {
		t.Errorf("populated post reported zero")
	}
	if (Author{Slug: "ana"}).IsZero() || (Author{Metadata: AuthorMetadata{Image: &Image{}}}).IsZero() {
		t.Errorf("populated author reported zero")
	}
}
