package models

import (
	"bytes"
	"encoding/json"
)

// FeaturedMedia accepts the shapes seen for featured_media: a numeric
// attachment id (stock WordPress), an object carrying source_url, or null.
type FeaturedMedia struct {
	ID        int
	SourceURL string
	Set       bool
}

func (m *FeaturedMedia) UnmarshalJSON(b []byte) error {
	*m = FeaturedMedia{}
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		return nil
	case bytes.Equal(b, []byte("true")):
		m.Set = true
		return nil
	case b[0] == '{':
		var obj RawMedia
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*m = FeaturedMedia{ID: obj.ID, SourceURL: obj.SourceURL, Set: true}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = FeaturedMedia{SourceURL: s, Set: s != ""}
		return nil
	default:
		var id int
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*m = FeaturedMedia{ID: id, Set: id != 0}
		return nil
	}
}

func (m FeaturedMedia) MarshalJSON() ([]byte, error) {
	if !m.Set {
		return []byte("null"), nil
	}
	if m.SourceURL != "" {
		return json.Marshal(RawMedia{ID: m.ID, SourceURL: m.SourceURL})
	}
	return json.Marshal(m.ID)
}
