// Package store persists scrape results. The only backing medium is a flat
// JSON file; anything richer is out of scope for this service.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ShaikM36/tds-virtual-ta/types"
)

// ScrapedPostStore defines the interface for reading and writing scraped
// forum data.
type ScrapedPostStore interface {
	Save(posts []types.ScrapedPost, path string) error
	Load(path string) ([]types.ScrapedPost, error)
}

type jsonFileStore struct{}

// NewJSONFileStore creates a store backed by a single JSON file per call.
func NewJSONFileStore() ScrapedPostStore {
	return &jsonFileStore{}
}

// Save writes posts as a UTF-8 JSON array with 2-space indentation,
// replacing any previous file contents. HTML escaping is disabled so post
// text and non-ASCII characters stay literal.
func (s *jsonFileStore) Save(posts []types.ScrapedPost, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	return nil
}

// Load reads a previously saved file back into memory.
func (s *jsonFileStore) Load(path string) ([]types.ScrapedPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var posts []types.ScrapedPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return posts, nil
}
