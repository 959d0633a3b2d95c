package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ShaikM36/tds-virtual-ta/types"
)

// ForumClient issues JSON API calls against a Discourse instance.
type ForumClient struct {
	baseURL      string
	categoryPath string
	categoryID   int
	userAgent    string
	httpClient   *http.Client
}

// NewForumClient creates a client for the forum named in cfg.
func NewForumClient(cfg Config) *ForumClient {
	return &ForumClient{
		baseURL:      cfg.BaseURL,
		categoryPath: cfg.CategoryPath,
		categoryID:   cfg.CategoryID,
		userAgent:    cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// ListTopics returns the topic summaries on one listing page. A failed or
// out-of-range request is logged and collapses to an empty slice, which the
// caller treats as the end of pagination.
func (c *ForumClient) ListTopics(ctx context.Context, page int) []types.Topic {
	url := fmt.Sprintf("%s/c/%s/%d.json?page=%d", c.baseURL, c.categoryPath, c.categoryID, page)

	var listing types.TopicListResponse
	if err := c.getJSON(ctx, url, &listing); err != nil {
		log.Printf("Failed to fetch page %d: %v", page, err)
		return nil
	}
	return listing.TopicList.Topics
}

// GetTopic fetches the full topic record including its post stream. An
// unreachable topic or one with an empty post stream yields an error so the
// caller can skip it explicitly.
func (c *ForumClient) GetTopic(ctx context.Context, topicID int) (*types.TopicResponse, error) {
	url := fmt.Sprintf("%s/t/%d.json", c.baseURL, topicID)

	var topic types.TopicResponse
	if err := c.getJSON(ctx, url, &topic); err != nil {
		return nil, err
	}
	if len(topic.PostStream.Posts) == 0 {
		return nil, fmt.Errorf("topic %d has no posts", topicID)
	}
	return &topic, nil
}

// TopicURL returns the canonical page URL for a topic.
func (c *ForumClient) TopicURL(topicID int) string {
	return fmt.Sprintf("%s/t/%d", c.baseURL, topicID)
}

func (c *ForumClient) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
