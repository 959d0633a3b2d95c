// Package scraper collects TDS course topics from the Discourse forum's
// JSON API and normalizes them into plain-text records.
package scraper

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ShaikM36/tds-virtual-ta/types"
)

const dateLayout = "2006-01-02"

// Position 0 of a post stream is the topic body; at most four replies are
// kept per topic.
const maxRepliesPerTopic = 4

// Config contains scraper configuration. MaxPages bounds pagination as a
// safety stop against runaway listings and FetchDelay throttles successive
// topic fetches; both are settings rather than literals so tests can
// override them.
type Config struct {
	BaseURL      string
	CategoryPath string
	CategoryID   int
	UserAgent    string
	MaxPages     int
	FetchDelay   time.Duration
	HTTPTimeout  time.Duration
}

// DefaultConfig returns the configuration used against the production
// forum. Category 123 is the Tools in Data Science course category.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "https://discourse.onlinedegree.iitm.ac.in",
		CategoryPath: "degree-programs/tools-in-data-science",
		CategoryID:   123,
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		MaxPages:     10,
		FetchDelay:   500 * time.Millisecond,
		HTTPTimeout:  30 * time.Second,
	}
}

// Scraper drives the forum client across listing pages and assembles
// normalized post records.
type Scraper struct {
	config Config
	client *ForumClient
}

// New creates a Scraper instance.
func New(config Config) *Scraper {
	return &Scraper{
		config: config,
		client: NewForumClient(config),
	}
}

// Scrape collects every topic created within the inclusive calendar-date
// range [startDate, endDate] (both "YYYY-MM-DD"). Listing pages are walked
// from 0 up to the configured cap regardless of topic dates; topics whose
// detail fetch fails are skipped. A malformed date anywhere aborts the run
// with no partial result.
func (s *Scraper) Scrape(ctx context.Context, startDate, endDate string) ([]types.ScrapedPost, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	posts := make([]types.ScrapedPost, 0)
	for page := 0; page < s.config.MaxPages; page++ {
		topics := s.client.ListTopics(ctx, page)
		if len(topics) == 0 {
			break
		}

		for _, topic := range topics {
			created, err := topicDate(topic.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("topic %d: %w", topic.ID, err)
			}

			if !created.Before(start) && !created.After(end) {
				post, err := s.scrapeTopic(ctx, topic.ID)
				if err != nil {
					log.Printf("Error scraping topic %d: %v", topic.ID, err)
				} else {
					posts = append(posts, *post)
				}
			}

			// Politeness throttle between topic fetches.
			time.Sleep(s.config.FetchDelay)
		}
	}

	log.Printf("Scraped %d posts from %s to %s", len(posts), startDate, endDate)
	return posts, nil
}

// scrapeTopic fetches one topic and normalizes it: markup stripped from the
// body and from the first replies, reply count capped.
func (s *Scraper) scrapeTopic(ctx context.Context, topicID int) (*types.ScrapedPost, error) {
	topic, err := s.client.GetTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}

	stream := topic.PostStream.Posts
	body := stream[0]

	post := &types.ScrapedPost{
		ID:        topicID,
		Title:     topic.Title,
		URL:       s.client.TopicURL(topicID),
		Content:   CleanHTML(body.Cooked),
		CreatedAt: body.CreatedAt,
		Author:    body.Username,
		Replies:   make([]types.Reply, 0, maxRepliesPerTopic),
	}

	replies := stream[1:]
	if len(replies) > maxRepliesPerTopic {
		replies = replies[:maxRepliesPerTopic]
	}
	for _, reply := range replies {
		post.Replies = append(post.Replies, types.Reply{
			Content:   CleanHTML(reply.Cooked),
			Author:    reply.Username,
			CreatedAt: reply.CreatedAt,
		})
	}

	return post, nil
}

// topicDate interprets the first 10 characters of a Discourse timestamp as
// a calendar date.
func topicDate(createdAt string) (time.Time, error) {
	if len(createdAt) < 10 {
		return time.Time{}, fmt.Errorf("malformed created_at %q", createdAt)
	}
	return time.Parse(dateLayout, createdAt[:10])
}
