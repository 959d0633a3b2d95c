package service

import (
	"strings"

	"github.com/samber/lo"

	"github.com/ShaikM36/tds-virtual-ta/repository"
	"github.com/ShaikM36/tds-virtual-ta/types"
	"github.com/ShaikM36/tds-virtual-ta/utils"
)

const (
	maxLinks       = 3
	linkTextMaxLen = 100
)

// DefaultForumLink is returned when no matched item carries a URL.
var DefaultForumLink = types.Link{
	URL:  "https://discourse.onlinedegree.iitm.ac.in/c/degree-programs/tools-in-data-science/123",
	Text: "TDS Course Discourse Forum",
}

// DefaultMatchRules is the matching policy, one rule per collection,
// applied in order: course content before discourse excerpts.
var DefaultMatchRules = []types.MatchRule{
	{
		Collection:       types.CollectionCourseContent,
		QuestionTriggers: []string{"api", "model", "gpt", "openai", "scraping", "fastapi"},
		ContentTriggers:  []string{"api", "model", "gpt", "openai", "scraping", "fastapi"},
	},
	{
		Collection:       types.CollectionDiscoursePosts,
		QuestionTriggers: []string{"question", "clarification", "api", "model"},
		ContentTriggers:  []string{"model", "api", "token", "question"},
	},
}

// KnowledgeService selects reference snippets for a question and derives
// the supporting links returned alongside an answer.
type KnowledgeService interface {
	Search(question string) []types.KnowledgeItem
	Links(items []types.KnowledgeItem) []types.Link
}

type knowledgeService struct {
	repo  repository.KnowledgeRepo
	rules []types.MatchRule
}

// NewKnowledgeService creates a service applying DefaultMatchRules over the
// given repo.
func NewKnowledgeService(repo repository.KnowledgeRepo) KnowledgeService {
	return &knowledgeService{
		repo:  repo,
		rules: DefaultMatchRules,
	}
}

// Search returns every item relevant to the question, collection by
// collection in rule order. Matching is case-insensitive substring
// containment; source order is preserved and nothing is ranked.
func (s *knowledgeService) Search(question string) []types.KnowledgeItem {
	questionLower := strings.ToLower(question)

	relevant := make([]types.KnowledgeItem, 0)
	for _, rule := range s.rules {
		if !containsAny(questionLower, rule.QuestionTriggers) {
			continue
		}
		for _, item := range s.collection(rule.Collection) {
			if containsAny(strings.ToLower(item.Content), rule.ContentTriggers) {
				relevant = append(relevant, item)
			}
		}
	}
	return relevant
}

// Links extracts {url, text} pairs from the URL-bearing items, falling
// back to the course forum link when there are none. Never more than three.
func (s *knowledgeService) Links(items []types.KnowledgeItem) []types.Link {
	withURL := lo.Filter(items, func(item types.KnowledgeItem, _ int) bool {
		return item.URL != ""
	})
	links := lo.Map(withURL, func(item types.KnowledgeItem, _ int) types.Link {
		text := item.Title
		if text == "" {
			text = utils.Truncate(item.Content, linkTextMaxLen)
		}
		return types.Link{URL: item.URL, Text: text}
	})

	if len(links) == 0 {
		links = append(links, DefaultForumLink)
	}
	if len(links) > maxLinks {
		links = links[:maxLinks]
	}
	return links
}

func (s *knowledgeService) collection(name string) []types.KnowledgeItem {
	switch name {
	case types.CollectionCourseContent:
		return s.repo.CourseContent()
	case types.CollectionDiscoursePosts:
		return s.repo.DiscoursePosts()
	default:
		return nil
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
