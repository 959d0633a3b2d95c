package repository

import (
	"github.com/ShaikM36/tds-virtual-ta/types"
)

// KnowledgeRepo holds the reference snippets answers are grounded on: a
// small set of course-content notes plus excerpts from the course Discourse
// category. The store is populated before the server starts and read-only
// afterwards, so no locking is required.
type KnowledgeRepo interface {
	CourseContent() []types.KnowledgeItem
	DiscoursePosts() []types.KnowledgeItem

	// AddScrapedPosts appends previously scraped forum topics to the
	// discourse collection. Only call this during startup, before the
	// repo is shared with request handlers.
	AddScrapedPosts(posts []types.ScrapedPost)
}

type knowledgeRepo struct {
	courseContent  []types.KnowledgeItem
	discoursePosts []types.KnowledgeItem
}

// NewKnowledgeRepo creates a repo seeded with the built-in TDS reference
// material.
func NewKnowledgeRepo() KnowledgeRepo {
	return &knowledgeRepo{
		courseContent:  seedCourseContent(),
		discoursePosts: seedDiscoursePosts(),
	}
}

func (r *knowledgeRepo) CourseContent() []types.KnowledgeItem {
	return r.courseContent
}

func (r *knowledgeRepo) DiscoursePosts() []types.KnowledgeItem {
	return r.discoursePosts
}

func (r *knowledgeRepo) AddScrapedPosts(posts []types.ScrapedPost) {
	for _, post := range posts {
		date := post.CreatedAt
		if len(date) > 10 {
			date = date[:10]
		}
		r.discoursePosts = append(r.discoursePosts, types.KnowledgeItem{
			Title:   post.Title,
			Content: post.Content,
			URL:     post.URL,
			Date:    date,
		})
	}
}

func seedCourseContent() []types.KnowledgeItem {
	return []types.KnowledgeItem{
		{
			Topic:   "AI Models and APIs",
			Content: "For TDS assignments, you must use gpt-3.5-turbo-0125 model specifically, even if AI Proxy supports other models like gpt-4o-mini. Use OpenAI API directly when required.",
			Source:  "Course Guidelines",
		},
		{
			Topic:   "Data Collection",
			Content: "Web scraping should be done ethically with proper rate limiting. Use libraries like requests, BeautifulSoup, and selenium when needed.",
			Source:  "Week 3 Materials",
		},
		{
			Topic:   "API Development",
			Content: "FastAPI is recommended for building REST APIs. Ensure proper error handling and response formatting.",
			Source:  "Week 5 Materials",
		},
	}
}

func seedDiscoursePosts() []types.KnowledgeItem {
	return []types.KnowledgeItem{
		{
			URL:     "https://discourse.onlinedegree.iitm.ac.in/t/ga5-question-8-clarification/155939/4",
			Title:   "GA5 Question 8 Clarification",
			Content: "Use the model that's mentioned in the question. For token counting, use the specified model's tokenizer.",
			Date:    "2025-04-10",
		},
		{
			URL:     "https://discourse.onlinedegree.iitm.ac.in/t/api-best-practices/155940/2",
			Title:   "API Best Practices",
			Content: "Always implement proper error handling and return appropriate HTTP status codes.",
			Date:    "2025-04-08",
		},
	}
}
