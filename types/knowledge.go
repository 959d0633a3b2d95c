package types

// Knowledge base collection names.
const (
	CollectionCourseContent  = "course_content"
	CollectionDiscoursePosts = "discourse_posts"
)

// KnowledgeItem is one reference snippet used to ground generated answers.
// Course content items carry Topic and Source; discourse excerpts carry
// Title, URL and Date. Content is always set.
type KnowledgeItem struct {
	Topic   string `json:"topic,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
	URL     string `json:"url,omitempty"`
	Date    string `json:"date,omitempty"`
}

// MatchRule declares the matching policy for one collection: an item is
// relevant when the question contains any question trigger and the item
// content contains any content trigger. Matching is case-insensitive
// substring containment, not word matching.
type MatchRule struct {
	Collection       string
	QuestionTriggers []string
	ContentTriggers  []string
}
