package types

// TopicListResponse is the shape of /c/{category-path}/{id}.json.
type TopicListResponse struct {
	TopicList TopicList `json:"topic_list"`
}

type TopicList struct {
	Topics []Topic `json:"topics"`
}

// Topic is a listing-page summary. CreatedAt keeps Discourse's raw ISO-8601
// string; only the date prefix is ever interpreted.
type Topic struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// TopicResponse is the shape of /t/{id}.json. Position 0 of the post stream
// is the topic body itself.
type TopicResponse struct {
	Title      string     `json:"title"`
	PostStream PostStream `json:"post_stream"`
}

type PostStream struct {
	Posts []Post `json:"posts"`
}

// Post is a single entry of a topic's post stream. Cooked is the rendered
// HTML of the post body.
type Post struct {
	Cooked    string `json:"cooked"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// ScrapedPost is one normalized topic written to the scrape output file.
type ScrapedPost struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"created_at"`
	Author    string  `json:"author"`
	Replies   []Reply `json:"replies"`
}

// Reply is one of at most four replies kept per scraped topic.
type Reply struct {
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}
