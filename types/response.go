package types

// Link points a student at a supporting resource for an answer.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// AnswerResponse is the body of a successful POST /api/. Links carries at
// most three entries and never zero.
type AnswerResponse struct {
	Answer string `json:"answer"`
	Links  []Link `json:"links"`
}

// ErrorResponse mirrors the error shape clients of the original deployment
// already parse.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type RootResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
