package types

// QuestionRequest is the body of POST /api/. Image is an optional
// base64-encoded screenshot attached to the question.
type QuestionRequest struct {
	Question string `json:"question" binding:"required"`
	Image    string `json:"image,omitempty"`
}
