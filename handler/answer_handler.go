package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaikM36/tds-virtual-ta/service"
	"github.com/ShaikM36/tds-virtual-ta/types"
)

type AnswerHandler interface {
	HandleQuestion(c *gin.Context)
}

type answerHandler struct {
	knowledgeService service.KnowledgeService
	answerService    service.AnswerService
	imageService     service.ImageService
}

func NewAnswerHandler(
	knowledgeService service.KnowledgeService,
	answerService service.AnswerService,
	imageService service.ImageService,
) AnswerHandler {
	return &answerHandler{
		knowledgeService: knowledgeService,
		answerService:    answerService,
		imageService:     imageService,
	}
}

// HandleQuestion answers one student question. Calls are independent and
// stateless; the only error surface is the JSON binding here and the panic
// boundary in the recovery middleware.
func (h *answerHandler) HandleQuestion(c *gin.Context) {
	var req types.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Detail: "Question is required",
		})
		return
	}

	var imageDescription string
	if req.Image != "" {
		imageDescription = h.imageService.Describe(req.Image)
	}

	items := h.knowledgeService.Search(req.Question)
	answer := h.answerService.Answer(c.Request.Context(), req.Question, imageDescription, items)
	links := h.knowledgeService.Links(items)

	c.JSON(http.StatusOK, types.AnswerResponse{
		Answer: answer,
		Links:  links,
	})
}
