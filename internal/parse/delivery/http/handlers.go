package http

import (
	"github.com/gin-gonic/gin"

	"task-nlp-service/pkg/response"
)

// Parse godoc
// @Summary     Parse a task description
// @Description Converts a free-form Vietnamese task description into a structured record with priority and an absolute time window.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task description"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}
