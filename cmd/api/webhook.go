package main

import (
	"net/http"

	"assistant-webhook/internal/intent"

	"github.com/gin-gonic/gin"
)

// handleWebhook godoc
// @Summary Fulfill an intent
// @Description Answers a recognized intent. The reply is always HTTP 200; an empty object means there is nothing to say.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body intent.WebhookRequest true "Intent recognition result"
// @Success 200 {object} intent.Reply
// @Router /webhook [post]
func (app *App) handleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var body intent.WebhookRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		app.logger.Warn("invalid webhook payload",
			"request_id", intent.RequestIDFrom(ctx),
			"error", err,
		)
		c.JSON(http.StatusOK, intent.Reply{})
		return
	}

	reply := app.intentRouter.Route(ctx, body.ToRequest())

	c.JSON(http.StatusOK, reply)
}
