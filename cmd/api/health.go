package main

import (
	"net/http"

	"assistant-webhook/internal/intent"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness and which intents can be answered
type HealthResponse struct {
	Status  string   `json:"status" example:"ok"`
	Source  string   `json:"source" example:"apiai-weather-webhook-sample"`
	Intents []string `json:"intents"`
}

// handlePing godoc
// @Summary Liveness check
// @Description Reports that the webhook is up and lists the intents it can answer. weather.search is listed only when a forecast API key is configured.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	intents := []string{intent.ActionLegacyWeather}
	if app.cfg.Providers.Forecast.APIKey != "" {
		intents = append(intents, intent.ActionWeatherSearch)
	}
	intents = append(intents, intent.ActionWisdom)

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Source:  app.cfg.App.Source,
		Intents: intents,
	})
}
