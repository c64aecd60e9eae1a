package intent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"assistant-webhook/internal/legacyweather"
	"assistant-webhook/internal/weather"
	"assistant-webhook/internal/wisdom"
)

// Router dispatches a Request to the path serving its action. Route is
// total: every failure, including a panic, ends in the empty Reply.
type Router struct {
	legacyWeather legacyweather.Service
	weather       weather.Service
	wisdom        wisdom.Service
	source        string
	logger        *slog.Logger
}

func NewRouter(
	legacyWeather legacyweather.Service,
	weatherService weather.Service,
	wisdomService wisdom.Service,
	source string,
	logger *slog.Logger,
) *Router {
	return &Router{
		legacyWeather: legacyWeather,
		weather:       weatherService,
		wisdom:        wisdomService,
		source:        source,
		logger:        logger.With("component", "intent-router"),
	}
}

// Route answers a single request.
func (r *Router) Route(ctx context.Context, req Request) (reply Reply) {
	logger := r.logger.With("request_id", RequestIDFrom(ctx), "action", req.Action)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("panic while routing request", "panic", fmt.Sprint(rec))
			reply = Reply{}
		}
	}()

	logger.Debug("routing request", "parameters", req.Parameters)

	switch {
	case req.Action == ActionLegacyWeather:
		return r.routeLegacyWeather(ctx, logger, req)
	case req.Action == ActionWeatherSearch:
		return r.routeWeatherSearch(ctx, logger, req)
	case strings.Contains(req.Action, ActionWisdom):
		return r.routeWisdom(ctx, logger, req)
	default:
		logger.Debug("unsupported action")
		return Reply{}
	}
}

func (r *Router) routeLegacyWeather(ctx context.Context, logger *slog.Logger, req Request) Reply {
	city, _ := req.Param(ParamCity)

	speech, err := r.legacyWeather.Forecast(ctx, city)
	if err != nil {
		if errors.Is(err, legacyweather.ErrMissingCity) {
			logger.Debug("legacy forecast skipped", "reason", err)
		} else {
			logger.Error("legacy forecast failed", "city", city, "error", err)
		}
		return Reply{}
	}

	return NewReply(speech, r.source)
}

func (r *Router) routeWeatherSearch(ctx context.Context, logger *slog.Logger, req Request) Reply {
	address, _ := req.Param(ParamLocation)

	snapshot, err := r.weather.Search(ctx, address)
	if err != nil {
		logger.Error("weather search failed", "location", address, "error", err)
		if errors.Is(err, weather.ErrForecastParse) {
			return NewReply(weather.NoForecastMessage, r.source)
		}
		return Reply{}
	}

	text := weather.Format(snapshot)
	if text == "" {
		return NewReply(weather.NoForecastMessage, r.source)
	}
	return NewReply(text, r.source)
}

func (r *Router) routeWisdom(ctx context.Context, logger *slog.Logger, req Request) Reply {
	query, _ := req.Param(ParamQuery)

	answer, err := r.wisdom.Answer(ctx, query)
	if err != nil {
		if errors.Is(err, wisdom.ErrMissingQuery) {
			logger.Debug("knowledge lookup skipped", "reason", err)
		} else {
			logger.Error("knowledge lookup failed", "query", query, "error", err)
		}
		return Reply{}
	}

	return NewReply(wisdom.Speech(answer), r.source)
}
