package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

const (
	serviceName    = "catalogqa-backend"
	serviceVersion = "1.0.0"
)

// QuestionAnswerer runs one question through the answering pipeline
type QuestionAnswerer interface {
	Answer(ctx context.Context, request *domain.AskRequest) (*domain.Answer, error)
}

// HandlerConfig holds the HTTP-level settings of the handlers
type HandlerConfig struct {
	SessionCookie  string
	SessionTTL     time.Duration
	SecureCookie   bool
	RequestTimeout time.Duration
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	answerer QuestionAnswerer
	sessions domain.SessionRepository
	config   HandlerConfig
	logger   zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(answerer QuestionAnswerer, sessions domain.SessionRepository, config HandlerConfig, logger zerolog.Logger) *Handler {
	if config.SessionCookie == "" {
		config.SessionCookie = "catalogqa_session"
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = 24 * time.Hour
	}

	return &Handler{
		answerer: answerer,
		sessions: sessions,
		config:   config,
		logger:   logger.With().Str("component", "http").Logger(),
	}
}

// askRequest is the body of POST /ask
type askRequest struct {
	Question  string   `json:"question" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// locationRequest is the body of POST /user_location
type locationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Ask answers a catalog question. Coordinates in the body take precedence
// over the location stored in the caller's session.
func (h *Handler) Ask(c *gin.Context) {
	if h.answerer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "question answering is not configured"})
		return
	}

	var body askRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: question is required"})
		return
	}

	location, err := parseLocation(body.Latitude, body.Longitude, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if location == nil {
		location = h.sessionLocation(c)
	}

	ctx := c.Request.Context()
	if h.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.RequestTimeout)
		defer cancel()
	}

	answer, err := h.answerer.Answer(ctx, &domain.AskRequest{
		Question: body.Question,
		Location: location,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info().
		Str("route", string(answer.Route)).
		Bool("has_location", location != nil).
		Msg("question answered")

	c.JSON(http.StatusOK, gin.H{"answer": answer.Text})
}

// UserLocation stores the caller's coordinates in their session
func (h *Handler) UserLocation(c *gin.Context) {
	if h.sessions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session store is not configured"})
		return
	}

	var body locationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: latitude and longitude are required"})
		return
	}

	location, err := parseLocation(body.Latitude, body.Longitude, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := h.ensureSession(c)
	if err := h.sessions.SaveLocation(c.Request.Context(), sessionID, *location, h.config.SessionTTL); err != nil {
		h.logger.Error().Err(err).Msg("failed to save session location")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not store location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sessionLocation returns the stored location, or nil when the caller has
// no session or the store cannot answer
func (h *Handler) sessionLocation(c *gin.Context) *domain.GeoPoint {
	if h.sessions == nil {
		return nil
	}

	sessionID, err := c.Cookie(h.config.SessionCookie)
	if err != nil || sessionID == "" {
		return nil
	}

	location, err := h.sessions.GetLocation(c.Request.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			h.logger.Warn().Err(err).Msg("session lookup failed, continuing without location")
		}
		return nil
	}
	return location
}

// ensureSession returns the caller's session id, issuing a new cookie when needed
func (h *Handler) ensureSession(c *gin.Context) string {
	if id, err := c.Cookie(h.config.SessionCookie); err == nil {
		if _, perr := uuid.Parse(id); perr == nil {
			return id
		}
	}

	id := uuid.NewString()
	if h.config.SecureCookie {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(h.config.SessionCookie, id, int(h.config.SessionTTL.Seconds()), "/", "", h.config.SecureCookie, true)
	return id
}

// respondError maps pipeline errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status, message = http.StatusBadRequest, "invalid request: question must not be empty"
	case errors.Is(err, domain.ErrAggregateQuery):
		status, message = http.StatusBadGateway, "could not count products, please try again later"
	case errors.Is(err, domain.ErrVectorSearch), errors.Is(err, domain.ErrGraphQuery):
		status, message = http.StatusBadGateway, "catalog search is unavailable, please try again later"
	case errors.Is(err, context.DeadlineExceeded):
		status, message = http.StatusGatewayTimeout, "the request took too long"
	}

	h.logger.Error().Err(err).Int("status", status).Msg("question failed")
	c.JSON(status, gin.H{"error": message})
}

var errInvalidCoordinates = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")

// parseLocation validates an optional coordinate pair. Both values must be
// present together; required forces their presence.
func parseLocation(lat, lon *float64, required bool) (*domain.GeoPoint, error) {
	if lat == nil && lon == nil {
		if required {
			return nil, errors.New("latitude and longitude are required")
		}
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, errors.New("latitude and longitude must be provided together")
	}
	if *lat < -90 || *lat > 90 || *lon < -180 || *lon > 180 {
		return nil, errInvalidCoordinates
	}
	return &domain.GeoPoint{Latitude: *lat, Longitude: *lon}, nil
}
