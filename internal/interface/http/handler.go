package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/astro"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/guidance"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/numerology"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/subscription"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	astroSvc        astro.Service
	numerologySvc   numerology.Service
	cosmicSvc       cosmic.Service
	moderationSvc   moderation.Service
	subscriptionSvc subscription.Service
	guidanceSvc     guidance.Service
	logger          *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	astroSvc astro.Service,
	numerologySvc numerology.Service,
	cosmicSvc cosmic.Service,
	moderationSvc moderation.Service,
	subscriptionSvc subscription.Service,
	guidanceSvc guidance.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		astroSvc:        astroSvc,
		numerologySvc:   numerologySvc,
		cosmicSvc:       cosmicSvc,
		moderationSvc:   moderationSvc,
		subscriptionSvc: subscriptionSvc,
		guidanceSvc:     guidanceSvc,
		logger:          logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AstroSnapshot returns moon phase and planetary positions for one date.
// GET reads ?date=, POST reads {"date": ...}; both default to today.
func (h *Handler) AstroSnapshot(c *gin.Context) {
	var req astro.Request
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.astroSvc.Snapshot(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MoonPhase returns only the lunar phase.
func (h *Handler) MoonPhase(c *gin.Context) {
	var req astro.Request
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.astroSvc.MoonPhase(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Planets returns only the planetary positions.
func (h *Handler) Planets(c *gin.Context) {
	var req astro.Request
	if !bindRequest(c, &req) {
		return
	}
	positions, err := h.astroSvc.Planets(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"planetaryPositions": positions})
}

// Numerology derives life path, energy and guidance.
func (h *Handler) Numerology(c *gin.Context) {
	var req numerology.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.numerologySvc.Derive(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CosmicToday returns the collective reading for a date.
func (h *Handler) CosmicToday(c *gin.Context) {
	var req cosmic.Request
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.cosmicSvc.Today(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ModerationCheck validates, moderates and sanitizes text.
func (h *Handler) ModerationCheck(c *gin.Context) {
	var req moderation.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.moderationSvc.Check(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyAge checks the minimum age and parental consent requirement.
func (h *Handler) VerifyAge(c *gin.Context) {
	var req moderation.AgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.moderationSvc.VerifyAge(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bindRequest reads query parameters on GET and an optional JSON body otherwise.
func bindRequest(c *gin.Context, dst any) bool {
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(dst)
	} else if err = c.ShouldBindJSON(dst); errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		badRequest(c, err)
		return false
	}
	return true
}
