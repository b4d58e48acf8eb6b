package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/guidance"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/numerology"
)

// GuidanceChat proxies one chat turn to the guide.
func (h *Handler) GuidanceChat(c *gin.Context) {
	var req guidance.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.guidanceSvc.Chat(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Subscription reports the caller's tier.
func (h *Handler) Subscription(c *gin.Context) {
	status, err := h.subscriptionSvc.Status(c.Request.Context(), currentUserID(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, status)
}

// SoulProfile derives the caller's soul profile from a birth date.
func (h *Handler) SoulProfile(c *gin.Context) {
	var req numerology.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	profile, err := h.numerologySvc.Profile(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetSpiritualProfile returns the caller's stored spiritual profile.
func (h *Handler) GetSpiritualProfile(c *gin.Context) {
	profile, err := h.guidanceSvc.SpiritualProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PutSpiritualProfile replaces the caller's stored spiritual profile.
func (h *Handler) PutSpiritualProfile(c *gin.Context) {
	var req guidance.SpiritualProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	profile, err := h.guidanceSvc.SaveSpiritualProfile(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ReportContent files a moderation report from the caller.
func (h *Handler) ReportContent(c *gin.Context) {
	var req moderation.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	report, err := h.moderationSvc.Report(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, report)
}
