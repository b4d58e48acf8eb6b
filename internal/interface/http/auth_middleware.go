package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/auth"
	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
)

func authMiddleware(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, apperrors.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, apperrors.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := svc.ValidateToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if apperrors.IsCode(err, apperrors.CodeInvalidToken) || apperrors.IsCode(err, apperrors.CodeUnauthorized) {
				abortWithError(c, fromDomainError(err))
				return
			}
			abortWithError(c, NewHTTPError(http.StatusInternalServerError, "auth_failed", "token verification failed", err))
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}
