package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/construtiva/proposal-pipeline/internal/common"
)

// handlePDFCredentials serves the resolved PDF vendor credentials to trusted
// server-side callers. It requires the configured bearer service token; the
// route is CORS-enabled at the router level so browser preflights succeed.
func (s *Server) handlePDFCredentials(c echo.Context) error {
	if s.serviceToken == "" {
		return common.InternalError("credential endpoint not configured")
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.serviceToken)) != 1 {
		return common.UnauthorizedError("missing or invalid bearer token")
	}

	creds, _, err := s.resolver.ResolvePDF(c.Request().Context())
	if err != nil {
		s.logger.Warn("credential resolution failed", "error", err)
		return common.InternalError("credential resolution failed")
	}
	return c.JSON(http.StatusOK, creds)
}
