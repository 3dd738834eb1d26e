package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/plog"
)

type appendLogRequest struct {
	Stage        string         `json:"stage"`
	Status       string         `json:"status"`
	Details      map[string]any `json:"details,omitempty"`
	UserID       string         `json:"user_id,omitempty"`
	FileName     string         `json:"file_name,omitempty"`
	ProcessingID string         `json:"processing_id,omitempty"`
	Duration     int64          `json:"duration,omitempty"` // milliseconds
	ErrorMessage string         `json:"error_message,omitempty"`
}

type appendLogResponse struct {
	Success      bool   `json:"success"`
	ProcessingID string `json:"processing_id"`
}

// handleAppendProcessingLog is the server-side logging endpoint: one audit
// row per call, plus the upserted daily aggregate for terminal statuses.
// Sink failures are absorbed by the logger; this endpoint never reports
// them as request failures.
func (s *Server) handleAppendProcessingLog(c echo.Context) error {
	var req appendLogRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid request body")
	}
	if req.Stage == "" {
		return common.BadRequestError("stage is required")
	}
	status, ok := constants.ParseStatus(req.Status)
	if !ok {
		return common.BadRequestErrorf("unknown status %q", req.Status)
	}

	pid := s.plogger.Log(c.Request().Context(), plog.Entry{
		ProcessingID: req.ProcessingID,
		Stage:        constants.Stage(req.Stage),
		Status:       status,
		Duration:     time.Duration(req.Duration) * time.Millisecond,
		ErrorMessage: req.ErrorMessage,
		Details:      req.Details,
		UserID:       req.UserID,
		FileName:     req.FileName,
	})

	return c.JSON(http.StatusOK, appendLogResponse{
		Success:      true,
		ProcessingID: pid,
	})
}

// handleListProcessingLogs returns the audit trail of one run, ordered by
// creation time.
func (s *Server) handleListProcessingLogs(c echo.Context) error {
	pid := c.Param("processing_id")
	if pid == "" {
		return common.BadRequestError("processing_id is required")
	}
	rows, err := s.plogs.ListByProcessingID(c.Request().Context(), pid)
	if err != nil {
		s.logger.Warn("list processing logs failed", "processing_id", pid, "error", err)
		return common.InternalError("list processing logs failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"entries": rows})
}
