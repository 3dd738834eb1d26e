package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/entity"
	"github.com/construtiva/proposal-pipeline/internal/pdfvendor"
	"github.com/construtiva/proposal-pipeline/internal/pipeline"
)

type importResponse struct {
	ProposalID   string `json:"proposal_id"`
	ProcessingID string `json:"processing_id"`
	AssetID      string `json:"asset_id,omitempty"`
	Confidence   int    `json:"confidence"`
	Error        string `json:"error,omitempty"`
}

// importSelections is the optional JSON form field carrying the records the
// caller picked for the proposal.
type importSelections struct {
	PaymentConditions   []entity.PaymentCondition   `json:"payment_conditions"`
	Solutions           []entity.ProposalSolution   `json:"solutions"`
	RecommendedProducts []entity.RecommendedProduct `json:"recommended_products"`
}

func (s *Server) handleImportProposal(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return common.BadRequestError("file is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(fh.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return common.BadRequestErrorf("unsupported file extension %q", ext)
	}
	if fh.Size > constants.MaxUploadBytes {
		return common.BadRequestErrorf("file exceeds %d bytes", constants.MaxUploadBytes)
	}

	src, err := fh.Open()
	if err != nil {
		return common.InternalError("read upload")
	}
	defer func() {
		if err := src.Close(); err != nil {
			s.logger.Warn("upload close error", "error", err)
		}
	}()
	content, err := io.ReadAll(io.LimitReader(src, constants.MaxUploadBytes+1))
	if err != nil {
		return common.InternalError("read upload")
	}
	if int64(len(content)) > constants.MaxUploadBytes {
		return common.BadRequestErrorf("file exceeds %d bytes", constants.MaxUploadBytes)
	}

	var sel importSelections
	if raw := c.FormValue("selections"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sel); err != nil {
			return common.BadRequestErrorf("invalid selections payload: %v", err)
		}
	}

	userID := strings.TrimSpace(c.FormValue("user_id"))
	req := pipeline.Request{
		Document: pdfvendor.Document{
			FileName: fh.Filename,
			MIMEType: constants.MimeForExt(ext),
			Content:  content,
		},
		UserID:              userID,
		PaymentConditions:   sel.PaymentConditions,
		Solutions:           sel.Solutions,
		RecommendedProducts: sel.RecommendedProducts,
	}

	s.logger.Info("proposal import started", "file_name", fh.Filename, "bytes", len(content), "user_id", userID)
	res, err := s.processor.ProcessDocument(c.Request().Context(), req)
	if err != nil {
		// The terminal failure is already in processing_log; the caller gets
		// the message to surface in the UI.
		return c.JSON(http.StatusUnprocessableEntity, importResponse{
			ProcessingID: res.ProcessingID,
			AssetID:      res.AssetID,
			Error:        err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, importResponse{
		ProposalID:   res.ProposalID.String(),
		ProcessingID: res.ProcessingID,
		AssetID:      res.AssetID,
		Confidence:   res.Confidence,
	})
}

func parseDateParam(c echo.Context, name string) (*time.Time, error) {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return &t, nil
}

func (s *Server) handleListProposals(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status != "" && !constants.ValidProposalStatus(status) {
		return common.BadRequestErrorf("unknown status %q", status)
	}
	from, err := parseDateParam(c, "from_date")
	if err != nil {
		return common.BadRequestError(err.Error())
	}
	to, err := parseDateParam(c, "to_date")
	if err != nil {
		return common.BadRequestError(err.Error())
	}

	recs, err := s.proposals.List(c.Request().Context(), status, from, to)
	if err != nil {
		s.logger.Warn("list proposals failed", "error", err)
		return common.InternalError("list proposals failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"proposals": recs})
}

func (s *Server) handleGetProposal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.BadRequestError("id must be a UUID")
	}
	rec, err := s.proposals.GetByID(c.Request().Context(), id)
	if err != nil {
		s.logger.Warn("load proposal failed", "proposal_id", id, "error", err)
		return common.NotFoundError("proposal not found")
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleExportProposals(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status != "" && !constants.ValidProposalStatus(status) {
		return common.BadRequestErrorf("unknown status %q", status)
	}
	from, err := parseDateParam(c, "from_date")
	if err != nil {
		return common.BadRequestError(err.Error())
	}
	to, err := parseDateParam(c, "to_date")
	if err != nil {
		return common.BadRequestError(err.Error())
	}

	blob, err := s.exporter.ExportProposalsXLSX(c.Request().Context(), status, from, to)
	if err != nil {
		s.logger.Warn("export proposals failed", "error", err)
		return common.InternalError("export proposals failed")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="proposals.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", blob)
}
