package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/construtiva/proposal-pipeline/internal/repository"
)

// Service is a tiny façade over the proposal repository that produces XLSX
// bytes for back-office exports.
type Service struct {
	proposalsRepo repository.ProposalRepository
	logger        *slog.Logger
}

func NewService(repo repository.ProposalRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{proposalsRepo: repo, logger: logger}
}

// ExportProposalsXLSX returns an XLSX workbook (as bytes) for the given
// status filter and date window. Empty status means all statuses; nil dates
// mean an open-ended window.
func (s *Service) ExportProposalsXLSX(ctx context.Context, status string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	recs, err := s.proposalsRepo.List(ctx, status, from, to)
	if err != nil {
		return nil, fmt.Errorf("query proposals: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Proposals"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet so the workbook opens on ours
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Proposal Number",
		"Client",
		"Vendor",
		"Date",
		"Status",
		"Subtotal",
		"Total",
		"Valid Until",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, p.ProposalNumber)
		write(2, p.ClientName)
		write(3, p.VendorName)
		if !p.ProposalDate.IsZero() {
			write(4, p.ProposalDate.Format("2006-01-02"))
		} else {
			write(4, "")
		}
		write(5, p.Status)
		write(6, p.Subtotal)
		write(7, p.Total)
		write(8, p.ValidUntil.Format("2006-01-02"))
		write(9, p.Confidence)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("proposals exported",
		"status", status,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
