package utils

import (
	"time"

	"github.com/construtiva/proposal-pipeline/gen/ent"
	"github.com/construtiva/proposal-pipeline/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}

// ParseYMD parses a YYYY-MM-DD string at midnight UTC to match DATE
// column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToProposal(e *ent.Proposal) *entity.Proposal {
	p := &entity.Proposal{
		ID:             e.ID,
		ClientName:     e.ClientName,
		VendorName:     e.VendorName,
		ProposalNumber: e.ProposalNumber,
		ProposalDate:   timeOrZero(e.ProposalDate),
		Subtotal:       e.Subtotal,
		Total:          e.Total,
		Observations:   e.Observations,
		Status:         e.Status,
		ValidUntil:     e.ValidUntil,
		SourceAssetID:  strOrEmpty(e.SourceAssetID),
		Confidence:     e.Confidence,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	for _, it := range e.Edges.Items {
		p.Items = append(p.Items, ToProposalItem(it))
	}
	for _, pc := range e.Edges.PaymentConditions {
		p.PaymentConditions = append(p.PaymentConditions, entity.PaymentCondition{
			ID:           pc.ID,
			ProposalID:   pc.ProposalID,
			Description:  pc.Description,
			Installments: pc.Installments,
			Method:       pc.Method,
		})
	}
	for _, s := range e.Edges.Solutions {
		p.Solutions = append(p.Solutions, entity.ProposalSolution{
			ID:          s.ID,
			ProposalID:  s.ProposalID,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	for _, rp := range e.Edges.RecommendedProducts {
		p.RecommendedProducts = append(p.RecommendedProducts, entity.RecommendedProduct{
			ID:         rp.ID,
			ProposalID: rp.ProposalID,
			Name:       rp.Name,
			Reason:     rp.Reason,
		})
	}
	return p
}

func ToProposalItem(e *ent.ProposalItem) entity.ProposalItem {
	return entity.ProposalItem{
		ID:          e.ID,
		ProposalID:  e.ProposalID,
		Position:    e.Position,
		Description: e.Description,
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		UnitPrice:   e.UnitPrice,
		Total:       e.Total,
	}
}

func ToProcessingLog(e *ent.ProcessingLog) *entity.ProcessingLog {
	return &entity.ProcessingLog{
		ID:           e.ID,
		ProcessingID: e.ProcessingID,
		Stage:        e.Stage,
		Status:       e.Status,
		DurationMS:   e.DurationMs,
		ErrorMessage: e.ErrorMessage,
		Details:      e.Details,
		UserID:       e.UserID,
		FileName:     e.FileName,
		CreatedAt:    e.CreatedAt,
	}
}
