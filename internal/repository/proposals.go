package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/construtiva/proposal-pipeline/gen/ent"
	entproposal "github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/internal/entity"
	"github.com/construtiva/proposal-pipeline/internal/proposal"
	"github.com/construtiva/proposal-pipeline/internal/utils"
)

// CreateProposalRequest wraps everything persisted for one pipeline run: the
// formatted proposal plus the related records selected for it.
type CreateProposalRequest struct {
	Formatted           proposal.FormattedProposal
	PaymentConditions   []entity.PaymentCondition
	Solutions           []entity.ProposalSolution
	RecommendedProducts []entity.RecommendedProduct
}

type ProposalRepository interface {
	CreateFromFormatted(ctx context.Context, req *CreateProposalRequest) (*entity.Proposal, error)
	List(ctx context.Context, status string, fromDate, toDate *time.Time) ([]*entity.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error)
}

type proposalRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProposalRepository(client *ent.Client, logger *slog.Logger) ProposalRepository {
	return &proposalRepository{
		client: client,
		logger: logger,
	}
}

// CreateFromFormatted writes the proposal, its line items, payment
// conditions, solutions and recommended products as one transaction. The
// in-memory formatted copy is owned by the store once this returns.
func (r *proposalRepository) CreateFromFormatted(ctx context.Context, req *CreateProposalRequest) (*entity.Proposal, error) {
	fp := req.Formatted

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	rollback := func(err error) (*entity.Proposal, error) {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("proposal tx rollback failed", "error", rerr)
		}
		return nil, err
	}

	builder := tx.Proposal.Create().
		SetClientName(fp.ClientName).
		SetVendorName(fp.VendorName).
		SetProposalNumber(fp.ProposalNumber).
		SetSubtotal(fp.Subtotal).
		SetTotal(fp.Total).
		SetObservations(fp.Observations).
		SetStatus(fp.Status).
		SetValidUntil(fp.ValidUntil).
		SetConfidence(fp.Confidence)

	if fp.ProposalDate != "" {
		d, err := utils.ParseYMD(fp.ProposalDate)
		if err != nil {
			r.logger.Warn("unparsable proposal date, storing without it", "date", fp.ProposalDate)
		} else {
			builder = builder.SetProposalDate(d)
		}
	}
	if fp.SourceAssetID != "" {
		builder = builder.SetSourceAssetID(fp.SourceAssetID)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return rollback(fmt.Errorf("create proposal: %w", err))
	}

	for _, it := range fp.Items {
		_, err := tx.ProposalItem.Create().
			SetProposalID(rec.ID).
			SetPosition(it.Position).
			SetDescription(it.Description).
			SetQuantity(it.Quantity).
			SetUnit(it.Unit).
			SetUnitPrice(it.UnitPrice).
			SetTotal(it.Total).
			Save(ctx)
		if err != nil {
			return rollback(fmt.Errorf("create proposal item %d: %w", it.Position, err))
		}
	}
	for _, pc := range req.PaymentConditions {
		c := tx.PaymentCondition.Create().
			SetProposalID(rec.ID).
			SetDescription(pc.Description).
			SetMethod(pc.Method)
		if pc.Installments > 0 {
			c = c.SetInstallments(pc.Installments)
		}
		if _, err := c.Save(ctx); err != nil {
			return rollback(fmt.Errorf("create payment condition: %w", err))
		}
	}
	for _, s := range req.Solutions {
		_, err := tx.ProposalSolution.Create().
			SetProposalID(rec.ID).
			SetName(s.Name).
			SetDescription(s.Description).
			Save(ctx)
		if err != nil {
			return rollback(fmt.Errorf("create solution: %w", err))
		}
	}
	for _, rp := range req.RecommendedProducts {
		_, err := tx.RecommendedProduct.Create().
			SetProposalID(rec.ID).
			SetName(rp.Name).
			SetReason(rp.Reason).
			Save(ctx)
		if err != nil {
			return rollback(fmt.Errorf("create recommended product: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit proposal tx: %w", err)
	}

	r.logger.Info("proposal persisted",
		"proposal_id", rec.ID,
		"items", len(fp.Items),
		"total", fp.Total,
	)
	return r.GetByID(ctx, rec.ID)
}

func (r *proposalRepository) List(ctx context.Context, status string, fromDate, toDate *time.Time) ([]*entity.Proposal, error) {
	q := r.client.Proposal.Query()
	if status != "" {
		q = q.Where(entproposal.Status(status))
	}
	if fromDate != nil {
		q = q.Where(entproposal.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entproposal.CreatedAtLTE(*toDate))
	}
	recs, err := q.Order(entproposal.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list proposals", "status", status, "error", err)
		return nil, err
	}

	result := make([]*entity.Proposal, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToProposal(rec)
	}
	return result, nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	rec, err := r.client.Proposal.Query().
		Where(entproposal.ID(id)).
		WithItems().
		WithPaymentConditions().
		WithSolutions().
		WithRecommendedProducts().
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to load proposal", "proposal_id", id, "error", err)
		return nil, err
	}
	return utils.ToProposal(rec), nil
}
