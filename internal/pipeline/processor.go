package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/credentials"
	"github.com/construtiva/proposal-pipeline/internal/entity"
	"github.com/construtiva/proposal-pipeline/internal/llm"
	"github.com/construtiva/proposal-pipeline/internal/pdfvendor"
	"github.com/construtiva/proposal-pipeline/internal/plog"
	"github.com/construtiva/proposal-pipeline/internal/proposal"
	"github.com/construtiva/proposal-pipeline/internal/repository"
)

// Uploader is the slice of the vendor client the pipeline needs.
type Uploader interface {
	Upload(ctx context.Context, creds credentials.PDFCredentials, doc pdfvendor.Document) (assetID, text string, err error)
}

// Request carries one document through the pipeline, together with the
// related records the caller selected for the resulting proposal. All state
// is local to the run; two concurrent requests share nothing in memory.
type Request struct {
	Document pdfvendor.Document
	UserID   string

	PaymentConditions   []entity.PaymentCondition
	Solutions           []entity.ProposalSolution
	RecommendedProducts []entity.RecommendedProduct
}

// Result reports where the run ended up.
type Result struct {
	ProposalID   uuid.UUID
	ProcessingID string
	AssetID      string
	Confidence   int
}

// Processor coordinates upload, organization, formatting and persistence,
// recording each stage boundary through the processing logger.
type Processor struct {
	Logger    *slog.Logger
	Resolver  *credentials.Resolver
	Uploader  Uploader
	Organizer llm.Organizer
	Proposals repository.ProposalRepository
	PLog      *plog.Logger

	now func() time.Time
}

func NewProcessor(
	logger *slog.Logger,
	resolver *credentials.Resolver,
	uploader Uploader,
	organizer llm.Organizer,
	proposals repository.ProposalRepository,
	pl *plog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:    logger,
		Resolver:  resolver,
		Uploader:  uploader,
		Organizer: organizer,
		Proposals: proposals,
		PLog:      pl,
		now:       time.Now,
	}
}

// ProcessDocument runs the whole pipeline for one uploaded document. Every
// failure is terminal for the run; a retry is a new run with a new
// processing ID. The returned Result carries the correlation ID either way.
func (p *Processor) ProcessDocument(ctx context.Context, req Request) (Result, error) {
	pid := p.PLog.NewRun()
	res := Result{ProcessingID: pid}
	runStart := p.now()

	ctx = common.WithProcessingID(ctx, pid)
	if req.UserID != "" {
		ctx = common.WithUserID(ctx, req.UserID)
	}

	base := plog.Entry{
		ProcessingID: pid,
		UserID:       req.UserID,
		FileName:     req.Document.FileName,
	}

	log := func(stage constants.Stage, status constants.PipelineStatus, since time.Time, err error, details map[string]any) {
		e := base
		e.Stage = stage
		e.Status = status
		e.Duration = p.now().Sub(since)
		e.Details = details
		if err != nil {
			e.ErrorMessage = err.Error()
		}
		p.PLog.Log(ctx, e)
	}
	fail := func(stage constants.Stage, since time.Time, err error) (Result, error) {
		status := constants.StatusError
		if errors.Is(err, context.DeadlineExceeded) {
			status = constants.StatusTimeout
		}
		log(stage, status, since, err, nil)
		p.Logger.Error("pipeline.failed",
			"processing_id", pid, "stage", string(stage), "err", err)
		return res, err
	}

	// 1) credentials for both vendors
	stageStart := p.now()
	log(constants.StageCredentials, constants.StatusStarted, stageStart, nil, nil)
	creds, pdfFallback, err := p.Resolver.ResolvePDF(ctx)
	if err != nil {
		return fail(constants.StageCredentials, stageStart, err)
	}
	llmCreds, llmFallback, err := p.Resolver.ResolveLLM(ctx)
	if err != nil {
		return fail(constants.StageCredentials, stageStart, err)
	}
	if pdfFallback || llmFallback {
		log(constants.StageCredentials, constants.StatusWarning, stageStart, nil, map[string]any{
			"pdf_fallback": pdfFallback,
			"llm_fallback": llmFallback,
		})
	}

	// 2) upload + vendor-side text extraction
	stageStart = p.now()
	assetID, text, err := p.Uploader.Upload(ctx, creds, req.Document)
	if err != nil {
		return fail(constants.StageUpload, stageStart, err)
	}
	res.AssetID = assetID
	log(constants.StageUpload, constants.StatusProgress, stageStart, nil, map[string]any{
		"asset_id": assetID,
		"bytes":    len(req.Document.Content),
		"text_len": len(text),
	})

	// 3) organize
	stageStart = p.now()
	organized, _, err := p.Organizer.Organize(ctx, llm.OrganizeRequest{
		RawText:    text,
		ContextTag: req.Document.FileName,
		APIKey:     llmCreds.APIKey,
	})
	if err != nil {
		return fail(constants.StageOrganize, stageStart, err)
	}
	log(constants.StageOrganize, constants.StatusProgress, stageStart, nil, map[string]any{
		"items":      len(organized.Items),
		"confidence": llm.Confidence(organized),
	})

	// 4) format
	stageStart = p.now()
	formatted := proposal.Format(organized, p.now())
	formatted.SourceAssetID = assetID
	formatted.UserID = req.UserID
	formatted.FileName = req.Document.FileName
	res.Confidence = formatted.Confidence
	log(constants.StageFormat, constants.StatusProgress, stageStart, nil, map[string]any{
		"subtotal": formatted.Subtotal,
		"total":    formatted.Total,
	})

	// 5) persist
	stageStart = p.now()
	saved, err := p.Proposals.CreateFromFormatted(ctx, &repository.CreateProposalRequest{
		Formatted:           formatted,
		PaymentConditions:   req.PaymentConditions,
		Solutions:           req.Solutions,
		RecommendedProducts: req.RecommendedProducts,
	})
	if err != nil {
		return fail(constants.StagePersist, stageStart, err)
	}
	res.ProposalID = saved.ID

	log(constants.StagePersist, constants.StatusSuccess, stageStart, nil, map[string]any{
		"proposal_id": saved.ID.String(),
		"run_ms":      p.now().Sub(runStart).Milliseconds(),
	})
	p.Logger.Info("pipeline.ok",
		"processing_id", pid,
		"proposal_id", saved.ID,
		"items", len(formatted.Items),
		"confidence", formatted.Confidence,
		"elapsed_ms", p.now().Sub(runStart).Milliseconds(),
	)
	return res, nil
}
