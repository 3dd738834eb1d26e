package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/credentials"
	"github.com/construtiva/proposal-pipeline/internal/entity"
	"github.com/construtiva/proposal-pipeline/internal/llm"
	"github.com/construtiva/proposal-pipeline/internal/pdfvendor"
	"github.com/construtiva/proposal-pipeline/internal/plog"
	"github.com/construtiva/proposal-pipeline/internal/repository"
)

type fakeUploader struct {
	assetID string
	text    string
	err     error
	calls   int
}

func (f *fakeUploader) Upload(_ context.Context, _ credentials.PDFCredentials, _ pdfvendor.Document) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return f.assetID, f.text, nil
}

type fakeOrganizer struct {
	data    llm.OrganizedData
	err     error
	lastReq llm.OrganizeRequest
}

func (f *fakeOrganizer) Organize(_ context.Context, req llm.OrganizeRequest) (llm.OrganizedData, []byte, error) {
	f.lastReq = req
	if f.err != nil {
		return llm.OrganizedData{}, nil, f.err
	}
	return f.data, []byte("{}"), nil
}

type fakeProposals struct {
	created *repository.CreateProposalRequest
	err     error
	id      uuid.UUID
}

func (f *fakeProposals) CreateFromFormatted(_ context.Context, req *repository.CreateProposalRequest) (*entity.Proposal, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &entity.Proposal{ID: f.id, Confidence: req.Formatted.Confidence}, nil
}

func (f *fakeProposals) List(context.Context, string, *time.Time, *time.Time) ([]*entity.Proposal, error) {
	return nil, nil
}

func (f *fakeProposals) GetByID(context.Context, uuid.UUID) (*entity.Proposal, error) {
	return nil, nil
}

type captureSink struct {
	entries []plog.Entry
}

func (c *captureSink) AppendEntry(_ context.Context, e plog.Entry) error {
	c.entries = append(c.entries, e)
	return nil
}

func (c *captureSink) BumpDailyMetric(context.Context, time.Time, constants.Stage, constants.PipelineStatus, time.Duration) error {
	return nil
}

func (c *captureSink) last() plog.Entry {
	return c.entries[len(c.entries)-1]
}

func fallbackResolver() *credentials.Resolver {
	return credentials.NewResolver(common.CredentialsConfig{}, credentials.Fallback{
		PDF: credentials.PDFCredentials{ClientID: "id", ClientSecret: "secret"},
		LLM: credentials.LLMCredentials{APIKey: "llm-key"},
	}, nil)
}

func organizedFixture() llm.OrganizedData {
	return llm.OrganizedData{
		ClientName:     "Construtora Alfa",
		VendorName:     "Construtiva Materiais",
		ProposalNumber: "PC-1",
		Date:           "2025-05-10",
		Items: []llm.Item{
			{Description: "Cimento CP-II", Quantity: 10, Unit: "saco", UnitPrice: 30, Total: 300},
		},
		Subtotal:      300,
		Total:         300,
		PaymentTerms:  "30 dias",
		DeliveryTerms: "CIF",
	}
}

func testRequest() Request {
	return Request{
		Document: pdfvendor.Document{FileName: "proposta.pdf", MIMEType: "application/pdf", Content: []byte("%PDF")},
		UserID:   "u1",
		PaymentConditions: []entity.PaymentCondition{
			{Description: "Boleto 30/60", Installments: 2, Method: "boleto"},
		},
	}
}

func newProcessor(sink plog.Sink, up Uploader, org llm.Organizer, repo repository.ProposalRepository) *Processor {
	return NewProcessor(nil, fallbackResolver(), up, org, repo, plog.NewLogger(sink, nil))
}

func TestProcessDocument_Success(t *testing.T) {
	sink := &captureSink{}
	repo := &fakeProposals{id: uuid.New()}
	up := &fakeUploader{assetID: "asset-1", text: "PROPOSTA ..."}
	org := &fakeOrganizer{data: organizedFixture()}
	p := newProcessor(sink, up, org, repo)

	res, err := p.ProcessDocument(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, repo.id, res.ProposalID)
	assert.Equal(t, "asset-1", res.AssetID)
	assert.NotEmpty(t, res.ProcessingID)
	assert.Equal(t, 1, up.calls)
	assert.Equal(t, "llm-key", org.lastReq.APIKey, "resolved llm key reaches the organizer")

	// STARTED, WARNING (static credentials in use), three PROGRESS,
	// terminal SUCCESS
	require.Len(t, sink.entries, 6)
	assert.Equal(t, constants.StatusStarted, sink.entries[0].Status)
	assert.Equal(t, constants.StageCredentials, sink.entries[0].Stage)
	assert.Equal(t, constants.StatusWarning, sink.entries[1].Status)
	assert.Equal(t, constants.StageCredentials, sink.entries[1].Stage)
	assert.Equal(t, true, sink.entries[1].Details["pdf_fallback"])
	last := sink.last()
	assert.Equal(t, constants.StagePersist, last.Stage)
	assert.Equal(t, constants.StatusSuccess, last.Status)
	for _, e := range sink.entries {
		assert.Equal(t, res.ProcessingID, e.ProcessingID, "one correlation id across the run")
		assert.Equal(t, "u1", e.UserID)
		assert.Equal(t, "proposta.pdf", e.FileName)
	}

	require.NotNil(t, repo.created)
	assert.Equal(t, "asset-1", repo.created.Formatted.SourceAssetID)
	assert.Len(t, repo.created.PaymentConditions, 1)
}

func TestProcessDocument_SuccessDurationIsStageScoped(t *testing.T) {
	sink := &captureSink{}
	repo := &fakeProposals{id: uuid.New()}
	p := newProcessor(sink, &fakeUploader{assetID: "a", text: "x"}, &fakeOrganizer{data: organizedFixture()}, repo)

	// deterministic clock: every reading advances 10ms
	tick := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time {
		tick = tick.Add(10 * time.Millisecond)
		return tick
	}

	_, err := p.ProcessDocument(context.Background(), testRequest())
	require.NoError(t, err)

	last := sink.last()
	require.Equal(t, constants.StatusSuccess, last.Status)
	runMS, ok := last.Details["run_ms"].(int64)
	require.True(t, ok)
	assert.Less(t, last.Duration.Milliseconds(), runMS,
		"persist duration covers the stage, not the whole run")
}

func TestProcessDocument_LLMCredentialsFailure(t *testing.T) {
	sink := &captureSink{}
	resolver := credentials.NewResolver(common.CredentialsConfig{}, credentials.Fallback{
		PDF: credentials.PDFCredentials{ClientID: "id", ClientSecret: "secret"},
	}, nil)
	repo := &fakeProposals{}
	up := &fakeUploader{assetID: "a", text: "x"}
	p := NewProcessor(nil, resolver, up, &fakeOrganizer{}, repo, plog.NewLogger(sink, nil))

	_, err := p.ProcessDocument(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCredentials)
	assert.Equal(t, 0, up.calls, "no upload without a usable llm key")

	last := sink.last()
	assert.Equal(t, constants.StageCredentials, last.Stage)
	assert.Equal(t, constants.StatusError, last.Status)
}

func TestProcessDocument_CredentialsFailure(t *testing.T) {
	sink := &captureSink{}
	p := NewProcessor(nil,
		credentials.NewResolver(common.CredentialsConfig{}, credentials.Fallback{}, nil),
		&fakeUploader{}, &fakeOrganizer{}, &fakeProposals{}, plog.NewLogger(sink, nil))

	res, err := p.ProcessDocument(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCredentials)
	assert.NotEmpty(t, res.ProcessingID)

	last := sink.last()
	assert.Equal(t, constants.StageCredentials, last.Stage)
	assert.Equal(t, constants.StatusError, last.Status)
	assert.NotEmpty(t, last.ErrorMessage)
}

func TestProcessDocument_UploadFailure(t *testing.T) {
	sink := &captureSink{}
	up := &fakeUploader{err: errors.New("connection reset")}
	p := newProcessor(sink, up, &fakeOrganizer{}, &fakeProposals{})

	_, err := p.ProcessDocument(context.Background(), testRequest())
	require.Error(t, err)

	last := sink.last()
	assert.Equal(t, constants.StageUpload, last.Stage)
	assert.Equal(t, constants.StatusError, last.Status)
}

func TestProcessDocument_OrganizeFailure(t *testing.T) {
	sink := &captureSink{}
	repo := &fakeProposals{}
	org := &fakeOrganizer{err: errors.New("resposta do modelo em formato inválido")}
	p := newProcessor(sink, &fakeUploader{assetID: "asset-1", text: "x"}, org, repo)

	res, err := p.ProcessDocument(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, "asset-1", res.AssetID, "asset kept for the audit trail")
	assert.Nil(t, repo.created, "nothing persisted after organize failure")

	last := sink.last()
	assert.Equal(t, constants.StageOrganize, last.Stage)
	assert.Equal(t, constants.StatusError, last.Status)
	assert.Contains(t, last.ErrorMessage, "formato inválido")
}

func TestProcessDocument_PersistFailure(t *testing.T) {
	sink := &captureSink{}
	repo := &fakeProposals{err: errors.New("pq: deadlock detected")}
	p := newProcessor(sink, &fakeUploader{assetID: "a", text: "x"}, &fakeOrganizer{data: organizedFixture()}, repo)

	_, err := p.ProcessDocument(context.Background(), testRequest())
	require.Error(t, err)

	last := sink.last()
	assert.Equal(t, constants.StagePersist, last.Stage)
	assert.Equal(t, constants.StatusError, last.Status)
}

func TestProcessDocument_DeadlineMapsToTimeout(t *testing.T) {
	sink := &captureSink{}
	up := &fakeUploader{err: context.DeadlineExceeded}
	p := newProcessor(sink, up, &fakeOrganizer{}, &fakeProposals{})

	_, err := p.ProcessDocument(context.Background(), testRequest())
	require.Error(t, err)

	last := sink.last()
	assert.Equal(t, constants.StatusTimeout, last.Status)
}

func TestProcessDocument_FreshRunPerCall(t *testing.T) {
	sink := &captureSink{}
	repo := &fakeProposals{id: uuid.New()}
	p := newProcessor(sink, &fakeUploader{assetID: "a", text: "x"}, &fakeOrganizer{data: organizedFixture()}, repo)

	r1, err := p.ProcessDocument(context.Background(), testRequest())
	require.NoError(t, err)
	r2, err := p.ProcessDocument(context.Background(), testRequest())
	require.NoError(t, err)

	assert.NotEqual(t, r1.ProcessingID, r2.ProcessingID)
}
