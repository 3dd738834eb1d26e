package server

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/credentials"
	"github.com/construtiva/proposal-pipeline/internal/entity"
	"github.com/construtiva/proposal-pipeline/internal/plog"
	"github.com/construtiva/proposal-pipeline/internal/repository"
)

type memSink struct {
	entries   []plog.Entry
	appendErr error
}

func (m *memSink) AppendEntry(_ context.Context, e plog.Entry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memSink) BumpDailyMetric(context.Context, time.Time, constants.Stage, constants.PipelineStatus, time.Duration) error {
	return nil
}

func (m *memSink) ListByProcessingID(_ context.Context, pid string) ([]*entity.ProcessingLog, error) {
	var out []*entity.ProcessingLog
	for _, e := range m.entries {
		if e.ProcessingID == pid {
			out = append(out, &entity.ProcessingLog{
				ProcessingID: e.ProcessingID,
				Stage:        string(e.Stage),
				Status:       string(e.Status),
			})
		}
	}
	return out, nil
}

type memProposals struct {
	proposals []*entity.Proposal
	getErr    error
	listErr   error
}

func (m *memProposals) CreateFromFormatted(_ context.Context, _ *repository.CreateProposalRequest) (*entity.Proposal, error) {
	return nil, errors.New("not used")
}

func (m *memProposals) List(_ context.Context, status string, _, _ *time.Time) ([]*entity.Proposal, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*entity.Proposal
	for _, p := range m.proposals {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProposals) GetByID(_ context.Context, id uuid.UUID) (*entity.Proposal, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, p := range m.proposals {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("ent: proposal not found")
}

func newTestServer(sink plog.Sink, repo repository.ProposalRepository, serviceToken string) *Server {
	resolver := credentials.NewResolver(
		common.CredentialsConfig{},
		credentials.Fallback{PDF: credentials.PDFCredentials{
			ClientID:       "env-id",
			ClientSecret:   "env-secret",
			OrganizationID: "env-org",
		}},
		nil,
	)
	plogs, _ := sink.(repository.ProcessingLogRepository)
	return New(nil, repo, plog.NewLogger(sink, nil), plogs, nil, resolver, serviceToken, nil)
}

func doJSON(t *testing.T, s *Server, handler func(echo.Context) error, method, target, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestAppendProcessingLog(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		sink := &memSink{}
		s := newTestServer(sink, nil, "")
		rec, err := doJSON(t, s, s.handleAppendProcessingLog, http.MethodPost, "/v1/processing-logs",
			`{"stage":"UPLOAD","status":"PROGRESS","file_name":"proposta.pdf","user_id":"u1","duration":120}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"processing_id"`)
		require.Len(t, sink.entries, 1)
		assert.Equal(t, constants.StageUpload, sink.entries[0].Stage)
		assert.Equal(t, 120*time.Millisecond, sink.entries[0].Duration)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		s := newTestServer(&memSink{}, nil, "")
		_, err := doJSON(t, s, s.handleAppendProcessingLog, http.MethodPost, "/v1/processing-logs",
			`{"stage":"UPLOAD","status":"RUNNING"}`)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("missing stage is rejected", func(t *testing.T) {
		s := newTestServer(&memSink{}, nil, "")
		_, err := doJSON(t, s, s.handleAppendProcessingLog, http.MethodPost, "/v1/processing-logs",
			`{"status":"STARTED"}`)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("sink failure does not fail the request", func(t *testing.T) {
		s := newTestServer(&memSink{appendErr: errors.New("db down")}, nil, "")
		rec, err := doJSON(t, s, s.handleAppendProcessingLog, http.MethodPost, "/v1/processing-logs",
			`{"stage":"PERSIST","status":"SUCCESS"}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("caller processing id is echoed", func(t *testing.T) {
		sink := &memSink{}
		s := newTestServer(sink, nil, "")
		rec, err := doJSON(t, s, s.handleAppendProcessingLog, http.MethodPost, "/v1/processing-logs",
			`{"stage":"ORGANIZE","status":"PROGRESS","processing_id":"run-7"}`)
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), `"processing_id":"run-7"`)
	})
}

func TestListProcessingLogs(t *testing.T) {
	sink := &memSink{}
	s := newTestServer(sink, nil, "")

	_, err := doJSON(t, s, s.handleAppendProcessingLog, http.MethodPost, "/v1/processing-logs",
		`{"stage":"UPLOAD","status":"PROGRESS","processing_id":"run-9"}`)
	require.NoError(t, err)
	_, err = doJSON(t, s, s.handleAppendProcessingLog, http.MethodPost, "/v1/processing-logs",
		`{"stage":"PERSIST","status":"SUCCESS","processing_id":"run-9"}`)
	require.NoError(t, err)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("processing_id")
	c.SetParamValues("run-9")
	require.NoError(t, s.handleListProcessingLogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PERSIST"`)
	assert.Contains(t, rec.Body.String(), `"UPLOAD"`)
}

func TestPDFCredentialsEndpoint(t *testing.T) {
	s := newTestServer(&memSink{}, nil, "svc-token")

	call := func(auth string) (*httptest.ResponseRecorder, error) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/credentials/pdf", nil)
		if auth != "" {
			req.Header.Set(echo.HeaderAuthorization, auth)
		}
		rec := httptest.NewRecorder()
		return rec, s.handlePDFCredentials(e.NewContext(req, rec))
	}

	t.Run("missing token", func(t *testing.T) {
		_, err := call("")
		assert.Equal(t, http.StatusUnauthorized, httpStatus(t, err))
	})

	t.Run("wrong token", func(t *testing.T) {
		_, err := call("Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, httpStatus(t, err))
	})

	t.Run("valid token serves resolved credentials", func(t *testing.T) {
		rec, err := call("Bearer svc-token")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"client_id":"env-id"`)
	})

	t.Run("unconfigured endpoint", func(t *testing.T) {
		bare := newTestServer(&memSink{}, nil, "")
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/credentials/pdf", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer anything")
		rec := httptest.NewRecorder()
		err := bare.handlePDFCredentials(e.NewContext(req, rec))
		assert.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
	})
}

func TestListProposals(t *testing.T) {
	id := uuid.New()
	repo := &memProposals{proposals: []*entity.Proposal{
		{ID: id, ClientName: "Construtora Alfa", Status: "draft"},
		{ID: uuid.New(), ClientName: "Construtora Beta", Status: "sent"},
	}}
	s := newTestServer(&memSink{}, repo, "")

	t.Run("filters by status", func(t *testing.T) {
		rec, err := doJSON(t, s, s.handleListProposals, http.MethodGet, "/v1/proposals?status=draft", "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Construtora Alfa")
		assert.NotContains(t, rec.Body.String(), "Construtora Beta")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := doJSON(t, s, s.handleListProposals, http.MethodGet, "/v1/proposals?status=archived", "")
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := doJSON(t, s, s.handleListProposals, http.MethodGet, "/v1/proposals?from_date=10-05-2025", "")
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})
}

func TestGetProposal(t *testing.T) {
	id := uuid.New()
	repo := &memProposals{proposals: []*entity.Proposal{{ID: id, ClientName: "Construtora Alfa", Status: "draft"}}}
	s := newTestServer(&memSink{}, repo, "")

	t.Run("found", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		require.NoError(t, s.handleGetProposal(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Construtora Alfa")
	})

	t.Run("not a uuid", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("abc")
		err := s.handleGetProposal(c)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("unknown id", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(uuid.New().String())
		err := s.handleGetProposal(c)
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	})
}

func multipartUpload(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestImportProposal_Validation(t *testing.T) {
	s := newTestServer(&memSink{}, nil, "")

	t.Run("missing file", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/import", strings.NewReader(""))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		err := s.handleImportProposal(e.NewContext(req, httptest.NewRecorder()))
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		body, ctype := multipartUpload(t, "planilha.xlsx", []byte("PK"))
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/import", body)
		req.Header.Set(echo.HeaderContentType, ctype)
		err := s.handleImportProposal(e.NewContext(req, httptest.NewRecorder()))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		assert.Contains(t, err.(*echo.HTTPError).Message, "unsupported file extension")
	})
}
