package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/construtiva/proposal-pipeline/internal/credentials"
	"github.com/construtiva/proposal-pipeline/internal/export"
	"github.com/construtiva/proposal-pipeline/internal/pipeline"
	"github.com/construtiva/proposal-pipeline/internal/plog"
	"github.com/construtiva/proposal-pipeline/internal/repository"
)

// Server wires the HTTP API over the pipeline and repositories.
type Server struct {
	processor    *pipeline.Processor
	proposals    repository.ProposalRepository
	plogger      *plog.Logger
	plogs        repository.ProcessingLogRepository
	exporter     *export.Service
	resolver     *credentials.Resolver
	serviceToken string
	logger       *slog.Logger
}

func New(
	processor *pipeline.Processor,
	proposals repository.ProposalRepository,
	plogger *plog.Logger,
	plogs repository.ProcessingLogRepository,
	exporter *export.Service,
	resolver *credentials.Resolver,
	serviceToken string,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		processor:    processor,
		proposals:    proposals,
		plogger:      plogger,
		plogs:        plogs,
		exporter:     exporter,
		resolver:     resolver,
		serviceToken: serviceToken,
		logger:       logger,
	}
}

// Router builds the echo instance with all routes registered.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", s.handleHealth)

	v1 := e.Group("/v1")
	v1.POST("/proposals/import", s.handleImportProposal)
	v1.GET("/proposals", s.handleListProposals)
	v1.GET("/proposals/export", s.handleExportProposals)
	v1.GET("/proposals/:id", s.handleGetProposal)
	v1.POST("/processing-logs", s.handleAppendProcessingLog)
	v1.GET("/processing-logs/:processing_id", s.handleListProcessingLogs)
	v1.GET("/credentials/pdf", s.handlePDFCredentials)

	return e
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
