package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
	"github.com/crtic/ptc-manager/internal/extract"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	AdvanceStage(ctx context.Context, id string, newStage project.Stage) (*project.Project, error)
	Close(ctx context.Context, id string, outcome project.Status, reason string) (*project.Project, error)
	UpdateDetails(ctx context.Context, req project.UpdateRequest) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	ImportCandidate(ctx context.Context, req project.ImportRequest) (*project.ImportResult, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context, f project.Filter) ([]project.Project, error)
}

// QuotationService defines quotation operations needed by MCP.
type QuotationService interface {
	Create(ctx context.Context, req quotation.CreateRequest) (*quotation.Quotation, error)
	List(ctx context.Context) ([]quotation.Quotation, error)
	Summarize(ctx context.Context, opts quotation.SummaryOptions, now time.Time) (*quotation.Summary, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	Log(ctx context.Context, req activity.LogRequest) (*activity.Activity, error)
	List(ctx context.Context, limit int) ([]activity.Activity, error)
	ResolveProject(ctx context.Context, entry activity.Activity) activity.Resolution
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects   ProjectService
	Quotations QuotationService
	Activity   ActivityService
	Extractor  extract.Extractor
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "ptc-manager",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}

const serverInstructions = `PTC Manager tracks an R&D lab's project pipeline: projects move through
a seven-stage lifecycle (Opportunity through Scale), quotations record
commercial proposals, and every change leaves an activity trail.

Typical flow: create_project or extract_candidate + import_candidate to
get work into the pipeline, advance_stage as it progresses, close_project
with an outcome and reason when it resolves. dashboard_metrics gives the
aggregate view at any point.`
