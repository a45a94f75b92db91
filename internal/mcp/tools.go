package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/metrics"
	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
	"github.com/crtic/ptc-manager/internal/extract"
	"github.com/crtic/ptc-manager/internal/money"
)

// CreateProjectInput is the input for create_project.
type CreateProjectInput struct {
	Name        string `json:"name" jsonschema:"project name"`
	Client      string `json:"client" jsonschema:"client name"`
	Sector      string `json:"sector" jsonschema:"industry sector"`
	Type        string `json:"type" jsonschema:"project type (R&D or Service)"`
	Description string `json:"description,omitempty" jsonschema:"optional free-form description"`
}

// ProjectResult wraps a single project.
type ProjectResult struct {
	Project *project.Project `json:"project"`
}

// ListProjectsInput is the input for list_projects.
type ListProjectsInput struct {
	Tab    string `json:"tab,omitempty" jsonschema:"dashboard tab (projects or services, empty for all)"`
	Type   string `json:"type,omitempty" jsonschema:"type filter by display label (All, R&D Project, I+D Service)"`
	Sector string `json:"sector,omitempty" jsonschema:"sector filter (All or a sector name)"`
	Search string `json:"search,omitempty" jsonschema:"case-insensitive substring over name, client and sector"`
}

// ListProjectsResult is the output for list_projects.
type ListProjectsResult struct {
	Projects []project.Project `json:"projects"`
	Count    int               `json:"count" jsonschema:"number of projects matching the filter"`
}

// ProjectIDInput identifies a project by ID.
type ProjectIDInput struct {
	ID string `json:"id" jsonschema:"project identifier"`
}

// AdvanceStageInput is the input for advance_stage.
type AdvanceStageInput struct {
	ID    string `json:"id" jsonschema:"project identifier"`
	Stage string `json:"stage" jsonschema:"target lifecycle stage (Opportunity, Exploration, Research, Develop, Test, Validate, Scale)"`
}

// CloseProjectInput is the input for close_project.
type CloseProjectInput struct {
	ID      string `json:"id" jsonschema:"project identifier"`
	Outcome string `json:"outcome" jsonschema:"closure outcome (Closed Won or Closed Lost)"`
	Reason  string `json:"reason" jsonschema:"closure reason, required"`
}

// UpdateProjectInput is the input for update_project. Omitted fields keep
// their current values.
type UpdateProjectInput struct {
	ID          string   `json:"id" jsonschema:"project identifier"`
	Name        *string  `json:"name,omitempty" jsonschema:"new project name"`
	Client      *string  `json:"client,omitempty" jsonschema:"new client name"`
	Sector      *string  `json:"sector,omitempty" jsonschema:"new industry sector"`
	Type        *string  `json:"type,omitempty" jsonschema:"new project type (R&D or Service)"`
	Description *string  `json:"description,omitempty" jsonschema:"new description"`
	Amount      *float64 `json:"amount,omitempty" jsonschema:"new associated amount in CLP"`
}

// DeleteProjectResult is the output for delete_project.
type DeleteProjectResult struct {
	Deleted bool `json:"deleted"`
}

// AddQuotationInput is the input for add_quotation.
type AddQuotationInput struct {
	Client string  `json:"client" jsonschema:"client name"`
	Sector string  `json:"sector,omitempty" jsonschema:"industry sector"`
	Amount float64 `json:"amount" jsonschema:"quoted amount in CLP, must be positive"`
	Date   string  `json:"date" jsonschema:"quotation date as YYYY-MM-DD"`
	Status string  `json:"status,omitempty" jsonschema:"commercial status (Prospección or Venta)"`
}

// QuotationResult wraps a single quotation.
type QuotationResult struct {
	Quotation *quotation.Quotation `json:"quotation"`
}

// ListQuotationsResult is the output for list_quotations.
type ListQuotationsResult struct {
	Quotations []quotation.Quotation `json:"quotations"`
	Count      int                   `json:"count"`
}

// QuotationSummaryInput is the input for quotation_summary.
type QuotationSummaryInput struct {
	Period string `json:"period" jsonschema:"calendar period containing today (monthly, quarterly or annual)"`
	Sector string `json:"sector,omitempty" jsonschema:"sector filter (All or empty for any)"`
	Client string `json:"client,omitempty" jsonschema:"client filter (All or empty for any)"`
}

// QuotationSummaryResult is the output for quotation_summary.
type QuotationSummaryResult struct {
	Period       string  `json:"period"`
	Count        int     `json:"count"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"totalDisplay" jsonschema:"total formatted as Chilean pesos"`
}

// LogActivityInput is the input for log_activity.
type LogActivityInput struct {
	Title             string `json:"title" jsonschema:"activity title, required"`
	Tag               string `json:"tag,omitempty" jsonschema:"optional category tag"`
	AssociatedClient  string `json:"associatedClient,omitempty" jsonschema:"client the activity relates to"`
	AssociatedProject string `json:"associatedProject,omitempty" jsonschema:"project ID the activity relates to"`
}

// ActivityResult wraps a single activity entry.
type ActivityResult struct {
	Activity *activity.Activity `json:"activity"`
}

// ListActivitiesInput is the input for list_activities.
type ListActivitiesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries, newest first (0 for all)"`
}

// ActivityEntry pairs an activity with its resolved project reference.
type ActivityEntry struct {
	activity.Activity
	Project *activity.Resolution `json:"project,omitempty" jsonschema:"resolved project reference, absent when the entry has none"`
}

// ListActivitiesResult is the output for list_activities.
type ListActivitiesResult struct {
	Activities []ActivityEntry `json:"activities"`
	Count      int             `json:"count"`
}

// MetricsResult is the output for dashboard_metrics.
type MetricsResult struct {
	metrics.Summary
	TotalQuotedDisplay   string `json:"totalQuotedDisplay" jsonschema:"total quoted formatted as Chilean pesos"`
	PipelineTotalDisplay string `json:"pipelineTotalDisplay" jsonschema:"pipeline valuation formatted as Chilean pesos"`
}

// ExtractCandidateInput is the input for extract_candidate.
type ExtractCandidateInput struct {
	Text string `json:"text" jsonschema:"free-form description of a commercial opportunity"`
}

// ExtractCandidateResult is the output for extract_candidate.
type ExtractCandidateResult struct {
	Candidate extract.Candidate `json:"candidate"`
}

// ImportCandidateInput is the input for import_candidate, normally the
// candidate returned by extract_candidate.
type ImportCandidateInput struct {
	Name        string  `json:"name" jsonschema:"project name"`
	Client      string  `json:"client" jsonschema:"client name"`
	Sector      string  `json:"sector" jsonschema:"industry sector"`
	Amount      float64 `json:"amount" jsonschema:"estimated amount in CLP"`
	Sr          float64 `json:"sr" jsonschema:"replicability score between 0 and 1"`
	Status      string  `json:"status,omitempty" jsonschema:"commercial status (Oportunidad, Prospección or Venta)"`
	Description string  `json:"description,omitempty" jsonschema:"free-form description"`
}

func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project at the Opportunity stage.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateProjectInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		p, err := services.Projects.Create(ctx, project.CreateRequest{
			Name:        input.Name,
			Client:      input.Client,
			Sector:      input.Sector,
			Type:        project.Type(input.Type),
			Description: input.Description,
		})
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects, optionally filtered by tab, type, sector and a text search.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListProjectsInput) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
		list, err := services.Projects.List(ctx, project.Filter{
			ActiveTab: input.Tab,
			Type:      input.Type,
			Sector:    input.Sector,
			Search:    input.Search,
		})
		if err != nil {
			return nil, ListProjectsResult{}, MapError(err)
		}
		return nil, ListProjectsResult{Projects: list, Count: len(list)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Fetch a single project by ID.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ProjectIDInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		p, err := services.Projects.Get(ctx, input.ID)
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Edit a project's descriptive fields. Stage, status and tracking fields are not editable here.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateProjectInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		update := project.UpdateRequest{
			ID:          input.ID,
			Name:        input.Name,
			Client:      input.Client,
			Sector:      input.Sector,
			Description: input.Description,
			Amount:      input.Amount,
		}
		if input.Type != nil {
			t := project.Type(*input.Type)
			update.Type = &t
		}
		p, err := services.Projects.UpdateDetails(ctx, update)
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "advance_stage",
		Description: "Move a project to another lifecycle stage. Transitions are free-form; moving backwards is allowed.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input AdvanceStageInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		p, err := services.Projects.AdvanceStage(ctx, input.ID, project.Stage(input.Stage))
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "close_project",
		Description: "Close a project as won or lost with a mandatory reason.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input CloseProjectInput) (*sdkmcp.CallToolResult, ProjectResult, error) {
		p, err := services.Projects.Close(ctx, input.ID, project.Status(input.Outcome), input.Reason)
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project. Its activity trail is kept.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ProjectIDInput) (*sdkmcp.CallToolResult, DeleteProjectResult, error) {
		if err := services.Projects.Delete(ctx, input.ID); err != nil {
			return nil, DeleteProjectResult{}, MapError(err)
		}
		return nil, DeleteProjectResult{Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_quotation",
		Description: "Record a commercial quotation.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input AddQuotationInput) (*sdkmcp.CallToolResult, QuotationResult, error) {
		date, err := quotation.ParseDate(input.Date)
		if err != nil {
			return nil, QuotationResult{}, MapError(quotation.ErrInvalidInput)
		}
		q, err := services.Quotations.Create(ctx, quotation.CreateRequest{
			Client: input.Client,
			Sector: input.Sector,
			Amount: input.Amount,
			Date:   date,
			Status: quotation.Status(input.Status),
		})
		if err != nil {
			return nil, QuotationResult{}, MapError(err)
		}
		return nil, QuotationResult{Quotation: q}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_quotations",
		Description: "List all recorded quotations, newest first.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input struct{}) (*sdkmcp.CallToolResult, ListQuotationsResult, error) {
		list, err := services.Quotations.List(ctx)
		if err != nil {
			return nil, ListQuotationsResult{}, MapError(err)
		}
		return nil, ListQuotationsResult{Quotations: list, Count: len(list)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "quotation_summary",
		Description: "Aggregate quotations over the calendar period containing today, optionally narrowed by sector and client.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input QuotationSummaryInput) (*sdkmcp.CallToolResult, QuotationSummaryResult, error) {
		summary, err := services.Quotations.Summarize(ctx, quotation.SummaryOptions{
			Period: quotation.Period(input.Period),
			Sector: input.Sector,
			Client: input.Client,
		}, time.Now())
		if err != nil {
			return nil, QuotationSummaryResult{}, MapError(err)
		}
		return nil, QuotationSummaryResult{
			Period:       string(summary.Period),
			Count:        summary.Count,
			Total:        summary.Total,
			TotalDisplay: money.FormatCLP(summary.Total),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "log_activity",
		Description: "Record a manual activity entry. Manual entries start out Pending.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input LogActivityInput) (*sdkmcp.CallToolResult, ActivityResult, error) {
		entry, err := services.Activity.Log(ctx, activity.LogRequest{
			Tag:               input.Tag,
			Title:             input.Title,
			When:              time.Now(),
			AssociatedClient:  input.AssociatedClient,
			AssociatedProject: input.AssociatedProject,
		})
		if err != nil {
			return nil, ActivityResult{}, MapError(err)
		}
		return nil, ActivityResult{Activity: entry}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "List the activity trail, newest first, with project references resolved.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListActivitiesInput) (*sdkmcp.CallToolResult, ListActivitiesResult, error) {
		list, err := services.Activity.List(ctx, input.Limit)
		if err != nil {
			return nil, ListActivitiesResult{}, MapError(err)
		}
		entries := make([]ActivityEntry, 0, len(list))
		for _, a := range list {
			entry := ActivityEntry{Activity: a}
			if a.AssociatedProject != "" {
				res := services.Activity.ResolveProject(ctx, a)
				entry.Project = &res
			}
			entries = append(entries, entry)
		}
		return nil, ListActivitiesResult{Activities: entries, Count: len(entries)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dashboard_metrics",
		Description: "Compute the full dashboard snapshot: active projects, closing rate, lead sector, pipeline valuation, replicability, scope guard and stage distribution.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input struct{}) (*sdkmcp.CallToolResult, MetricsResult, error) {
		projects, err := services.Projects.List(ctx, project.Filter{})
		if err != nil {
			return nil, MetricsResult{}, MapError(err)
		}
		quotations, err := services.Quotations.List(ctx)
		if err != nil {
			return nil, MetricsResult{}, MapError(err)
		}
		summary := metrics.Snapshot(projects, quotations, time.Now())
		return nil, MetricsResult{
			Summary:              summary,
			TotalQuotedDisplay:   money.FormatCLP(summary.TotalQuoted),
			PipelineTotalDisplay: money.FormatCLP(summary.Pipeline.Total),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "extract_candidate",
		Description: "Analyze a free-form opportunity description and propose a project candidate without persisting anything.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExtractCandidateInput) (*sdkmcp.CallToolResult, ExtractCandidateResult, error) {
		candidate, err := services.Extractor.Extract(input.Text)
		if err != nil {
			return nil, ExtractCandidateResult{}, MapError(err)
		}
		return nil, ExtractCandidateResult{Candidate: candidate}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_candidate",
		Description: "Import a project candidate into the pipeline, synthesizing a quotation when its status warrants one.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ImportCandidateInput) (*sdkmcp.CallToolResult, project.ImportResult, error) {
		result, err := services.Projects.ImportCandidate(ctx, project.ImportRequest{
			Name:        input.Name,
			Client:      input.Client,
			Sector:      input.Sector,
			Amount:      input.Amount,
			Sr:          input.Sr,
			Status:      input.Status,
			Description: input.Description,
		})
		if err != nil {
			return nil, project.ImportResult{}, MapError(err)
		}
		return nil, *result, nil
	})
}
