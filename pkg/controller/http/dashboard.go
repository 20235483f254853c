package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
	"github.com/secmon-lab/trackboard/pkg/utils/async"
)

// dashboardPage is the view model of the dashboard template. Exactly one of
// Schedule, Issue and ShowSummary is set for the active tab.
type dashboardPage struct {
	Title        string
	Today        time.Time
	Tabs         []model.Tab
	Active       types.SourceID
	Schedule     *model.ScheduleBoard
	Issue        *model.IssueBoard
	ShowSummary  bool
	Summaries    []*model.IssueBoard
	SlackEnabled bool
}

type dashboardResponse struct {
	*model.Dashboard
	Tabs []model.Tab `json:"tabs"`
}

// DashboardHandler serves the dashboard page and its JSON API
type DashboardHandler struct {
	dashboardUC interfaces.Dashboard
	reportUC    interfaces.Report
	renderer    *Renderer
	frontendURL string
}

// NewDashboardHandler creates a new dashboard handler. reportUC may be nil.
func NewDashboardHandler(dashboardUC interfaces.Dashboard, reportUC interfaces.Report, renderer *Renderer, frontendURL string) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		reportUC:    reportUC,
		renderer:    renderer,
		frontendURL: frontendURL,
	}
}

func (h *DashboardHandler) slackEnabled() bool {
	return h.reportUC != nil && h.reportUC.IsConfigured()
}

// HandleIndex renders one render pass with the tab selected by ?tab=
func (h *DashboardHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dash, err := h.dashboardUC.Build(ctx)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to build dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page := &dashboardPage{
		Title:        dash.Title,
		Today:        dash.Today,
		Tabs:         dash.Tabs(),
		SlackEnabled: h.slackEnabled(),
	}
	page.Active = selectTab(page.Tabs, types.SourceID(r.URL.Query().Get("tab")))

	if page.Active == model.SummaryTabID {
		page.ShowSummary = true
		page.Summaries = dash.Summaries()
	} else {
		for _, b := range dash.Schedules {
			if b.Source.ID == page.Active {
				page.Schedule = b
			}
		}
		for _, b := range dash.Issues {
			if b.Source.ID == page.Active {
				page.Issue = b
			}
		}
	}

	if err := h.renderer.Render(w, http.StatusOK, "dashboard.html", page); err != nil {
		ctxlog.From(ctx).Error("Failed to render dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// selectTab returns the requested tab when it exists, otherwise the first one
func selectTab(tabs []model.Tab, requested types.SourceID) types.SourceID {
	for _, tab := range tabs {
		if tab.ID == requested {
			return tab.ID
		}
	}
	if len(tabs) > 0 {
		return tabs[0].ID
	}
	return model.SummaryTabID
}

// HandleAPIDashboard returns a full render pass as JSON
func (h *DashboardHandler) HandleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.dashboardUC.Build(r.Context())
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &dashboardResponse{
		Dashboard: dash,
		Tabs:      dash.Tabs(),
	})
}

// HandleAPISource returns the board of one source, or the summary boards
func (h *DashboardHandler) HandleAPISource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SourceID(chi.URLParam(r, "id"))

	if id == model.SummaryTabID {
		boards, err := h.dashboardUC.Summary(ctx)
		if err != nil {
			writeError(ctx, w, err, http.StatusInternalServerError)
			return
		}
		writeJSON(ctx, w, http.StatusOK, map[string]any{"boards": boards})
		return
	}

	issue, err := h.dashboardUC.IssueBoard(ctx, id)
	if err == nil {
		writeJSON(ctx, w, http.StatusOK, issue)
		return
	}
	if !errors.Is(err, model.ErrSourceNotFound) {
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}

	schedule, err := h.dashboardUC.ScheduleBoard(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSourceNotFound) {
			writeError(ctx, w, goerr.New("source not found", goerr.V("id", id)), http.StatusNotFound)
			return
		}
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, schedule)
}

// HandleReport posts the summary digest to Slack in background
func (h *DashboardHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.slackEnabled() {
		writeError(ctx, w, model.ErrSlackNotConfigured, http.StatusServiceUnavailable)
		return
	}

	dashboardURL := GetFrontendURL(r, h.frontendURL) + "/?tab=" + model.SummaryTabID.String()
	report := h.reportUC
	async.Dispatch(ctx, func(ctx context.Context) error {
		return report.PostSummary(ctx, dashboardURL)
	})

	// The dashboard button submits a plain form
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/?tab="+model.SummaryTabID.String(), http.StatusSeeOther)
		return
	}
	writeJSON(ctx, w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
