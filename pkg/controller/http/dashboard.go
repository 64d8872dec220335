package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/issuepulse/issuepulse/pkg/usecase"
	"github.com/issuepulse/issuepulse/pkg/utils/apperr"
	"github.com/m-mizutani/goerr/v2"
)

// DashboardHandler handles dashboard query endpoints
type DashboardHandler struct {
	dashboardUC *usecase.Dashboard
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC *usecase.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// issuesRequest is the inbound body for both dashboard variants
type issuesRequest struct {
	model.Credentials
	ProjectKey types.ProjectKey `json:"projectKey"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
}

func (req *issuesRequest) input() usecase.DashboardInput {
	return usecase.DashboardInput{
		Credentials: req.Credentials,
		ProjectKey:  req.ProjectKey,
		DateRange: model.DateRange{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
	}
}

// dashboardResponse wraps the canonical document with the success flag
// the frontend keys on
type dashboardResponse struct {
	Success bool `json:"success"`
	*model.Dashboard
}

func (h *DashboardHandler) handle(
	w http.ResponseWriter,
	r *http.Request,
	query func(context.Context, usecase.DashboardInput) (*model.Dashboard, error),
) {
	var req issuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(model.ErrConfigRequired, "invalid request body"))
		return
	}

	dashboard, err := query(r.Context(), req.input())
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dashboardResponse{
		Success:   true,
		Dashboard: dashboard,
	})
}

// HandleIssues serves the bulk query variant: all issues in the project
func (h *DashboardHandler) HandleIssues(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.dashboardUC.GetProjectDashboard)
}

// HandleMyIssues serves the per-user variant: issues assigned to the
// authenticated caller
func (h *DashboardHandler) HandleMyIssues(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.dashboardUC.GetMyDashboard)
}
