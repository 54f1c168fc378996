package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pagewatch/pagewatch/pkg/crawler"
	"github.com/pagewatch/pagewatch/pkg/db"
)

// targetRequest is the create/update payload for a target
type targetRequest struct {
	URL             string `json:"url"`
	Selector        string `json:"selector"`
	CheckIntervalMs int64  `json:"check_interval_ms"`
	AlertKeyword    string `json:"alert_keyword,omitempty"`
	AlertOnChange   bool   `json:"alert_on_change"`
	NotifyType      string `json:"notify_type"`
	Email           string `json:"email,omitempty"`
	SlackChannel    string `json:"slack_channel,omitempty"`
}

// targetResponse is the API representation of a target
type targetResponse struct {
	ID              string     `json:"id"`
	URL             string     `json:"url"`
	Selector        string     `json:"selector"`
	CheckIntervalMs int64      `json:"check_interval_ms"`
	AlertKeyword    string     `json:"alert_keyword,omitempty"`
	AlertOnChange   bool       `json:"alert_on_change"`
	NotifyType      string     `json:"notify_type"`
	Email           string     `json:"email,omitempty"`
	SlackChannel    string     `json:"slack_channel,omitempty"`
	Status          string     `json:"status"`
	LastValue       *string    `json:"last_value,omitempty"`
	LastCheckedAt   *time.Time `json:"last_checked_at,omitempty"`
	LastChangedAt   *time.Time `json:"last_changed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// runResponse is the API representation of a crawl run
type runResponse struct {
	ID               int64     `json:"id"`
	TargetID         string    `json:"target_id"`
	CrawledAt        time.Time `json:"crawled_at"`
	CrawledValue     *string   `json:"crawled_value,omitempty"`
	Success          bool      `json:"success"`
	ErrorMessage     *string   `json:"error_message,omitempty"`
	NotificationSent bool      `json:"notification_sent"`
}

func (req *targetRequest) toTarget() *db.Target {
	t := &db.Target{
		URL:             req.URL,
		Selector:        req.Selector,
		CheckIntervalMs: req.CheckIntervalMs,
		AlertOnChange:   req.AlertOnChange,
		NotifyType:      db.NotifyType(req.NotifyType),
		Email:           req.Email,
		SlackChannel:    req.SlackChannel,
	}
	if req.AlertKeyword != "" {
		t.AlertKeyword = sql.NullString{String: req.AlertKeyword, Valid: true}
	}
	return t
}

func toTargetResponse(t *db.Target) targetResponse {
	resp := targetResponse{
		ID:              t.ID,
		URL:             t.URL,
		Selector:        t.Selector,
		CheckIntervalMs: t.CheckIntervalMs,
		AlertKeyword:    t.Keyword(),
		AlertOnChange:   t.AlertOnChange,
		NotifyType:      string(t.NotifyType),
		Email:           t.Email,
		SlackChannel:    t.SlackChannel,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.LastValue.Valid {
		v := t.LastValue.String
		resp.LastValue = &v
	}
	if t.LastCheckedAt.Valid {
		ts := t.LastCheckedAt.Time
		resp.LastCheckedAt = &ts
	}
	if t.LastChangedAt.Valid {
		ts := t.LastChangedAt.Time
		resp.LastChangedAt = &ts
	}
	return resp
}

func toRunResponse(r db.CrawlRun) runResponse {
	resp := runResponse{
		ID:               r.ID,
		TargetID:         r.TargetID,
		CrawledAt:        r.CrawledAt,
		Success:          r.Success,
		NotificationSent: r.NotificationSent,
	}
	if r.CrawledValue.Valid {
		v := r.CrawledValue.String
		resp.CrawledValue = &v
	}
	if r.ErrorMessage.Valid {
		v := r.ErrorMessage.String
		resp.ErrorMessage = &v
	}
	return resp
}

// createTargetHandler registers a new target, created in pending state
func (s *Server) createTargetHandler(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	target := req.toTarget()
	if err := s.db.CreateTarget(r.Context(), target); err != nil {
		renderError(w, err, http.StatusBadRequest)
		return
	}

	renderJSON(w, http.StatusCreated, toTargetResponse(target))
}

// listTargetsHandler returns all registered targets
func (s *Server) listTargetsHandler(w http.ResponseWriter, r *http.Request) {
	targets, err := s.db.ListTargets(r.Context())
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}

	resp := make([]targetResponse, 0, len(targets))
	for i := range targets {
		resp = append(resp, toTargetResponse(&targets[i]))
	}
	renderJSON(w, http.StatusOK, resp)
}

// getTargetHandler returns a single target by id
func (s *Server) getTargetHandler(w http.ResponseWriter, r *http.Request) {
	target, err := s.db.GetTarget(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, err, http.StatusNotFound)
			return
		}
		renderError(w, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, http.StatusOK, toTargetResponse(target))
}

// updateTargetHandler replaces the target definition, crawl state is kept
func (s *Server) updateTargetHandler(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	target := req.toTarget()
	target.ID = r.PathValue("id")
	if err := target.Validate(); err != nil {
		renderError(w, err, http.StatusBadRequest)
		return
	}

	if err := s.db.UpdateTarget(r.Context(), target); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, err, http.StatusNotFound)
			return
		}
		renderError(w, err, http.StatusInternalServerError)
		return
	}

	updated, err := s.db.GetTarget(r.Context(), target.ID)
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, http.StatusOK, toTargetResponse(updated))
}

// deleteTargetHandler removes a target and its run history
func (s *Server) deleteTargetHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteTarget(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, err, http.StatusNotFound)
			return
		}
		renderError(w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// activateTargetHandler puts the target into the scheduler rotation
func (s *Server) activateTargetHandler(w http.ResponseWriter, r *http.Request) {
	s.setStatusHandler(w, r, db.StatusActive)
}

// deactivateTargetHandler takes the target out of the scheduler rotation
func (s *Server) deactivateTargetHandler(w http.ResponseWriter, r *http.Request) {
	s.setStatusHandler(w, r, db.StatusInactive)
}

func (s *Server) setStatusHandler(w http.ResponseWriter, r *http.Request, status db.Status) {
	id := r.PathValue("id")
	if err := s.db.SetTargetStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, err, http.StatusNotFound)
			return
		}
		renderError(w, err, http.StatusInternalServerError)
		return
	}

	target, err := s.db.GetTarget(r.Context(), id)
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, http.StatusOK, toTargetResponse(target))
}

// checkTargetHandler runs an immediate crawl regardless of the schedule
func (s *Server) checkTargetHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.executor.Execute(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			renderError(w, err, http.StatusNotFound)
		case errors.Is(err, crawler.ErrBusy):
			renderError(w, err, http.StatusConflict)
		default:
			renderError(w, err, http.StatusInternalServerError)
		}
		return
	}

	target, err := s.db.GetTarget(r.Context(), id)
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, http.StatusOK, toTargetResponse(target))
}

// listRunsHandler returns recent crawl runs for a target, newest first
func (s *Server) listRunsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.db.GetTarget(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, err, http.StatusNotFound)
			return
		}
		renderError(w, err, http.StatusInternalServerError)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			renderError(w, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := s.db.ListRuns(r.Context(), id, limit)
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}

	resp := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		resp = append(resp, toRunResponse(run))
	}
	renderJSON(w, http.StatusOK, resp)
}

// overallStatsHandler returns crawl attempt totals and success rate
func (s *Server) overallStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetOverallStats(r.Context())
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, http.StatusOK, stats)
}

// eventStatsHandler returns per event type counters
func (s *Server) eventStatsHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.db.GetEventTypeSummaries(r.Context())
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, http.StatusOK, summaries)
}

// recentErrorResponse is the API representation of a failed event
type recentErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	Target    string    `json:"target,omitempty"`
	Details   string    `json:"details,omitempty"`
}

// urlStatsResponse is the API representation of per-url crawl statistics
type urlStatsResponse struct {
	URL           string   `json:"url"`
	TotalAttempts int64    `json:"total_attempts"`
	SuccessCount  int64    `json:"success_count"`
	FailureCount  int64    `json:"failure_count"`
	SuccessRate   float64  `json:"success_rate"`
	AvgSuccessMs  *float64 `json:"avg_success_ms,omitempty"`
	LastFailureAt string   `json:"last_failure_at,omitempty"`
	LastAttemptAt string   `json:"last_attempt_at,omitempty"`
}

// recentErrorsHandler returns the latest failed events
func (s *Server) recentErrorsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			renderError(w, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}

	errs, err := s.db.GetRecentErrors(r.Context(), limit)
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}

	resp := make([]recentErrorResponse, 0, len(errs))
	for _, e := range errs {
		resp = append(resp, recentErrorResponse{
			Timestamp: e.Timestamp,
			EventType: e.EventType,
			Target:    e.Target.String,
			Details:   e.Details.String,
		})
	}
	renderJSON(w, http.StatusOK, resp)
}

// urlStatsHandler returns per target crawl statistics
func (s *Server) urlStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetURLStats(r.Context())
	if err != nil {
		renderError(w, err, http.StatusInternalServerError)
		return
	}

	resp := make([]urlStatsResponse, 0, len(stats))
	for _, st := range stats {
		item := urlStatsResponse{
			URL:           st.URL,
			TotalAttempts: st.TotalAttempts,
			SuccessCount:  st.SuccessCount,
			FailureCount:  st.FailureCount,
			SuccessRate:   st.SuccessRate,
		}
		if st.AvgSuccessMs.Valid {
			v := st.AvgSuccessMs.Float64
			item.AvgSuccessMs = &v
		}
		item.LastFailureAt = st.LastFailureAt.String
		item.LastAttemptAt = st.LastAttemptAt.String
		resp = append(resp, item)
	}
	renderJSON(w, http.StatusOK, resp)
}
