package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/haukened/sitewatch/internal/site/common/clock"
	"github.com/haukened/sitewatch/internal/site/common/log"
	"github.com/haukened/sitewatch/internal/site/common/utils"
	"github.com/haukened/sitewatch/internal/site/domain"
	"github.com/haukened/sitewatch/internal/site/repos/publicsuffix"
)

// maxBodyBytes bounds request bodies; report screenshots dominate.
const maxBodyBytes = 16 << 20

// AlertEvaluator runs the page signals for a URL.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, pageURL string, tabID int) domain.Signals
}

// ReportSubmitter assembles and delivers a report.
type ReportSubmitter interface {
	Submit(ctx context.Context, req domain.ReportRequest) (domain.Report, error)
}

// HistoryRecorder appends a visit to the browsing history.
type HistoryRecorder interface {
	Record(item domain.HistoryItem) error
}

// ReferrerStore keeps per-tab referrer chains.
type ReferrerStore interface {
	Put(tabID int, chain []domain.ReferrerEntry) error
	Forget(tabID int)
}

// SuffixResolver returns the public suffix of a host.
type SuffixResolver interface {
	GetTld(host string, icannOnly bool) string
}

// Services are the collaborators behind the API. Reports may be nil when
// reporting is disabled; every other field is required.
type Services struct {
	Alerts    AlertEvaluator
	Reports   ReportSubmitter
	History   HistoryRecorder
	Referrers ReferrerStore
	Suffixes  SuffixResolver
	Clock     clock.Clock
}

type alertsRequest struct {
	URL   string   `json:"url" validate:"required"`
	TabID int      `json:"tab_id" validate:"gte=0"`
	Kinds []string `json:"kinds"`
}

type alertView struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type alertsResponse struct {
	Host   string      `json:"host"`
	Alerts []alertView `json:"alerts"`
}

type reportRequest struct {
	URL              string `json:"url" validate:"required,url"`
	TabID            int    `json:"tab_id" validate:"gte=0"`
	Screenshot       []byte `json:"screenshot"`
	DOM              string `json:"dom"`
	IncludeRedirects bool   `json:"include_redirects"`
}

type reportResponse struct {
	ID string `json:"id"`
}

type historyRequest struct {
	URL       string    `json:"url" validate:"required,url"`
	VisitTime time.Time `json:"visit_time"`
}

type suffixResponse struct {
	Host        string `json:"host"`
	Suffix      string `json:"suffix"`
	Registrable string `json:"registrable"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type router struct {
	svc      Services
	logger   log.Logger
	validate *validator.Validate
}

// NewRouter returns the API handler:
//
//	POST   /v1/alerts (optional "kinds" restricts the returned alerts)
//	POST   /v1/reports
//	POST   /v1/history
//	PUT    /v1/tabs/{id}/referrers
//	DELETE /v1/tabs/{id}/referrers
//	GET    /v1/suffix?host=&icann_only=
//	GET    /healthz
func NewRouter(svc Services, logger log.Logger) http.Handler {
	if svc.Clock == nil {
		svc.Clock = clock.RealClock{}
	}
	rt := &router{
		svc:      svc,
		logger:   log.WithFields(logger, map[string]any{"component": "api"}),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/alerts", rt.handleAlerts)
	mux.HandleFunc("POST /v1/reports", rt.handleReport)
	mux.HandleFunc("POST /v1/history", rt.handleHistory)
	mux.HandleFunc("PUT /v1/tabs/{id}/referrers", rt.handlePutReferrers)
	mux.HandleFunc("DELETE /v1/tabs/{id}/referrers", rt.handleForgetReferrers)
	mux.HandleFunc("GET /v1/suffix", rt.handleSuffix)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return rt.logRequests(mux)
}

func (rt *router) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		rt.logger.Debug(map[string]any{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}, "API request")
	})
}

func (rt *router) handleAlerts(w http.ResponseWriter, r *http.Request) {
	var req alertsRequest
	if !rt.decode(w, r, &req) {
		return
	}
	wanted, err := parseKinds(req.Kinds)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s := rt.svc.Alerts.Evaluate(r.Context(), req.URL, req.TabID)
	resp := alertsResponse{Host: s.Host, Alerts: []alertView{}}
	for _, k := range s.Alerts() {
		if wanted != nil {
			if _, ok := wanted[k]; !ok {
				continue
			}
		}
		resp.Alerts = append(resp.Alerts, alertView{Name: k.String(), Message: k.Message()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *router) handleReport(w http.ResponseWriter, r *http.Request) {
	if rt.svc.Reports == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("reporting is disabled"))
		return
	}
	var req reportRequest
	if !rt.decode(w, r, &req) {
		return
	}
	report, err := rt.svc.Reports.Submit(r.Context(), domain.ReportRequest{
		URL:              req.URL,
		TabID:            req.TabID,
		Screenshot:       req.Screenshot,
		DOM:              req.DOM,
		IncludeRedirects: req.IncludeRedirects,
	})
	switch {
	case errors.Is(err, domain.ErrEmptyURL), errors.Is(err, domain.ErrInvalidReportURL):
		writeError(w, http.StatusBadRequest, err)
	case err != nil:
		writeError(w, http.StatusBadGateway, err)
	default:
		writeJSON(w, http.StatusOK, reportResponse{ID: report.ID})
	}
}

func (rt *router) handleHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if !rt.decode(w, r, &req) {
		return
	}
	if req.VisitTime.IsZero() {
		req.VisitTime = rt.svc.Clock.Now()
	}
	item, err := domain.NewHistoryItem(req.URL, req.VisitTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := rt.svc.History.Record(item); err != nil {
		rt.logger.Error(map[string]any{"error": err.Error()}, "failed to record visit")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt *router) handlePutReferrers(w http.ResponseWriter, r *http.Request) {
	tabID, ok := tabIDFromPath(w, r)
	if !ok {
		return
	}
	var chain []domain.ReferrerEntry
	if !rt.decode(w, r, &chain) {
		return
	}
	if err := rt.svc.Referrers.Put(tabID, chain); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt *router) handleForgetReferrers(w http.ResponseWriter, r *http.Request) {
	tabID, ok := tabIDFromPath(w, r)
	if !ok {
		return
	}
	rt.svc.Referrers.Forget(tabID)
	w.WriteHeader(http.StatusNoContent)
}

func (rt *router) handleSuffix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	host := utils.ToASCII(utils.CanonicalHostName(q.Get("host")))
	if host == "" {
		writeError(w, http.StatusBadRequest, errors.New("host is required"))
		return
	}
	icannOnly := false
	if raw := q.Get("icann_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("icann_only must be a boolean"))
			return
		}
		icannOnly = v
	}
	suffix := rt.svc.Suffixes.GetTld(host, icannOnly)
	writeJSON(w, http.StatusOK, suffixResponse{
		Host:        host,
		Suffix:      suffix,
		Registrable: publicsuffix.RegistrableDomain(host, suffix),
	})
}

// decode reads a JSON body into dst and validates it. On failure it writes a
// 400 response and returns false.
func (rt *router) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid JSON body: "+err.Error()))
		return false
	}
	if err := rt.validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if !errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, err)
			return false
		}
	}
	return true
}

// parseKinds resolves signal names into a filter set. An empty list means no
// filtering and yields nil.
func parseKinds(names []string) (map[domain.AlertKind]struct{}, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make(map[domain.AlertKind]struct{}, len(names))
	for _, name := range names {
		k, err := domain.ParseAlertKind(name)
		if err != nil {
			return nil, err
		}
		out[k] = struct{}{}
	}
	return out, nil
}

func tabIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(r.PathValue("id")))
	if err != nil || id < 0 {
		writeError(w, http.StatusBadRequest, errors.New("tab id must be a non-negative integer"))
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
