package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/ai"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/ats"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/server/ratelimit"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/template"
)

// newTestServer builds a server without a database. Endpoints that hit the
// database are covered by integration tests.
func newTestServer(t *testing.T, limiterCfg *ratelimit.Config) *Server {
	t.Helper()

	registry, err := template.NewRegistry(template.PDFSettings{})
	require.NoError(t, err)
	letters, err := template.NewLetterRenderer(template.PDFSettings{})
	require.NoError(t, err)

	if limiterCfg == nil {
		limiterCfg = &ratelimit.Config{Enabled: false}
	}
	limiter := ratelimit.NewLimiter(limiterCfg)
	t.Cleanup(limiter.Stop)

	return &Server{
		registry:    registry,
		letters:     letters,
		scorer:      ats.NewScorer(ats.Options{}),
		suggester:   ai.NewSuggester(nil),
		rateLimiter: limiter,
		logger:      zap.NewNop(),
	}
}

func (s *Server) testHandler() http.Handler {
	return s.withCORS(s.withLogging(s.withRateLimit(s.routes())))
}

const inlineResumeJSON = `{
	"contact": {"name": "Jane Doe", "email": "jane@example.com", "phone": "+1 555 0100"},
	"summary": "Backend engineer with eight years of Go and PostgreSQL experience.",
	"experience": [{
		"company": "Acme",
		"role": "Engineer",
		"start_date": "2020-01",
		"end_date": "present",
		"bullets": ["Reduced p99 latency by 40% across the billing API"]
	}],
	"skill_groups": [{"label": "Languages", "skills": ["Go", "SQL"]}]
}`

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s.testHandler(), "GET", "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleListTemplates(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s.testHandler(), "GET", "/templates", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Templates []template.Info `json:"templates"`
		Default   string          `json:"default"`
		Count     int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, "classic", resp.Default)
}

func TestHandleGetTemplate(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s.testHandler(), "GET", "/templates/modern", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"modern"`)

	rec = doRequest(t, s.testHandler(), "GET", "/templates/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRenderInline_HTML(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `, "format": "html"}`

	rec := doRequest(t, s.testHandler(), "POST", "/render", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume.html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestHandleRenderInline_LaTeX(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `, "template": "minimal", "format": "tex"}`

	rec := doRequest(t, s.testHandler(), "POST", "/render", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `\begin{document}`)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume.tex")
}

func TestHandleRenderInline_UnknownTemplate(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `, "template": "nope", "format": "html"}`

	rec := doRequest(t, s.testHandler(), "POST", "/render", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRenderInline_BadFormat(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `, "format": "odt"}`

	rec := doRequest(t, s.testHandler(), "POST", "/render", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRenderInline_UnsupportedFormatForTemplate(t *testing.T) {
	s := newTestServer(t, nil)
	// modern has no LaTeX layout
	body := `{"resume": ` + inlineResumeJSON + `, "template": "modern", "format": "latex"}`

	rec := doRequest(t, s.testHandler(), "POST", "/render", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRenderInline_MissingResume(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s.testHandler(), "POST", "/render", `{"format": "html"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestHandleScoreInline_WithJobDescription(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `, "job_description": "Looking for a Go engineer with PostgreSQL experience"}`

	rec := doRequest(t, s.testHandler(), "POST", "/score", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		Score  int `json:"score"`
		Checks []struct {
			ID string `json:"id"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Greater(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	require.NotEmpty(t, report.Checks)
	assert.Equal(t, "keyword_match", report.Checks[0].ID)
}

func TestHandleScoreInline_JobHTML(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `, "job_html": "<html><body><p>Looking for Go and PostgreSQL</p><script>x()</script></body></html>"}`

	rec := doRequest(t, s.testHandler(), "POST", "/score", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"keyword_match"`)
}

func TestHandleScoreInline_NoJob(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `}`

	rec := doRequest(t, s.testHandler(), "POST", "/score", body)
	require.Equal(t, http.StatusOK, rec.Code)
	// without a job description the keyword check is skipped
	assert.NotContains(t, rec.Body.String(), `"id":"keyword_match"`)
}

func TestHandleSuggestSummary_Unavailable(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume": ` + inlineResumeJSON + `}`

	rec := doRequest(t, s.testHandler(), "POST", "/ai/summary", body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleRewriteBullet_Validation(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s.testHandler(), "POST", "/ai/bullet", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s.testHandler(), "OPTIONS", "/resumes", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_RenderLimited(t *testing.T) {
	cfg := &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Trusted:       map[string]bool{},
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/render", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
		},
	}
	s := newTestServer(t, cfg)
	handler := s.testHandler()
	body := `{"resume": ` + inlineResumeJSON + `, "format": "html"}`

	rec := doRequest(t, handler, "POST", "/render", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Limit"))

	rec = doRequest(t, handler, "POST", "/render", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	// CORS wraps the limiter, so browser clients can read 429 responses
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandleGetResume_InvalidID(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s.testHandler(), "GET", "/resumes/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&template.UnknownTemplateError{ID: "x"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
