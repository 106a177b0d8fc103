package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

const sampleLetter = `Dear Ms. Park,

I led the migration of our billing pipelines to Spark and cut infrastructure costs by 30%. I am applying for the Data Engineer role at Acme because your payments team ships carefully.

Sincerely,
Jordan Lee`

func newTestServer(t *testing.T, maxInput int) (*Server, *engine.Engine) {
	t.Helper()
	eng, err := engine.NewDefault()
	require.NoError(t, err)
	return New(eng, Options{MaxInputChars: maxInput, Version: "test"}), eng
}

func do(t *testing.T, s *Server, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func analyseBody(t *testing.T, req AnalyseRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return string(data)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, 0)
	rec := do(t, s, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"version":"test"}`, rec.Body.String())
}

func TestAnalyse_MatchesEngine(t *testing.T) {
	s, eng := newTestServer(t, 0)
	rec := do(t, s, http.MethodPost, "/api/v1/analyse",
		analyseBody(t, AnalyseRequest{Text: sampleLetter, Role: "Data Engineer", Company: "Acme"}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got engine.CoverLetterAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	want, err := eng.AnalyseNamed(sampleLetter, "Data Engineer", "Acme")
	require.NoError(t, err)
	assert.Equal(t, want.OverallPercentage, got.OverallPercentage)
	assert.Equal(t, want.Classification.Label, got.Classification.Label)
	assert.Equal(t, want.RedFlags, got.RedFlags)
	assert.Equal(t, want.Recommendations, got.Recommendations)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.analyses.WithLabelValues(want.Classification.Label)))
}

func TestAnalyse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed json", `{"text":`, http.StatusBadRequest, "invalid_request"},
		{"missing text", `{}`, http.StatusBadRequest, "invalid_request"},
		{"blank text", `{"text":"   "}`, http.StatusBadRequest, "invalid_request"},
		{"unknown role", `{"text":"Hello","role":"Astronaut"}`, http.StatusBadRequest, "unknown_role"},
		{"role too long", `{"text":"Hello","role":"` + strings.Repeat("r", 101) + `"}`, http.StatusBadRequest, "invalid_request"},
		{"too large", `{"text":"` + strings.Repeat("x", 51) + `"}`, http.StatusRequestEntityTooLarge, "input_too_large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, 50)
			rec := do(t, s, http.MethodPost, "/api/v1/analyse", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
			assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.rejected.WithLabelValues(tt.wantCode)))
		})
	}
}

func TestRoles(t *testing.T) {
	s, eng := newTestServer(t, 0)
	rec := do(t, s, http.MethodGet, "/api/v1/roles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Roles []RoleEntry `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Roles, len(lexicon.Roles()))
	for i, r := range lexicon.Roles() {
		assert.Equal(t, r.String(), resp.Roles[i].Name)
		assert.Equal(t, len(eng.Lexicon().RoleKeywords[r]), resp.Roles[i].Keywords)
	}
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t, 0)

	rec := do(t, s, http.MethodGet, "/healthz", "")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "generated request id should be a uuid")

	rec = do(t, s, http.MethodGet, "/healthz", "", RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestIDNotInAnalysis(t *testing.T) {
	s, _ := newTestServer(t, 0)
	rec := do(t, s, http.MethodPost, "/api/v1/analyse",
		analyseBody(t, AnalyseRequest{Text: sampleLetter}), RequestIDHeader, "trace-me")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "trace-me")
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, 0)
	do(t, s, http.MethodPost, "/api/v1/analyse", analyseBody(t, AnalyseRequest{Text: sampleLetter}))
	do(t, s, http.MethodGet, "/nowhere", "")

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "lettergrade_analyses_total")
	assert.Contains(t, body, "lettergrade_overall_percentage_bucket")
	assert.Contains(t, body, `route="/api/v1/analyse"`)
	assert.Contains(t, body, `route="unmatched"`)
}

func TestRecovery(t *testing.T) {
	s, _ := newTestServer(t, 0)
	s.router.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := do(t, s, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"internal"`)
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr(""))
	assert.Equal(t, ":9000", Addr("9000"))
	assert.Equal(t, ":9000", Addr(":9000"))
	assert.Equal(t, "127.0.0.1:9000", Addr("127.0.0.1:9000"))
}
