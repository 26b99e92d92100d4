package server

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"salsac-engine/internal/config"
	"salsac-engine/internal/model"
)

// serve starts a server for cfg on an in-memory listener and returns a
// client dialling it.
func serve(t *testing.T, cfg *config.Config) *fasthttp.Client {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	srv, err := New(cfg, log)
	require.NoError(t, err)

	ln := fasthttputil.NewInmemoryListener()
	go srv.Serve(ln)
	t.Cleanup(func() { srv.Shutdown() })

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) { return ln.Dial() },
	}
}

func TestNew_ServesOverListener(t *testing.T) {
	client := serve(t, &config.Config{Port: "0"})
	status, body, err := client.Get(nil, "http://salsac/healthz")
	require.NoError(t, err)
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, "ok", string(body))
}

func TestNew_BadRegimeFile(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err := New(&config.Config{RegimeFile: filepath.Join(t.TempDir(), "missing.yaml")}, log)
	assert.Error(t, err)
}

func TestNew_ServesConfiguredTaxYear(t *testing.T) {
	var hits atomic.Int32
	registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/regimes/2025-26" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, `{
			"tax_year": "2025-26",
			"income_tax": {"basic_rate": 0.2, "higher_rate": 0.4},
			"national_insurance": {"basic_rate": 0.08, "higher_rate": 0.02},
			"thresholds": {"basic": 12570, "higher": 50270},
			"minimum_wage": {"hourly": 12.21, "hours_per_week": 37.5, "weeks_per_year": 52}
		}`)
	}))
	t.Cleanup(registry.Close)

	t.Setenv("REGIME_REGISTRY_URL", registry.URL)
	t.Setenv("TAX_YEAR", "2025-26")
	cfg, err := config.NewConfig()
	require.NoError(t, err)

	client := serve(t, cfg)
	assert.Equal(t, int32(1), hits.Load())

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetRequestURI("http://salsac/calculate")
	req.SetBodyString(`{"inputs": {"base_yearly_salary": 75000, "employer_contribution_percent": 5, "employee_contribution_percent": 5}}`)
	require.NoError(t, client.Do(req, resp))
	require.Equal(t, fasthttp.StatusOK, resp.StatusCode())

	var out model.CalculationResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &out))
	assert.Equal(t, "2025-26", out.CalculationMetadata.TaxYear)
	assert.Equal(t, model.OutcomeSuccess, out.CalculationMetadata.CalculationOutcome)
	assert.Equal(t, int32(1), hits.Load())
}
