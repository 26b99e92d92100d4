package regimeregistry

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"salsac-engine/internal/taxmodel"
)

// Registry resolves the tax regime for a tax year. Without a base URL every
// lookup answers with the fallback regime.
type Registry struct {
	baseURL     string
	defaultYear string
	fallback    taxmodel.Regime
	client   *http.Client
	cache    sync.Map
	log      logrus.FieldLogger
}

// New creates a registry backed by baseURL, which may be empty. Lookups
// that name no tax year resolve defaultYear, or the fallback's year when
// defaultYear is empty.
func New(baseURL, defaultYear string, fallback taxmodel.Regime, log logrus.FieldLogger) *Registry {
	if defaultYear == "" {
		defaultYear = fallback.TaxYear
	}
	r := &Registry{
		baseURL:     strings.TrimRight(baseURL, "/"),
		defaultYear: defaultYear,
		fallback:    fallback,
		log:         log,
	}
	if r.baseURL != "" {
		r.client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return r
}

// DefaultYear is the tax year served when a request names none.
func (r *Registry) DefaultYear() string {
	return r.defaultYear
}

// Get returns the regime for taxYear, or for the default year when taxYear
// is empty. A year matching the fallback never leaves the process. Fetch
// failures are logged and answered with the fallback.
func (r *Registry) Get(taxYear string) taxmodel.Regime {
	if taxYear == "" {
		taxYear = r.defaultYear
	}
	if taxYear == r.fallback.TaxYear || r.baseURL == "" {
		return r.fallback
	}
	if cached, ok := r.cache.Load(taxYear); ok {
		return cached.(taxmodel.Regime)
	}

	regime, err := r.fetch(taxYear)
	if err != nil {
		r.log.WithError(err).WithField("tax_year", taxYear).Warn("regime lookup failed, using fallback")
		return r.fallback
	}
	r.cache.Store(taxYear, regime)
	return regime
}

// Resolve looks up several tax years, fetching uncached ones concurrently.
func (r *Registry) Resolve(taxYears ...string) map[string]taxmodel.Regime {
	result := make(map[string]taxmodel.Regime, len(taxYears))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, year := range taxYears {
		wg.Add(1)
		go func(taxYear string) {
			defer wg.Done()
			regime := r.Get(taxYear)
			mu.Lock()
			result[taxYear] = regime
			mu.Unlock()
		}(year)
	}
	wg.Wait()

	return result
}

func (r *Registry) fetch(taxYear string) (taxmodel.Regime, error) {
	resp, err := r.client.Get(r.baseURL + "/regimes/" + url.PathEscape(taxYear))
	if err != nil {
		return taxmodel.Regime{}, fmt.Errorf("fetch regime: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return taxmodel.Regime{}, fmt.Errorf("fetch regime: unexpected status %d", resp.StatusCode)
	}

	var regime taxmodel.Regime
	if err := json.NewDecoder(resp.Body).Decode(&regime); err != nil {
		return taxmodel.Regime{}, fmt.Errorf("decode regime: %w", err)
	}
	if regime.TaxYear == "" {
		regime.TaxYear = taxYear
	}
	if err := regime.Validate(); err != nil {
		return taxmodel.Regime{}, err
	}
	return regime, nil
}
