package fetch

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"net/http"
	"net/url"
	"time"
)

// PubTatorEndpoint exports full-text BioC XML, including the tmVar3 mutation annotations.
const PubTatorEndpoint = "https://www.ncbi.nlm.nih.gov/research/pubtator3-api/publications/export/biocxml"

// PubTator downloads BioC exports into a Store.
type PubTator struct {
	store     Store
	endpoint  string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// PubTatorLimiter sets the limiter every request waits on.
func PubTatorLimiter(l *rate.Limiter) func(p *PubTator) {
	return func(p *PubTator) {
		p.limiter = l
	}
}

// PubTatorEndpointURL replaces the export endpoint.
func PubTatorEndpointURL(endpoint string) func(p *PubTator) {
	return func(p *PubTator) {
		p.endpoint = endpoint
	}
}

// PubTatorUserAgent sets the User-Agent header of requests.
func PubTatorUserAgent(ua string) func(p *PubTator) {
	return func(p *PubTator) {
		p.userAgent = ua
	}
}

// PubTatorHTTPClient replaces the HTTP client.
func PubTatorHTTPClient(c *http.Client) func(p *PubTator) {
	return func(p *PubTator) {
		p.client = c
	}
}

// NewPubTator creates a client that stores exports in store.
func NewPubTator(store Store, options ...func(p *PubTator)) PubTator {
	p := &PubTator{
		store:     store,
		endpoint:  PubTatorEndpoint,
		userAgent: DefaultUserAgent,
		client:    &http.Client{Timeout: 120 * time.Second},
		limiter:   NewLimiter(DefaultRequestDelay),
	}
	for _, option := range options {
		option(p)
	}
	return *p
}

// URL is the export of a single document.
func (p PubTator) URL(pmid string) string {
	v := url.Values{}
	v.Set("pmids", pmid)
	v.Set("full", "true")
	return fmt.Sprintf("%s?%s", p.endpoint, v.Encode())
}

// Key is the name a document is stored under.
func (p PubTator) Key(pmid string) string {
	return pmid + ".xml"
}

// Download stores the BioC export of pmid. Documents already in the store are not downloaded again, in which case
// skipped is true.
func (p PubTator) Download(ctx context.Context, pmid string) (skipped bool, err error) {
	key := p.Key(pmid)
	if p.store.Has(key) {
		return true, nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(pmid), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return false, errors.Wrapf(err, "could not download %s", pmid)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("could not download %s: %s", pmid, resp.Status)
	}
	return false, p.store.Put(key, resp.Body)
}
