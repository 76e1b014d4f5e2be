package fetch

import (
	"github.com/biogo/ncbi"
	"github.com/biogo/ncbi/entrez"
	"github.com/pkg/errors"
	"strconv"
	"strings"
	"time"
)

// EntrezResolver maps PubMed Central ids to PubMed ids using Entrez, since PubTator3 exports are keyed by PMID.
type EntrezResolver struct {
	tool  string
	email string
	key   string
}

// EntrezTool sets the tool name reported to Entrez.
func EntrezTool(tool string) func(e *EntrezResolver) {
	return func(e *EntrezResolver) {
		e.tool = tool
	}
}

// EntrezEmail sets the contact email reported to Entrez.
func EntrezEmail(email string) func(e *EntrezResolver) {
	return func(e *EntrezResolver) {
		e.email = email
	}
}

// EntrezAPIKey sets the API key, which raises the Entrez rate limit.
func EntrezAPIKey(key string) func(e *EntrezResolver) {
	return func(e *EntrezResolver) {
		e.key = key
	}
}

// NewEntrezResolver creates a resolver. biogo/ncbi only exposes a process-wide limiter and timeout, so these are set
// here rather than held by the resolver.
func NewEntrezResolver(options ...func(e *EntrezResolver)) EntrezResolver {
	e := &EntrezResolver{}
	for _, option := range options {
		option(e)
	}

	if len(e.key) > 0 {
		entrez.Limit = ncbi.NewLimiter(time.Second / 10)
	}
	ncbi.SetTimeout(time.Minute)

	return *e
}

// PMCIDQuery is the PubMed search for the article with a PMC id.
func PMCIDQuery(pmcid string) string {
	pmcid = strings.ToUpper(strings.TrimSpace(pmcid))
	if !strings.HasPrefix(pmcid, "PMC") {
		pmcid = "PMC" + pmcid
	}
	return pmcid + "[pmcid]"
}

// PMID returns the PubMed id of the article with a PMC id.
func (e EntrezResolver) PMID(pmcid string) (string, error) {
	p := &entrez.Parameters{RetMax: 1, APIKey: e.key}
	s, err := entrez.DoSearch("pubmed", PMCIDQuery(pmcid), p, nil, e.tool, e.email)
	if err != nil {
		return "", errors.Wrapf(err, "could not search for %s", pmcid)
	}
	if len(s.IdList) == 0 {
		return "", errors.Errorf("no PubMed article for %s", pmcid)
	}
	return strconv.Itoa(s.IdList[0]), nil
}
