package fetch

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/xml"
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// OAServiceEndpoint is the PubMed Central Open Access web service.
const OAServiceEndpoint = "https://www.ncbi.nlm.nih.gov/pmc/utils/oa/oa.fcgi"

var (
	// ArticleFiles selects the article text of a package.
	ArticleFiles = []string{".nxml"}
	// SpreadsheetFiles selects the supplementary spreadsheets of a package.
	SpreadsheetFiles = []string{".xls", ".xlsx"}
)

var (
	// ErrNoArchive is returned when the OA service lists no tgz package for an article.
	ErrNoArchive = errors.New("no archive")
	// ErrExists is returned when an article has already been extracted.
	ErrExists = errors.New("already exists")
)

// OAServiceError is an error reported by the OA service, e.g. idIsNotOpenAccess.
type OAServiceError struct {
	Code    string
	Message string
}

func (e OAServiceError) Error() string {
	return fmt.Sprintf("%s - %s", e.Code, e.Message)
}

type oaResponse struct {
	Error *struct {
		Code    string `xml:"code,attr"`
		Message string `xml:",chardata"`
	} `xml:"error"`
	Links []struct {
		Format string `xml:"format,attr"`
		Href   string `xml:"href,attr"`
	} `xml:"records>record>link"`
}

// ParseOAResponse returns the location of the tgz package in an OA service response.
func ParseOAResponse(r io.Reader) (string, error) {
	var resp oaResponse
	if err := xml.NewDecoder(r).Decode(&resp); err != nil {
		return "", errors.Wrap(err, "malformed OA service response")
	}
	if resp.Error != nil {
		return "", OAServiceError{Code: resp.Error.Code, Message: strings.TrimSpace(resp.Error.Message)}
	}
	for _, link := range resp.Links {
		if link.Format == "tgz" && len(link.Href) > 0 {
			return link.Href, nil
		}
	}
	return "", ErrNoArchive
}

// ArchiveURL maps an OA package location to one that can be fetched over HTTPS; NCBI serves the same tree from
// its FTP host over HTTPS.
func ArchiveURL(href string) string {
	if strings.HasPrefix(href, "ftp://") {
		return "https://" + strings.TrimPrefix(href, "ftp://")
	}
	return href
}

// OA downloads and extracts Open Access packages.
type OA struct {
	endpoint   string
	userAgent  string
	client     *http.Client
	limiter    *rate.Limiter
	attempts   int
	retryDelay time.Duration
}

// OALimiter sets the limiter every request waits on.
func OALimiter(l *rate.Limiter) func(o *OA) {
	return func(o *OA) {
		o.limiter = l
	}
}

// OAEndpoint replaces the OA service endpoint.
func OAEndpoint(endpoint string) func(o *OA) {
	return func(o *OA) {
		o.endpoint = endpoint
	}
}

// OAUserAgent sets the User-Agent header of requests.
func OAUserAgent(ua string) func(o *OA) {
	return func(o *OA) {
		o.userAgent = ua
	}
}

// OARetries sets how many times a package download is attempted, and how long to wait between attempts.
func OARetries(attempts int, delay time.Duration) func(o *OA) {
	return func(o *OA) {
		o.attempts = attempts
		o.retryDelay = delay
	}
}

// NewOA creates an OA client.
func NewOA(options ...func(o *OA)) OA {
	o := &OA{
		endpoint:   OAServiceEndpoint,
		userAgent:  DefaultUserAgent,
		client:     &http.Client{Timeout: 60 * time.Second},
		limiter:    NewLimiter(DefaultRequestDelay),
		attempts:   5,
		retryDelay: 3 * time.Second,
	}
	for _, option := range options {
		option(o)
	}
	return *o
}

func (o OA) get(ctx context.Context, u string) (*http.Response, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", o.userAgent)
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Errorf("%s: %s", u, resp.Status)
	}
	return resp, nil
}

// Lookup asks the OA service where the package of pmcid is.
func (o OA) Lookup(ctx context.Context, pmcid string) (string, error) {
	resp, err := o.get(ctx, fmt.Sprintf("%s?%s", o.endpoint, url.Values{"id": {pmcid}}.Encode()))
	if err != nil {
		return "", errors.Wrapf(err, "could not look up %s", pmcid)
	}
	defer resp.Body.Close()
	return ParseOAResponse(resp.Body)
}

// Download looks up the package of pmcid and extracts it into <dir>/<pmcid>. When suffixes are given, only files
// ending in one of them are extracted. Failed downloads are retried.
func (o OA) Download(ctx context.Context, pmcid, dir string, suffixes ...string) error {
	target := filepath.Join(dir, pmcid)
	if _, err := os.Stat(target); err == nil {
		return ErrExists
	}

	href, err := o.Lookup(ctx, pmcid)
	if err != nil {
		return err
	}
	u := ArchiveURL(href)

	for attempt := 1; ; attempt++ {
		log.Printf("downloading %s (attempt %d)", u, attempt)
		err = o.extract(ctx, u, pmcid, dir, suffixes)
		if err == nil {
			return nil
		}
		os.RemoveAll(target)
		if attempt >= o.attempts || ctx.Err() != nil {
			return errors.Wrapf(err, "could not download %s", pmcid)
		}
		log.Printf("error downloading %s: %v", pmcid, err)
		time.Sleep(o.retryDelay)
	}
}

func (o OA) extract(ctx context.Context, u, pmcid, dir string, suffixes []string) error {
	resp, err := o.get(ctx, u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return ExtractArchive(resp.Body, pmcid, dir, suffixes...)
}

// selected reports whether name ends in one of suffixes, ignoring case. No suffixes selects every name.
func selected(name string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	name = strings.ToLower(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

// walkArchive calls fn with every selected regular file of a gzipped tar package.
func walkArchive(r io.Reader, suffixes []string, fn func(hdr *tar.Header, r io.Reader) error) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return errors.Wrap(err, "package is not gzipped")
	}
	defer gz.Close()

	t := tar.NewReader(gz)
	for {
		hdr, err := t.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "malformed package")
		}
		if hdr.Typeflag != tar.TypeReg || !selected(hdr.Name, suffixes) {
			continue
		}
		if err := fn(hdr, t); err != nil {
			return err
		}
	}
}

func writeFile(name string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(name), 0775); err != nil {
		return err
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, r)
	f.Close()
	return err
}

// ExtractArchive extracts a gzipped tar package into dir, renaming its top-level directory to pmcid. When suffixes
// are given, only files ending in one of them are extracted.
func ExtractArchive(r io.Reader, pmcid, dir string, suffixes ...string) error {
	root := filepath.Join(dir, pmcid)
	if err := os.MkdirAll(root, 0775); err != nil {
		return err
	}

	return walkArchive(r, suffixes, func(hdr *tar.Header, r io.Reader) error {
		parts := strings.Split(filepath.ToSlash(filepath.Clean(hdr.Name)), "/")
		if len(parts) == 1 {
			parts = append([]string{pmcid}, parts...)
		}
		parts[0] = pmcid
		name := filepath.Join(append([]string{dir}, parts...)...)
		if !strings.HasPrefix(name, root+string(filepath.Separator)) {
			return errors.Errorf("package entry %s is outside the package", hdr.Name)
		}
		return writeFile(name, r)
	})
}

// ExtractFlat extracts the files of a gzipped tar package that end in one of suffixes directly into dir, dropping
// their directories. A later file overwrites an earlier one with the same base name. It returns the names written.
func ExtractFlat(r io.Reader, dir string, suffixes ...string) ([]string, error) {
	if err := os.MkdirAll(dir, 0775); err != nil {
		return nil, err
	}

	var names []string
	err := walkArchive(r, suffixes, func(hdr *tar.Header, r io.Reader) error {
		base := filepath.Base(filepath.Clean(hdr.Name))
		if base == "." || base == ".." || base == string(filepath.Separator) {
			return errors.Errorf("package entry %s has no file name", hdr.Name)
		}
		if err := writeFile(filepath.Join(dir, base), r); err != nil {
			return err
		}
		names = append(names, base)
		return nil
	})
	return names, err
}

// ExtractFlatFile extracts the selected files of the package at path into dir. See ExtractFlat.
func ExtractFlatFile(path, dir string, suffixes ...string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open package")
	}
	defer f.Close()
	names, err := ExtractFlat(f, dir, suffixes...)
	return names, errors.Wrapf(err, "could not extract %s", path)
}

// IsPackage reports whether a file name looks like an OA package.
func IsPackage(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz")
}
