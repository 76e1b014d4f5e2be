// Package fetch retrieves the documents that annotation tools are run over and the annotations they produce: BioC
// exports from PubTator3 (tmVar3), Open Access packages from PubMed Central, and BioNExt runs.
//
// Every client that talks to NCBI owns a rate limiter rather than sharing a process-wide throttle, so that clients
// with different credentials can be limited independently.
package fetch

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"os"
	"path"
	"time"
)

// DefaultRequestDelay keeps requests to NCBI at about three a second, the limit without an API key.
const DefaultRequestDelay = 340 * time.Millisecond

// DefaultUserAgent identifies download requests.
const DefaultUserAgent = "pmc-downloader/1.0 (+https://example.org)"

// Config is read from a TOML file, by default ~/.mutcompare:
//
//	[entrez]
//	email = "me@example.org"
//	tool = "mutcompare"
//	key = "..."
//
//	[http]
//	user_agent = "pmc-downloader/1.0"
//	request_delay = 0.34
type Config struct {
	Entrez struct {
		Email string `toml:"email"`
		Tool  string `toml:"tool"`
		Key   string `toml:"key"`
	} `toml:"entrez"`
	HTTP struct {
		UserAgent string `toml:"user_agent"`
		// RequestDelay is the minimum number of seconds between requests.
		RequestDelay float64 `toml:"request_delay"`
	} `toml:"http"`
}

// DefaultConfig is used when there is no configuration file.
func DefaultConfig() Config {
	var c Config
	c.Entrez.Tool = "mutcompare"
	c.HTTP.UserAgent = DefaultUserAgent
	c.HTTP.RequestDelay = DefaultRequestDelay.Seconds()
	return c
}

// DefaultConfigPath is ~/.mutcompare.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return path.Join(dir, ".mutcompare"), nil
}

// LoadConfig reads a configuration file over the defaults. A missing file is not an error.
func LoadConfig(file string) (Config, error) {
	c := DefaultConfig()
	_, err := toml.DecodeFile(file, &c)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, errors.Wrapf(err, "could not read configuration %s", file)
	}
	return c, nil
}

// Delay is the configured request delay.
func (c Config) Delay() time.Duration {
	if c.HTTP.RequestDelay <= 0 {
		return 0
	}
	return time.Duration(c.HTTP.RequestDelay * float64(time.Second))
}
