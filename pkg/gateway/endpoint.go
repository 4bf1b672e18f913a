// Endpoint resolution
package gateway

import (
	"fmt"
	"net/url"
)

// Endpoint is the resolved gateway address: the full request URL and
// the host value used as the signing authority.
type Endpoint struct {
	URL  string
	Host string
}

// resolveEndpoint derives the Endpoint from cfg. An explicit GatewayURL
// always wins; otherwise the URL is derived from the API id, region,
// stage and path. With neither set, resolution fails with a
// *ConfigurationError.
func resolveEndpoint(cfg Config) (Endpoint, error) {
	if cfg.GatewayURL != "" {
		u, err := url.Parse(cfg.GatewayURL)
		if err != nil || u.Host == "" {
			return Endpoint{}, &ConfigurationError{
				Reason: fmt.Sprintf("invalid gateway URL %q", cfg.GatewayURL),
			}
		}
		return Endpoint{URL: cfg.GatewayURL, Host: u.Host}, nil
	}

	if cfg.APIID == "" {
		return Endpoint{}, &ConfigurationError{
			Reason: "either gateway URL or API id must be configured",
		}
	}

	host := fmt.Sprintf("%s.execute-api.%s.amazonaws.com", cfg.APIID, cfg.Region)
	return Endpoint{
		URL:  fmt.Sprintf("https://%s/%s%s", host, cfg.Stage, cfg.Path),
		Host: host,
	}, nil
}
