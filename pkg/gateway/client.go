// Gateway client construction and invocation
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/inercia/go-bedrock-gateway/pkg/signer"
)

// Transport performs the network round trip for a signed request. It
// matches the *http.Client method set; retries, timeouts and
// cancellation are the transport's concern, not the client's.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a Bedrock gateway client. All state is resolved at
// construction and immutable afterwards, so a single Client is safe
// for concurrent Chat calls as long as its Transport is.
type Client struct {
	config      Config
	endpoint    Endpoint
	credentials aws.Credentials
	identity    string
	transport   Transport
}

// Option configures NewClient.
type Option func(*options)

type options struct {
	overrides    Overrides
	config       *Config
	settingsPath string
	provider     CredentialProvider
	transport    Transport
}

// WithGatewayURL sets the full gateway URL, taking priority over any
// API id.
func WithGatewayURL(url string) Option {
	return func(o *options) { o.overrides.GatewayURL = url }
}

// WithAPIID sets the API Gateway id used to derive the endpoint URL.
func WithAPIID(id string) Option {
	return func(o *options) { o.overrides.APIID = id }
}

// WithRegion sets the AWS region used for endpoint derivation and
// signing.
func WithRegion(region string) Option {
	return func(o *options) { o.overrides.Region = region }
}

// WithProfile sets the AWS shared-config profile for credential
// discovery.
func WithProfile(profile string) Option {
	return func(o *options) { o.overrides.Profile = profile }
}

// WithModelMap replaces the model alias map.
func WithModelMap(m map[string]string) Option {
	return func(o *options) { o.overrides.ModelMap = m }
}

// WithVerbose enables progress output during construction.
func WithVerbose() Option {
	return func(o *options) { o.overrides.Verbose = true }
}

// WithConfig uses cfg verbatim, skipping the settings file, the
// environment and any override options.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = &cfg }
}

// WithSettingsPath overrides the persisted settings file location.
func WithSettingsPath(path string) Option {
	return func(o *options) { o.settingsPath = path }
}

// WithCredentialProvider replaces the default AWS credential chain.
func WithCredentialProvider(p CredentialProvider) Option {
	return func(o *options) { o.provider = p }
}

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// NewClient resolves configuration, endpoint, credentials and identity,
// and returns a ready-to-use client.
//
// Configuration precedence is defaults < settings file < environment <
// options; a settings file that cannot be read counts as empty.
// Missing credentials fail with *CredentialError, a failed identity
// round trip with *IdentityError, and an unresolvable endpoint with
// *ConfigurationError.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var cfg Config
	if o.config != nil {
		base := DefaultConfig()
		applyLayer(&base, *o.config)
		cfg = base
	} else {
		path := o.settingsPath
		if path == "" {
			if p, err := SettingsPath(); err == nil {
				path = p
			}
		}
		persisted, err := LoadSettings(path)
		if err != nil {
			persisted = Config{}
		}
		cfg = resolveConfig(persisted, configFromEnv(), o.overrides)
	}

	endpoint, err := resolveEndpoint(cfg)
	if err != nil {
		return nil, err
	}

	provider := o.provider
	if provider == nil {
		provider = newAWSCredentialProvider(cfg.Profile, cfg.Region)
	}

	creds, err := provider.Retrieve(ctx)
	if err != nil {
		return nil, &CredentialError{Err: err}
	}

	identity, err := provider.CallerIdentity(ctx)
	if err != nil {
		return nil, &IdentityError{Err: err}
	}

	if cfg.Verbose {
		fmt.Printf("✅ Authenticated as: %s\n", identity)
		fmt.Printf("🌐 Gateway: %s\n", endpoint.URL)
	}

	transport := o.transport
	if transport == nil {
		transport = http.DefaultClient
	}

	return &Client{
		config:      cfg,
		endpoint:    endpoint,
		credentials: creds,
		identity:    identity,
		transport:   transport,
	}, nil
}

// Chat sends one user message and returns the normalized result. A nil
// opts uses the defaults (model "sonnet-4.5", 2000 max tokens). The
// call blocks until the transport answers; errors are terminal, never
// retried here.
func (c *Client) Chat(ctx context.Context, message string, opts *ChatOptions) (*ChatResult, error) {
	var chatOpts ChatOptions
	if opts != nil {
		chatOpts = *opts
	}
	chatOpts = chatOpts.withDefaults()

	payload := buildPayload(message, chatOpts, c.config.ModelMap)
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	headers, err := signer.Sign(ctx, c.credentials, http.MethodPost, c.endpoint.URL, c.endpoint.Host,
		body, c.config.Region, signer.ServiceExecuteAPI, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header = headers
	req.Host = c.endpoint.Host

	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return normalizeResponse(resp.StatusCode, respBody, chatOpts.Model)
}

// Models returns the configured model aliases, sorted.
func (c *Client) Models() []string {
	aliases := make([]string, 0, len(c.config.ModelMap))
	for alias := range c.config.ModelMap {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Identity returns the ARN of the authenticated caller.
func (c *Client) Identity() string { return c.identity }

// Endpoint returns the resolved gateway endpoint.
func (c *Client) Endpoint() Endpoint { return c.endpoint }

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config { return c.config }
