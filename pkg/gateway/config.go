// Layered configuration resolution
package gateway

import (
	"os"
	"strings"
)

// DefaultRegion is used when no region is configured anywhere.
const DefaultRegion = "us-east-1"

const (
	defaultStage = "prod"
	defaultPath  = "/invoke"
)

// Config holds the effective settings for a gateway client. A Client
// resolves its Config once at construction and never mutates it.
type Config struct {
	// GatewayURL is the full gateway URL. When set it takes priority
	// over APIID.
	GatewayURL string `yaml:"gateway_url,omitempty"`

	// APIID is the API Gateway identifier used to derive the URL.
	APIID string `yaml:"api_id,omitempty"`

	Region string `yaml:"region,omitempty"`
	Stage  string `yaml:"stage,omitempty"`
	Path   string `yaml:"path,omitempty"`

	// Profile is the AWS shared-config profile used for credentials.
	Profile string `yaml:"aws_profile,omitempty"`

	// ModelMap maps short aliases to fully-qualified model identifiers.
	ModelMap map[string]string `yaml:"model_map,omitempty"`

	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultConfig returns the built-in defaults, including the default
// model alias map.
func DefaultConfig() Config {
	return Config{
		Region: DefaultRegion,
		Stage:  defaultStage,
		Path:   defaultPath,
		ModelMap: map[string]string{
			"sonnet-4.5": "anthropic.claude-sonnet-4-5-v1:0",
			"sonnet":     "anthropic.claude-sonnet-4-5-v1:0",
			"haiku-4.5":  "anthropic.claude-haiku-4-5-v1:0",
			"haiku":      "anthropic.claude-haiku-4-5-v1:0",
		},
	}
}

// Overrides are explicit call-time settings. They sit at the top of the
// precedence order; zero-valued fields leave lower layers untouched.
type Overrides struct {
	GatewayURL string
	APIID      string
	Region     string
	Stage      string
	Path       string
	Profile    string
	ModelMap   map[string]string
	Verbose    bool
}

// configFromEnv reads the environment layer. Unset variables come back
// as zero values so that resolveConfig treats them as absent.
func configFromEnv() Config {
	return Config{
		GatewayURL: os.Getenv("BEDROCK_GATEWAY_URL"),
		APIID:      os.Getenv("BEDROCK_GATEWAY_API_ID"),
		Region:     os.Getenv("BEDROCK_GATEWAY_REGION"),
		Stage:      os.Getenv("BEDROCK_GATEWAY_STAGE"),
		Path:       os.Getenv("BEDROCK_GATEWAY_PATH"),
		Profile:    os.Getenv("AWS_PROFILE"),
		Verbose:    strings.EqualFold(os.Getenv("BEDROCK_GATEWAY_VERBOSE"), "true"),
	}
}

// resolveConfig merges the four configuration sources into one effective
// Config. Precedence per field, lowest to highest: built-in defaults,
// persisted file values, environment values, explicit overrides. An
// absent field in a higher layer never blanks out a lower one.
//
// The region environment value only wins when it differs from
// DefaultRegion, so that an environment default cannot silently mask a
// persisted non-default region.
func resolveConfig(persisted, env Config, o Overrides) Config {
	cfg := DefaultConfig()

	applyLayer(&cfg, persisted)

	if env.GatewayURL != "" {
		cfg.GatewayURL = env.GatewayURL
	}
	if env.APIID != "" {
		cfg.APIID = env.APIID
	}
	if env.Region != "" && env.Region != DefaultRegion {
		cfg.Region = env.Region
	}
	if env.Stage != "" {
		cfg.Stage = env.Stage
	}
	if env.Path != "" {
		cfg.Path = env.Path
	}
	if env.Profile != "" {
		cfg.Profile = env.Profile
	}
	if env.Verbose {
		cfg.Verbose = true
	}

	applyLayer(&cfg, Config{
		GatewayURL: o.GatewayURL,
		APIID:      o.APIID,
		Region:     o.Region,
		Stage:      o.Stage,
		Path:       o.Path,
		Profile:    o.Profile,
		ModelMap:   o.ModelMap,
		Verbose:    o.Verbose,
	})

	return cfg
}

// applyLayer copies the fields present in layer onto cfg.
func applyLayer(cfg *Config, layer Config) {
	if layer.GatewayURL != "" {
		cfg.GatewayURL = layer.GatewayURL
	}
	if layer.APIID != "" {
		cfg.APIID = layer.APIID
	}
	if layer.Region != "" {
		cfg.Region = layer.Region
	}
	if layer.Stage != "" {
		cfg.Stage = layer.Stage
	}
	if layer.Path != "" {
		cfg.Path = layer.Path
	}
	if layer.Profile != "" {
		cfg.Profile = layer.Profile
	}
	if layer.ModelMap != nil {
		cfg.ModelMap = layer.ModelMap
	}
	if layer.Verbose {
		cfg.Verbose = true
	}
}
