package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantURL  string
		wantHost string
		wantErr  bool
	}{
		{
			name:     "explicit gateway URL",
			config:   Config{GatewayURL: "https://x.example.com/prod/invoke"},
			wantURL:  "https://x.example.com/prod/invoke",
			wantHost: "x.example.com",
		},
		{
			name: "derived from api id",
			config: Config{
				APIID:  "abc123",
				Region: "ap-southeast-2",
				Stage:  "prod",
				Path:   "/invoke",
			},
			wantURL:  "https://abc123.execute-api.ap-southeast-2.amazonaws.com/prod/invoke",
			wantHost: "abc123.execute-api.ap-southeast-2.amazonaws.com",
		},
		{
			name: "gateway URL wins over api id",
			config: Config{
				GatewayURL: "https://x.example.com/prod/invoke",
				APIID:      "abc123",
				Region:     "us-east-1",
				Stage:      "prod",
				Path:       "/invoke",
			},
			wantURL:  "https://x.example.com/prod/invoke",
			wantHost: "x.example.com",
		},
		{
			name:    "neither configured",
			config:  Config{Region: "us-east-1", Stage: "prod", Path: "/invoke"},
			wantErr: true,
		},
		{
			name:    "gateway URL without authority",
			config:  Config{GatewayURL: "not a url"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, err := resolveEndpoint(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				var confErr *ConfigurationError
				assert.True(t, errors.As(err, &confErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, endpoint.URL)
			assert.Equal(t, tt.wantHost, endpoint.Host)
		})
	}
}

func TestConfigurationError_Guidance(t *testing.T) {
	_, err := resolveEndpoint(Config{})
	require.Error(t, err)

	// The message must name the three ways to supply connection info.
	assert.Contains(t, err.Error(), "WithGatewayURL")
	assert.Contains(t, err.Error(), "BEDROCK_GATEWAY_URL")
	assert.Contains(t, err.Error(), "config.yaml")
}
