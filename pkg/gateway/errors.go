// Error types for the gateway client
package gateway

import "fmt"

// ConfigurationError indicates that no usable endpoint could be resolved
// from the configured sources.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason + "\n\n" +
		"Configuration options:\n" +
		"1. Pass WithGatewayURL or WithAPIID to NewClient\n" +
		"2. Set BEDROCK_GATEWAY_URL or BEDROCK_GATEWAY_API_ID environment variable\n" +
		"3. Create config file: ~/.bedrock-gateway/config.yaml"
}

// CredentialError indicates that no AWS credentials could be discovered
// at client construction.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("no AWS credentials found, run \"aws configure\": %v", e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// IdentityError indicates that the discovered credentials failed the
// identity verification round trip.
type IdentityError struct {
	Err error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("failed to authenticate with AWS: %v", e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }

// GatewayError is a non-200 response from the gateway. Detail carries the
// gateway's error field when the body is JSON, otherwise the raw body text.
type GatewayError struct {
	StatusCode int
	Detail     string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error (%d): %s", e.StatusCode, e.Detail)
}

// TransportError is a network-level failure from the Transport. It is
// propagated unchanged and never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to gateway failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
