// Package gateway implements a client for an IAM-protected Bedrock
// gateway: an API Gateway endpoint that forwards SigV4-signed chat
// requests to a managed language-model service.
//
// The main components include:
//
// - Config: layered settings resolution (defaults, config file, environment, explicit options)
// - Endpoint: URL and signing-host derivation
// - ChatOptions / ChatPayload: invocation payload assembly with model alias mapping
// - ChatResult: tolerant normalization of the gateway's envelope responses
// - CredentialProvider / Transport: pluggable AWS credential and HTTP collaborators
//
// Request signing lives in the sibling package
// github.com/inercia/go-bedrock-gateway/pkg/signer.
package gateway
