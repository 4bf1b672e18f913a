// AWS credential discovery and identity verification
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
)

// CredentialProvider supplies the credential triple used for signing
// and verifies it against the identity service. The default
// implementation uses the standard AWS credential chain; tests inject
// static credentials.
type CredentialProvider interface {
	// Retrieve returns the access key, secret key and optional session
	// token used to sign requests.
	Retrieve(ctx context.Context) (aws.Credentials, error)

	// CallerIdentity returns the ARN of the principal the credentials
	// belong to.
	CallerIdentity(ctx context.Context) (string, error)
}

// awsCredentialProvider resolves credentials through the shared AWS
// config chain (env, shared credentials file, SSO, IMDS) for an
// optional named profile, and checks them with STS GetCallerIdentity.
type awsCredentialProvider struct {
	profile string
	region  string

	cfg *aws.Config
}

func newAWSCredentialProvider(profile, region string) *awsCredentialProvider {
	return &awsCredentialProvider{profile: profile, region: region}
}

// load resolves the shared AWS config once and caches it for the
// lifetime of the provider.
func (p *awsCredentialProvider) load(ctx context.Context) (aws.Config, error) {
	if p.cfg != nil {
		return *p.cfg, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(p.region),
	}
	if p.profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(p.profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	p.cfg = &cfg
	return cfg, nil
}

func (p *awsCredentialProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	cfg, err := p.load(ctx)
	if err != nil {
		return aws.Credentials{}, err
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return aws.Credentials{}, err
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("credential chain returned empty credentials")
	}
	return creds, nil
}

func (p *awsCredentialProvider) CallerIdentity(ctx context.Context) (string, error) {
	cfg, err := p.load(ctx)
	if err != nil {
		return "", err
	}

	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return "", err
	}
	return aws.ToString(out.Arn), nil
}
