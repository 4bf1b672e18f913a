package signer

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials(t *testing.T, sessionToken string) aws.Credentials {
	t.Helper()
	provider := credentials.NewStaticCredentialsProvider(
		"AKIDEXAMPLE", "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY", sessionToken)
	creds, err := provider.Retrieve(context.Background())
	require.NoError(t, err)
	return creds
}

func TestSign_HeaderSet(t *testing.T) {
	creds := testCredentials(t, "")
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	headers, err := Sign(context.Background(), creds, "POST",
		"https://abc123.execute-api.us-east-1.amazonaws.com/prod/invoke",
		"abc123.execute-api.us-east-1.amazonaws.com",
		[]byte(`{"messages":[]}`), "us-east-1", ServiceExecuteAPI, at)
	require.NoError(t, err)

	assert.Equal(t, "abc123.execute-api.us-east-1.amazonaws.com", headers.Get("Host"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "20240315T120000Z", headers.Get("X-Amz-Date"))
	assert.Empty(t, headers.Get("X-Amz-Security-Token"))

	auth := headers.Get("Authorization")
	assert.Contains(t, auth, "AWS4-HMAC-SHA256")
	assert.Contains(t, auth, "Credential=AKIDEXAMPLE/20240315/us-east-1/execute-api/aws4_request")
	assert.Contains(t, auth, "SignedHeaders=")
	assert.Contains(t, auth, "Signature=")
}

func TestSign_SessionToken(t *testing.T) {
	creds := testCredentials(t, "FwoGZXIvYXdzEDEaDEXAMPLETOKEN")
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	headers, err := Sign(context.Background(), creds, "POST",
		"https://abc123.execute-api.us-east-1.amazonaws.com/prod/invoke",
		"abc123.execute-api.us-east-1.amazonaws.com",
		[]byte(`{}`), "us-east-1", ServiceExecuteAPI, at)
	require.NoError(t, err)

	assert.Equal(t, "FwoGZXIvYXdzEDEaDEXAMPLETOKEN", headers.Get("X-Amz-Security-Token"))
}

func TestSign_Deterministic(t *testing.T) {
	creds := testCredentials(t, "")
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	url := "https://abc123.execute-api.us-east-1.amazonaws.com/prod/invoke"
	host := "abc123.execute-api.us-east-1.amazonaws.com"
	body := []byte(`{"messages":[{"role":"user","content":[{"text":"hi"}]}]}`)

	first, err := Sign(context.Background(), creds, "POST", url, host, body, "us-east-1", ServiceExecuteAPI, at)
	require.NoError(t, err)
	second, err := Sign(context.Background(), creds, "POST", url, host, body, "us-east-1", ServiceExecuteAPI, at)
	require.NoError(t, err)

	assert.Equal(t, first.Get("Authorization"), second.Get("Authorization"))
	assert.Equal(t, first.Get("X-Amz-Date"), second.Get("X-Amz-Date"))
}

func TestSign_InputSensitivity(t *testing.T) {
	creds := testCredentials(t, "")
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	url := "https://abc123.execute-api.us-east-1.amazonaws.com/prod/invoke"
	host := "abc123.execute-api.us-east-1.amazonaws.com"
	body := []byte(`{"a":1}`)

	base, err := Sign(context.Background(), creds, "POST", url, host, body, "us-east-1", ServiceExecuteAPI, at)
	require.NoError(t, err)

	tests := []struct {
		name string
		sign func() (string, error)
	}{
		{
			name: "body byte changed",
			sign: func() (string, error) {
				h, err := Sign(context.Background(), creds, "POST", url, host, []byte(`{"a":2}`), "us-east-1", ServiceExecuteAPI, at)
				if err != nil {
					return "", err
				}
				return h.Get("Authorization"), nil
			},
		},
		{
			name: "region changed",
			sign: func() (string, error) {
				h, err := Sign(context.Background(), creds, "POST", url, host, body, "eu-west-1", ServiceExecuteAPI, at)
				if err != nil {
					return "", err
				}
				return h.Get("Authorization"), nil
			},
		},
		{
			name: "signing time changed",
			sign: func() (string, error) {
				h, err := Sign(context.Background(), creds, "POST", url, host, body, "us-east-1", ServiceExecuteAPI, at.Add(time.Second))
				if err != nil {
					return "", err
				}
				return h.Get("Authorization"), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, err := tt.sign()
			require.NoError(t, err)
			assert.NotEqual(t, base.Get("Authorization"), auth)
		})
	}
}
