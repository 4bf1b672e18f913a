// Response normalization
package gateway

import (
	"encoding/json"
	"net/http"
)

// ChatResult is the normalized outcome of one gateway invocation.
type ChatResult struct {
	// Text is the concatenation of every text content block in the
	// response, in order.
	Text string

	TotalTokens  int
	InputTokens  int
	OutputTokens int
	LatencyMS    int

	// RequestID is the gateway's request identifier, "unknown" when
	// the gateway did not report one.
	RequestID string

	// Model is the alias the caller requested, not the resolved model
	// identifier.
	Model string

	StopReason string

	// Raw is the fully parsed inner response, for callers that need
	// fields the normalizer does not surface.
	Raw map[string]any
}

func (r *ChatResult) String() string { return r.Text }

// normalizeResponse turns the gateway's status and body into a
// ChatResult. Non-200 statuses become a *GatewayError whose detail is
// the body's "error" field when the body parses as JSON, otherwise the
// raw body text.
//
// The gateway may answer in two shapes: a pass-through envelope whose
// string-typed "body" field holds the real response as serialized JSON,
// or the response itself. Extraction is tolerant throughout: any
// missing object or field along the way yields that field's default
// rather than a failure.
func normalizeResponse(statusCode int, body []byte, modelAlias string) (*ChatResult, error) {
	if statusCode != http.StatusOK {
		detail := string(body)
		var errBody map[string]any
		if err := json.Unmarshal(body, &errBody); err == nil {
			if msg, ok := errBody["error"].(string); ok {
				detail = msg
			}
		}
		return nil, &GatewayError{StatusCode: statusCode, Detail: detail}
	}

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &GatewayError{StatusCode: statusCode, Detail: "invalid JSON response: " + err.Error()}
	}

	inner := envelope
	if wrapped, ok := envelope["body"].(string); ok {
		var unwrapped map[string]any
		if err := json.Unmarshal([]byte(wrapped), &unwrapped); err != nil {
			return nil, &GatewayError{StatusCode: statusCode, Detail: "invalid JSON in response body: " + err.Error()}
		}
		inner = unwrapped
	}

	result := &ChatResult{
		Model:      modelAlias,
		RequestID:  "unknown",
		StopReason: "unknown",
		Raw:        inner,
	}

	if output, ok := inner["output"].(map[string]any); ok {
		if message, ok := output["message"].(map[string]any); ok {
			if content, ok := message["content"].([]any); ok {
				for _, block := range content {
					b, ok := block.(map[string]any)
					if !ok {
						continue
					}
					if text, ok := b["text"].(string); ok {
						result.Text += text
					}
				}
			}
		}
	}

	if usage, ok := inner["usage"].(map[string]any); ok {
		result.TotalTokens = intField(usage, "totalTokens")
		result.InputTokens = intField(usage, "inputTokens")
		result.OutputTokens = intField(usage, "outputTokens")
	}

	if metrics, ok := inner["metrics"].(map[string]any); ok {
		result.LatencyMS = intField(metrics, "latencyMs")
	}

	// The request id lives in the OUTER envelope's headers map, a
	// pass-through header recorded by the gateway, not in the inner
	// response.
	if headers, ok := envelope["headers"].(map[string]any); ok {
		if id, ok := headers["X-Request-ID"].(string); ok {
			result.RequestID = id
		}
	}

	if reason, ok := inner["stopReason"].(string); ok {
		result.StopReason = reason
	}

	return result, nil
}

// intField reads a numeric field from a decoded JSON object. Numbers
// arrive as float64 from encoding/json.
func intField(m map[string]any, key string) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return 0
}
