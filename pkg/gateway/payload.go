// Request payload assembly
package gateway

// ContentBlock is a single block of message content. The gateway's
// converse-style wire format only carries text blocks.
type ContentBlock struct {
	Text string `json:"text,omitempty"`
}

// Message is one turn of a conversation.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// InferenceConfig carries the sampling parameters for one invocation.
// Temperature and TopP are pointers so that an absent value is omitted
// entirely and the service applies its own default.
type InferenceConfig struct {
	MaxTokens   int      `json:"maxTokens"`
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"topP,omitempty"`
}

// ChatPayload is the JSON body POSTed to the gateway.
type ChatPayload struct {
	Messages        []Message       `json:"messages"`
	Model           string          `json:"model"`
	InferenceConfig InferenceConfig `json:"inferenceConfig"`
	System          []ContentBlock  `json:"system,omitempty"`
}

// ChatOptions control a single Chat call. The zero value is usable:
// Model defaults to "sonnet-4.5" and MaxTokens to 2000.
type ChatOptions struct {
	// Model is an alias from the configured model map, or a raw model
	// identifier passed through verbatim when unmapped.
	Model string

	MaxTokens   int
	Temperature *float64
	TopP        *float64

	// System, when non-empty, becomes a single system text block.
	System string

	// History is prepended to the new user message, each entry
	// unchanged.
	History []Message
}

const (
	defaultModelAlias = "sonnet-4.5"
	defaultMaxTokens  = 2000
)

// withDefaults fills in the per-call defaults without mutating opts.
func (o ChatOptions) withDefaults() ChatOptions {
	if o.Model == "" {
		o.Model = defaultModelAlias
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = defaultMaxTokens
	}
	return o
}

// buildPayload assembles the invocation payload: history followed by a
// single user turn, the alias resolved through modelMap (falling back
// to the alias itself), and only the explicitly provided sampling
// parameters. No content validation happens here; length and token
// limits are the service's call.
func buildPayload(message string, opts ChatOptions, modelMap map[string]string) ChatPayload {
	messages := make([]Message, 0, len(opts.History)+1)
	messages = append(messages, opts.History...)
	messages = append(messages, Message{
		Role:    "user",
		Content: []ContentBlock{{Text: message}},
	})

	model := opts.Model
	if id, ok := modelMap[opts.Model]; ok {
		model = id
	}

	payload := ChatPayload{
		Messages: messages,
		Model:    model,
		InferenceConfig: InferenceConfig{
			MaxTokens:   opts.MaxTokens,
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
		},
	}

	if opts.System != "" {
		payload.System = []ContentBlock{{Text: opts.System}}
	}

	return payload
}
