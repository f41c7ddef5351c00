package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/invopop/jsonschema"
)

////////////////////////////////////////////////////////////////////////

// Message roles, mirroring the wire values the model provider expects.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single turn of a conversation. An ordered slice of messages
// forms the chat history; the caller owns accumulation and persistence.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

////////////////////////////////////////////////////////////////////////

// Capability is a named function the model may ask the host to execute
// mid-generation. The host runs Invoke and feeds the result back to the
// model before the final text is produced.
type Capability struct {
	Name        string
	Description string
	// Parameters describes the input shape the model must supply.
	// Nil means the capability takes no visible input.
	Parameters *jsonschema.Schema
	Invoke     func(ctx context.Context, args json.RawMessage) (any, error)
}

// GenerateRequest carries one full model invocation: operating
// instructions, the prior conversation, and any registered capabilities.
type GenerateRequest struct {
	System       string
	History      []Message
	Capabilities []Capability
	// JSONOutput asks the provider for a bare JSON response body.
	JSONOutput bool
}

// Anything with a Generate method can act as an LLMClient.
// LLMClient defines an interface for making LLM calls.
type LLMClient interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

////////////////////////////////////////////////////////////////////////
// Gemini implementation
////////////////////////////////////////////////////////////////////////

const (
	defaultGeminiAPIURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel  = "gemini-2.0-flash"

	// maxCapabilityRounds bounds the function-calling loop so a model that
	// keeps requesting lookups cannot spin forever.
	maxCapabilityRounds = 4
)

// GeminiClient talks to the Gemini generateContent REST API over plain HTTP.
type GeminiClient struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewGeminiClient creates a client for the given endpoint and model.
// Empty apiURL and model fall back to the public endpoint defaults.
func NewGeminiClient(apiKey, apiURL, model string, client *http.Client) *GeminiClient {
	if apiURL == "" {
		apiURL = defaultGeminiAPIURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if client == nil {
		client = &http.Client{}
	}
	return &GeminiClient{apiKey: apiKey, apiURL: apiURL, model: model, client: client}
}

////////////////////////////////////////////////////////////////////////
// Wire types. We only map the fields we need.
////////////////////////////////////////////////////////////////////////

type geminiFunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

type geminiFunctionResponse struct {
	Name     string `json:"name"`
	Response any    `json:"response"`
}

type geminiPart struct {
	Text             string                  `json:"text,omitempty"`
	FunctionCall     *geminiFunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *geminiFunctionResponse `json:"functionResponse,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiFunctionDecl struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

type geminiTool struct {
	FunctionDeclarations []geminiFunctionDecl `json:"functionDeclarations"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	Tools             []geminiTool            `json:"tools,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

////////////////////////////////////////////////////////////////////////

// Generate sends the conversation to Gemini and returns the model's text.
// When the model requests a registered capability, the capability is
// executed and its result fed back before the final text is produced.
func (g *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body := geminiRequest{
		Contents: make([]geminiContent, 0, len(req.History)),
	}
	for _, m := range req.History {
		body.Contents = append(body.Contents, geminiContent{
			Role:  m.Role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if req.JSONOutput {
		body.GenerationConfig = &geminiGenerationConfig{ResponseMIMEType: "application/json"}
	}

	capabilities := make(map[string]Capability, len(req.Capabilities))
	if len(req.Capabilities) > 0 {
		decls := make([]geminiFunctionDecl, 0, len(req.Capabilities))
		for _, c := range req.Capabilities {
			capabilities[c.Name] = c
			decls = append(decls, geminiFunctionDecl{
				Name:        c.Name,
				Description: c.Description,
				Parameters:  c.Parameters,
			})
		}
		body.Tools = []geminiTool{{FunctionDeclarations: decls}}
	}

	for round := 0; round < maxCapabilityRounds; round++ {
		content, err := g.call(ctx, &body)
		if err != nil {
			return "", err
		}

		call := firstFunctionCall(content.Parts)
		if call == nil {
			text := joinText(content.Parts)
			if text == "" {
				return "", ErrEmptyResponse
			}
			return text, nil
		}

		capability, ok := capabilities[call.Name]
		if !ok {
			return "", &ToolError{Capability: call.Name, Err: fmt.Errorf("model requested unregistered capability")}
		}
		result, err := capability.Invoke(ctx, call.Args)
		if err != nil {
			return "", &ToolError{Capability: call.Name, Err: err}
		}

		// Echo the model's request and append our result so the next round
		// can produce the final answer.
		body.Contents = append(body.Contents,
			*content,
			geminiContent{
				Role: RoleUser,
				Parts: []geminiPart{{
					FunctionResponse: &geminiFunctionResponse{Name: call.Name, Response: result},
				}},
			},
		)
	}

	return "", fmt.Errorf("model did not produce text within %d capability rounds", maxCapabilityRounds)
}

// call performs one generateContent request and returns the first
// candidate's content.
func (g *GeminiClient) call(ctx context.Context, body *geminiRequest) (*geminiContent, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.apiURL, g.model)
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API returned non-200 status: %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal api response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	return &apiResp.Candidates[0].Content, nil
}

func firstFunctionCall(parts []geminiPart) *geminiFunctionCall {
	for _, p := range parts {
		if p.FunctionCall != nil {
			return p.FunctionCall
		}
	}
	return nil
}

func joinText(parts []geminiPart) string {
	var out string
	for _, p := range parts {
		out += p.Text
	}
	return out
}
