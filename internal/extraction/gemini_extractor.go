package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// Request shape for generateContent. Only the fields this service sends;
// tools carries the Google Search grounding flag so the model can
// supplement what it reads off the label with published label data.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Tools    []geminiTool    `json:"tools"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

// Response shape, read only as deep as the text parts. The rest of the
// payload is outside this system's control and stays opaque.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiExtractor calls the generateContent endpoint with the label photo
// inline and the Google Search grounding tool enabled.
type GeminiExtractor struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewGeminiExtractor(apiKey, model string) *GeminiExtractor {
	return &GeminiExtractor{
		apiKey:   strings.TrimSpace(apiKey),
		model:    strings.TrimSpace(model),
		endpoint: geminiEndpoint,
		client:   &http.Client{},
	}
}

func (e *GeminiExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*Result, error) {
	if e.apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: labelPrompt},
				{InlineData: &geminiInlineData{
					MIMEType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		Tools: []geminiTool{{}},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding gemini request failed: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", e.endpoint, e.model, e.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gemini response failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error: %d %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("gemini returned non-JSON body: %w", err)
	}

	// The verbatim body is retained for audit.
	return &Result{
		Text: joinText(parsed),
		Raw:  json.RawMessage(body),
	}, nil
}

// joinText concatenates the text parts of the first candidate. An empty
// result flows through to the normalizer fallback rather than erroring.
func joinText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
