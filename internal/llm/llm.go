// Package llm provides a model-backed parsing strategy for resume text.
// It targets the same record shape as the heuristic parser but handles
// free-form layouts the line patterns cannot anchor on. Requires a Gemini
// API key; without one the heuristic parser is the only strategy.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Strategy implements resume.Strategy using the Gemini API.
type Strategy struct {
	client *genai.Client
	model  string
}

// New creates a model-backed strategy. model may be empty to use the default.
func New(ctx context.Context, apiKey, model string) (*Strategy, error) {
	if apiKey == "" {
		return nil, errors.NewInvalidRequest("Gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create Gemini client: %w", err))
	}

	return &Strategy{client: client, model: model}, nil
}

// Parse sends the resume text to the model and decodes the JSON reply into
// a Record. One retry on a malformed reply; a second failure returns
// LLM_RESPONSE_INVALID.
func (s *Strategy) Parse(ctx context.Context, text string) (*resume.Record, error) {
	prompt := buildPrompt(text)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.1),
		})
		if err != nil {
			return nil, errors.NewInternal(fmt.Errorf("model request failed: %w", err))
		}

		rec, err := decodeRecord(resp.Text())
		if err == nil {
			return rec, nil
		}
		lastErr = err
	}

	return nil, errors.NewLLMResponseInvalid(lastErr)
}

// decodeRecord strips markdown fencing and unmarshals the model reply.
func decodeRecord(reply string) (*resume.Record, error) {
	cleaned := CleanJSONBlock(reply)
	if cleaned == "" {
		return nil, fmt.Errorf("empty model reply")
	}

	rec := &resume.Record{}
	if err := json.Unmarshal([]byte(cleaned), rec); err != nil {
		return nil, err
	}
	rec.EnsureDefaults()
	return rec, nil
}

// buildPrompt wraps the resume text with extraction instructions. The reply
// schema matches the Record serialization exactly.
func buildPrompt(text string) string {
	return fmt.Sprintf(`You are an expert resume parser. Convert the resume text below into a JSON object.

IMPORTANT INSTRUCTIONS:
1. Return ONLY the JSON object, with no surrounding prose or markdown fences.
2. Use exactly this structure:
{
  "contact_info": {"name": "", "location": "", "phone": "", "email": "", "linkedin": "", "github": ""},
  "skills": {"<category>": ["<skill>", ...]},
  "work_experience": [{"title": "", "company": "", "location": "", "duration": "", "description": ["..."]}],
  "projects": [{"name": "", "url": "", "duration": "", "description": ["..."]}],
  "education": [{"institution": "", "location": "", "degree": "", "duration": ""}],
  "certifications": [{"name": "", "issuer": "", "duration": "", "description": ["..."]}],
  "extracurriculars": ["..."]
}
3. Copy text verbatim from the resume; never invent or embellish content.
4. Keep date ranges as written (e.g. "Jan 2022 - Present"); do not reformat them.
5. Use empty strings for fields you cannot find and empty arrays for absent sections.

RESUME TEXT:
%s`, text)
}
