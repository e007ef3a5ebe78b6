package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/dto/request"
	"cinenyc-booking/internal/dto/response"
	"cinenyc-booking/pkg/utils"
)

// adviceFallback is returned whenever the model is unavailable or errors, so
// the assistant never surfaces a raw failure to the user.
const adviceFallback = "I'm having a bit of trouble connecting to my movie database. Try asking again about showtimes in New York!"

// generativeModel is the slice of *genai.GenerativeModel the assistant needs.
type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type AssistantService interface {
	GetMovieAdvice(ctx context.Context, req *request.AssistantQueryRequest) (*response.AdviceResponse, error)
	ExtractSearchTag(ctx context.Context, req *request.AssistantQueryRequest) (*response.TagResponse, error)
}

type assistantService struct {
	adviceModel generativeModel
	tagModel    generativeModel
	catalog     *catalog.Catalog
	log         *zap.Logger
}

func NewAssistantService(
	adviceModel generativeModel,
	tagModel generativeModel,
	cat *catalog.Catalog,
	log *zap.Logger,
) AssistantService {
	return &assistantService{
		adviceModel: adviceModel,
		tagModel:    tagModel,
		catalog:     cat,
		log:         log.With(zap.String("service", "assistant")),
	}
}

func (s *assistantService) GetMovieAdvice(ctx context.Context, req *request.AssistantQueryRequest) (*response.AdviceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if s.adviceModel == nil {
		return &response.AdviceResponse{Advice: adviceFallback}, nil
	}

	prompt := s.buildAdvicePrompt(req.Query)

	resp, err := s.adviceModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.Error("Advice generation failed", zap.Error(err))
		return &response.AdviceResponse{Advice: adviceFallback}, nil
	}

	advice := responseText(resp)
	if advice == "" {
		s.log.Warn("Advice response was empty")
		return &response.AdviceResponse{Advice: adviceFallback}, nil
	}

	return &response.AdviceResponse{Advice: advice}, nil
}

// ExtractSearchTag distills a free-form query into a single search keyword.
// Failures degrade to an empty tag rather than an error.
func (s *assistantService) ExtractSearchTag(ctx context.Context, req *request.AssistantQueryRequest) (*response.TagResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if s.tagModel == nil {
		return &response.TagResponse{Tag: ""}, nil
	}

	prompt := fmt.Sprintf(
		"Extract a single short search tag (genre, title keyword, or mood) from this movie request: %q",
		req.Query,
	)

	resp, err := s.tagModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.Error("Tag extraction failed", zap.Error(err))
		return &response.TagResponse{Tag: ""}, nil
	}

	var payload struct {
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal([]byte(responseText(resp)), &payload); err != nil {
		s.log.Warn("Tag response was not valid JSON", zap.Error(err))
		return &response.TagResponse{Tag: ""}, nil
	}

	return &response.TagResponse{Tag: strings.TrimSpace(payload.Tag)}, nil
}

func (s *assistantService) buildAdvicePrompt(query string) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly movie concierge for cinemas in New York City. ")
	sb.WriteString("Answer briefly and only recommend movies from this list:\n")
	for _, m := range s.catalog.Movies() {
		fmt.Fprintf(&sb, "- %s (%s, %s)\n", m.Title, strings.Join(m.Genres, "/"), m.Rating)
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(query)
	return sb.String()
}

// responseText flattens the first candidate's text parts.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
