package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/dto/request"
)

type fakeModel struct {
	text string
	err  error

	lastPrompt string
}

func (m *fakeModel) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if text, ok := parts[0].(genai.Text); ok {
			m.lastPrompt = string(text)
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(m.text)}}},
		},
	}, nil
}

func newAssistantForTest(t *testing.T, advice, tag generativeModel) AssistantService {
	t.Helper()
	cat, err := catalog.Fixtures()
	require.NoError(t, err)
	return NewAssistantService(advice, tag, cat, zap.NewNop())
}

func TestGetMovieAdvice(t *testing.T) {
	model := &fakeModel{text: "Dune: Part Two is playing in IMAX tonight."}
	svc := newAssistantForTest(t, model, nil)

	resp, err := svc.GetMovieAdvice(context.Background(), &request.AssistantQueryRequest{Query: "something epic"})
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part Two is playing in IMAX tonight.", resp.Advice)

	// The prompt grounds the model on the actual catalog.
	assert.Contains(t, model.lastPrompt, "Dune: Part Two")
	assert.Contains(t, model.lastPrompt, "something epic")
}

func TestGetMovieAdviceFallsBackOnError(t *testing.T) {
	svc := newAssistantForTest(t, &fakeModel{err: errors.New("quota exceeded")}, nil)

	resp, err := svc.GetMovieAdvice(context.Background(), &request.AssistantQueryRequest{Query: "anything"})
	require.NoError(t, err)
	assert.Equal(t, adviceFallback, resp.Advice)
}

func TestGetMovieAdviceFallsBackWithoutModel(t *testing.T) {
	svc := newAssistantForTest(t, nil, nil)

	resp, err := svc.GetMovieAdvice(context.Background(), &request.AssistantQueryRequest{Query: "anything"})
	require.NoError(t, err)
	assert.Equal(t, adviceFallback, resp.Advice)
}

func TestGetMovieAdviceValidatesQuery(t *testing.T) {
	svc := newAssistantForTest(t, &fakeModel{text: "x"}, nil)

	_, err := svc.GetMovieAdvice(context.Background(), &request.AssistantQueryRequest{Query: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractSearchTag(t *testing.T) {
	svc := newAssistantForTest(t, nil, &fakeModel{text: `{"tag":"sci-fi"}`})

	resp, err := svc.ExtractSearchTag(context.Background(), &request.AssistantQueryRequest{Query: "space movies"})
	require.NoError(t, err)
	assert.Equal(t, "sci-fi", resp.Tag)
}

func TestExtractSearchTagDegradesToEmpty(t *testing.T) {
	cases := map[string]generativeModel{
		"model error":  &fakeModel{err: errors.New("boom")},
		"invalid json": &fakeModel{text: "not json"},
		"no model":     nil,
	}

	for name, model := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newAssistantForTest(t, nil, model)

			resp, err := svc.ExtractSearchTag(context.Background(), &request.AssistantQueryRequest{Query: "space movies"})
			require.NoError(t, err)
			assert.Empty(t, resp.Tag)
		})
	}
}
