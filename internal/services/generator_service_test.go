package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizmaker/internal/models/request_models"
)

const fencedDraft = "Here is your quiz:\n```json\n" + `{
  "title": "Cat personality",
  "description": "Which cat are you?",
  "questions": [
    {"text": "Pick a nap spot", "options": [
      {"label": "Sunbeam", "score": {"TABBY": 2}},
      {"label": "Bookshelf", "score": {"SIAMESE": 2}}
    ]}
  ],
  "results": [
    {"type": "TABBY", "title": "Tabby"},
    {"type": "SIAMESE", "title": "Siamese"}
  ]
}` + "\n```"

func TestGenerateDraftParsesFencedOutput(t *testing.T) {
	svc := NewGeneratorService(&fakeDraftClient{output: fencedDraft})

	draft, err := svc.GenerateDraft(context.Background(), request_models.GenerateDraftRequest{
		Theme: "cats",
		Mode:  "diagnosis",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cat personality", draft.Title)
	require.Len(t, draft.Questions, 1)
	assert.Len(t, draft.Questions[0].Options, 2)
	require.Len(t, draft.Results, 2)
	assert.Equal(t, "TABBY", draft.Results[0].Type)
}

func TestGenerateDraftRejectsNonJSON(t *testing.T) {
	svc := NewGeneratorService(&fakeDraftClient{output: "I cannot help with that."})

	_, err := svc.GenerateDraft(context.Background(), request_models.GenerateDraftRequest{Theme: "cats"})
	assert.Error(t, err)
}

func TestGenerateDraftRejectsIncompleteDraft(t *testing.T) {
	svc := NewGeneratorService(&fakeDraftClient{output: `{"title": "empty", "questions": [], "results": []}`})

	_, err := svc.GenerateDraft(context.Background(), request_models.GenerateDraftRequest{Theme: "cats"})
	assert.Error(t, err)
}
