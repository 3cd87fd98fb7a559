package services

import (
	"context"
	"encoding/json"
	"fmt"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/request_models"
	"quizmaker/internal/models/response_models"
	"quizmaker/pkg/utils"
)

type GeneratorServiceInterface interface {
	// GenerateDraft asks the model for a complete quiz draft on the given
	// theme. The draft goes straight to the editor; the owner reviews it
	// before anything is persisted.
	GenerateDraft(ctx context.Context, req request_models.GenerateDraftRequest) (*response_models.QuizDraft, error)
}

type GeneratorService struct {
	client utils.DraftClientInterface
}

func NewGeneratorService(client utils.DraftClientInterface) *GeneratorService {
	return &GeneratorService{client: client}
}

func (g *GeneratorService) GenerateDraft(ctx context.Context, req request_models.GenerateDraftRequest) (*response_models.QuizDraft, error) {
	mode := db_models.QuizMode(req.Mode)
	switch mode {
	case db_models.ModeDiagnosis, db_models.ModeTest, db_models.ModeFortune:
	default:
		mode = db_models.ModeDiagnosis
	}

	raw, err := g.client.GenerateDraftJSON(ctx, buildPrompt(req.Theme, mode))
	if err != nil {
		return nil, fmt.Errorf("draft generation: %w", err)
	}

	doc, ok := utils.ExtractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("draft generation: no JSON object in model output")
	}

	var draft response_models.QuizDraft
	if err := json.Unmarshal([]byte(doc), &draft); err != nil {
		return nil, fmt.Errorf("draft generation: %w", err)
	}
	if len(draft.Questions) == 0 || len(draft.Results) == 0 {
		return nil, fmt.Errorf("draft generation: incomplete draft (questions=%d results=%d)", len(draft.Questions), len(draft.Results))
	}
	return &draft, nil
}

const draftSchemaHint = `Return ONLY a JSON object with this shape:
{
  "title": string,
  "description": string,
  "questions": [{"text": string, "options": [{"label": string, "score": {TYPE: number}}]}],
  "results": [{"type": string, "title": string, "description": string}]
}`

func buildPrompt(theme string, mode db_models.QuizMode) string {
	switch mode {
	case db_models.ModeTest:
		return fmt.Sprintf(`Create a knowledge test about %q with 5 questions of 4 options each.
Exactly one option per question is correct; mark it with "score": {"A": 1} and the others with "score": {}.
Provide 4 results graded from best ("perfect score") to worst, in that order.
%s`, theme, draftSchemaHint)
	case db_models.ModeFortune:
		return fmt.Sprintf(`Create a fortune-drawing quiz about %q with 3 light mood questions of 3 options each (scores all {}).
Provide 5 fortune results of varying luck; the outcome is drawn at random so every result should be fun to land on.
%s`, theme, draftSchemaHint)
	default:
		return fmt.Sprintf(`Create a personality diagnosis quiz about %q with 5 questions of 4 options each.
Define 4 personality types and have every option add weight to one or more types via "score", e.g. {"LION": 2}.
Provide one result per type, using the type key in the "type" field.
%s`, theme, draftSchemaHint)
	}
}
