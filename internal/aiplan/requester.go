package aiplan

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=requester_mocks_test.go -package=aiplan_test

type completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Requester turns a user profile into validated AI workouts. It never
// retries and never salvages a partially valid plan.
type Requester struct {
	completer completer
}

func NewRequester(c completer) *Requester {
	return &Requester{
		completer: c,
	}
}

func (r *Requester) RequestWorkouts(ctx context.Context, p profile.Profile) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aiplan.requester.workouts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("training-days", p.Preferences.TrainingDays))

	content, err := r.completer.Complete(ctx, SystemPrompt, UserPrompt(p))
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(content)
	if err != nil {
		log.Errorf("ai plan for %s: %s, original response: %q", p.UserID, err, content)
		return nil, err
	}

	workouts, err := Validate(raw)
	if err != nil {
		log.Errorf("ai plan for %s: %s", p.UserID, err)
		return nil, err
	}

	return workouts, nil
}

// Request returns the AI workouts as session templates, in response order.
func (r *Requester) Request(ctx context.Context, p profile.Profile) ([]plan.SessionTemplate, error) {
	workouts, err := r.RequestWorkouts(ctx, p)
	if err != nil {
		return nil, err
	}
	return ToTemplates(workouts, p.Preferences.FitnessLevel), nil
}

func ToTemplates(workouts []Workout, level plan.FitnessLevel) []plan.SessionTemplate {
	templates := make([]plan.SessionTemplate, 0, len(workouts))
	for i, w := range workouts {
		exercises := make([]plan.Exercise, len(w.Exercises))
		copy(exercises, w.Exercises)
		templates = append(templates, plan.SessionTemplate{
			Day:        w.Day,
			Title:      fmt.Sprintf("Treino %c", 'A'+rune(i)),
			Exercises:  exercises,
			Difficulty: level.Difficulty(),
			Duration:   level.Duration(),
		})
	}
	return templates
}

// UserMessage is the pt-BR description shown to the user for an AI failure.
func UserMessage(err error) string {
	var statusErr *StatusError
	var validationErr *ValidationError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Erro na API Groq: %d", statusErr.StatusCode)
	case errors.Is(err, ErrEmptyResponse):
		return "Resposta vazia da IA"
	case errors.Is(err, ErrUnparsableResponse), errors.As(err, &validationErr):
		return "Erro ao interpretar resposta da IA"
	case errors.Is(err, ErrMissingAPIKey):
		return "Chave da API de IA não configurada"
	default:
		return "Não foi possível gerar o treino com IA"
	}
}
