package aiplan

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

type workoutsRequester interface {
	RequestWorkouts(ctx context.Context, p profile.Profile) ([]Workout, error)
}

// GenerateRequest is the proxy payload, using the field names of the
// mobile client.
type GenerateRequest struct {
	UserProfile struct {
		Age    int     `json:"age"`
		Weight float64 `json:"weight"`
	} `json:"userProfile"`
	UserPreferences struct {
		Goal                  string   `json:"goal"`
		TrainingDays          int      `json:"training_days"`
		FitnessLevel          string   `json:"fitness_level"`
		PreferredMuscleGroups []string `json:"preferred_muscle_groups"`
	} `json:"userPreferences"`
}

type ExerciseResponse struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Rest         int    `json:"rest"`
	Instructions string `json:"instructions,omitempty"`
}

type WorkoutResponse struct {
	Day       string             `json:"day"`
	Exercises []ExerciseResponse `json:"exercises"`
}

type GenerateResponse struct {
	Success     bool              `json:"success"`
	WorkoutPlan []WorkoutResponse `json:"workoutPlan,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type Handler struct {
	requester workoutsRequester
}

func NewHandler(requester workoutsRequester) *Handler {
	return &Handler{
		requester: requester,
	}
}

// HandleGenerate is the stateless proxy: it returns the validated AI
// workouts without persisting anything.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aiplan.generate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("generate workout, unmarshal json params: %s", err)
		pkg.WriteJSON(w, GenerateResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	p := req.toProfile()
	if userID, ok := auth.UserIDFromContext(ctx); ok {
		p.UserID = userID
	}

	workouts, err := h.requester.RequestWorkouts(ctx, p)
	if err != nil {
		log.Errorf("generate workout with ai: %s", err)
		pkg.WriteJSON(w, GenerateResponse{Error: UserMessage(err)}, http.StatusInternalServerError)
		return
	}

	resp := GenerateResponse{
		Success:     true,
		WorkoutPlan: make([]WorkoutResponse, 0, len(workouts)),
	}
	for _, wo := range workouts {
		wr := WorkoutResponse{Day: wo.Day, Exercises: make([]ExerciseResponse, 0, len(wo.Exercises))}
		for _, ex := range wo.Exercises {
			wr.Exercises = append(wr.Exercises, ExerciseResponse{
				Name:         ex.Name,
				Sets:         ex.Sets,
				Reps:         ex.Reps,
				Rest:         plan.RestSeconds(ex.Rest),
				Instructions: ex.Instructions,
			})
		}
		resp.WorkoutPlan = append(resp.WorkoutPlan, wr)
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

// toProfile is lenient: unknown goals and levels fall back to the neutral
// prompt wording instead of failing the request.
func (req GenerateRequest) toProfile() profile.Profile {
	goal, err := plan.ParseGoal(req.UserPreferences.Goal)
	if err != nil {
		goal = plan.GoalMaintenance
	}
	level, err := plan.ParseFitnessLevel(req.UserPreferences.FitnessLevel)
	if err != nil {
		level = plan.LevelAdvanced
	}
	return profile.Profile{
		Age:      req.UserProfile.Age,
		WeightKg: req.UserProfile.Weight,
		Preferences: profile.Preferences{
			Goal:                  goal,
			FitnessLevel:          level,
			TrainingDays:          req.UserPreferences.TrainingDays,
			PreferredMuscleGroups: req.UserPreferences.PreferredMuscleGroups,
		},
	}
}
