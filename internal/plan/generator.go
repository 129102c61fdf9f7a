package plan

type GenerateParams struct {
	DayCount int
	Goal     Goal
	Level    FitnessLevel
}

// Generate selects the catalog entry for the day count and applies the goal
// adjustments. It never mutates the catalog.
func Generate(params GenerateParams) []SessionTemplate {
	days := Catalog(params.DayCount)

	sessions := make([]SessionTemplate, 0, len(days))
	for _, d := range days {
		for i := range d.Exercises {
			d.Exercises[i] = AdjustForGoal(d.Exercises[i], params.Goal)
		}
		sessions = append(sessions, SessionTemplate{
			Day:        d.Day,
			Title:      d.Title,
			Exercises:  d.Exercises,
			Difficulty: params.Level.Difficulty(),
			Duration:   params.Level.Duration(),
		})
	}
	return sessions
}

// AdjustForGoal nudges volume for fat loss (fewer sets, more reps, shorter
// rest) and hypertrophy (more sets, fewer reps).
func AdjustForGoal(ex Exercise, goal Goal) Exercise {
	switch goal {
	case GoalFatLoss:
		ex.Sets = max(ex.Sets-1, 2)
		ex.Reps += 3
		ex.Rest = FormatRest(max(RestSeconds(ex.Rest)-15, 30))
	case GoalHypertrophy:
		ex.Sets++
		ex.Reps = max(ex.Reps-2, 6)
	}
	return ex
}

// Preview is a generated plan that is not tied to any user.
type Preview struct {
	DayCount int               `json:"dayCount"`
	Goal     Goal              `json:"goal"`
	Level    FitnessLevel      `json:"level"`
	Sessions []SessionTemplate `json:"sessions"`
}

// NewPreview parses the raw goal and level, falling back to maintenance and
// beginner when empty, and generates the plan for the normalized day count.
func NewPreview(days int, goal, level string) (*Preview, error) {
	g := GoalMaintenance
	if goal != "" {
		parsed, err := ParseGoal(goal)
		if err != nil {
			return nil, err
		}
		g = parsed
	}
	l := LevelBeginner
	if level != "" {
		parsed, err := ParseFitnessLevel(level)
		if err != nil {
			return nil, err
		}
		l = parsed
	}

	days = NormalizeDayCount(days)
	return &Preview{
		DayCount: days,
		Goal:     g,
		Level:    l,
		Sessions: Generate(GenerateParams{DayCount: days, Goal: g, Level: l}),
	}, nil
}
