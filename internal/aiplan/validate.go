package aiplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/2beens/fitplanner/internal/plan"
)

const (
	MinWorkouts = 1
	MaxWorkouts = 7
)

var (
	repsRe = regexp.MustCompile(`^\s*(\d+)\s*(?:-\s*(\d+)\s*)?$`)
	restRe = regexp.MustCompile(`^\s*(\d+)\s*s\s*$`)
)

// FieldError is one schema problem of an AI plan, located by a JSON path
// like "workouts[1].exercises[0].sets".
type FieldError struct {
	Path    string `json:"path"`
	Problem string `json:"problem"`
}

func (e FieldError) Error() string {
	return e.Path + ": " + e.Problem
}

// ValidationError aggregates every schema problem of an AI plan.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "invalid ai plan: " + strings.Join(msgs, "; ")
}

// Workout is a validated AI workout.
type Workout struct {
	Day       string
	Exercises []plan.Exercise
}

// Validate checks a raw AI plan document against the expected schema and
// converts it. No partial result is returned: any problem fails the plan.
func Validate(raw json.RawMessage) ([]Workout, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, ErrUnparsableResponse
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, newValidationError(FieldError{Path: "$", Problem: "must be an object"})
	}

	rawWorkouts, ok := root["workouts"]
	if !ok {
		return nil, newValidationError(FieldError{Path: "workouts", Problem: "is required"})
	}
	list, ok := rawWorkouts.([]any)
	if !ok {
		return nil, newValidationError(FieldError{Path: "workouts", Problem: "must be an array"})
	}
	if len(list) < MinWorkouts || len(list) > MaxWorkouts {
		return nil, newValidationError(FieldError{
			Path:    "workouts",
			Problem: fmt.Sprintf("must hold %d to %d entries, got %d", MinWorkouts, MaxWorkouts, len(list)),
		})
	}

	var errs error
	workouts := make([]Workout, 0, len(list))
	for i, item := range list {
		w, err := validateWorkout(fmt.Sprintf("workouts[%d]", i), item)
		errs = multierr.Append(errs, err)
		workouts = append(workouts, w)
	}

	if errs != nil {
		verr := &ValidationError{}
		for _, e := range multierr.Errors(errs) {
			if fe, ok := e.(FieldError); ok {
				verr.Fields = append(verr.Fields, fe)
			}
		}
		return nil, verr
	}

	return workouts, nil
}

func newValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func validateWorkout(path string, item any) (Workout, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Workout{}, FieldError{Path: path, Problem: "must be an object"}
	}

	var errs error
	w := Workout{}

	day, ok := obj["day"].(string)
	if !ok || strings.TrimSpace(day) == "" {
		errs = multierr.Append(errs, FieldError{Path: path + ".day", Problem: "must be a non-empty string"})
	}
	w.Day = strings.TrimSpace(day)

	exercises, ok := obj["exercises"].([]any)
	if !ok || len(exercises) == 0 {
		errs = multierr.Append(errs, FieldError{Path: path + ".exercises", Problem: "must hold at least one exercise"})
		return w, errs
	}

	for i, item := range exercises {
		ex, err := validateExercise(fmt.Sprintf("%s.exercises[%d]", path, i), item)
		errs = multierr.Append(errs, err)
		w.Exercises = append(w.Exercises, ex)
	}

	return w, errs
}

func validateExercise(path string, item any) (plan.Exercise, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return plan.Exercise{}, FieldError{Path: path, Problem: "must be an object"}
	}

	var errs error
	ex := plan.Exercise{}

	name, ok := obj["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		errs = multierr.Append(errs, FieldError{Path: path + ".name", Problem: "must be a non-empty string"})
	}
	ex.Name = strings.TrimSpace(name)

	sets, ok := positiveInt(obj["sets"])
	if !ok {
		errs = multierr.Append(errs, FieldError{Path: path + ".sets", Problem: "must be a positive integer"})
	}
	ex.Sets = sets

	reps, ok := parseReps(obj["reps"])
	if !ok {
		errs = multierr.Append(errs, FieldError{Path: path + ".reps", Problem: `must be a positive integer or a "N" / "N-M" string`})
	}
	ex.Reps = reps

	rest, ok := parseRest(obj["rest"])
	if !ok {
		errs = multierr.Append(errs, FieldError{Path: path + ".rest", Problem: `must be positive seconds or a "<n>s" string`})
	}
	ex.Rest = plan.FormatRest(rest)

	if instr, present := obj["instructions"]; present && instr != nil {
		s, ok := instr.(string)
		if !ok {
			errs = multierr.Append(errs, FieldError{Path: path + ".instructions", Problem: "must be a string"})
		}
		ex.Instructions = strings.TrimSpace(s)
	}

	return ex, errs
}

func positiveInt(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(n.String())
	if err != nil || i <= 0 {
		return 0, false
	}
	return i, true
}

// parseReps accepts 12, "12" and "12-15"; ranges resolve to the lower bound.
func parseReps(v any) (int, bool) {
	if s, ok := v.(string); ok {
		m := repsRe.FindStringSubmatch(s)
		if m == nil {
			return 0, false
		}
		low, err := strconv.Atoi(m[1])
		if err != nil || low <= 0 {
			return 0, false
		}
		if m[2] != "" {
			high, err := strconv.Atoi(m[2])
			if err != nil || high < low {
				return 0, false
			}
		}
		return low, true
	}
	return positiveInt(v)
}

// parseRest accepts 60 and "60s".
func parseRest(v any) (int, bool) {
	if s, ok := v.(string); ok {
		m := restRe.FindStringSubmatch(s)
		if m == nil {
			return 0, false
		}
		sec, err := strconv.Atoi(m[1])
		if err != nil || sec <= 0 {
			return 0, false
		}
		return sec, true
	}
	return positiveInt(v)
}
