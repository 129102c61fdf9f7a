package plan

var catalog = map[int][]DayTemplate{
	2: {
		{Day: "Segunda", Title: "Treino A - Corpo Superior", Exercises: []Exercise{
			{Name: "Supino Reto", Sets: 4, Reps: 10, ExerciseID: 88, Rest: "90s"},
			{Name: "Remada Curvada", Sets: 4, Reps: 10, ExerciseID: 84, Rest: "90s"},
			{Name: "Desenvolvimento", Sets: 3, Reps: 12, ExerciseID: 91, Rest: "60s"},
			{Name: "Rosca Direta", Sets: 3, Reps: 12, ExerciseID: 92, Rest: "60s"},
			{Name: "Tríceps Testa", Sets: 3, Reps: 12, ExerciseID: 93, Rest: "60s"},
		}},
		{Day: "Quinta", Title: "Treino B - Corpo Inferior", Exercises: []Exercise{
			{Name: "Agachamento", Sets: 4, Reps: 12, ExerciseID: 111, Rest: "90s"},
			{Name: "Leg Press", Sets: 4, Reps: 15, ExerciseID: 345, Rest: "90s"},
			{Name: "Mesa Flexora", Sets: 3, Reps: 12, ExerciseID: 456, Rest: "60s"},
			{Name: "Panturrilha", Sets: 4, Reps: 20, ExerciseID: 576, Rest: "45s"},
			{Name: "Abdômen", Sets: 3, Reps: 20, ExerciseID: 234, Rest: "45s"},
		}},
	},
	3: {
		{Day: "Segunda", Title: "Treino A - Peito e Tríceps", Exercises: []Exercise{
			{Name: "Supino Reto", Sets: 4, Reps: 10, ExerciseID: 88, Rest: "90s"},
			{Name: "Supino Inclinado", Sets: 3, Reps: 12, ExerciseID: 89, Rest: "90s"},
			{Name: "Crossover", Sets: 3, Reps: 12, ExerciseID: 90, Rest: "60s"},
			{Name: "Tríceps Pulley", Sets: 4, Reps: 12, ExerciseID: 94, Rest: "60s"},
			{Name: "Tríceps Testa", Sets: 3, Reps: 12, ExerciseID: 93, Rest: "60s"},
		}},
		{Day: "Quarta", Title: "Treino B - Costas e Bíceps", Exercises: []Exercise{
			{Name: "Barra Fixa", Sets: 4, Reps: 8, ExerciseID: 154, Rest: "90s"},
			{Name: "Remada Curvada", Sets: 4, Reps: 10, ExerciseID: 84, Rest: "90s"},
			{Name: "Puxada Triangular", Sets: 3, Reps: 12, ExerciseID: 513, Rest: "60s"},
			{Name: "Rosca Direta", Sets: 4, Reps: 12, ExerciseID: 92, Rest: "60s"},
			{Name: "Rosca Martelo", Sets: 3, Reps: 12, ExerciseID: 272, Rest: "45s"},
		}},
		{Day: "Sexta", Title: "Treino C - Pernas e Glúteos", Exercises: []Exercise{
			{Name: "Agachamento", Sets: 5, Reps: 10, ExerciseID: 111, Rest: "120s"},
			{Name: "Leg Press", Sets: 4, Reps: 15, ExerciseID: 345, Rest: "90s"},
			{Name: "Cadeira Extensora", Sets: 3, Reps: 15, ExerciseID: 127, Rest: "60s"},
			{Name: "Mesa Flexora", Sets: 3, Reps: 12, ExerciseID: 456, Rest: "60s"},
			{Name: "Panturrilha", Sets: 4, Reps: 20, ExerciseID: 576, Rest: "45s"},
		}},
	},
	4: {
		{Day: "Segunda", Title: "Treino A - Peito e Tríceps", Exercises: []Exercise{
			{Name: "Supino Reto", Sets: 4, Reps: 10, ExerciseID: 88, Rest: "90s"},
			{Name: "Supino Inclinado", Sets: 3, Reps: 12, ExerciseID: 89, Rest: "90s"},
			{Name: "Crossover", Sets: 3, Reps: 12, ExerciseID: 90, Rest: "60s"},
			{Name: "Tríceps Pulley", Sets: 4, Reps: 12, ExerciseID: 94, Rest: "60s"},
		}},
		{Day: "Terça", Title: "Treino B - Costas e Bíceps", Exercises: []Exercise{
			{Name: "Barra Fixa", Sets: 4, Reps: 8, ExerciseID: 154, Rest: "90s"},
			{Name: "Remada Curvada", Sets: 4, Reps: 10, ExerciseID: 84, Rest: "90s"},
			{Name: "Puxada Triangular", Sets: 3, Reps: 12, ExerciseID: 513, Rest: "60s"},
			{Name: "Rosca Direta", Sets: 4, Reps: 12, ExerciseID: 92, Rest: "60s"},
		}},
		{Day: "Quinta", Title: "Treino C - Quadríceps e Glúteos", Exercises: []Exercise{
			{Name: "Agachamento", Sets: 5, Reps: 10, ExerciseID: 111, Rest: "120s"},
			{Name: "Leg Press", Sets: 4, Reps: 15, ExerciseID: 345, Rest: "90s"},
			{Name: "Cadeira Extensora", Sets: 3, Reps: 15, ExerciseID: 127, Rest: "60s"},
			{Name: "Afundo", Sets: 3, Reps: 12, ExerciseID: 456, Rest: "60s"},
		}},
		{Day: "Sexta", Title: "Treino D - Ombros e Funcional", Exercises: []Exercise{
			{Name: "Desenvolvimento", Sets: 4, Reps: 10, ExerciseID: 91, Rest: "90s"},
			{Name: "Elevação Lateral", Sets: 3, Reps: 12, ExerciseID: 95, Rest: "60s"},
			{Name: "Burpees", Sets: 3, Reps: 10, ExerciseID: 234, Rest: "60s"},
			{Name: "Prancha", Sets: 3, Reps: 60, ExerciseID: 235, Rest: "45s"},
		}},
	},
	5: {
		{Day: "Segunda", Title: "Treino A - Peito", Exercises: []Exercise{
			{Name: "Supino Reto", Sets: 4, Reps: 10, ExerciseID: 88, Rest: "90s"},
			{Name: "Supino Inclinado", Sets: 4, Reps: 12, ExerciseID: 89, Rest: "90s"},
			{Name: "Crossover", Sets: 3, Reps: 12, ExerciseID: 90, Rest: "60s"},
			{Name: "Flexão", Sets: 3, Reps: 15, ExerciseID: 236, Rest: "60s"},
		}},
		{Day: "Terça", Title: "Treino B - Costas", Exercises: []Exercise{
			{Name: "Barra Fixa", Sets: 4, Reps: 8, ExerciseID: 154, Rest: "90s"},
			{Name: "Remada Curvada", Sets: 4, Reps: 10, ExerciseID: 84, Rest: "90s"},
			{Name: "Puxada Triangular", Sets: 3, Reps: 12, ExerciseID: 513, Rest: "60s"},
			{Name: "Pullover", Sets: 3, Reps: 12, ExerciseID: 185, Rest: "60s"},
		}},
		{Day: "Quarta", Title: "Treino C - Pernas", Exercises: []Exercise{
			{Name: "Agachamento", Sets: 5, Reps: 10, ExerciseID: 111, Rest: "120s"},
			{Name: "Leg Press", Sets: 4, Reps: 15, ExerciseID: 345, Rest: "90s"},
			{Name: "Mesa Flexora", Sets: 4, Reps: 12, ExerciseID: 456, Rest: "60s"},
			{Name: "Panturrilha", Sets: 4, Reps: 20, ExerciseID: 576, Rest: "45s"},
		}},
		{Day: "Quinta", Title: "Treino D - Ombros e Braços", Exercises: []Exercise{
			{Name: "Desenvolvimento", Sets: 4, Reps: 10, ExerciseID: 91, Rest: "90s"},
			{Name: "Elevação Lateral", Sets: 3, Reps: 12, ExerciseID: 95, Rest: "60s"},
			{Name: "Rosca Direta", Sets: 4, Reps: 12, ExerciseID: 92, Rest: "60s"},
			{Name: "Tríceps Pulley", Sets: 4, Reps: 12, ExerciseID: 94, Rest: "60s"},
		}},
		{Day: "Sexta", Title: "Treino E - Funcional e Abdômen", Exercises: []Exercise{
			{Name: "Burpees", Sets: 4, Reps: 10, ExerciseID: 234, Rest: "90s"},
			{Name: "Mountain Climbers", Sets: 3, Reps: 20, ExerciseID: 237, Rest: "60s"},
			{Name: "Prancha", Sets: 3, Reps: 60, ExerciseID: 235, Rest: "45s"},
			{Name: "Abdômen", Sets: 4, Reps: 20, ExerciseID: 238, Rest: "45s"},
		}},
	},
	6: {
		{Day: "Segunda", Title: "Treino A - Peito", Exercises: []Exercise{
			{Name: "Supino Reto", Sets: 4, Reps: 10, ExerciseID: 88, Rest: "90s"},
			{Name: "Supino Inclinado", Sets: 4, Reps: 12, ExerciseID: 89, Rest: "90s"},
			{Name: "Crossover", Sets: 3, Reps: 12, ExerciseID: 90, Rest: "60s"},
		}},
		{Day: "Terça", Title: "Treino B - Costas", Exercises: []Exercise{
			{Name: "Barra Fixa", Sets: 4, Reps: 8, ExerciseID: 154, Rest: "90s"},
			{Name: "Remada Curvada", Sets: 4, Reps: 10, ExerciseID: 84, Rest: "90s"},
			{Name: "Puxada Triangular", Sets: 3, Reps: 12, ExerciseID: 513, Rest: "60s"},
		}},
		{Day: "Quarta", Title: "Treino C - Quadríceps", Exercises: []Exercise{
			{Name: "Agachamento", Sets: 5, Reps: 10, ExerciseID: 111, Rest: "120s"},
			{Name: "Leg Press", Sets: 4, Reps: 15, ExerciseID: 345, Rest: "90s"},
			{Name: "Cadeira Extensora", Sets: 3, Reps: 15, ExerciseID: 127, Rest: "60s"},
		}},
		{Day: "Quinta", Title: "Treino D - Ombros e Braços", Exercises: []Exercise{
			{Name: "Desenvolvimento", Sets: 4, Reps: 10, ExerciseID: 91, Rest: "90s"},
			{Name: "Rosca Direta", Sets: 4, Reps: 12, ExerciseID: 92, Rest: "60s"},
			{Name: "Tríceps Pulley", Sets: 4, Reps: 12, ExerciseID: 94, Rest: "60s"},
		}},
		{Day: "Sexta", Title: "Treino E - Posteriores", Exercises: []Exercise{
			{Name: "Mesa Flexora", Sets: 4, Reps: 12, ExerciseID: 456, Rest: "90s"},
			{Name: "Stiff", Sets: 4, Reps: 10, ExerciseID: 239, Rest: "90s"},
			{Name: "Panturrilha", Sets: 4, Reps: 20, ExerciseID: 576, Rest: "45s"},
		}},
		{Day: "Sábado", Title: "Treino F - Funcional e Cardio", Exercises: []Exercise{
			{Name: "Burpees", Sets: 4, Reps: 10, ExerciseID: 234, Rest: "90s"},
			{Name: "Mountain Climbers", Sets: 3, Reps: 20, ExerciseID: 237, Rest: "60s"},
			{Name: "Prancha", Sets: 3, Reps: 60, ExerciseID: 235, Rest: "45s"},
			{Name: "Abdômen", Sets: 4, Reps: 20, ExerciseID: 238, Rest: "45s"},
		}},
	},
}

// NormalizeDayCount maps out of range or absent day counts to DefaultDayCount.
func NormalizeDayCount(days int) int {
	if days < MinDayCount || days > MaxDayCount {
		return DefaultDayCount
	}
	return days
}

// Catalog returns a copy of the templates for the given day count, after
// normalization. Callers may mutate the result freely.
func Catalog(days int) []DayTemplate {
	src := catalog[NormalizeDayCount(days)]
	out := make([]DayTemplate, len(src))
	for i, d := range src {
		out[i] = DayTemplate{
			Day:       d.Day,
			Title:     d.Title,
			Exercises: append([]Exercise(nil), d.Exercises...),
		}
	}
	return out
}

// DayCounts lists the day counts the catalog covers, ascending.
func DayCounts() []int {
	out := make([]int, 0, MaxDayCount-MinDayCount+1)
	for d := MinDayCount; d <= MaxDayCount; d++ {
		out = append(out, d)
	}
	return out
}
