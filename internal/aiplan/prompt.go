package aiplan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/profile"
)

const SystemPrompt = "Você é um personal trainer experiente. Sua função é criar treinos personalizados de acordo com os dados fornecidos pelo usuário, sempre considerando saúde, segurança e evolução gradual. Os treinos devem ser detalhados, simples de seguir, e divididos por dias. O plano deve se ajustar conforme os objetivos, rotina, equipamento disponível e nível atual do aluno. SEMPRE retorne apenas JSON válido, sem texto adicional."

const notInformed = "Não informado"

// UserPrompt describes the user and the expected JSON shape, asking for
// exactly one workout per training day.
func UserPrompt(p profile.Profile) string {
	prefs := p.Preferences
	days := plan.NormalizeDayCount(prefs.TrainingDays)

	groups := "Todos"
	if len(prefs.PreferredMuscleGroups) > 0 {
		groups = strings.Join(prefs.PreferredMuscleGroups, ", ")
	}

	age := notInformed
	if p.Age > 0 {
		age = strconv.Itoa(p.Age)
	}
	weight := notInformed
	if p.WeightKg > 0 {
		weight = strconv.FormatFloat(p.WeightKg, 'f', -1, 64)
	}

	var b strings.Builder
	b.WriteString("Preciso de um plano de treino personalizado com as seguintes informações:\n\n")
	fmt.Fprintf(&b, "1. Objetivo: %s\n", prefs.Goal.Description())
	fmt.Fprintf(&b, "2. Dias por semana: %d\n", days)
	fmt.Fprintf(&b, "3. Nível: %s\n", prefs.FitnessLevel.Difficulty())
	fmt.Fprintf(&b, "4. Grupos musculares preferidos: %s\n", groups)
	b.WriteString("5. Tenho acesso a academia completa\n")
	fmt.Fprintf(&b, "6. Idade: %s anos, Peso: %s kg\n\n", age, weight)
	b.WriteString(`IMPORTANTE:
- Retorne APENAS um JSON válido com a seguinte estrutura
- TODOS os nomes de exercícios devem estar em PORTUGUÊS BRASILEIRO
- Use nomes tradicionais brasileiros para os exercícios

{
  "workouts": [
    {
      "day": "Segunda-feira",
      "exercises": [
        {
          "name": "Nome do exercício em português",
          "sets": 3,
          "reps": "12-15",
          "rest": 60,
          "instructions": "Instruções detalhadas em português"
        }
      ]
    }
  ]
}

Exemplos de nomes corretos em português:
- Supino Reto (não Bench Press)
- Agachamento (não Squats)
- Remada Curvada (não Bent Over Rows)
- Rosca Direta (não Bicep Curls)
- Desenvolvimento (não Shoulder Press)
- Leg Press (este pode ficar)
- Stiff (este pode ficar)
- Prancha (não Plank)

`)
	fmt.Fprintf(&b, "Crie exatamente %d treinos diferentes, um para cada dia da semana que treina.\n", days)
	return b.String()
}
