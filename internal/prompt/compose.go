// Package prompt composes the per-turn system instruction for the model
// call from the base behavioral rules and the session state. Compose is
// a pure function: identical inputs produce byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mptlab/mpt/internal/catalog"
	"github.com/mptlab/mpt/internal/stage"
)

// Input carries everything Compose needs for one turn.
type Input struct {
	Base       string
	State      stage.State
	Scenario   *catalog.Scenario
	Authorship string
}

// Compose builds the system instruction in a fixed section order: base
// rules, stage guidance, authorship note, client name, importance
// rating, "don't know" coaching, scenario description, request-type
// guidance, closing practice (terminal stage only), progress summary.
func Compose(in Input) string {
	st := in.State
	info := stage.Config[st.CurrentStage]

	var b strings.Builder
	b.WriteString(in.Base)

	b.WriteString("\n\n## ТЕКУЩИЙ ЭТАП: ")
	b.WriteString(info.Name)
	b.WriteString("\n")
	b.WriteString(info.Guidance)

	if in.Authorship != "" {
		b.WriteString("\n\n## ТРАНСФОРМАЦИЯ В АВТОРСТВО:\n")
		b.WriteString(in.Authorship)
	}

	if st.Context.ClientName != "" {
		b.WriteString("\n\n## КОНТЕКСТ КЛИЕНТА:\nИмя клиента: ")
		b.WriteString(st.Context.ClientName)
		b.WriteString(". Используй имя в своих ответах.")
	}

	if st.ImportanceRating != nil {
		fmt.Fprintf(&b, "\nОценка важности запроса: %d/10.", *st.ImportanceRating)
		if *st.ImportanceRating < 8 {
			b.WriteString(" Оценка ниже 8 — это сигнал, что можно поискать более глубокий контекст или более значимую цель.")
		}
	}

	if st.ClientSaysIDontKnow {
		b.WriteString("\n\n## ВНИМАНИЕ: Клиент говорит \"не знаю\"!\nИспользуй технику \"если бы\". Например: \"")
		b.WriteString(info.HelpingQuestion)
		b.WriteString("\"")
	}

	if in.Scenario != nil {
		fmt.Fprintf(&b, "\n\n## ТЕКУЩИЙ СЦЕНАРИЙ: \"%s\"\n%s\nТипичные ключевые слова: %s",
			in.Scenario.Name, in.Scenario.Description, strings.Join(in.Scenario.Keywords, ", "))
	}

	if st.RequestType != stage.RequestGeneral {
		if guidance, ok := catalog.RequestTypeGuidance[st.RequestType]; ok {
			fmt.Fprintf(&b, "\n\n## ТИП ЗАПРОСА КЛИЕНТА: %s\nРекомендуемый подход: %s", st.RequestType, guidance)
		}
	}

	if st.CurrentStage == stage.Finish {
		practice := catalog.SelectPractice(st.Context.Metaphor, st.Context.DeepNeed)
		fmt.Fprintf(&b, "\n\n## ПРАКТИКА ВНЕДРЕНИЯ:\nПредложи клиенту практику: \"%s\" — %s", practice.Name, practice.Description)
	}

	b.WriteString("\n\n## ПРОГРЕСС СЕССИИ:\n- Текущий этап: ")
	b.WriteString(info.Name)
	fmt.Fprintf(&b, " (%d ответов на этапе)\n- Пройденные этапы: %s\n- Собранный контекст:", st.StageResponseCount, historyLine(st.StageHistory))
	writeContextLine(&b, "Изначальный запрос", st.Context.OriginalRequest)
	writeContextLine(&b, "Уточнённый запрос", st.Context.ClarifiedRequest)
	writeContextLine(&b, "Текущая стратегия", st.Context.CurrentStrategy)
	writeContextLine(&b, "Глубинная потребность", st.Context.DeepNeed)
	writeContextLine(&b, "Телесное ощущение", st.Context.BodyLocation)
	writeContextLine(&b, "Образ/метафора", st.Context.Metaphor)

	b.WriteString("\n\n/no_think")
	return b.String()
}

func historyLine(history []stage.Stage) string {
	if len(history) == 0 {
		return "начало сессии"
	}
	names := make([]string, 0, len(history))
	for _, s := range history {
		names = append(names, stage.Name(s))
	}
	return strings.Join(names, " → ")
}

func writeContextLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "\n  - %s: \"%s\"", label, value)
}
