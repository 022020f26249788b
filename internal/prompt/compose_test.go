package prompt

import (
	"strings"
	"testing"

	"github.com/mptlab/mpt/internal/catalog"
	"github.com/mptlab/mpt/internal/stage"
)

func baseInput() Input {
	st := stage.NewState()
	st.Context.OriginalRequest = "Мне тревожно"
	return Input{Base: catalog.BasePrompt, State: st}
}

func TestComposeIsPure(t *testing.T) {
	in := baseInput()
	rating := 5
	in.State.ImportanceRating = &rating
	in.State.StageHistory = []stage.Stage{stage.ContextGathering}
	in.State.CurrentStage = stage.RequestValidation

	a := Compose(in)
	b := Compose(in)
	if a != b {
		t.Fatalf("Compose is not byte-identical across calls")
	}
}

func TestComposeSectionOrder(t *testing.T) {
	in := baseInput()
	in.Authorship = "Клиент сказал: «меня заставили»."
	in.State.Context.ClientName = "Андрей"
	rating := 9
	in.State.ImportanceRating = &rating
	sc, _ := catalog.FindScenario("anxiety")
	in.Scenario = &sc
	in.State.RequestType = stage.RequestEmotionalState

	out := Compose(in)

	markers := []string{
		"## ТЕКУЩИЙ ЭТАП:",
		"## ТРАНСФОРМАЦИЯ В АВТОРСТВО:",
		"## КОНТЕКСТ КЛИЕНТА:",
		"Оценка важности запроса: 9/10.",
		"## ТЕКУЩИЙ СЦЕНАРИЙ:",
		"## ТИП ЗАПРОСА КЛИЕНТА:",
		"## ПРОГРЕСС СЕССИИ:",
	}

	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx < 0 {
			t.Fatalf("section %q missing from prompt", m)
		}
		if idx < last {
			t.Fatalf("section %q out of order", m)
		}
		last = idx
	}

	if !strings.HasSuffix(out, "/no_think") {
		t.Fatalf("prompt does not end with the no-think directive")
	}
}

func TestComposeLowImportanceAddsCaution(t *testing.T) {
	in := baseInput()
	rating := 5
	in.State.ImportanceRating = &rating

	out := Compose(in)
	if !strings.Contains(out, "Оценка важности запроса: 5/10.") {
		t.Fatalf("rating line missing")
	}
	if !strings.Contains(out, "Оценка ниже 8") {
		t.Fatalf("low-rating caution missing")
	}

	rating = 8
	out = Compose(in)
	if strings.Contains(out, "Оценка ниже 8") {
		t.Fatalf("caution present for rating 8")
	}
}

func TestComposeDontKnowNote(t *testing.T) {
	in := baseInput()
	in.State.ClientSaysIDontKnow = true

	out := Compose(in)
	if !strings.Contains(out, "Клиент говорит \"не знаю\"") {
		t.Fatalf("don't-know note missing")
	}
	if !strings.Contains(out, stage.Config[in.State.CurrentStage].HelpingQuestion) {
		t.Fatalf("helping question for current stage missing")
	}
}

func TestComposeFinishIncludesPractice(t *testing.T) {
	in := baseInput()
	in.State.CurrentStage = stage.Finish
	in.State.Context.Metaphor = "тёплый шар света"

	out := Compose(in)
	if !strings.Contains(out, "## ПРАКТИКА ВНЕДРЕНИЯ:") {
		t.Fatalf("practice section missing in terminal stage")
	}
	if !strings.Contains(out, catalog.Practices[0].Name) {
		t.Fatalf("metaphor-anchored practice not selected")
	}
}

func TestComposeProgressSummaryListsContext(t *testing.T) {
	in := baseInput()
	in.State.StageHistory = []stage.Stage{stage.ContextGathering, stage.RequestValidation}
	in.State.Context.ClarifiedRequest = "Хочу спокойно выступать"
	in.State.Context.DeepNeed = "Хочу ощущать себя свободным"

	out := Compose(in)
	if !strings.Contains(out, "Контекст → Уточнение запроса") {
		t.Fatalf("stage history line missing")
	}
	if !strings.Contains(out, "Уточнённый запрос: \"Хочу спокойно выступать\"") {
		t.Fatalf("clarified request missing from summary")
	}
	if !strings.Contains(out, "Глубинная потребность") {
		t.Fatalf("deep need missing from summary")
	}
}

func TestComposeEmptyHistoryLabel(t *testing.T) {
	out := Compose(baseInput())
	if !strings.Contains(out, "Пройденные этапы: начало сессии") {
		t.Fatalf("empty history label missing")
	}
}

func TestComposeGeneralRequestTypeOmitted(t *testing.T) {
	in := baseInput()
	in.State.RequestType = stage.RequestGeneral

	if strings.Contains(Compose(in), "## ТИП ЗАПРОСА КЛИЕНТА:") {
		t.Fatalf("request-type section present for generic type")
	}
}
