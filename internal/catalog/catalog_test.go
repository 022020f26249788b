package catalog

import "testing"

func TestScenarioCatalogShape(t *testing.T) {
	if len(Scenarios) != 15 {
		t.Fatalf("scenario count = %d, want 15", len(Scenarios))
	}

	seen := make(map[string]bool)
	for _, sc := range Scenarios {
		if sc.ID == "" || sc.Name == "" || sc.Description == "" {
			t.Fatalf("scenario %q has empty fields", sc.ID)
		}
		if len(sc.Keywords) == 0 {
			t.Fatalf("scenario %q has no keywords", sc.ID)
		}
		if seen[sc.ID] {
			t.Fatalf("duplicate scenario id %q", sc.ID)
		}
		seen[sc.ID] = true
	}
}

func TestFindScenario(t *testing.T) {
	sc, ok := FindScenario("burnout")
	if !ok {
		t.Fatalf("burnout scenario not found")
	}
	if sc.ID != "burnout" {
		t.Fatalf("id = %s", sc.ID)
	}

	if _, ok := FindScenario("unknown"); ok {
		t.Fatalf("found a scenario that does not exist")
	}
}

func TestEveryScenarioRoutesToAScript(t *testing.T) {
	for _, sc := range Scenarios {
		id, ok := scenarioScripts[sc.ID]
		if !ok {
			t.Fatalf("scenario %q has no script route", sc.ID)
		}
		if got := ScriptByID(id); got.ID != id {
			t.Fatalf("scenario %q routes to unknown script %q", sc.ID, id)
		}
	}
}

func TestScriptByIDFallsBackToUniversal(t *testing.T) {
	if got := ScriptByID("no-such-script"); got.ID != "universal" {
		t.Fatalf("fallback script = %s", got.ID)
	}
	if got := ScriptByID("energy-recovery"); got.ID != "energy-recovery" {
		t.Fatalf("lookup = %s", got.ID)
	}
}

func TestSelectScript(t *testing.T) {
	cases := []struct {
		name       string
		message    string
		scenarioID string
		want       string
	}{
		{"scenario decides", "любой текст", "burnout", "energy-recovery"},
		{"decision cue", "Не могу сделать выбор между двумя путями", "", "decision-clarity"},
		{"emotional cue", "Я чувствую постоянное напряжение", "", "emotional-regulation"},
		{"no cue", "Хочу поговорить о жизни", "", "universal"},
		{"unknown scenario falls to cues", "мне тревожно", "nonexistent", "emotional-regulation"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SelectScript(tc.message, tc.scenarioID); got.ID != tc.want {
				t.Fatalf("script = %s, want %s", got.ID, tc.want)
			}
		})
	}
}

func TestSelectPractice(t *testing.T) {
	if got := SelectPractice("тёплый шар", "свобода"); got.ID != "quick-switch" {
		t.Fatalf("with metaphor: %s", got.ID)
	}
	if got := SelectPractice("", "хочу ощущать опору"); got.ID != "morning-practice" {
		t.Fatalf("with deep need only: %s", got.ID)
	}
	if got := SelectPractice("", ""); got.ID != "action-check" {
		t.Fatalf("with nothing captured: %s", got.ID)
	}
}
