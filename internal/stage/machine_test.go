package stage

import "testing"

func TestOrderEndsAtFinish(t *testing.T) {
	if Order[0] != ContextGathering {
		t.Fatalf("first stage = %s", Order[0])
	}
	if Order[len(Order)-1] != Finish {
		t.Fatalf("last stage = %s", Order[len(Order)-1])
	}
	for _, s := range Order {
		if _, ok := Config[s]; !ok {
			t.Fatalf("stage %s has no config", s)
		}
	}
}

func TestAdvanceWalksCanonicalOrder(t *testing.T) {
	st := NewState()

	for i := 0; i < len(Order)-1; i++ {
		if st.CurrentStage != Order[i] {
			t.Fatalf("step %d: stage = %s, want %s", i, st.CurrentStage, Order[i])
		}
		st.StageResponseCount = 3
		st = Advance(st)

		// History must be a duplicate-free prefix of the canonical order
		// ending immediately before the current stage.
		if len(st.StageHistory) != i+1 {
			t.Fatalf("step %d: history length %d", i, len(st.StageHistory))
		}
		for j, h := range st.StageHistory {
			if h != Order[j] {
				t.Fatalf("step %d: history[%d] = %s, want %s", i, j, h, Order[j])
			}
		}
		if st.StageResponseCount != 0 {
			t.Fatalf("step %d: response count not reset", i)
		}
		if st.CurrentQuestionIndex != 0 {
			t.Fatalf("step %d: question index not reset", i)
		}
	}

	if st.CurrentStage != Finish {
		t.Fatalf("final stage = %s", st.CurrentStage)
	}
}

func TestAdvanceTerminalIsIdempotent(t *testing.T) {
	st := NewState()
	st.CurrentStage = Finish
	st.StageHistory = []Stage{ContextGathering}

	got := Advance(st)
	if got.CurrentStage != Finish {
		t.Fatalf("terminal advance moved to %s", got.CurrentStage)
	}
	if len(got.StageHistory) != 1 {
		t.Fatalf("terminal advance touched history: %v", got.StageHistory)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	st := NewState()
	st.StageHistory = []Stage{}

	next := Advance(st)
	if st.CurrentStage != ContextGathering {
		t.Fatalf("input stage mutated to %s", st.CurrentStage)
	}
	if len(st.StageHistory) != 0 {
		t.Fatalf("input history mutated: %v", st.StageHistory)
	}
	if next.CurrentStage != RequestValidation {
		t.Fatalf("next stage = %s", next.CurrentStage)
	}

	// The returned history must not share backing storage with the input.
	next2 := Advance(next)
	if len(next.StageHistory) != 1 || next.StageHistory[0] != ContextGathering {
		t.Fatalf("first result mutated by second advance: %v", next.StageHistory)
	}
	if len(next2.StageHistory) != 2 {
		t.Fatalf("second history = %v", next2.StageHistory)
	}
}

func TestAdvanceMarksOneShotSteps(t *testing.T) {
	st := NewState()
	st.CurrentStage = Embodiment
	st = Advance(st)
	if !st.MovementOffered {
		t.Fatalf("leaving embodiment did not set MovementOffered")
	}

	st.CurrentStage = Integration
	st = Advance(st)
	if !st.IntegrationComplete {
		t.Fatalf("leaving integration did not set IntegrationComplete")
	}
}

func TestShouldAdvanceMinimumResponses(t *testing.T) {
	st := NewState()

	st.StageResponseCount = 1
	if ShouldAdvance(st) {
		t.Fatalf("context-gathering advanced after one response")
	}
	st.StageResponseCount = 2
	if !ShouldAdvance(st) {
		t.Fatalf("context-gathering did not advance at minimum count")
	}
}

func TestShouldAdvanceRequestValidationGatesOnCriteria(t *testing.T) {
	st := NewState()
	st.CurrentStage = RequestValidation
	st.StageResponseCount = 4

	if ShouldAdvance(st) {
		t.Fatalf("advanced without all five criteria")
	}

	st.Context.Criteria = RequestCriteria{Positive: true, Authored: true, Specific: true, Realistic: true, Motivated: true}
	if !ShouldAdvance(st) {
		t.Fatalf("did not advance with complete criteria")
	}
}

func TestShouldAdvanceSomaticGatesOnDescriptors(t *testing.T) {
	st := NewState()
	st.CurrentStage = SomaticExploration
	st.StageResponseCount = 3

	st.Context.Somatic = SomaticDescriptors{Size: true, Shape: true, Density: true, Temperature: true}
	if ShouldAdvance(st) {
		t.Fatalf("advanced with movement descriptor missing")
	}

	st.Context.Somatic.Movement = true
	if !ShouldAdvance(st) {
		t.Fatalf("did not advance with all descriptors present")
	}
}

func TestShouldAdvanceStallLimitReleasesGatedStage(t *testing.T) {
	st := NewState()
	st.CurrentStage = RequestValidation
	st.StageResponseCount = stallLimit

	if !ShouldAdvance(st) {
		t.Fatalf("stall limit did not release the stage")
	}
}

func TestShouldAdvanceNeverAtFinish(t *testing.T) {
	st := NewState()
	st.CurrentStage = Finish
	st.StageResponseCount = 100

	if ShouldAdvance(st) {
		t.Fatalf("terminal stage reported advance")
	}
}

func TestCaptureContextByStage(t *testing.T) {
	st := NewState()
	st.CurrentStage = StrategyExploration
	CaptureContext(&st, "Я постоянно всё откладываю и ругаю себя за это")
	if st.Context.CurrentStrategy == "" {
		t.Fatalf("strategy not captured")
	}
	first := st.Context.CurrentStrategy
	CaptureContext(&st, "другой ответ")
	if st.Context.CurrentStrategy != first {
		t.Fatalf("strategy overwritten: %q", st.Context.CurrentStrategy)
	}

	st.CurrentStage = NeedDiscovery
	CaptureContext(&st, "Я хочу ощущать себя свободным")
	if st.Context.DeepNeed != "Я хочу ощущать себя свободным" {
		t.Fatalf("deep need = %q", st.Context.DeepNeed)
	}

	st.CurrentStage = SomaticExploration
	CaptureContext(&st, "Ощущаю это в груди")
	if st.Context.BodyLocation != "Ощущаю это в груди" {
		t.Fatalf("body location = %q", st.Context.BodyLocation)
	}

	st.CurrentStage = ImageryCreation
	CaptureContext(&st, "Это похоже на тёплый шар света")
	if st.Context.Metaphor == "" {
		t.Fatalf("metaphor not captured")
	}
}

func TestCaptureContextSkipsMetaphorOnIDontKnow(t *testing.T) {
	st := NewState()
	st.CurrentStage = ImageryCreation
	st.ClientSaysIDontKnow = true

	CaptureContext(&st, "не знаю")
	if st.Context.Metaphor != "" {
		t.Fatalf("metaphor captured from a don't-know turn: %q", st.Context.Metaphor)
	}
}

func TestNextAtTerminal(t *testing.T) {
	if got := Next(Finish); got != Finish {
		t.Fatalf("Next(finish) = %s", got)
	}
	if got := Next(ContextGathering); got != RequestValidation {
		t.Fatalf("Next(context-gathering) = %s", got)
	}
}
