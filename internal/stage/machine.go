package stage

import "strings"

// stallLimit releases a content-gated stage after this many client
// responses even when the required signals never appeared, so a session
// cannot be trapped on one stage indefinitely.
const stallLimit = 6

// ShouldAdvance reports whether the current stage's completion criteria
// are met. Request-validation and somatic-exploration gate on accumulated
// context signals; every other stage advances after its minimum response
// count.
func ShouldAdvance(s State) bool {
	if s.CurrentStage == Finish {
		return false
	}

	switch s.CurrentStage {
	case RequestValidation:
		if s.Context.Criteria.Complete() {
			return true
		}
		return s.StageResponseCount >= stallLimit
	case SomaticExploration:
		if s.Context.Somatic.Complete() {
			return true
		}
		return s.StageResponseCount >= stallLimit
	case NeedDiscovery:
		if s.Context.DeepNeed != "" && s.StageResponseCount >= Config[NeedDiscovery].MinResponses {
			return true
		}
		return s.StageResponseCount >= stallLimit
	}

	min := Config[s.CurrentStage].MinResponses
	if min <= 0 {
		min = 1
	}
	return s.StageResponseCount >= min
}

// Advance returns the successor state: the current stage is appended to
// the history, the next stage in the canonical order becomes current, and
// the per-stage counters reset. The terminal stage advances to itself
// unchanged. Advance never mutates its input; callers replace the
// session's state with the result.
func Advance(s State) State {
	if s.CurrentStage == Finish {
		return s
	}

	next := s
	next.StageHistory = make([]Stage, 0, len(s.StageHistory)+1)
	next.StageHistory = append(next.StageHistory, s.StageHistory...)
	next.StageHistory = append(next.StageHistory, s.CurrentStage)
	next.CurrentStage = Next(s.CurrentStage)
	next.StageResponseCount = 0
	next.CurrentQuestionIndex = 0

	// Mark one-shot sub-steps so later stages do not repeat them.
	if s.CurrentStage == Embodiment {
		next.MovementOffered = true
	}
	if s.CurrentStage == Integration {
		next.IntegrationComplete = true
	}

	return next
}

var deepNeedCues = []string{
	"ощущать себя",
	"чувствовать себя",
	"хочу быть",
}

var bodyCues = []string{
	"груд", "живот", "горл", "голов", "плеч", "спин",
	"солнечное сплетение", "сердц", "рук", "ног", "в теле",
}

// CaptureContext writes the stage-appropriate context field from the
// client's latest turn. Fields already captured are only refined where
// the method allows it (clarified request, deep need); they are never
// cleared.
func CaptureContext(s *State, message string) {
	lower := strings.ToLower(message)

	switch s.CurrentStage {
	case ContextGathering:
		if s.Context.OriginalRequest == "" {
			s.Context.OriginalRequest = message
		}
	case RequestValidation:
		// The latest validated wording wins while the stage is active.
		s.Context.ClarifiedRequest = message
	case StrategyExploration:
		if s.Context.CurrentStrategy == "" {
			s.Context.CurrentStrategy = message
		}
	case NeedDiscovery:
		for _, cue := range deepNeedCues {
			if strings.Contains(lower, cue) {
				s.Context.DeepNeed = message
				break
			}
		}
	case SomaticExploration:
		if s.Context.BodyLocation == "" {
			for _, cue := range bodyCues {
				if strings.Contains(lower, cue) {
					s.Context.BodyLocation = message
					break
				}
			}
		}
	case ImageryCreation:
		if s.Context.Metaphor == "" && !s.ClientSaysIDontKnow {
			s.Context.Metaphor = message
		}
	}
}
