// Package classify contains the pure text classifiers that extract
// structured facts from free-text client turns. Every function here is
// deterministic case-insensitive substring or pattern matching — not
// semantic understanding. Absence of a match is a normal result, never
// an error.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mptlab/mpt/internal/catalog"
	"github.com/mptlab/mpt/internal/stage"
)

// Turn is one prior message of the conversation, as seen by classifiers
// that scan history.
type Turn struct {
	Role    string
	Content string
}

// DetectScenario scans the scenario catalog for the first scenario with
// a matching keyword. Catalog declaration order is the tie-break: first
// scenario, first keyword wins.
func DetectScenario(text string) (catalog.Scenario, bool) {
	lower := strings.ToLower(text)
	for _, s := range catalog.Scenarios {
		for _, kw := range s.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return s, true
			}
		}
	}
	return catalog.Scenario{}, false
}

var (
	emotionalCues = []string{
		"чувству", "тревог", "тревож", "страх", "страшно", "злюсь", "злость",
		"грустно", "грусть", "паник", "стыдно", "виноват", "обид", "плачу",
	}
	decisionCues = []string{
		"решить", "решени", "выбор", "выбрать", "не знаю что делать",
		"как поступить", "определиться",
	}
	relationalCues = []string{
		"отношени", "муж", "жена", "партнёр", "партнер", "мама", "папа",
		"мать", "отец", "друг", "коллег", "начальник", "конфликт с",
	}
)

// DetectRequestType maps textual cues of the first client message to the
// kind of goal the client arrived with. Emotional cues win over decision
// cues, decision over relational; the generic type is the fallback.
func DetectRequestType(text string) stage.RequestType {
	lower := strings.ToLower(text)
	for _, cue := range emotionalCues {
		if strings.Contains(lower, cue) {
			return stage.RequestEmotionalState
		}
	}
	for _, cue := range decisionCues {
		if strings.Contains(lower, cue) {
			return stage.RequestDecision
		}
	}
	for _, cue := range relationalCues {
		if strings.Contains(lower, cue) {
			return stage.RequestRelational
		}
	}
	return stage.RequestGeneral
}

var iDontKnowPhrases = []string{
	"не знаю",
	"незнаю",
	"не понимаю",
	"не чувствую",
	"не ощущаю",
	"не представляю",
	"понятия не имею",
	"затрудняюсь",
	"сложно сказать",
	"трудно сказать",
}

// DetectIDontKnow reports whether the turn contains one of the fixed
// "I don't know / don't feel / don't understand" phrase variants.
func DetectIDontKnow(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range iDontKnowPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)меня зовут\s+([A-Za-zА-ЯЁа-яё]+)`),
	regexp.MustCompile(`(?i)мо[её] имя\s*[—-]?\s*([A-Za-zА-ЯЁа-яё]+)`),
	regexp.MustCompile(`(?i)зови меня\s+([A-Za-zА-ЯЁа-яё]+)`),
	regexp.MustCompile(`(?i)^я\s*[—-]\s*([A-Za-zА-ЯЁа-яё]+)`),
}

// ExtractClientName scans prior user turns for a self-introduction and
// returns the first match across the whole history. It never invents a
// name: no pattern match means no name.
func ExtractClientName(history []Turn) string {
	for _, turn := range history {
		if turn.Role != "user" {
			continue
		}
		for _, re := range namePatterns {
			if m := re.FindStringSubmatch(turn.Content); m != nil {
				return m[1]
			}
		}
	}
	return ""
}

var (
	ratingOutOfTen = regexp.MustCompile(`\b(10|[1-9])\s*(?:из|/)\s*10\b`)
	ratingBare     = regexp.MustCompile(`\b(10|[1-9])\b`)
	ratingCues     = []string{"важн", "оцен", "балл", "по шкале"}
)

// ExtractImportanceRating finds a 1-10 numeral in proximity to an
// importance or rating cue ("на 7", "8 из 10"). Returns false when no
// in-range numeral is found near a cue.
func ExtractImportanceRating(text string) (int, bool) {
	lower := strings.ToLower(text)

	if m := ratingOutOfTen.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}

	for _, cue := range ratingCues {
		if strings.Contains(lower, cue) {
			if m := ratingBare.FindStringSubmatch(lower); m != nil {
				n, _ := strconv.Atoi(m[1])
				return n, true
			}
			return 0, false
		}
	}
	return 0, false
}

var (
	criteriaPositive  = []string{"хочу", "хотел бы", "хотела бы", "мне важно получить", "стремлюсь"}
	criteriaAuthored  = []string{"зависит от меня", "я могу", "я сам", "я сама", "моё действие", "мое действие", "в моих силах"}
	criteriaSpecific  = []string{"пойму, что", "замечу", "увижу, что", "конкретно", "будет выглядеть", "изменится"}
	criteriaRealistic = []string{"реально", "реалистично", "достижимо", "возможно для меня", "вполне могу"}
	criteriaMotivated = []string{"почувствую", "буду чувствовать", "буду рад", "буду рада", "вдохновляет", "очень хочу"}
)

// DetectRequestCriteria reports which of the five request-validation
// signals the turn shows. Signals accumulate across turns in the session
// state; this function looks at a single turn.
func DetectRequestCriteria(text string) stage.RequestCriteria {
	lower := strings.ToLower(text)
	return stage.RequestCriteria{
		Positive:  containsAny(lower, criteriaPositive),
		Authored:  containsAny(lower, criteriaAuthored),
		Specific:  containsAny(lower, criteriaSpecific),
		Realistic: containsAny(lower, criteriaRealistic),
		Motivated: containsAny(lower, criteriaMotivated),
	}
}

var (
	somaticSize        = []string{"размер", "большое", "маленькое", "огромное", "с кулак", "во всю грудь"}
	somaticShape       = []string{"форм", "круглое", "шар", "ком", "сгусток", "полоса", "точка"}
	somaticDensity     = []string{"плотн", "лёгк", "легк", "тяжёл", "тяжел", "рыхл", "текуч", "вязк"}
	somaticTemperature = []string{"тепл", "тёпл", "холод", "горяч", "прохлад", "жар", "ледян"}
	somaticMovement    = []string{"движ", "пульсир", "вибрир", "течёт", "течет", "расширя", "сжима", "поднима", "неподвижн"}
)

// DetectSomaticDescriptors reports which of the five body-sensation
// characteristics the turn describes.
func DetectSomaticDescriptors(text string) stage.SomaticDescriptors {
	lower := strings.ToLower(text)
	return stage.SomaticDescriptors{
		Size:        containsAny(lower, somaticSize),
		Shape:       containsAny(lower, somaticShape),
		Density:     containsAny(lower, somaticDensity),
		Temperature: containsAny(lower, somaticTemperature),
		Movement:    containsAny(lower, somaticMovement),
	}
}

func containsAny(lower string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
