package catalog

import "strings"

// Script is one guidance template for conducting a session. The session
// follows the same eleven stages regardless of script; the script colors
// the emphasis of the work.
type Script struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Scripts is the fixed script catalog.
var Scripts = []Script{
	{
		ID:          "emotional-regulation",
		Name:        "Работа с эмоциональным состоянием",
		Description: "Скрипт для запросов про тревогу, гнев, перепады настроения: через тело и образ к источнику эмоции.",
	},
	{
		ID:          "energy-recovery",
		Name:        "Возвращение энергии",
		Description: "Скрипт для выгорания и утраты: поиск того, куда уходит энергия, и возвращение доступа к ней.",
	},
	{
		ID:          "relationship-authorship",
		Name:        "Авторство в отношениях",
		Description: "Скрипт для запросов про отношения и границы: возвращение авторства в контакте с другими.",
	},
	{
		ID:          "self-worth",
		Name:        "Опора на себя",
		Description: "Скрипт для самооценки и груза прошлого: обнаружение внутренней опоры вместо внешней оценки.",
	},
	{
		ID:          "decision-clarity",
		Name:        "Точка решения",
		Description: "Скрипт для паралича выбора: состояние после решения как компас для самого решения.",
	},
	{
		ID:          "universal",
		Name:        "Универсальный скрипт МПТ",
		Description: "Полный алгоритм метода без тематической окраски.",
	},
}

// scenarioScripts routes a detected scenario to its script.
var scenarioScripts = map[string]string{
	"anxiety":       "emotional-regulation",
	"anger":         "emotional-regulation",
	"mood-swings":   "emotional-regulation",
	"psychosomatic": "emotional-regulation",
	"burnout":       "energy-recovery",
	"loss":          "energy-recovery",
	"loneliness":    "relationship-authorship",
	"parenting":     "relationship-authorship",
	"social":        "relationship-authorship",
	"boundaries":    "relationship-authorship",
	"inner-critic":  "self-worth",
	"trauma":        "self-worth",
	"crossroads":    "decision-clarity",
	"decisions":     "decision-clarity",
	"growth":        "universal",
}

// ScriptByID returns the script with the given id, or the universal
// script when the id is unknown.
func ScriptByID(id string) Script {
	for _, s := range Scripts {
		if s.ID == id {
			return s
		}
	}
	return ScriptByID("universal")
}

// SelectScript picks the best guidance script for a session. A detected
// scenario decides directly; otherwise coarse message cues choose between
// the decision and emotional scripts, falling back to universal.
func SelectScript(message string, scenarioID string) Script {
	if id, ok := scenarioScripts[scenarioID]; ok {
		return ScriptByID(id)
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "решить") || strings.Contains(lower, "выбор") || strings.Contains(lower, "выбрать"):
		return ScriptByID("decision-clarity")
	case strings.Contains(lower, "чувству") || strings.Contains(lower, "трево") || strings.Contains(lower, "злюсь"):
		return ScriptByID("emotional-regulation")
	}
	return ScriptByID("universal")
}
