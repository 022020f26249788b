// Package catalog holds the static lookup tables of the MPT method:
// client scenarios, guidance scripts, implementation practices,
// request-type recommendations, and the base behavioral prompt.
// Everything here is read-only declaration data.
package catalog

// Scenario is one thematic class of client request. Keywords are matched
// as case-insensitive substrings; declaration order is the tie-break.
type Scenario struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Scenarios is the fixed scenario catalog. Order matters: the first
// scenario whose first keyword matches wins.
var Scenarios = []Scenario{
	{
		ID:          "burnout",
		Name:        "День сурка",
		Description: "Выгорание, апатия, ощущение бега по кругу, нет энергии и интереса к жизни.",
		Keywords:    []string{"выгор", "апати", "нет сил", "нет энергии", "устал", "всё надоело", "день сурка", "бег по кругу"},
	},
	{
		ID:          "anxiety",
		Name:        "Тревожный звоночек",
		Description: "Паника, тревога, навязчивые мысли, постоянное внутреннее напряжение.",
		Keywords:    []string{"тревог", "тревож", "паник", "паническ", "навязчив", "беспокой", "не могу уснуть", "страшно"},
	},
	{
		ID:          "loneliness",
		Name:        "Островок",
		Description: "Одиночество, изоляция, сложности с близостью и доверием в отношениях.",
		Keywords:    []string{"одинок", "одиноч", "никому не нужен", "изоляц", "нет близких", "не с кем"},
	},
	{
		ID:          "crossroads",
		Name:        "Перекресток",
		Description: "Кризис самоопределения, поиск смысла, ощущение потерянности на развилке жизни.",
		Keywords:    []string{"смысл жизни", "кто я", "потерял себя", "не знаю куда", "самоопределени", "перепутье"},
	},
	{
		ID:          "trauma",
		Name:        "Груз прошлого",
		Description: "Детские травмы, токсичная семья, события прошлого, которые продолжают управлять настоящим.",
		Keywords:    []string{"детств", "травм", "токсичн", "прошлое не отпускает", "родители в детстве"},
	},
	{
		ID:          "loss",
		Name:        "После бури",
		Description: "Утрата, развод, расставание, проживание горя.",
		Keywords:    []string{"утрат", "потер", "развод", "расста", "горе", "умер", "ушла", "ушёл"},
	},
	{
		ID:          "psychosomatic",
		Name:        "Тело взывает о помощи",
		Description: "Психосоматика: телесные симптомы без медицинской причины, зажимы, хроническое напряжение.",
		Keywords:    []string{"психосоматик", "болит без причины", "зажим", "ком в горле", "давит в груди", "телесн"},
	},
	{
		ID:          "inner-critic",
		Name:        "Внутренний критик",
		Description: "Самооценка, перфекционизм, жёсткий внутренний голос, обесценивание себя.",
		Keywords:    []string{"самооценк", "перфекционизм", "критику себя", "я недостаточно", "не получается идеально", "ругаю себя"},
	},
	{
		ID:          "anger",
		Name:        "На взводе",
		Description: "Гнев, раздражительность, вспышки агрессии, сложно сдерживаться.",
		Keywords:    []string{"злюсь", "злость", "гнев", "раздража", "бесит", "срываюсь", "агресси"},
	},
	{
		ID:          "boundaries",
		Name:        "Без якоря",
		Description: "Личные границы, неумение говорить «нет», жизнь чужими ожиданиями.",
		Keywords:    []string{"границ", "не умею отказывать", "не могу сказать нет", "все на мне ездят", "чужие ожидания"},
	},
	{
		ID:          "decisions",
		Name:        "Выбор без выбора",
		Description: "Паралич принятия решений, страх ошибиться, застревание между вариантами.",
		Keywords:    []string{"не могу решить", "не могу выбрать", "паралич решени", "боюсь ошибиться", "между вариантами"},
	},
	{
		ID:          "parenting",
		Name:        "Родительский квест",
		Description: "Детско-родительские отношения: конфликты с детьми, родительская вина и усталость.",
		Keywords:    []string{"ребёнок", "ребенок", "дети", "сын", "дочь", "родительск", "как родитель"},
	},
	{
		ID:          "social",
		Name:        "В тени социума",
		Description: "Социальная тревожность, страх оценки, сложно проявляться среди людей.",
		Keywords:    []string{"стесня", "боюсь выступать", "страх оценки", "неловко среди людей", "социальная тревож"},
	},
	{
		ID:          "mood-swings",
		Name:        "Эмоциональные качели",
		Description: "Нестабильность настроения, перепады от подъёма к упадку.",
		Keywords:    []string{"перепады настроения", "качели", "то смеюсь то плачу", "нестабильн"},
	},
	{
		ID:          "growth",
		Name:        "Просто жизнь",
		Description: "Личностный рост: всё в порядке, но хочется большего — ясности, глубины, развития.",
		Keywords:    []string{"личностный рост", "развити", "хочу большего", "раскрыть потенциал", "следующий уровень"},
	},
}

// FindScenario returns the scenario with the given id.
func FindScenario(id string) (Scenario, bool) {
	for _, s := range Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}
