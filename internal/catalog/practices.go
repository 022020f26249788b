package catalog

// Practice is one implementation practice offered at the end of a
// session to anchor the result in daily life.
type Practice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Practices is the fixed list of implementation practices.
var Practices = []Practice{
	{
		ID:          "quick-switch",
		Name:        "Быстрый переключатель",
		Description: "В любой момент дня спроси себя: «Если бы я был этим образом — как бы это ощущалось?» — и дай телу секунду побыть в этом состоянии.",
	},
	{
		ID:          "morning-practice",
		Name:        "Утренняя практика",
		Description: "Каждое утро, перед началом дня: «Как бы образ прожил этот день?» — и отметь одно дело, которое он сделал бы иначе.",
	},
	{
		ID:          "moment-switch",
		Name:        "Переключатель в моменте",
		Description: "Когда замечаешь привычную реакцию — остановись и спроси: «Как бы сейчас действовал образ?» — и сделай один шаг из этого состояния.",
	},
	{
		ID:          "action-check",
		Name:        "Проверка действием",
		Description: "Сделай намеченный конкретный шаг и понаблюдай за ощущениями до, во время и после — что изменилось в теле и состоянии.",
	},
}

// SelectPractice deterministically picks the practice that best anchors
// what the session actually produced: an image anchors through the quick
// switch, a named need through the morning practice, otherwise the
// concrete action check.
func SelectPractice(metaphor, deepNeed string) Practice {
	switch {
	case metaphor != "":
		return Practices[0]
	case deepNeed != "":
		return Practices[1]
	default:
		return Practices[3]
	}
}
