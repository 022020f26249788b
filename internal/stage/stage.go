// Package stage owns the MPT session stage catalog, the per-session
// working state, and the transition machine that sequences a session
// through the eleven stages of the method plus the terminal finish stage.
package stage

// Stage identifies one phase of the guided MPT conversation.
type Stage string

const (
	ContextGathering    Stage = "context-gathering"
	RequestValidation   Stage = "request-validation"
	StrategyExploration Stage = "strategy-exploration"
	NeedDiscovery       Stage = "need-discovery"
	SomaticExploration  Stage = "somatic-exploration"
	ImageryCreation     Stage = "imagery-creation"
	Embodiment          Stage = "embodiment-and-movement"
	MetaPerspective     Stage = "meta-perspective"
	Integration         Stage = "integration"
	NewActions          Stage = "new-actions"
	Implementation      Stage = "implementation-practices"
	Finish              Stage = "finish"
)

// Order is the canonical stage sequence. Transitions follow this order
// strictly; skipping or reordering stages is forbidden by the method.
var Order = []Stage{
	ContextGathering,
	RequestValidation,
	StrategyExploration,
	NeedDiscovery,
	SomaticExploration,
	ImageryCreation,
	Embodiment,
	MetaPerspective,
	Integration,
	NewActions,
	Implementation,
	Finish,
}

// Info carries the display metadata and prompting material for one stage.
type Info struct {
	Name            string `json:"name"`
	Guidance        string `json:"-"`
	HelpingQuestion string `json:"-"`
	MinResponses    int    `json:"-"`
}

// Config maps every stage to its metadata. The Russian names are the
// labels shown to the client and echoed in SSE frames.
var Config = map[Stage]Info{
	ContextGathering: {
		Name: "Контекст",
		Guidance: `Пойми ситуацию клиента: что сейчас происходит, что его привело.
Спроси: "Расскажи, что сейчас происходит?" Оцени важность запроса по шкале 1-10.
Если оценка ниже 8 — помоги найти более значимый контекст.`,
		HelpingQuestion: "А если бы ты знал, что сейчас происходит — с чего бы ты начал рассказ?",
		MinResponses:    2,
	},
	RequestValidation: {
		Name: "Уточнение запроса",
		Guidance: `Проверь запрос по пяти критериям, прежде чем двигаться дальше:
позитивность ("Чего ты ХОЧЕШЬ?", а не чего не хочешь), авторство ("Это зависит от тебя?"),
конкретность ("Как ты поймёшь, что получил это?"), реалистичность ("Насколько это реально?"),
мотивация ("Как ты будешь себя чувствовать, когда это получишь?").
Не переходи дальше, пока запрос не проверен по всем пяти критериям.`,
		HelpingQuestion: "А если бы ты точно знал, чего хочешь — как бы это звучало?",
		MinResponses:    2,
	},
	StrategyExploration: {
		Name: "Исследование стратегии",
		Guidance: `Сердце МПТ. Исследуй, что клиент ДЕЛАЕТ для создания своей ситуации:
"Какие действия ты предпринимаешь?", "К какому результату это приводит?",
"Зачем ты это делаешь? Какую важную задачу решаешь?",
"Чему помогает эта стратегия? Какой в ней конструктивный смысл?"
Клиент должен увидеть, что он автор своей стратегии.`,
		HelpingQuestion: "А если бы ты знал, зачем ты это делаешь — какой была бы причина?",
		MinResponses:    3,
	},
	NeedDiscovery: {
		Name: "Поиск потребности",
		Guidance: `Циркулярные вопросы, снятие слоёв: "Когда ты это получишь — что тебе это даст?",
"А что стоит ЗА этим?", "Какую потребность ты тогда реализуешь?", "Есть ли что-то ещё глубже?",
"Кем ты себя будешь ощущать?" Повторяй, пока не выйдешь на формулировку "Я хочу ощущать себя...".`,
		HelpingQuestion: "А если бы ты знал, что стоит за этим желанием — что бы это могло быть?",
		MinResponses:    3,
	},
	SomaticExploration: {
		Name: "Телесная работа",
		Guidance: `Глубокое исследование ощущения. Спроси: "Где в теле ты ощущаешь эту потребность?"
После ответа обязательно выясни ВСЕ характеристики: размер, форму, плотность
(плотное, лёгкое, рыхлое, текучее), температуру (тёплое, холодное, нейтральное)
и движение ("Есть ли движение? Куда оно направлено? Есть ли импульс подвигаться?").
Только после полного описания ощущения переходи к образу.`,
		HelpingQuestion: "А если бы ты чувствовал это в теле — где бы это могло быть?",
		MinResponses:    3,
	},
	ImageryCreation: {
		Name: "Создание образа",
		Guidance: `Из телесного ощущения создай метафору: "Если бы это ощущение могло стать образом —
на что бы оно было похоже?", "Опиши этот образ — как он выглядит?", "Какой у него характер?",
"Сколько в нём энергии?", "Если бы ты мог стать этим образом полностью — как бы ты себя ощущал?"`,
		HelpingQuestion: "А если бы образ всё-таки появился — каким бы он мог быть?",
		MinResponses:    2,
	},
	Embodiment: {
		Name: "Становление образом и движение",
		Guidance: `Предложи клиенту стать образом: "Представь, что ты сейчас — этот образ. Стань им полностью.",
"Что меняется в ощущениях?", "Какое движение хочет родиться из этого?"
После движения обязательно спроси: "Что изменилось в ощущениях?",
"Достаточно ли этого движения, или хочется ещё?"`,
		HelpingQuestion: "А если бы тело само захотело подвигаться — каким было бы это движение?",
		MinResponses:    2,
	},
	MetaPerspective: {
		Name: "Метапозиция",
		Guidance: `Глазами образа смотрим на клиента: "Будучи этим образом, посмотри на клиента. Каким ты его видишь?",
"Как ты смотришь на его жизнь? Что замечаешь?", "Как выглядит его привычная стратегия с твоей позиции?",
"Есть ли что-то, чего он не видит, но что очевидно для тебя?", "Что ты хочешь ему передать? Какое послание?",
"Чему ты учишь его сейчас?" Задай все вопросы метапозиции: взгляд на жизнь, на стратегию, послание.`,
		HelpingQuestion: "А если бы образ мог говорить — что бы он сказал о тебе?",
		MinResponses:    3,
	},
	Integration: {
		Name: "Интеграция",
		Guidance: `Интеграция через тело: "Если бы эта энергия свободно проявлялась через тебя — как бы это ощущалось?",
"Что изменится, если ты перестанешь разделять себя и эту силу?",
"Если бы эта энергия проявлялась через тело — как бы оно двигалось?"
Предложи физическое движение для интеграции и проверь, что изменилось в ощущениях.`,
		HelpingQuestion: "А если бы эта энергия уже была твоей — что бы изменилось прямо сейчас?",
		MinResponses:    2,
	},
	NewActions: {
		Name: "Новые действия",
		Guidance: `SMART-формат: "Из этого нового состояния — как ты можешь действовать по-новому?",
"Какой ОДИН конкретный шаг ты готов сделать в ближайшие 24 часа?",
"Что именно это будет?", "Когда ты это сделаешь?", "Как ты узнаешь, что сделал этот шаг?"
Без конкретного шага сессия не завершена.`,
		HelpingQuestion: "А если бы первый шаг был очевиден — каким бы он был?",
		MinResponses:    2,
	},
	Implementation: {
		Name: "Практики внедрения",
		Guidance: `Обязательный финал. Предложи выбор практики внедрения:
быстрый переключатель, утренняя практика, переключатель в моменте или проверка действием.
Заверши сессию по формату: найденная потребность, образ, новое из метапозиции, первый шаг.`,
		HelpingQuestion: "А если бы одна из практик уже помогала тебе — какая бы это была?",
		MinResponses:    1,
	},
	Finish: {
		Name: "Завершение",
		Guidance: `Сессия завершена. Поблагодари клиента за доверие, перечисли найденное
(потребность, образ, послание метапозиции, первый шаг) и предложи практику внедрения
для закрепления результата. Отвечай на вопросы клиента, не открывая новых этапов.`,
		HelpingQuestion: "А если бы ты уже закрепил результат — с чего бы ты начал завтра?",
		MinResponses:    1,
	},
}

// Next returns the stage that follows s in the canonical order.
// The terminal stage maps to itself.
func Next(s Stage) Stage {
	for i, st := range Order {
		if st == s {
			if i == len(Order)-1 {
				return s
			}
			return Order[i+1]
		}
	}
	return Order[0]
}

// Name returns the display name for a stage, falling back to the raw id.
func Name(s Stage) string {
	if info, ok := Config[s]; ok {
		return info.Name
	}
	return string(s)
}

// Display is one entry of the public stage catalog.
type Display struct {
	ID    Stage  `json:"id"`
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// Catalog returns the ordered stage catalog for the /api/stages endpoint.
func Catalog() []Display {
	out := make([]Display, 0, len(Order))
	for i, s := range Order {
		out = append(out, Display{ID: s, Name: Name(s), Index: i + 1})
	}
	return out
}
