package catalog

import "github.com/mptlab/mpt/internal/stage"

// RequestTypeGuidance maps a non-generic request type to the recommended
// way of working with it. Injected into the prompt when the type is known.
var RequestTypeGuidance = map[stage.RequestType]string{
	stage.RequestEmotionalState: "Запрос про эмоциональное состояние. Иди через тело: где живёт это чувство, какое оно, что оно охраняет. Не анализируй эмоцию — исследуй её как ощущение.",
	stage.RequestDecision:       "Запрос про решение. Сначала найди состояние после решения: «Как ты себя почувствуешь, когда это будет решено?» Решение уже есть у клиента — нужен доступ к состоянию.",
	stage.RequestRelational:     "Запрос про отношения. Всё, что клиент говорит о другом — карта его внутренней реальности. Переводи на «это — ты»: «Кто в тебе проявляет это качество?» Возвращай авторство в контакте.",
}
