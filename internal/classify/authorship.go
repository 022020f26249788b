package classify

import (
	"fmt"
	"strings"
)

// authorshipPair maps a victim-voice phrasing to its author-voice
// reframing. The table is fixed; declaration order is the tie-break.
type authorshipPair struct {
	victim string
	author string
}

var authorshipTable = []authorshipPair{
	{"меня заставили", "я позволил..."},
	{"меня заставляют", "я позволяю..."},
	{"на меня давят", "я давлю на себя..."},
	{"на меня давит", "я давлю на себя..."},
	{"меня обидели", "я обиделся, когда..."},
	{"меня бесит", "я злюсь, когда..."},
	{"живу не своей жизнью", "я делаю так, что живу не своей жизнью"},
	{"сижу в клетке", "я сажаю себя в клетку"},
	{"мне мешают", "я встречаю препятствие, когда..."},
	{"меня не ценят", "я не даю себе ценности, когда..."},
}

// TransformToAuthorship pattern-matches victim-voice phrasings and
// returns an advisory reframing note for the next prompt, or "" when no
// pattern matches. The client's message itself is never mutated.
func TransformToAuthorship(text string) string {
	lower := strings.ToLower(text)
	for _, pair := range authorshipTable {
		if strings.Contains(lower, pair.victim) {
			return fmt.Sprintf("Клиент сказал: «%s». Немедленно и мягко верни авторство — предложи формулировку: «%s»", pair.victim, pair.author)
		}
	}
	return ""
}
