package usecases

import (
	"math/rand"

	"project_cloudi/internal/entities"
)

// flavorPrefixes are prepended, coin-flip, ahead of FAQ and generated answers.
var flavorPrefixes = []string{
	"Sure thing! Here's what I found for you ☁️\n\n",
	"Here's the info you asked for 📘\n\n",
	"Let me explain that for you 🧓\n\n",
	"Great question! Here's what I know ✨\n\n",
	"I've got you covered! 🎯\n\n",
}

// Rand is the randomness the styler consumes. *rand.Rand satisfies it; tests
// substitute fixed sources to pin both branches of the coin flip.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Styler decorates answers per mood. Decoration only: the core answer text is
// always preserved verbatim inside the styled result.
type Styler struct {
	rng Rand
}

func NewStyler(rng Rand) *Styler {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Styler{rng: rng}
}

// Stylize applies the optional flavor prefix, then the mood transform.
// Casual replies pass applyPrefix=false since they are already short and
// pre-styled. Unrecognized moods pass the text through untouched.
func (s *Styler) Stylize(answer string, mood entities.Mood, applyPrefix bool) string {
	if applyPrefix && s.rng.Float64() < 0.5 {
		answer = flavorPrefixes[s.rng.Intn(len(flavorPrefixes))] + answer
	}
	switch mood {
	case entities.MoodFriendly:
		return answer + " 😊"
	case entities.MoodFormal:
		return "Certainly. " + answer
	case entities.MoodFunny:
		return answer + " 😄"
	case entities.MoodMotivational:
		return answer + " Keep going, you're doing great! 🚀"
	case entities.MoodSassy:
		return "Well, " + answer + " 💅"
	default:
		return answer
	}
}
