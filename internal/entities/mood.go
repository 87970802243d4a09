package entities

// Mood is a personality preset controlling answer decoration, not content.
type Mood string

const (
	MoodFormal       Mood = "formal"
	MoodFriendly     Mood = "friendly"
	MoodFunny        Mood = "funny"
	MoodMotivational Mood = "motivational"
	MoodSassy        Mood = "sassy"
)

// ResolveMood picks the effective mood for a request: the explicit request
// value wins, then the session's stored mood, then formal.
func ResolveMood(requested string, stored Mood) Mood {
	if requested != "" {
		return Mood(requested)
	}
	if stored != "" {
		return stored
	}
	return MoodFormal
}
