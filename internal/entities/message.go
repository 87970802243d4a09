package entities

// ConversationTurn is one question/answer pair kept in a web session.
type ConversationTurn struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"` // wall-clock "15:04" for rendering
}

// PhraseTable maps a normalized trigger phrase to its reply. Tables are
// loaded once at startup and never mutated, so concurrent reads need no
// locking.
type PhraseTable map[string]string
