package repository

import "project_cloudi/internal/entities"

// CasualReplies is the fixed table of conversational pleasantries answered
// without touching the FAQ or the generative fallback.
func CasualReplies() entities.PhraseTable {
	return entities.PhraseTable{
		"hi":                "Hey there! 👋",
		"hello":             "Hi! How can I help you today? 😊",
		"hey":               "Heyy! I'm here for you ☁️",
		"how are you":       "I'm just a cloud, but thanks for asking! ☁️ How about you?",
		"what's up":         "Not much, just floating around! ☁️ What's up with you?",
		"whats up":          "Not much, just floating around! ☁️ What's up with you?",
		"help":              "Sure! What do you need help with? 🤔",
		"thanks":            "You're welcome! 😊 If you need anything else, just ask!",
		"thank you":         "No problem! I'm here to help! 😊",
		"thx":               "Anytime! 😊",
		"bye":               "Goodbye! Take care! 👋",
		"goodbye":           "See you later! ☁️",
		"good morning":      "Good morning! ☀️ Let's make today productive!",
		"good evening":      "Good evening! 🌙 How was your day?",
		"good night":        "Good night! Sweet dreams! 🌙✨",
		"who are you":       "I'm Cloudi ☁️, your friendly AI assistant!",
		"what is your name": "I'm Cloudi ☁️! Nice to meet you!",
		"lol":               "Haha, glad I could make you laugh! 😄",
		"awesome":           "I'm so happy you think so! ⭐",
		"cool":              "Right? Pretty cool stuff! 😎",
		"wow":               "I know, right? 🤩",
		"nice":              "Thanks! I try my best! 😊",
	}
}
