package entities

import "time"

const recordTimeLayout = "2006-01-02 15:04:05"

// RecordTimestamp formats timestamps the way every flat log stores them.
func RecordTimestamp(t time.Time) string {
	return t.Format(recordTimeLayout)
}

// UnknownQuestionRecord is appended whenever no casual or FAQ match is found,
// before the generative fallback runs. Reviewing this log is how FAQ gaps are
// discovered over time.
type UnknownQuestionRecord struct {
	Question  string `json:"question"`
	Timestamp string `json:"timestamp"`
}

type FeedbackRecord struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Feedback  string `json:"feedback"`
	Timestamp string `json:"timestamp"`
}

// SmsRecord logs an inbound SMS as received, before resolution.
type SmsRecord struct {
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SmsHistoryRecord pairs an inbound SMS with the reply that was sent.
type SmsHistoryRecord struct {
	From      string `json:"from"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}
