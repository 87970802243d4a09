package usecases

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"project_cloudi/internal/entities"
	"project_cloudi/internal/interfaces"
)

// Branch identifies which pipeline stage produced the answer.
type Branch int

const (
	BranchValidation Branch = iota
	BranchCasual
	BranchFAQ
	BranchFallback
)

// Validation messages surface directly to the user; the validation path never
// reaches logging, matching, or the generative fallback.
const (
	MsgEmptyInput   = "Please enter a message"
	MsgInputTooLong = "Message too long. Please keep it under 500 characters."

	MaxInputLength = 500
)

// UnknownQuestionLog is the flat log fed by unmatched questions.
const UnknownQuestionLog = "learning_log.json"

// Resolver runs the response pipeline: validate, casual lookup, FAQ lookup,
// generative fallback. Strictly linear, terminal at the first hit, at most
// one external call per request.
type Resolver struct {
	casual    *CasualMatcher
	faq       *FAQMatcher
	styler    *Styler
	generator interfaces.Generator
	store     interfaces.RecordStore
	logger    *zap.Logger
	now       func() time.Time
}

func NewResolver(casual *CasualMatcher, faq *FAQMatcher, styler *Styler, generator interfaces.Generator, store interfaces.RecordStore, logger *zap.Logger) *Resolver {
	return &Resolver{
		casual:    casual,
		faq:       faq,
		styler:    styler,
		generator: generator,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Resolve turns raw user text into a styled answer.
func (r *Resolver) Resolve(ctx context.Context, raw string, mood entities.Mood) (string, Branch) {
	if strings.TrimSpace(raw) == "" {
		return MsgEmptyInput, BranchValidation
	}
	if len([]rune(raw)) > MaxInputLength {
		return MsgInputTooLong, BranchValidation
	}

	normalized := Normalize(raw)

	if reply, ok := r.casual.Match(raw, normalized); ok {
		r.logger.Debug("matched casual reply", zap.String("input", normalized))
		return r.styler.Stylize(reply, mood, false), BranchCasual
	}

	if answer, ok := r.faq.Match(normalized); ok {
		r.logger.Debug("matched faq entry", zap.String("input", normalized))
		return r.styler.Stylize(answer, mood, true), BranchFAQ
	}

	// The original, un-normalized question goes into the log so FAQ gaps are
	// reviewed as users actually phrased them.
	r.logUnknown(raw)
	answer := r.generator.Generate(ctx, raw)
	r.logger.Debug("generative fallback", zap.String("input", normalized))
	return r.styler.Stylize(answer, mood, true), BranchFallback
}

func (r *Resolver) logUnknown(question string) {
	rec := entities.UnknownQuestionRecord{
		Question:  question,
		Timestamp: entities.RecordTimestamp(r.now()),
	}
	if err := r.store.Append(UnknownQuestionLog, rec); err != nil {
		r.logger.Warn("failed to log unknown question", zap.Error(err))
	}
}
