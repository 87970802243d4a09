package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project_cloudi/internal/entities"
)

const degradedRateLimit = "I'm getting lots of questions right now! Please try again in a moment. ☁️"

type fakeGenerator struct {
	reply string
	calls int
}

func (g *fakeGenerator) Generate(_ context.Context, _ string) string {
	g.calls++
	return g.reply
}

// memStore records appends in memory for inspection.
type memStore struct {
	appends map[string][]any
}

func newMemStore() *memStore {
	return &memStore{appends: map[string][]any{}}
}

func (s *memStore) Append(log string, record any) error {
	s.appends[log] = append(s.appends[log], record)
	return nil
}

func (s *memStore) List(string, any) error { return nil }
func (s *memStore) Clear(string) error     { return nil }

func newTestResolver(gen *fakeGenerator, store *memStore) *Resolver {
	casual := NewCasualMatcher(entities.PhraseTable{
		"hi":    "Hey there! 👋",
		"hello": "Hi! How can I help you today? 😊",
	})
	faq := NewFAQMatcher(entities.PhraseTable{
		Normalize("What is an internship?"): "A short-term work experience.",
	})
	// Coin flip pinned to skip the flavor prefix so answers are predictable.
	styler := NewStyler(fixedRand{float: 0.9})
	return NewResolver(casual, faq, styler, gen, store, zap.NewNop())
}

func TestResolveValidation(t *testing.T) {
	gen := &fakeGenerator{reply: "generated"}
	store := newMemStore()
	r := newTestResolver(gen, store)

	answer, branch := r.Resolve(context.Background(), "", entities.MoodFormal)
	assert.Equal(t, MsgEmptyInput, answer)
	assert.Equal(t, BranchValidation, branch)

	answer, branch = r.Resolve(context.Background(), "   \t ", entities.MoodFormal)
	assert.Equal(t, MsgEmptyInput, answer)
	assert.Equal(t, BranchValidation, branch)

	answer, branch = r.Resolve(context.Background(), strings.Repeat("a", 501), entities.MoodFormal)
	assert.Equal(t, MsgInputTooLong, answer)
	assert.Equal(t, BranchValidation, branch)

	// The validation path never logs or calls out.
	assert.Zero(t, gen.calls)
	assert.Empty(t, store.appends)

	// Exactly 500 characters is accepted and falls through to the fallback.
	_, branch = r.Resolve(context.Background(), strings.Repeat("a", 500), entities.MoodFormal)
	assert.Equal(t, BranchFallback, branch)
	assert.Equal(t, 1, gen.calls)
}

func TestResolveCasualPath(t *testing.T) {
	gen := &fakeGenerator{reply: "generated"}
	store := newMemStore()
	r := newTestResolver(gen, store)

	// Unrecognized mood passes styling through: the exact canned reply.
	answer, branch := r.Resolve(context.Background(), "Hi", entities.Mood("default"))
	assert.Equal(t, "Hey there! 👋", answer)
	assert.Equal(t, BranchCasual, branch)

	// Mood decoration still applies on the casual path.
	answer, branch = r.Resolve(context.Background(), "Hi", entities.MoodFormal)
	assert.Equal(t, "Certainly. Hey there! 👋", answer)
	assert.Equal(t, BranchCasual, branch)

	assert.Zero(t, gen.calls)
	assert.Empty(t, store.appends, "casual hits never reach the unknown log")
}

func TestResolveFAQPath(t *testing.T) {
	gen := &fakeGenerator{reply: "generated"}
	store := newMemStore()
	r := newTestResolver(gen, store)

	answer, branch := r.Resolve(context.Background(), "What is an INTERNSHIP?!", entities.Mood("default"))
	assert.Equal(t, "A short-term work experience.", answer)
	assert.Equal(t, BranchFAQ, branch)
	assert.Zero(t, gen.calls)
	assert.Empty(t, store.appends, "faq hits never reach the unknown log")
}

func TestResolveSameBranchForNormalizationVariants(t *testing.T) {
	gen := &fakeGenerator{reply: "generated"}
	r := newTestResolver(gen, newMemStore())

	variants := []string{
		"What is an internship?",
		"  what IS an internship  ",
		"what is an internship!!!",
	}
	for _, v := range variants {
		answer, branch := r.Resolve(context.Background(), v, entities.Mood("default"))
		assert.Equal(t, BranchFAQ, branch, "variant %q", v)
		assert.Equal(t, "A short-term work experience.", answer)
	}
}

func TestResolveFallbackLogsUnknownOnce(t *testing.T) {
	gen := &fakeGenerator{reply: degradedRateLimit}
	store := newMemStore()
	r := newTestResolver(gen, store)

	raw := "  How do I build a Mars rover?  "
	answer, branch := r.Resolve(context.Background(), raw, entities.Mood("default"))
	assert.Equal(t, degradedRateLimit, answer)
	assert.Equal(t, BranchFallback, branch)
	assert.Equal(t, 1, gen.calls)

	records := store.appends[UnknownQuestionLog]
	require.Len(t, records, 1)
	rec, ok := records[0].(entities.UnknownQuestionRecord)
	require.True(t, ok)
	assert.Equal(t, raw, rec.Question, "the raw, un-normalized question is logged")
}
