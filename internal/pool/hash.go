package pool

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/abhisek/lingo/internal/store"
)

// Fingerprint computes the canonical content hash used for pool
// deduplication: type plus normalized question, passage, answer and
// sorted options. Two questions that differ only in whitespace, casing
// or option order collide deliberately.
func Fingerprint(qType string, p store.QuestionPayload) string {
	opts := make([]string, 0, len(p.Options))
	for _, o := range p.Options {
		opts = append(opts, normalize(o))
	}
	sort.Strings(opts)

	parts := []string{
		normalize(qType),
		normalize(p.Question),
		normalize(p.Passage),
		normalize(p.CorrectAnswer),
	}
	parts = append(parts, opts...)

	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
