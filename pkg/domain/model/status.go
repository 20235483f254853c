package model

import (
	"strings"

	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// StatusNormalizer maps free-text status labels to a canonical category
type StatusNormalizer struct {
	taxonomy           types.Taxonomy
	doneKeywords       []string
	inProgressKeywords []string
}

// NormalizerOption configures a StatusNormalizer
type NormalizerOption func(*StatusNormalizer)

// WithDoneKeywords replaces the substrings that mark a record as done
func WithDoneKeywords(keywords ...string) NormalizerOption {
	return func(n *StatusNormalizer) {
		if len(keywords) > 0 {
			n.doneKeywords = keywords
		}
	}
}

// WithInProgressKeywords replaces the substrings that mark a record as in
// progress. Only consulted by the ternary taxonomy.
func WithInProgressKeywords(keywords ...string) NormalizerOption {
	return func(n *StatusNormalizer) {
		if len(keywords) > 0 {
			n.inProgressKeywords = keywords
		}
	}
}

// NewStatusNormalizer creates a normalizer for the taxonomy. An unknown
// taxonomy falls back to binary.
func NewStatusNormalizer(taxonomy types.Taxonomy, opts ...NormalizerOption) *StatusNormalizer {
	if !taxonomy.IsValid() {
		taxonomy = types.TaxonomyBinary
	}
	n := &StatusNormalizer{
		taxonomy:           taxonomy,
		doneKeywords:       []string{types.StatusDone.Label()},
		inProgressKeywords: []string{types.StatusInProgress.Label()},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Taxonomy returns the taxonomy the normalizer classifies into
func (n *StatusNormalizer) Taxonomy() types.Taxonomy {
	return n.taxonomy
}

// Normalize classifies a status label. It never fails: a label without a
// recognizable keyword, including the empty label, gets the taxonomy fallback.
func (n *StatusNormalizer) Normalize(label string) types.StatusCategory {
	label = strings.TrimSpace(label)

	for _, c := range n.taxonomy.Categories() {
		if label == string(c) || label == c.Label() {
			return c
		}
	}

	if containsAny(label, n.doneKeywords) {
		return types.StatusDone
	}
	if n.taxonomy == types.TaxonomyTernary && containsAny(label, n.inProgressKeywords) {
		return types.StatusInProgress
	}
	return n.taxonomy.Fallback()
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
