package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

func TestStatusNormalizer_Binary(t *testing.T) {
	n := model.NewStatusNormalizer(types.TaxonomyBinary)

	testCases := []struct {
		name     string
		label    string
		expected types.StatusCategory
	}{
		{name: "done keyword", label: "완료", expected: types.StatusDone},
		{name: "done keyword with date", label: "24.03.01 완료", expected: types.StatusDone},
		{name: "in progress keyword", label: "진행중", expected: types.StatusInProgress},
		{name: "not started collapses", label: "미진행", expected: types.StatusInProgress},
		{name: "free text", label: "검토 필요", expected: types.StatusInProgress},
		{name: "empty", label: "", expected: types.StatusInProgress},
		{name: "whitespace", label: "   ", expected: types.StatusInProgress},
		{name: "canonical done", label: "done", expected: types.StatusDone},
		{name: "canonical not-started outside taxonomy", label: "not-started", expected: types.StatusInProgress},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.expected, n.Normalize(tc.label))
		})
	}
}

func TestStatusNormalizer_Ternary(t *testing.T) {
	n := model.NewStatusNormalizer(types.TaxonomyTernary)

	testCases := []struct {
		name     string
		label    string
		expected types.StatusCategory
	}{
		{name: "done keyword", label: "완료", expected: types.StatusDone},
		{name: "in progress keyword", label: "진행중 (협의)", expected: types.StatusInProgress},
		{name: "not started", label: "미진행", expected: types.StatusNotStarted},
		{name: "free text", label: "보류", expected: types.StatusNotStarted},
		{name: "empty", label: "", expected: types.StatusNotStarted},
		{name: "canonical in-progress", label: "in-progress", expected: types.StatusInProgress},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.expected, n.Normalize(tc.label))
		})
	}
}

func TestStatusNormalizer_Idempotent(t *testing.T) {
	for _, taxonomy := range []types.Taxonomy{types.TaxonomyBinary, types.TaxonomyTernary} {
		n := model.NewStatusNormalizer(taxonomy)
		for _, c := range taxonomy.Categories() {
			t.Run(string(taxonomy)+"/"+c.String(), func(t *testing.T) {
				gt.Equal(t, c, n.Normalize(c.String()))
				gt.Equal(t, c, n.Normalize(c.Label()))
				gt.Equal(t, c, n.Normalize(n.Normalize(c.Label()).String()))
			})
		}
	}
}

func TestStatusNormalizer_CustomKeywords(t *testing.T) {
	n := model.NewStatusNormalizer(types.TaxonomyTernary,
		model.WithDoneKeywords("closed", "완료"),
		model.WithInProgressKeywords("wip"),
	)

	gt.Equal(t, types.StatusDone, n.Normalize("closed by QA"))
	gt.Equal(t, types.StatusInProgress, n.Normalize("wip"))
	gt.Equal(t, types.StatusNotStarted, n.Normalize("진행중"))
}

func TestStatusNormalizer_UnknownTaxonomyFallsBackToBinary(t *testing.T) {
	n := model.NewStatusNormalizer(types.Taxonomy("unknown"))
	gt.Equal(t, types.TaxonomyBinary, n.Taxonomy())
	gt.Equal(t, types.StatusInProgress, n.Normalize(""))
}
