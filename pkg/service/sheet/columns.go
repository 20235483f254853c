package sheet

import "strings"

// Column labels of the fixed spreadsheet schema
const (
	ColumnNo             = "NO"
	ColumnActivity       = "활동항목"
	ColumnOccurredAt     = "발생일"
	ColumnVehicle        = "차종"
	ColumnIssuingDept    = "발행부서"
	ColumnRespondingDept = "대응부서"
	ColumnProblem        = "문제점"
	ColumnImprovement    = "개선안"
	ColumnTargetDate     = "적용일"
	ColumnStatus         = "개선현황"
	ColumnDate           = "일정"
	ColumnStage          = "단계"
	ColumnNote           = "비고"
)

// header maps normalized column labels to their index in a row
type header map[string]int

func newHeader(cells []string) header {
	h := make(header, len(cells))
	for idx, cell := range cells {
		key := normalizeHeader(cell)
		if key == "" {
			continue
		}
		// First occurrence wins on duplicated labels
		if _, exists := h[key]; !exists {
			h[key] = idx
		}
	}
	return h
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	return value
}

// has reports whether the column exists in the sheet
func (h header) has(column string) bool {
	_, ok := h[normalizeHeader(column)]
	return ok
}

// value returns the trimmed cell of column in row, or "" when the column
// is missing or the row is short
func (h header) value(row []string, column string) string {
	idx, ok := h[normalizeHeader(column)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
