package sheet

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
	"github.com/xuri/excelize/v2"
)

// Loader reads issue and schedule records from xlsx workbooks. The first
// row of a sheet is the header; columns are matched by label, so their
// order does not matter and missing columns read as empty.
type Loader struct{}

var _ interfaces.SourceLoader = (*Loader)(nil)

// NewLoader creates a new spreadsheet loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadIssues reads the issue records of a sheet
func (l *Loader) LoadIssues(ctx context.Context, path, sheet string) ([]*model.IssueRecord, error) {
	tbl, err := readSheet(ctx, path, sheet, ColumnOccurredAt, ColumnTargetDate)
	if err != nil {
		return nil, err
	}
	h := tbl.header

	records := make([]*model.IssueRecord, 0, len(tbl.rows))
	for i, row := range tbl.rows {
		if isBlankRow(row) {
			continue
		}
		rowNo := i + 2
		records = append(records, &model.IssueRecord{
			ID:             recordID(h, row, rowNo),
			Row:            rowNo,
			Activity:       h.value(row, ColumnActivity),
			OccurredAt:     tbl.date(i, ColumnOccurredAt),
			TargetDate:     tbl.date(i, ColumnTargetDate),
			StatusLabel:    h.value(row, ColumnStatus),
			Vehicle:        h.value(row, ColumnVehicle),
			IssuingDept:    h.value(row, ColumnIssuingDept),
			RespondingDept: h.value(row, ColumnRespondingDept),
			Problem:        h.value(row, ColumnProblem),
			Improvement:    h.value(row, ColumnImprovement),
		})
	}

	ctxlog.From(ctx).Debug("Issue records loaded",
		"path", path,
		"count", len(records),
		"hasStatus", h.has(ColumnStatus),
		"hasTargetDate", h.has(ColumnTargetDate),
	)

	return records, nil
}

// LoadSchedules reads the schedule records of a sheet
func (l *Loader) LoadSchedules(ctx context.Context, path, sheet string) ([]*model.ScheduleRecord, error) {
	tbl, err := readSheet(ctx, path, sheet, ColumnDate)
	if err != nil {
		return nil, err
	}
	h := tbl.header

	records := make([]*model.ScheduleRecord, 0, len(tbl.rows))
	for i, row := range tbl.rows {
		if isBlankRow(row) {
			continue
		}
		rowNo := i + 2
		records = append(records, &model.ScheduleRecord{
			ID:      recordID(h, row, rowNo),
			Row:     rowNo,
			Date:    tbl.date(i, ColumnDate),
			Vehicle: h.value(row, ColumnVehicle),
			Stage:   h.value(row, ColumnStage),
			Note:    h.value(row, ColumnNote),
		})
	}

	ctxlog.From(ctx).Debug("Schedule records loaded",
		"path", path,
		"count", len(records),
		"hasDate", h.has(ColumnDate),
	)

	return records, nil
}

type cellPos struct {
	row, col int
}

// table is the content of one sheet. Data rows are 0-indexed; data row i is
// sheet row i+2.
type table struct {
	header   header
	rows     [][]string
	date1904 bool
	// textCells marks date column cells stored as strings
	textCells map[cellPos]bool
}

// date parses the cell of column in data row i. String cells are parsed as
// text, other cells as serials.
func (t *table) date(i int, column string) *time.Time {
	raw := t.header.value(t.rows[i], column)
	if idx, ok := t.header[normalizeHeader(column)]; ok && t.textCells[cellPos{row: i, col: idx}] {
		return ParseDateText(raw)
	}
	return ParseDate(raw, t.date1904)
}

// readSheet opens the workbook and returns the header and the data rows.
// The cell types of dateColumns are recorded so that numeric text is not
// taken for a serial.
func readSheet(ctx context.Context, path, sheet string, dateColumns ...string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workbook", goerr.V("path", path))
	}
	defer func() {
		if err := f.Close(); err != nil {
			ctxlog.From(ctx).Warn("Failed to close workbook", "error", err, "path", path)
		}
	}()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, goerr.New("workbook has no sheet", goerr.V("path", path))
	}

	// Raw values keep date cells as serial numbers instead of locale
	// dependent display text
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sheet",
			goerr.V("path", path),
			goerr.V("sheet", sheet))
	}
	if len(rows) == 0 {
		return &table{header: header{}}, nil
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read workbook properties", goerr.V("path", path))
	}

	tbl := &table{
		header:    newHeader(rows[0]),
		rows:      rows[1:],
		date1904:  props.Date1904 != nil && *props.Date1904,
		textCells: make(map[cellPos]bool),
	}

	for _, column := range dateColumns {
		idx, ok := tbl.header[normalizeHeader(column)]
		if !ok {
			continue
		}
		for i, row := range tbl.rows {
			if idx >= len(row) || strings.TrimSpace(row[idx]) == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(idx+1, i+2)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid cell position", goerr.V("row", i+2), goerr.V("col", idx+1))
			}
			cellType, err := f.GetCellType(sheet, cell)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to read cell type",
					goerr.V("path", path),
					goerr.V("cell", cell))
			}
			switch cellType {
			case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
				tbl.textCells[cellPos{row: i, col: idx}] = true
			}
		}
	}

	return tbl, nil
}

func recordID(h header, row []string, rowNo int) types.RecordID {
	if no := h.value(row, ColumnNo); no != "" {
		return types.RecordID(no)
	}
	return types.RecordID(strconv.Itoa(rowNo))
}
