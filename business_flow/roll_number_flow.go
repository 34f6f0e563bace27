package businessflow

import (
	"context"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
	"github.com/opencampus/college-cms/utils"
)

// RollNumberFlow adds spreadsheet import/export on top of the generic content
// operations for roll-number notices.
type RollNumberFlow interface {
	ContentFlow[models.RollNumber]
	Import(ctx context.Context, r io.Reader, adminID uint) (*dto.RollNumberImportResponse, error)
	Export(ctx context.Context) (string, []byte, error)
}

// RollNumberFlowImpl implements RollNumberFlow
type RollNumberFlowImpl struct {
	ContentFlow[models.RollNumber]
	repo repository.ContentRepository[models.RollNumber]
}

// NewRollNumberFlow creates a new roll-number flow instance
func NewRollNumberFlow(content ContentFlow[models.RollNumber], repo repository.ContentRepository[models.RollNumber]) RollNumberFlow {
	return &RollNumberFlowImpl{
		ContentFlow: content,
		repo:        repo,
	}
}

var rollNumberImportHeader = []string{"title", "program", "semester", "academic_year", "file_url"}

// Import reads an XLSX whose first sheet carries the columns
// title, program, semester, academic_year, file_url. Each valid row becomes
// an unpublished notice; invalid rows are skipped, not fatal.
func (f *RollNumberFlowImpl) Import(ctx context.Context, r io.Reader, adminID uint) (*dto.RollNumberImportResponse, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewBusinessError("SPREADSHEET_INVALID", "Failed to read spreadsheet", ErrSpreadsheetInvalid)
	}
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, NewBusinessError("SPREADSHEET_INVALID", "Failed to read spreadsheet rows", err)
	}
	if len(rows) < 2 {
		return nil, NewBusinessError("SPREADSHEET_EMPTY", "Spreadsheet has no data rows", ErrSpreadsheetEmpty)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range rollNumberImportHeader[:2] {
		if _, ok := col[required]; !ok {
			return nil, NewBusinessErrorf("SPREADSHEET_INVALID", "Missing column %q", ErrSpreadsheetInvalid, required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var notices []*models.RollNumber
	skipped := 0
	for _, row := range rows[1:] {
		title := cell(row, "title")
		program := cell(row, "program")
		if title == "" || !models.IsValidProgram(program) {
			skipped++
			continue
		}

		notice := &models.RollNumber{
			Title:        title,
			Program:      program,
			Semester:     cell(row, "semester"),
			AcademicYear: cell(row, "academic_year"),
			FileURL:      cell(row, "file_url"),
		}
		// Imported notices start as drafts for review before publishing.
		notice.IsPublished = utils.ToPtr(false)
		notice.Stamp(adminID, true)
		notices = append(notices, notice)
	}

	if len(notices) > 0 {
		if err := f.repo.SaveBatch(ctx, notices); err != nil {
			return nil, NewBusinessError("IMPORT_FAILED", "Failed to save imported rows", err)
		}
	}

	return &dto.RollNumberImportResponse{
		TotalRows: len(rows) - 1,
		Created:   len(notices),
		Skipped:   skipped,
	}, nil
}

// Export writes the whole collection to an XLSX workbook.
func (f *RollNumberFlowImpl) Export(ctx context.Context) (string, []byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	header := []string{"id", "title", "program", "semester", "academic_year", "file_url", "published", "created_at"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	row := 2
	q := repository.ListQuery{Page: 1, Limit: utils.MaxPageLimit, DefaultOrder: "id ASC"}
	for {
		items, _, err := f.repo.List(ctx, q)
		if err != nil {
			return "", nil, NewBusinessError("EXPORT_FAILED", "Failed to fetch roll numbers", err)
		}

		for _, n := range items {
			record := []any{
				n.ID,
				n.Title,
				n.Program,
				n.Semester,
				n.AcademicYear,
				n.FileURL,
				utils.IsTrue(n.IsPublished),
				n.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			}
			cellRef, _ := excelize.CoordinatesToCellName(1, row)
			_ = xl.SetSheetRow(sheet, cellRef, &record)
			row++
		}

		if len(items) < q.Limit {
			break
		}
		q.Page++
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXPORT_FAILED", "Failed to write workbook", err)
	}
	return "roll_numbers.xlsx", buf.Bytes(), nil
}
