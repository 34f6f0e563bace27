package tests

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
	testingutil "github.com/opencampus/college-cms/testing"
	"github.com/opencampus/college-cms/utils"
)

func newRollNumberFlow(testDB *testingutil.TestDB) businessflow.RollNumberFlow {
	repo := repository.NewContentRepository[models.RollNumber](testDB.DB)
	base := businessflow.NewContentFlow[models.RollNumber, *models.RollNumber](repo, nil, nil, "roll-numbers", true)
	return businessflow.NewRollNumberFlow(base, repo)
}

func buildImportWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, xl.SetSheetRow(sheet, cellRef, &row))
	}

	buf, err := xl.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRollNumberImport(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newRollNumberFlow(testDB)
		ctx := testingutil.CreateTestContext()

		admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)

		t.Run("valid rows become draft notices", func(t *testing.T) {
			buf := buildImportWorkbook(t, [][]any{
				{"title", "program", "semester", "academic_year", "file_url"},
				{"BSc first semester", models.ProgramUndergraduate, "1", "2026-27", "/uploads/rolls/bsc1.pdf"},
				{"MSc third semester", models.ProgramPostgraduate, "3", "2026-27", ""},
				{"", models.ProgramDiploma, "2", "2026-27", ""},            // no title
				{"Welding batch", "vocational", "1", "2026-27", ""},       // bad program
			})

			summary, err := flow.Import(ctx, buf, admin.ID)
			require.NoError(t, err)
			assert.Equal(t, 4, summary.TotalRows)
			assert.Equal(t, 2, summary.Created)
			assert.Equal(t, 2, summary.Skipped)

			items, pagination, err := flow.List(ctx, repository.ListQuery{Limit: 50}, false)
			require.NoError(t, err)
			assert.Equal(t, int64(2), pagination.TotalItems)
			for _, item := range items {
				assert.False(t, utils.IsTrue(item.IsPublished), "imported notices must start as drafts")
				require.NotNil(t, item.CreatedByID)
				assert.Equal(t, admin.ID, *item.CreatedByID)
			}

			// Drafts stay invisible to the public listing until reviewed
			_, publicPagination, err := flow.List(ctx, repository.ListQuery{Limit: 50}, true)
			require.NoError(t, err)
			assert.Equal(t, int64(0), publicPagination.TotalItems)
		})

		t.Run("column order does not matter", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)

			buf := buildImportWorkbook(t, [][]any{
				{"Program", "Title"},
				{models.ProgramCertificate, "Certificate exam roll numbers"},
			})

			summary, err := flow.Import(ctx, buf, admin.ID)
			require.NoError(t, err)
			assert.Equal(t, 1, summary.Created)

			items, _, err := flow.List(ctx, repository.ListQuery{Limit: 10}, false)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "Certificate exam roll numbers", items[0].Title)
			assert.Equal(t, models.ProgramCertificate, items[0].Program)
		})

		t.Run("missing required column is rejected", func(t *testing.T) {
			buf := buildImportWorkbook(t, [][]any{
				{"title", "semester"},
				{"No program column", "1"},
			})

			_, err := flow.Import(ctx, buf, admin.ID)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "SPREADSHEET_INVALID", be.Code)
		})

		t.Run("header only workbook is rejected", func(t *testing.T) {
			buf := buildImportWorkbook(t, [][]any{
				{"title", "program"},
			})

			_, err := flow.Import(ctx, buf, admin.ID)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "SPREADSHEET_EMPTY", be.Code)
		})

		t.Run("garbage payload is rejected", func(t *testing.T) {
			_, err := flow.Import(ctx, bytes.NewBufferString("not a workbook"), admin.ID)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "SPREADSHEET_INVALID", be.Code)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestRollNumberExport(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newRollNumberFlow(testDB)
		ctx := testingutil.CreateTestContext()

		admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)

		_, err = fixtures.CreateTestRollNumber("BA roll numbers", models.ProgramUndergraduate, true, admin.ID)
		require.NoError(t, err)
		_, err = fixtures.CreateTestRollNumber("Diploma roll numbers", models.ProgramDiploma, false, admin.ID)
		require.NoError(t, err)

		filename, payload, err := flow.Export(ctx)
		require.NoError(t, err)
		assert.Equal(t, "roll_numbers.xlsx", filename)
		require.NotEmpty(t, payload)

		xl, err := excelize.OpenReader(bytes.NewReader(payload))
		require.NoError(t, err)
		defer func() { _ = xl.Close() }()

		rows, err := xl.GetRows(xl.GetSheetName(0))
		require.NoError(t, err)
		require.Len(t, rows, 3, "header plus one row per notice")

		assert.Equal(t, []string{"id", "title", "program", "semester", "academic_year", "file_url", "published", "created_at"}, rows[0])

		titles := []string{rows[1][1], rows[2][1]}
		assert.Contains(t, titles, "BA roll numbers")
		assert.Contains(t, titles, "Diploma roll numbers")

		// Both published and draft notices are exported
		published := []string{rows[1][6], rows[2][6]}
		assert.Contains(t, published, "TRUE")
		assert.Contains(t, published, "FALSE")

		return nil
	})
	require.NoError(t, err)
}
