package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func scenarioExport(t *testing.T) QuoteExport {
	t.Helper()
	store := loadCatalog(t)
	_, cfg := configure(t, store, "1.280-170.0", "9.711-036.0", "2.852-913.0")
	return QuoteExport{
		QuoteNumber: "KH-Q-12801700-20260128-090000",
		IssuedDate:  "2026.01.28",
		Quote:       BuildQuote(cfg),
	}
}

func TestGenerateQuoteExcel(t *testing.T) {
	data := scenarioExport(t)

	result, err := GenerateQuoteExcel(data)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	f, err := excelize.OpenReader(bytesReader(result))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Quote"}, sheets)

	title, _ := f.GetCellValue("Quote", "A1")
	assert.Equal(t, "견적서 - KM 100/120 R Bp", title)

	ref, _ := f.GetCellValue("Quote", "A2")
	assert.Contains(t, ref, data.QuoteNumber)

	// base, battery, one option
	base, _ := f.GetCellValue("Quote", "F6")
	assert.Equal(t, "₩37,400,000", base)
	battery, _ := f.GetCellValue("Quote", "C7")
	assert.Equal(t, "옵션 2_리튬 (Battery BTS-LFP 24V300Ah)", battery)
	option, _ := f.GetCellValue("Quote", "D8")
	assert.Equal(t, "2.852-913.0", option)

	// blank row, then total
	label, _ := f.GetCellValue("Quote", "E10")
	assert.Equal(t, "총 합계액", label)
	total, _ := f.GetCellValue("Quote", "F10")
	assert.Equal(t, "₩41,774,300", total)

	heading, _ := f.GetCellValue("Quote", "A12")
	assert.Contains(t, heading, "필수 구성품")
	firstMandatory, _ := f.GetCellValue("Quote", "D13")
	assert.Equal(t, "6.414-532.0", firstMandatory)
}

func TestGenerateQuoteExcel_SanitizesCells(t *testing.T) {
	data := scenarioExport(t)
	data.Quote.Lines[0].Label = "=HYPERLINK(\"x\")"

	result, err := GenerateQuoteExcel(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytesReader(result))
	require.NoError(t, err)
	defer f.Close()

	v, _ := f.GetCellValue("Quote", "C6")
	assert.Equal(t, "'=HYPERLINK(\"x\")", v)
}

func TestGenerateSparePartsExcel(t *testing.T) {
	data := SparePartsExport{
		Query:       "eco",
		GeneratedOn: "2026.01.28",
		Rows: []SparePartRow{
			{PartNumber: "21130840", Description: "Eco!Booster TR 030", Category: "Z2", Price: 182500},
		},
	}

	result, err := GenerateSparePartsExcel(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytesReader(result))
	require.NoError(t, err)
	defer f.Close()

	pn, _ := f.GetCellValue("Spare Parts", "A5")
	assert.Equal(t, "21130840", pn)
	price, _ := f.GetCellValue("Spare Parts", "D5")
	assert.Equal(t, "₩182,500", price)
	filter, _ := f.GetCellValue("Spare Parts", "A2")
	assert.Contains(t, filter, "eco")
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
