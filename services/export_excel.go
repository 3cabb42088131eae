package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const quoteSheet = "Quote"

// GenerateQuoteExcel creates the issued-quote workbook and returns the file
// contents as a byte slice.
func GenerateQuoteExcel(data QuoteExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]
	widths := []float64{5, 16, 40, 16, 8, 18}
	for i, col := range columns {
		if err := f.SetColWidth(quoteSheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	st, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	// ── Header rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(quoteSheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(quoteSheet, "A1", sanitizeExcelCell("견적서 - "+data.Quote.EquipmentName))
	f.SetCellStyle(quoteSheet, "A1", lastCol+"1", st.title)

	if err := f.MergeCell(quoteSheet, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge ref: %w", err)
	}
	f.SetCellValue(quoteSheet, "A2", "견적번호: "+data.QuoteNumber)
	f.SetCellStyle(quoteSheet, "A2", lastCol+"2", st.subtitle)

	if err := f.MergeCell(quoteSheet, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(quoteSheet, "A3", "발행일: "+data.IssuedDate)
	f.SetCellStyle(quoteSheet, "A3", lastCol+"3", st.subtitle)

	// ── Row 5: column headers ───────────────────────────────────────────

	headers := []string{"#", "구분", "품목", "품번", "수량", "금액"}
	for i, h := range headers {
		f.SetCellValue(quoteSheet, columns[i]+"5", h)
	}
	f.SetCellStyle(quoteSheet, "A5", lastCol+"5", st.header)

	// ── Priced lines (starting row 6) ───────────────────────────────────

	row := 6
	for i, l := range data.Quote.Lines {
		writeQuoteLine(f, row, strconv.Itoa(i+1), l)
		f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), st.item)
		row++
	}

	// ── Total ───────────────────────────────────────────────────────────

	row++
	f.SetCellValue(quoteSheet, fmt.Sprintf("E%d", row), "총 합계액")
	f.SetCellStyle(quoteSheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), st.summaryLabel)
	f.SetCellValue(quoteSheet, fmt.Sprintf("F%d", row), FormatKRW(data.Quote.Total))
	f.SetCellStyle(quoteSheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), st.summaryValue)
	row += 2

	// ── Mandatory items (informational) ─────────────────────────────────

	if len(data.Quote.Mandatory) > 0 {
		cell := fmt.Sprintf("A%d", row)
		if err := f.MergeCell(quoteSheet, cell, fmt.Sprintf("%s%d", lastCol, row)); err != nil {
			return nil, fmt.Errorf("merge mandatory heading: %w", err)
		}
		f.SetCellValue(quoteSheet, cell, "필수 구성품 (기본 장비가에 포함)")
		f.SetCellStyle(quoteSheet, cell, cell, st.subtitle)
		row++

		for i, l := range data.Quote.Mandatory {
			writeQuoteLine(f, row, fmt.Sprintf("M%d", i+1), l)
			f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), st.muted)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func writeQuoteLine(f *excelize.File, row int, index string, l QuoteLine) {
	r := strconv.Itoa(row)
	label := l.Label
	if l.Detail != "" {
		label += " (" + l.Detail + ")"
	}
	f.SetCellValue(quoteSheet, "A"+r, index)
	f.SetCellValue(quoteSheet, "B"+r, lineKindLabel(l.Kind))
	f.SetCellValue(quoteSheet, "C"+r, sanitizeExcelCell(label))
	f.SetCellValue(quoteSheet, "D"+r, sanitizeExcelCell(l.PartNumber))
	f.SetCellValue(quoteSheet, "E"+r, l.Qty)
	f.SetCellValue(quoteSheet, "F"+r, FormatKRW(l.Price))
}

const sparePartsSheet = "Spare Parts"

// GenerateSparePartsExcel creates a workbook of the (filtered) spare-parts table.
func GenerateSparePartsExcel(data SparePartsExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sparePartsSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	widths := []float64{14, 40, 10, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sparePartsSheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	st, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sparePartsSheet, "A1", "Spareparts & Accessories")
	f.SetCellStyle(sparePartsSheet, "A1", "A1", st.title)
	filter := "전체"
	if data.Query != "" {
		filter = data.Query
	}
	f.SetCellValue(sparePartsSheet, "A2", sanitizeExcelCell("검색: "+filter+" / "+data.GeneratedOn))
	f.SetCellStyle(sparePartsSheet, "A2", "A2", st.subtitle)

	for i, h := range []string{"PN", "Description", "Category", "Price"} {
		f.SetCellValue(sparePartsSheet, columns[i]+"4", h)
	}
	f.SetCellStyle(sparePartsSheet, "A4", "D4", st.header)

	for i, p := range data.Rows {
		r := strconv.Itoa(5 + i)
		f.SetCellValue(sparePartsSheet, "A"+r, sanitizeExcelCell(p.PartNumber))
		f.SetCellValue(sparePartsSheet, "B"+r, sanitizeExcelCell(p.Description))
		f.SetCellValue(sparePartsSheet, "C"+r, sanitizeExcelCell(p.Category))
		f.SetCellValue(sparePartsSheet, "D"+r, FormatKRW(p.Price))
		f.SetCellStyle(sparePartsSheet, "A"+r, "D"+r, st.item)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	title, subtitle, header, item, muted, summaryLabel, summaryValue int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	defs := []struct {
		name  string
		style *excelize.Style
	}{
		{"title", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{"subtitle", &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{"header", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#171717"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{"item", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{"muted", &excelize.Style{Font: &excelize.Font{Size: 10, Color: "#737373"}, Border: thinBorders()}},
		{"summary label", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{"summary value", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}},
	}

	var st sheetStyles
	targets := []*int{&st.title, &st.subtitle, &st.header, &st.item, &st.muted, &st.summaryLabel, &st.summaryValue}
	for i, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return sheetStyles{}, fmt.Errorf("create %s style: %w", d.name, err)
		}
		*targets[i] = id
	}
	return st, nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
