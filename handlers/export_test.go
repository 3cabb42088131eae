package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"KH-Q-12801700-20260128-090507.pdf", "KH-Q-12801700-20260128-090507.pdf"},
		{"a b/c\\d:e", "a-b-c-d-e"},
		{`quote"x".xlsx`, "quotex.xlsx"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func get(t *testing.T, h *Hub, handler func(*Hub) func(e *core.RequestEvent) error, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := newSessionRequest(http.MethodGet, target)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(h)(newTestRequestEvent(req, rec)))
	return rec
}

func TestHandleQuoteExport_NoEquipment(t *testing.T) {
	hub := newTestHub(t)

	for _, handler := range []func(*Hub) func(e *core.RequestEvent) error{HandleQuoteExportPDF, HandleQuoteExportExcel} {
		rec := get(t, hub, handler, "/configurator/quote")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "먼저 카탈로그에서 제품을 선택해 주세요.", rec.Body.String())
	}
}

func TestHandleQuoteExportPDF(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")

	rec := get(t, hub, HandleQuoteExportPDF, "/configurator/quote.pdf")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="KH-Q-12801700-20260128-090507.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")), "body is a PDF document")
}

func TestHandleQuoteExportExcel(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")
	post(t, hub, HandleToggleOption, "/configurator/options/2.852-913.0", "pn", "2.852-913.0")
	post(t, hub, HandleSetBattery, "/configurator/battery/9.711-036.0", "pn", "9.711-036.0")

	rec := get(t, hub, HandleQuoteExportExcel, "/configurator/quote.xlsx")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "KH-Q-12801700-20260128-090507.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	issued, _ := f.GetCellValue("Quote", "A3")
	assert.Equal(t, "발행일: 2026.01.28", issued)
	total, _ := f.GetCellValue("Quote", "F10")
	assert.Equal(t, "₩41,774,300", total)
}

func TestHandleSparePartsExport(t *testing.T) {
	tests := []struct {
		name      string
		saved     string
		target    string
		wantParts []string
	}{
		{"explicit query", "", "/spare/export.xlsx?q=eco", []string{"21130840"}},
		{"saved query", "battery", "/spare/export.xlsx", []string{"20420220", "24450430"}},
		{"everything", "", "/spare/export.xlsx", []string{"20420220", "21130840", "26428020", "24450430"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := newTestHub(t)
			if tt.saved != "" {
				get(t, hub, func(h *Hub) func(e *core.RequestEvent) error {
					return HandleTab(h, "spare")
				}, "/spare?q="+tt.saved)
			}

			rec := get(t, hub, HandleSparePartsExport, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Disposition"), "spare-parts-20260128.xlsx")

			f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
			require.NoError(t, err)
			defer f.Close()

			rows, err := f.GetRows("Spare Parts")
			require.NoError(t, err)
			var got []string
			for _, row := range rows[4:] {
				if len(row) > 0 && strings.TrimSpace(row[0]) != "" {
					got = append(got, row[0])
				}
			}
			assert.Equal(t, tt.wantParts, got)
		})
	}
}
