package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"karcherhub/services"
	"karcherhub/templates"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDate      = "2006.01.02"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	return strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-", `"`, "").Replace(s)
}

func sendAttachment(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(filename)))
	_, err := e.Response.Write(body)
	return err
}

// quoteExport itemises the visitor's configuration as of now. ok is false
// when nothing is being configured.
func (h *Hub) quoteExport(e *core.RequestEvent) (services.QuoteExport, bool) {
	cfg := h.selection(e.Request).Resolve(h.Catalog)
	if cfg.Empty() {
		return services.QuoteExport{}, false
	}
	now := h.Now()
	return services.QuoteExport{
		QuoteNumber: services.FormatQuoteNumber(cfg.Equipment.ID, now),
		IssuedDate:  now.Format(exportDate),
		Quote:       services.BuildQuote(cfg),
	}, true
}

// HandleQuoteExportPDF downloads the current quote as a PDF.
func HandleQuoteExportPDF(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok := h.quoteExport(e)
		if !ok {
			return ErrorToast(e, http.StatusConflict, templates.EmptyConfiguratorMessage)
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			logger.WithError(err).WithField("equipment", data.Quote.EquipmentID).Error("export: failed to generate PDF")
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF")
		}
		return sendAttachment(e, contentTypePDF, data.QuoteNumber+".pdf", pdfBytes)
	}
}

// HandleQuoteExportExcel downloads the current quote as an Excel workbook.
func HandleQuoteExportExcel(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok := h.quoteExport(e)
		if !ok {
			return ErrorToast(e, http.StatusConflict, templates.EmptyConfiguratorMessage)
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			logger.WithError(err).WithField("equipment", data.Quote.EquipmentID).Error("export: failed to generate Excel")
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}
		return sendAttachment(e, contentTypeXLSX, data.QuoteNumber+".xlsx", xlsxBytes)
	}
}

// HandleSparePartsExport downloads the spare-parts table filtered by the q
// parameter, or by the visitor's saved spare-parts query when q is absent.
func HandleSparePartsExport(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := h.selection(e.Request).SparePartsQuery
		if params := e.Request.URL.Query(); params.Has("q") {
			query = params.Get("q")
		}

		now := h.Now()
		data := services.SparePartsExport{
			Query:       query,
			GeneratedOn: now.Format(exportDate),
		}
		for _, p := range services.FilterSpareParts(query, h.Catalog.SpareParts()) {
			data.Rows = append(data.Rows, services.SparePartRow{
				PartNumber:  p.PartNumber,
				Description: p.Description,
				Category:    p.Category,
				Price:       p.Price,
			})
		}

		xlsxBytes, err := services.GenerateSparePartsExcel(data)
		if err != nil {
			logger.WithError(err).Error("export: failed to generate spare parts Excel")
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}
		return sendAttachment(e, contentTypeXLSX, "spare-parts-"+now.Format("20060102")+".xlsx", xlsxBytes)
	}
}
