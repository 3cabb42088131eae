package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders an issued quote with maroto/v2 and returns the raw
// PDF bytes.
//
// The core PDF fonts have no Hangul or won glyphs, so the document uses the
// Latin part names and ISO currency code.
func GenerateQuotePDF(data QuoteExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for i, l := range data.Quote.Lines {
		addQuoteRow(m, fmt.Sprintf("%d", i+1), l, false)
	}
	addQuoteTotal(m, data.Quote.Total)

	if len(data.Quote.Mandatory) > 0 {
		m.AddRows(row.New(6))
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New("Included components (part of the base price)", props.Text{
						Size:  9,
						Style: fontstyle.Bold,
					}),
				),
			),
		)
		for i, l := range data.Quote.Mandatory {
			addQuoteRow(m, fmt.Sprintf("M%d", i+1), l, true)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, data QuoteExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Quotation - "+data.Quote.EquipmentName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Quote No: "+data.QuoteNumber, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(6).Add(
				text.New("Date: "+data.IssuedDate, props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Model "+data.Quote.EquipmentID, props.Text{Size: 8, Align: align.Left, Color: grey}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addQuoteTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 23, Green: 23, Blue: 23}}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Part No.", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)
}

func addQuoteRow(m core.Maroto, index string, l QuoteLine, muted bool) {
	base := props.Text{Size: 8, Align: align.Center}
	if muted {
		base.Color = &props.Color{Red: 115, Green: 115, Blue: 115}
	}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	label := pdfLineLabel(l)

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(index, base)),
			col.New(5).Add(text.New(label, left)),
			col.New(2).Add(text.New(l.PartNumber, base)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Qty), base)),
			col.New(3).Add(text.New(FormatKRWCode(l.Price), right)),
		),
	)
}

// pdfLineLabel prefers the Latin part name; the Korean section label is the
// fallback for lines without one.
func pdfLineLabel(l QuoteLine) string {
	if l.Detail != "" {
		return l.Detail
	}
	return l.Label
}

func addQuoteTotal(m core.Maroto, total int64) {
	m.AddRows(row.New(4))
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 250, Green: 204, Blue: 21}}
	style := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	m.AddRows(
		row.New(9).Add(
			col.New(9).Add(text.New("Total", style)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatKRWCode(total), style)).WithStyle(summaryCell),
		),
	)
}
