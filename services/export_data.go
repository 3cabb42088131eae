package services

// QuoteExport holds everything an issued quote document prints.
type QuoteExport struct {
	QuoteNumber string
	IssuedDate  string
	Quote       Quote
}

// SparePartsExport holds the spare-parts table as currently filtered.
type SparePartsExport struct {
	Query       string
	GeneratedOn string
	Rows        []SparePartRow
}

// SparePartRow is one spare part in an export.
type SparePartRow struct {
	PartNumber  string
	Description string
	Category    string
	Price       int64
}

// lineKindLabel is the section name printed for each quote line kind.
func lineKindLabel(k LineKind) string {
	switch k {
	case LineBase:
		return "기본 장비 본체"
	case LineBattery:
		return "배터리"
	case LineOption:
		return "추가 옵션"
	case LineMandatory:
		return "필수 구성품"
	}
	return string(k)
}
