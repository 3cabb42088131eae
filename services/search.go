package services

import (
	"strings"

	"karcherhub/catalog"
)

// FilterCatalog keeps the equipment whose name contains query ignoring case,
// or whose id or category contains query exactly as typed. Catalog order is
// preserved and an empty query keeps everything.
func FilterCatalog(query string, records []catalog.Equipment) []catalog.Equipment {
	q := strings.ToLower(query)
	out := make([]catalog.Equipment, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(r.ID, query) ||
			strings.Contains(r.Category, query) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSpareParts keeps the parts whose description contains query ignoring
// case, or whose part number contains query exactly as typed.
func FilterSpareParts(query string, parts []catalog.SparePart) []catalog.SparePart {
	q := strings.ToLower(query)
	out := make([]catalog.SparePart, 0, len(parts))
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(p.PartNumber, query) {
			out = append(out, p)
		}
	}
	return out
}
