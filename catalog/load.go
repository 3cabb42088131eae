package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
)

//go:embed data/catalog.json
var embeddedData []byte

// dataFile is the on-disk layout of catalog.json.
type dataFile struct {
	Version      string                 `json:"version" validate:"required"`
	Currency     string                 `json:"currency" validate:"required,len=3"`
	Equipment    []Equipment            `json:"equipment" validate:"required,unique=ID,dive"`
	SpareParts   []SparePart            `json:"spare_parts" validate:"unique=PartNumber,dive"`
	Stock        map[string]StockRecord `json:"stock" validate:"dive"`
	BatteryGuide []BatteryGuideEntry    `json:"battery_guide" validate:"dive"`
	StatCards    []StatCard             `json:"stat_cards" validate:"unique=Key,dive"`
	FAQ          []FAQEntry             `json:"faq" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadEmbedded builds a Store from the catalog data compiled into the binary.
func LoadEmbedded() (*Store, error) {
	return Parse(bytes.NewReader(embeddedData))
}

// LoadFile builds a Store from a catalog data file on disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates catalog data. Every violation is reported, not
// just the first one.
func Parse(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f dataFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := check(f); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", f.Version, err)
	}
	return newStore(f), nil
}

func check(f dataFile) error {
	var errs []error

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err)
		}
	}

	known := make(map[string]bool, len(f.Equipment))
	for _, e := range f.Equipment {
		known[e.ID] = true
	}
	ids := make([]string, 0, len(f.Stock))
	for id := range f.Stock {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !known[id] {
			errs = append(errs, fmt.Errorf("stock %q: no such equipment", id))
		}
	}

	return errors.Join(errs...)
}
