package sheets

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Worksheet names in workbook order.
const (
	Dashboard    = "Dashboard"
	Categories   = "Categories"
	Suppliers    = "Suppliers"
	Products     = "Products"
	Inventory    = "Inventory"
	QuickAdd     = "QuickAdd"
	Reorder      = "Reorder"
	Analytics    = "Analytics"
	Instructions = "Instructions"
)

// Order is the sequence in which worksheets appear in the generated file.
var Order = []string{Dashboard, Categories, Suppliers, Products, Inventory, QuickAdd, Reorder, Analytics, Instructions}

// ErrSheetNotFound is returned when no input file exists for a worksheet.
var ErrSheetNotFound = errors.New("sheet source not found")

// Source loads the raw records backing one worksheet.
type Source interface {
	Load(sheet string) ([][]string, error)
}

//go:embed samples/*.csv
var samples embed.FS

// EmbeddedSource serves the sample data compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the built-in sample data set.
func NewEmbeddedSource() EmbeddedSource {
	return EmbeddedSource{}
}

// Load reads samples/<sheet>.csv.
func (EmbeddedSource) Load(sheet string) ([][]string, error) {
	data, err := samples.ReadFile("samples/" + sheet + ".csv")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
		}
		return nil, fmt.Errorf("failed to read embedded sample %s: %w", sheet, err)
	}
	return readCSV(bytes.NewReader(data), sheet)
}

// DirSource reads <dir>/<sheet>.csv, falling back to <dir>/<sheet>.xlsx.
type DirSource struct {
	dir string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load reads the worksheet's records from disk.
func (s *DirSource) Load(sheet string) ([][]string, error) {
	csvPath := filepath.Join(s.dir, sheet+".csv")
	file, err := os.Open(csvPath)
	if err == nil {
		defer file.Close()
		return readCSV(file, csvPath)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to open %s: %w", csvPath, err)
	}

	xlsxPath := filepath.Join(s.dir, sheet+".xlsx")
	if _, err := os.Stat(xlsxPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (looked in %s)", ErrSheetNotFound, sheet, s.dir)
		}
		return nil, fmt.Errorf("cannot stat %s: %w", xlsxPath, err)
	}
	return readXLSX(xlsxPath)
}

func readCSV(r io.Reader, name string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", name, err)
	}
	return records, nil
}

var (
	_ Source = EmbeddedSource{}
	_ Source = (*DirSource)(nil)
)
