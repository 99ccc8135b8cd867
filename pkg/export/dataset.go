package export

import "fmt"

// Dataset defines tabular export content. Rows are positional and must match
// the header width.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

func (d Dataset) validate(kind string) error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("%s requires at least one header", kind)
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("%s row %d has %d cells, want %d", kind, i, len(row), len(d.Headers))
		}
	}
	return nil
}

// Field is a labelled value printed on a document export.
type Field struct {
	Label string
	Value string
}

// Document is a single-record printable export such as a hall ticket.
type Document struct {
	Title    string
	Subtitle string
	Fields   []Field
	Notes    []string
	Footer   string
}
