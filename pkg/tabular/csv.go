package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/RyoK3N/Calendly-API/pkg/constants"
	"github.com/RyoK3N/Calendly-API/pkg/errors"
)

// WriteCSV writes the dataset as delimited text: one header row of column
// names, then one line per row. An empty dataset still writes the header.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(d.Columns); err != nil {
		return errors.WrapIO("write", "csv header", err)
	}
	for _, row := range d.Rows {
		cells := make([]string, len(d.Columns))
		for i, col := range d.Columns {
			cells[i] = row[col]
		}
		if err := cw.Write(cells); err != nil {
			return errors.WrapIO("write", "csv row", err)
		}
	}

	cw.Flush()
	return errors.WrapIO("flush", "csv", cw.Error())
}

// SaveCSV writes the dataset to path, creating parent directories as
// needed. Files are written once at the end of a run; an existing file at
// path is replaced.
func (d *Dataset) SaveCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := d.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.WrapIO("close", path, f.Close())
}

// ReadCSV parses delimited text into a dataset. The first line supplies
// the column order.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return &Dataset{}, nil
	}
	if err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}

	d := New(header...)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", "", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		d.Append(row)
	}
	return d, nil
}

// LoadCSV reads a dataset from a file on disk.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, errors.NewParseError("csv", path, err.Error(), err)
	}
	return d, nil
}
