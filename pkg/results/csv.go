// Package results externalizes benchmark rows: CSV by default, Parquet on
// request, with optional upload of the written file to S3.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/eunmann/searchbench/pkg/bench"
)

// Header is the CSV column layout. Rows follow in increasing size order;
// times are integer nanoseconds.
var Header = []string{
	"size",
	"linear_time",
	"bst_time",
	"rbt_time",
	"hash_time",
	"multimap_time",
	"mphf_time",
	"collisions",
}

// ErrNoRows is returned when there is nothing to export.
var ErrNoRows = errors.New("results: no rows to export")

// WriteCSV writes rows to w.
func WriteCSV(w io.Writer, rows []bench.Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.Linear.Nanoseconds(), 10),
			strconv.FormatInt(r.BST.Nanoseconds(), 10),
			strconv.FormatInt(r.RBT.Nanoseconds(), 10),
			strconv.FormatInt(r.Hash.Nanoseconds(), 10),
			strconv.FormatInt(r.Multimap.Nanoseconds(), 10),
			strconv.FormatInt(r.MPHF.Nanoseconds(), 10),
			strconv.FormatUint(r.Collisions, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row for size %d: %w", r.Size, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes rows to the file at path, creating or truncating it.
func WriteCSVFile(path string, rows []bench.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
