package results

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/eunmann/searchbench/pkg/bench"
)

// parquetRow mirrors bench.Row with the same column names as the CSV.
type parquetRow struct {
	Size       int64 `parquet:"size"`
	LinearNS   int64 `parquet:"linear_time"`
	BSTNS      int64 `parquet:"bst_time"`
	RBTNS      int64 `parquet:"rbt_time"`
	HashNS     int64 `parquet:"hash_time"`
	MultimapNS int64 `parquet:"multimap_time"`
	MPHFNS     int64 `parquet:"mphf_time"`
	Collisions int64 `parquet:"collisions"`
}

// WriteParquetFile writes rows as a Parquet file at path.
func WriteParquetFile(path string, rows []bench.Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	out := make([]parquetRow, len(rows))
	for i, r := range rows {
		out[i] = parquetRow{
			Size:       int64(r.Size),
			LinearNS:   r.Linear.Nanoseconds(),
			BSTNS:      r.BST.Nanoseconds(),
			RBTNS:      r.RBT.Nanoseconds(),
			HashNS:     r.Hash.Nanoseconds(),
			MultimapNS: r.Multimap.Nanoseconds(),
			MPHFNS:     r.MPHF.Nanoseconds(),
			Collisions: int64(r.Collisions),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := parquet.NewGenericWriter[parquetRow](f)
	if _, err := w.Write(out); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
