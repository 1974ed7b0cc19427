package dataset

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// arrowSchema mirrors the CSV columns in columnar form.
var arrowSchema = arrow.NewSchema([]arrow.Field{
	{Name: "date", Type: arrow.FixedWidthTypes.Date32},
	{Name: "day_of_the_week", Type: arrow.BinaryTypes.String},
	{Name: "sales", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// WriteArrow writes records to path as a single-batch Arrow IPC file.
// An existing file is overwritten.
func WriteArrow(path string, records []Record) error {
	pool := memory.NewGoAllocator()

	builder := array.NewRecordBuilder(pool, arrowSchema)
	defer builder.Release()

	dates := builder.Field(0).(*array.Date32Builder)
	weekdays := builder.Field(1).(*array.StringBuilder)
	sales := builder.Field(2).(*array.Float64Builder)
	for _, r := range records {
		dates.Append(arrow.Date32FromTime(r.Date))
		weekdays.Append(r.Weekday.String())
		sales.Append(r.Sales)
	}

	rec := builder.NewRecord()
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(arrowSchema), ipc.WithAllocator(pool))
	if err != nil {
		return fmt.Errorf("failed to create arrow writer: %w", err)
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		return fmt.Errorf("failed to write arrow record: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close arrow writer: %w", err)
	}
	return f.Close()
}
