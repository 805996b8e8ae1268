package decode

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/value"
)

// CSVDecoder implements §6.2's schema-driven CSV rule: the hint schema's
// shape decides whether rows become header-keyed objects or positional
// tuples. Unlike the other decoders in this package it does not satisfy
// Decoder, since it requires that extra hint parameter.
type CSVDecoder struct{}

func (CSVDecoder) Decode(text string, hint schema.Schema) (value.Value, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	list, ok := schema.Unwrap(hint).(schema.ListOfSchema)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: CSV decoding requires a ListOf(Object) or ListOf(Tuple) schema hint", ErrMalformedInput)
	}

	switch schema.Unwrap(list.Element).(type) {
	case schema.ObjectSchema:
		return decodeCSVRows(records), nil
	case schema.TupleSchema:
		return decodeCSVTuples(records), nil
	default:
		return value.Value{}, fmt.Errorf("%w: CSV decoding requires a ListOf(Object) or ListOf(Tuple) schema hint", ErrMalformedInput)
	}
}

// decodeCSVRows treats the first record as a header and every subsequent
// record as one header-keyed object.
func decodeCSVRows(records [][]string) value.Value {
	if len(records) == 0 {
		return value.List(nil)
	}
	header := records[0]
	rows := records[1:]
	items := make([]value.Value, 0, len(rows))
	for _, row := range rows {
		obj := value.NewObject()
		for i, col := range header {
			if i < len(row) {
				obj.Set(col, value.Text(row[i]))
			}
		}
		items = append(items, value.FromObject(obj))
	}
	return value.List(items)
}

// decodeCSVTuples treats every record, including the first, as a
// positional row — there is no header to consume.
func decodeCSVTuples(records [][]string) value.Value {
	items := make([]value.Value, 0, len(records))
	for _, row := range records {
		cells := make([]value.Value, len(row))
		for i, c := range row {
			cells[i] = value.Text(c)
		}
		items = append(items, value.Tuple(cells))
	}
	return value.List(items)
}
