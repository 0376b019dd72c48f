package arcserde

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalRow renders a row as a JSON array of NumColumns cells: strings,
// numbers, and the header list as [{"key":...,"value":...},...]. The codec
// itself never touches JSON; this projection serves the tooling around it.
func MarshalRow(row Row) ([]byte, error) {
	if len(row) != NumColumns {
		return nil, fmt.Errorf("arcserde: row has %d cells, want %d", len(row), NumColumns)
	}
	cells := make([]any, len(row))
	for i, v := range row {
		switch cv := v.(type) {
		case String:
			cells[i] = string(cv)
		case Int:
			cells[i] = int32(cv)
		case Bigint:
			cells[i] = int64(cv)
		case HeaderList:
			cells[i] = []HeaderPair(cv)
		default:
			return nil, fmt.Errorf("arcserde: cell %d has no JSON form (%s)", i, cellCategory(v))
		}
	}
	return json.Marshal(cells)
}

// UnmarshalRow rebuilds a typed row from its JSON array form, using the
// canonical column categories. Wrong arity or a cell that does not fit its
// column's category is an error.
func UnmarshalRow(data []byte) (Row, error) {
	var cells []json.RawMessage
	if err := json.Unmarshal(data, &cells); err != nil {
		return nil, fmt.Errorf("arcserde: row is not a JSON array: %w", err)
	}
	if len(cells) != NumColumns {
		return nil, fmt.Errorf("arcserde: row has %d cells, want %d", len(cells), NumColumns)
	}
	row := make(Row, NumColumns)
	for i, raw := range cells {
		switch categoryFor(i) {
		case CategoryString:
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("arcserde: cell %d: %w", i, err)
			}
			row[i] = String(s)
		case CategoryInt:
			var n int32
			if err := json.Unmarshal(raw, &n); err != nil {
				return nil, fmt.Errorf("arcserde: cell %d: %w", i, err)
			}
			row[i] = Int(n)
		case CategoryBigint:
			var n int64
			if err := json.Unmarshal(raw, &n); err != nil {
				return nil, fmt.Errorf("arcserde: cell %d: %w", i, err)
			}
			row[i] = Bigint(n)
		case CategoryHeaderList:
			pairs := HeaderList{}
			if err := json.Unmarshal(raw, &pairs); err != nil {
				return nil, fmt.Errorf("arcserde: cell %d: %w", i, err)
			}
			row[i] = pairs
		}
	}
	return row, nil
}
