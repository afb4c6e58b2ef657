package scan

import (
	"database/sql"
	"reflect"

	"github.com/avicd/go-utilx/refx"
)

// Rows drains a result set into generic column→value maps. Drivers hand
// text columns back as []byte; those are surfaced as string when the
// column's declared type says so.
func Rows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	stringType := reflect.TypeOf(refx.TString)
	var out []map[string]any
	for rows.Next() {
		raw := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := map[string]any{}
		for i, col := range cols {
			val := raw[i]
			if b, ok := val.([]byte); ok {
				if GetDfType(colTypes[i].DatabaseTypeName()) == stringType {
					val = string(b)
				}
			}
			row[col] = val
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
