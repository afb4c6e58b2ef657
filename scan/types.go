package scan

import (
	"reflect"

	"github.com/avicd/go-utilx/refx"
)

// GetDfType maps a driver-reported column type name onto the Go type a
// value of that column should surface as. Covers the sqlite/mysql
// spellings plus the postgres ones.
func GetDfType(dt string) reflect.Type {
	switch dt {
	case "BOOL", "BOOLEAN":
		return reflect.TypeOf(refx.TBool)
	case "BINARY", "VARBINARY", "TINYBLOB", "BLOB", "MEDIUMBLOB", "LONGBLOB", "BYTEA":
		return reflect.TypeOf(refx.TBytes)
	case "BIGINT", "INT8", "BIGSERIAL":
		return reflect.TypeOf(refx.TInt64)
	case "INTEGER", "INT", "INT4", "MEDIUMINT", "SERIAL":
		return reflect.TypeOf(refx.TInt32)
	case "SMALLINT", "INT2":
		return reflect.TypeOf(refx.TInt16)
	case "TINYINT":
		return reflect.TypeOf(refx.TInt8)
	case "CHAR", "VARCHAR", "BPCHAR", "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT", "NAME", "UUID", "JSON", "JSONB":
		return reflect.TypeOf(refx.TString)
	case "DATE", "TIME", "DATETIME", "TIMESTAMP", "TIMESTAMPTZ":
		return reflect.TypeOf(refx.TString)
	case "FLOAT", "FLOAT4", "REAL":
		return reflect.TypeOf(refx.TFloat32)
	case "DOUBLE", "DOUBLE PRECISION", "FLOAT8", "NUMERIC", "DECIMAL":
		return reflect.TypeOf(refx.TFloat64)
	}
	return reflect.TypeOf(refx.TAny)
}
