package query

import (
	"strings"

	"github.com/yashagw/relscan/internal/relation"
	"github.com/yashagw/relscan/internal/value"
)

// makeRelation builds an in-memory relation from a schema spec like
// "id:int,name:string" and a list of rows of Go values.
func makeRelation(spec string, rows ...[]any) *relation.MemoryIterator {
	schema := relation.NewSchema()
	for _, field := range strings.Split(spec, ",") {
		name, fieldType, ok := strings.Cut(field, ":")
		if !ok {
			panic("bad field spec: " + field)
		}
		schema.AddField(name, fieldType)
	}

	constRows := make([][]*value.Constant, len(rows))
	for i, row := range rows {
		constRow := make([]*value.Constant, len(row))
		for j, val := range row {
			switch v := val.(type) {
			case int:
				constRow[j] = value.NewIntConstant(v)
			case float64:
				constRow[j] = value.NewFloatConstant(v)
			case string:
				constRow[j] = value.NewStringConstant(v)
			default:
				panic("unsupported value type")
			}
		}
		constRows[i] = constRow
	}

	it, err := relation.NewMemoryIterator(schema, constRows)
	if err != nil {
		panic(err)
	}
	return it
}
