package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds a single-row INSERT from the db tags of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels builds one multi-row INSERT. Every model must be the same
// struct type so the column list is shared.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert %s: no models", table)
	}

	builder := InsertInto(table).Suffix(suffix)
	var rowType reflect.Type
	for i, model := range models {
		value, err := structValue(model)
		if err != nil {
			return "", nil, fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
		if rowType == nil {
			rowType = value.Type()
			cols := taggedColumns(rowType)
			if len(cols) == 0 {
				return "", nil, fmt.Errorf("insert %s: model has no db columns", table)
			}
			builder.Columns(columnNames(cols)...)
		} else if value.Type() != rowType {
			return "", nil, fmt.Errorf("insert %s row %d: got %s, want %s", table, i, value.Type(), rowType)
		}
		builder.Values(columnValues(value, taggedColumns(rowType))...)
	}

	return builder.ToSQL()
}

type taggedColumn struct {
	name  string
	index int
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be struct")
	}
	return value, nil
}

func taggedColumns(typ reflect.Type) []taggedColumn {
	cols := make([]taggedColumn, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, taggedColumn{name: col, index: i})
	}
	return cols
}

func columnNames(cols []taggedColumn) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.name)
	}
	return out
}

func columnValues(value reflect.Value, cols []taggedColumn) []any {
	out := make([]any, 0, len(cols))
	for _, c := range cols {
		out = append(out, value.Field(c.index).Interface())
	}
	return out
}
