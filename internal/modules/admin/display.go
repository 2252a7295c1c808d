package admin

import (
	"reflect"
	"strings"

	"github.com/blogicum/blogicum/internal/models"
)

var labeledType = reflect.TypeOf((*models.Labeled)(nil)).Elem()

// displayRow picks the listed JSON fields of obj. Related entities render as
// their label, missing relations as null. The row always carries id and label.
func displayRow(obj any, fields []string) map[string]any {
	v := reflect.Indirect(reflect.ValueOf(obj))
	row := make(map[string]any, len(fields)+2)
	for _, name := range fields {
		fv, ok := fieldByJSONName(v, name)
		if !ok {
			row[name] = nil
			continue
		}
		row[name] = displayValue(fv)
	}
	if id, ok := fieldByJSONName(v, "id"); ok {
		row["id"] = id.Interface()
	}
	row["label"] = labelOf(obj)
	return row
}

func displayValue(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		if v.Type().Implements(labeledType) {
			return v.Interface().(models.Labeled).Label()
		}
		return v.Elem().Interface()
	}
	if v.Type().Implements(labeledType) && v.Kind() == reflect.Struct {
		return v.Interface().(models.Labeled).Label()
	}
	return v.Interface()
}

func labelOf(obj any) string {
	if l, ok := obj.(models.Labeled); ok {
		return l.Label()
	}
	return ""
}

// fieldByJSONName finds a field by its json tag, descending into embedded structs.
func fieldByJSONName(v reflect.Value, name string) (reflect.Value, bool) {
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if fv, ok := fieldByJSONName(v.Field(i), name); ok {
				return fv, true
			}
			continue
		}
		tag := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			tag = sf.Name
		}
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
