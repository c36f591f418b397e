package render

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/joacominatel/ducklogs/internal/backend"
)

// FormatCell turns one result value into display text.
// nil renders empty, objects and arrays render as JSON, everything else
// renders as its plain string form.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case map[string]any, []any, backend.Row:
		return toJSON(x)
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return toJSON(v)
	case reflect.Pointer:
		rv := reflect.ValueOf(v)
		if rv.IsNil() {
			return ""
		}
		return FormatCell(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// formatFloat uses plain decimal notation and switches to exponent form
// outside [1e-6, 1e21), the same boundaries a browser uses.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func toJSON(v any) string {
	s, err := backend.JSON.MarshalToString(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
