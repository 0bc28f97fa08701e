// Package inspect extracts displayable fields from ECS components using
// `inspect` struct tags. It has no rendering dependencies.
package inspect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/geom"
)

// Widget types for rendering fields.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetAngle
	WidgetBool
	WidgetSkip
)

// Field represents a component field with rendering hints.
type Field struct {
	Name    string
	Value   any
	Widget  Widget
	Options map[string]string
}

// ParseTag parses an inspect struct tag.
// Format: `inspect:"widget[,option:value...]"`
// Examples:
//
//	`inspect:"bar"`
//	`inspect:"bar,min:42,max:100"`
//	`inspect:"angle"`
//	`inspect:"label,fmt:%.1f"`
//	`inspect:"skip"`
func ParseTag(tag string) (Widget, map[string]string) {
	options := make(map[string]string)

	if tag == "" {
		return WidgetAuto, options
	}

	parts := strings.Split(tag, ",")

	var widget Widget
	switch strings.TrimSpace(parts[0]) {
	case "label":
		widget = WidgetLabel
	case "bar":
		widget = WidgetBar
	case "angle":
		widget = WidgetAngle
	case "bool":
		widget = WidgetBool
	case "skip":
		widget = WidgetSkip
	default:
		widget = WidgetAuto
	}

	for _, part := range parts[1:] {
		kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(kv) == 2 {
			options[kv[0]] = kv[1]
		}
	}

	return widget, options
}

// ExtractFields uses reflection to extract the exported fields of a component.
func ExtractFields(component any) []Field {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var fields []Field

	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		widget, options := ParseTag(sf.Tag.Get("inspect"))
		if widget == WidgetSkip {
			continue
		}

		fv := v.Field(i)
		if widget == WidgetAuto {
			widget = autoDetectWidget(fv)
		}

		fields = append(fields, Field{
			Name:    sf.Name,
			Value:   fv.Interface(),
			Widget:  widget,
			Options: options,
		})
	}

	return fields
}

// TypeName returns the bare type name of a component, e.g. "Transform".
func TypeName(component any) string {
	t := reflect.TypeOf(component)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// autoDetectWidget chooses a widget based on the field type.
func autoDetectWidget(v reflect.Value) Widget {
	switch v.Kind() {
	case reflect.Bool:
		return WidgetBool
	default:
		return WidgetLabel
	}
}

// FormatValue formats a field value as a string.
func FormatValue(value any, fmtStr string) string {
	switch v := value.(type) {
	case r3.Vec:
		if fmtStr == "" {
			fmtStr = "%.2f"
		}
		return fmt.Sprintf("("+fmtStr+", "+fmtStr+", "+fmtStr+")", v.X, v.Y, v.Z)
	case r3.Rotation:
		axis, deg := geom.AxisAngle(v)
		return fmt.Sprintf("%.1f deg about (%.2f, %.2f, %.2f)", deg, axis.X, axis.Y, axis.Z)
	}

	if fmtStr == "" {
		switch v := value.(type) {
		case float32:
			return fmt.Sprintf("%.2f", v)
		case float64:
			return fmt.Sprintf("%.2f", v)
		case string:
			if v == "" {
				return `""`
			}
			return v
		default:
			return fmt.Sprintf("%v", value)
		}
	}
	return fmt.Sprintf(fmtStr, value)
}

// GetMin returns the min option as a float, defaulting to 0.
func GetMin(options map[string]string) float32 {
	return optionFloat(options, "min", 0)
}

// GetMax returns the max option as a float, defaulting to 1.
func GetMax(options map[string]string) float32 {
	return optionFloat(options, "max", 1)
}

func optionFloat(options map[string]string, key string, def float32) float32 {
	if s, ok := options[key]; ok {
		if f, err := strconv.ParseFloat(s, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

// Ratio maps value into [0, 1] across the field's min/max options.
func Ratio(value float32, options map[string]string) float32 {
	lo, hi := GetMin(options), GetMax(options)
	if hi <= lo {
		return 0
	}
	r := (value - lo) / (hi - lo)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// GetFloatValue extracts a float32 from numeric types.
func GetFloatValue(value any) (float32, bool) {
	switch v := value.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case int32:
		return float32(v), true
	case int64:
		return float32(v), true
	case uint32:
		return float32(v), true
	default:
		return 0, false
	}
}
