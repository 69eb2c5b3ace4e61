// Package validator checks request payloads against the constraints declared
// in their `req` struct tags before they are serialized to the wire.
//
// Supported rules: "required" (non-zero value), "min:<n>"/"max:<n>" (numeric
// bounds or string length), and "enum:a|b|c" (allowed values).
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const tagName = "req"

// Validate walks the exported fields of a struct (or pointer to struct) and
// returns the first constraint violation, or nil.
func Validate(s interface{}) error {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct, got %s", val.Kind())
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		structField := typ.Field(i)

		if !structField.IsExported() {
			continue
		}

		tag := structField.Tag.Get(tagName)
		if tag == "" {
			continue
		}

		name := wireName(structField)
		if err := validateField(field, tag, name); err != nil {
			return err
		}
	}

	return nil
}

func validateField(value reflect.Value, tag string, name string) error {
	rules := strings.Split(tag, ",")

	required := false
	for _, rule := range rules {
		if strings.TrimSpace(rule) == "required" {
			required = true
		}
	}

	if isZeroValue(value) {
		if required {
			return fmt.Errorf("field %q is required", name)
		}
		// Optional zero-valued fields are omitted from the body; nothing to check.
		return nil
	}

	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		switch {
		case rule == "required" || rule == "":
		case strings.HasPrefix(rule, "min:"):
			if err := validateMin(value, rule[4:], name); err != nil {
				return err
			}
		case strings.HasPrefix(rule, "max:"):
			if err := validateMax(value, rule[4:], name); err != nil {
				return err
			}
		case strings.HasPrefix(rule, "enum:"):
			if err := validateEnum(value, rule[5:], name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown rule %q on field %q", rule, name)
		}
	}

	return nil
}

func validateEnum(value reflect.Value, allowed string, name string) error {
	current := fmt.Sprintf("%v", value.Interface())
	values := strings.Split(allowed, "|")
	for _, v := range values {
		if current == v {
			return nil
		}
	}
	return fmt.Errorf("field %q must be one of: %s", name, strings.Join(values, ", "))
}

func validateMin(value reflect.Value, minStr string, name string) error {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, err := strconv.ParseInt(minStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid min value for field %q: %s", name, minStr)
		}
		if value.Int() < min {
			return fmt.Errorf("field %q must be at least %d", name, min)
		}
	case reflect.Float32, reflect.Float64:
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return fmt.Errorf("invalid min value for field %q: %s", name, minStr)
		}
		if value.Float() < min {
			return fmt.Errorf("field %q must be at least %g", name, min)
		}
	case reflect.String:
		minLen, err := strconv.Atoi(minStr)
		if err != nil {
			return fmt.Errorf("invalid min length for field %q: %s", name, minStr)
		}
		if len(value.String()) < minLen {
			return fmt.Errorf("field %q must be at least %d characters", name, minLen)
		}
	}
	return nil
}

func validateMax(value reflect.Value, maxStr string, name string) error {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid max value for field %q: %s", name, maxStr)
		}
		if value.Int() > max {
			return fmt.Errorf("field %q must be at most %d", name, max)
		}
	case reflect.Float32, reflect.Float64:
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return fmt.Errorf("invalid max value for field %q: %s", name, maxStr)
		}
		if value.Float() > max {
			return fmt.Errorf("field %q must be at most %g", name, max)
		}
	case reflect.String:
		maxLen, err := strconv.Atoi(maxStr)
		if err != nil {
			return fmt.Errorf("invalid max length for field %q: %s", name, maxStr)
		}
		if len(value.String()) > maxLen {
			return fmt.Errorf("field %q must be at most %d characters", name, maxLen)
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

// wireName prefers the json tag so validation errors name the field the way
// it appears on the wire.
func wireName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return field.Name
	}
	name := strings.TrimSpace(strings.Split(jsonTag, ",")[0])
	if name == "" {
		return field.Name
	}
	return name
}
