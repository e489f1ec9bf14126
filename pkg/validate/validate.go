// Package validate checks request input structs against rules declared in a
// `validate` struct tag, before any business logic runs.
//
// Supported rules (comma-separated):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip remaining rules for this field
//	email               valid email address
//	numeric             any number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type registerInput struct {
//	    Name     string `json:"name"     validate:"required"`
//	    Email    string `json:"email"    validate:"required,email"`
//	    Password string `json:"password" validate:"required,min=6"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is one failed rule for one field, in declaration order.
type FieldError struct {
	Field   string
	Message string
}

// Struct validates all exported fields of v carrying a `validate` tag and
// returns the failures in field declaration order (first failing rule per
// field). An empty slice means the input is valid.
func Struct(v interface{}) []FieldError {
	var errs []FieldError

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		value := rv.Field(i)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs = append(errs, FieldError{Field: name, Message: msg})
				break
			}
		}
	}

	return errs
}

// HasErrors reports whether any validation failures are present.
func HasErrors(errs []FieldError) bool { return len(errs) > 0 }

// First returns the first failure message, or "" when there are none.
func First(errs []FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Message
}

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	case "min":
		n, _ := strconv.ParseFloat(param, 64)
		if size, isLen := sizeOf(v); isLen {
			if float64(size) < n {
				return fmt.Sprintf("The %s must be at least %s characters.", field, param)
			}
		} else if num, ok := numberOf(v); ok && num < n {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "max":
		n, _ := strconv.ParseFloat(param, 64)
		if size, isLen := sizeOf(v); isLen {
			if float64(size) > n {
				return fmt.Sprintf("The %s may not be greater than %s characters.", field, param)
			}
		} else if num, ok := numberOf(v); ok && num > n {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}
	case "gte":
		n, _ := strconv.ParseFloat(param, 64)
		if num, ok := numberOf(v); ok && num < n {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "lte":
		n, _ := strconv.ParseFloat(param, 64)
		if num, ok := numberOf(v); ok && num > n {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}
	case "in":
		for _, option := range strings.Split(param, ",") {
			if raw == option {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return strings.ToLower(field.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name)
	}
	return name
}

func hasRule(rules []string, want string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == want {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// sizeOf returns the length for length-bearing kinds (strings, slices).
func sizeOf(v reflect.Value) (int, bool) {
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), true
	default:
		return 0, false
	}
}

func numberOf(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
