// Package forms is the declarative validation layer used before a store
// action is called: required fields, numeric bounds, date ordering, and
// rules that only apply when another field holds certain values.
package forms

import (
	"fmt"
	"strings"
	"time"
)

type Values map[string]any

type kind int

const (
	kindRequired kind = iota
	kindMin
	kindMax
	kindDateNotBefore
	kindRequiredWhen
)

type Rule struct {
	field      string
	kind       kind
	bound      float64
	otherField string
	oneOf      []string
}

type Schema []Rule

func Required(field string) Rule {
	return Rule{field: field, kind: kindRequired}
}

func Min(field string, bound float64) Rule {
	return Rule{field: field, kind: kindMin, bound: bound}
}

func Max(field string, bound float64) Rule {
	return Rule{field: field, kind: kindMax, bound: bound}
}

// DateNotBefore enforces field >= other, the "end date must be after
// start date" cross-field rule with same-day ranges allowed.
func DateNotBefore(field, other string) Rule {
	return Rule{field: field, kind: kindDateNotBefore, otherField: other}
}

// RequiredWhen makes field mandatory while other holds one of the given
// values, e.g. reviewer notes once a leave is Approved or Rejected.
func RequiredWhen(field, other string, values ...string) Rule {
	return Rule{field: field, kind: kindRequiredWhen, otherField: other, oneOf: values}
}

// Validate applies every rule and returns one message per failing field.
// The first failure for a field wins.
func (s Schema) Validate(values Values) map[string]string {
	problems := make(map[string]string)
	for _, rule := range s {
		if _, seen := problems[rule.field]; seen {
			continue
		}
		if message := rule.check(values); message != "" {
			problems[rule.field] = message
		}
	}
	return problems
}

func (r Rule) check(values Values) string {
	switch r.kind {
	case kindRequired:
		if isEmpty(values[r.field]) {
			return fmt.Sprintf("%s is required", r.field)
		}
	case kindMin:
		if number, ok := asNumber(values[r.field]); ok && number < r.bound {
			return fmt.Sprintf("%s must be at least %g", r.field, r.bound)
		}
	case kindMax:
		if number, ok := asNumber(values[r.field]); ok && number > r.bound {
			return fmt.Sprintf("%s must be at most %g", r.field, r.bound)
		}
	case kindDateNotBefore:
		date, okDate := asTime(values[r.field])
		other, okOther := asTime(values[r.otherField])
		if okDate && okOther && date.Before(other) {
			return fmt.Sprintf("%s must not be before %s", r.field, r.otherField)
		}
	case kindRequiredWhen:
		status, _ := values[r.otherField].(string)
		for _, candidate := range r.oneOf {
			if status == candidate && isEmpty(values[r.field]) {
				return fmt.Sprintf("%s is required when %s is %s", r.field, r.otherField, status)
			}
		}
	}
	return ""
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case time.Time:
		return v.IsZero()
	default:
		return false
	}
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

func asTime(value any) (time.Time, bool) {
	ts, ok := value.(time.Time)
	return ts, ok
}
