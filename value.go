package setskema

import (
	"math"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/reoring/setskema/i18n"
)

// dateLayout is the calendar-date form date settings carry ("2025-07-31").
const dateLayout = "2006-01-02"

// ValidateSettingValue runs the per-type rule pipeline for a single setting
// and returns the first violated rule's message, or "" when the value passes.
// A custom Validation.Message replaces the default copy of whichever check
// fails; compound cross-field rules always report their own message. The
// function is pure and never panics; the only internal failure mode, a
// non-compilable pattern, is reported as a message.
func ValidateSettingValue(def *Setting, value any) string {
	if def == nil {
		return ""
	}
	switch def.Type {
	case TypeText:
		return validateText(def, value)
	case TypeNumber:
		return validateNumber(def, value)
	case TypeSelect:
		return validateSelect(def, value)
	case TypeMultiselect:
		return validateMultiselect(def, value)
	case TypeDate:
		return validateDate(def, value)
	case TypeCompound:
		return validateCompound(def, value)
	case TypeRepeatable:
		return validateRepeatable(def, value)
	default:
		// boolean, action, custom and unknown future types carry no
		// intrinsic rules.
		return ""
	}
}

// ValidateConfirmText checks a typed confirmation phrase. An absent required
// text always passes; otherwise exact equality is demanded.
func ValidateConfirmText(requiredText, typed string) bool {
	return requiredText == "" || typed == requiredText
}

func ruleMessage(v *ValidationRule, code string, data map[string]string) string {
	if v != nil && v.Message != "" {
		return v.Message
	}
	return i18n.T(code, data)
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func validateText(def *Setting, value any) string {
	v := def.Validation
	s, _ := value.(string)
	if s == "" {
		if v != nil && v.Required {
			return ruleMessage(v, "required", nil)
		}
		return ""
	}
	if v == nil {
		return ""
	}
	n := utf8.RuneCountInString(s)
	if v.MinLength != nil && n < *v.MinLength {
		return ruleMessage(v, "min_length", map[string]string{"n": strconv.Itoa(*v.MinLength)})
	}
	if v.MaxLength != nil && n > *v.MaxLength {
		return ruleMessage(v, "max_length", map[string]string{"n": strconv.Itoa(*v.MaxLength)})
	}
	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err != nil {
			return ruleMessage(v, "invalid_pattern", nil)
		}
		if !re.MatchString(s) {
			return ruleMessage(v, "pattern", nil)
		}
	}
	return ""
}

func validateNumber(def *Setting, value any) string {
	v := def.Validation
	if value == nil || value == "" {
		if v != nil && v.Required {
			return ruleMessage(v, "required", nil)
		}
		return ""
	}
	f, ok := toNumber(value)
	if !ok {
		return ruleMessage(v, "not_a_number", nil)
	}
	if v == nil {
		return ""
	}
	if v.Min != nil && f < *v.Min {
		return ruleMessage(v, "number_min", map[string]string{"n": formatNum(*v.Min)})
	}
	if v.Max != nil && f > *v.Max {
		return ruleMessage(v, "number_max", map[string]string{"n": formatNum(*v.Max)})
	}
	if v.Step != nil && *v.Step > 0 {
		base := 0.0
		if v.Min != nil {
			base = *v.Min
		}
		if !isMultipleOf(f-base, *v.Step) {
			if *v.Step == 1 {
				return ruleMessage(v, "whole_number", nil)
			}
			return ruleMessage(v, "multiple_of", map[string]string{"n": formatNum(*v.Step)})
		}
	}
	return ""
}

// isMultipleOf tolerates the floating error accumulated by host arithmetic.
func isMultipleOf(d, step float64) bool {
	const eps = 1e-9
	r := math.Mod(math.Abs(d), step)
	return r < eps || step-r < eps
}

func validateSelect(def *Setting, value any) string {
	v := def.Validation
	if value == nil || value == "" {
		if v != nil && v.Required {
			return ruleMessage(v, "required", nil)
		}
		return ""
	}
	s, ok := value.(string)
	if !ok || !hasOptionValue(def.Options, s) {
		return ruleMessage(v, "invalid_selection", nil)
	}
	return ""
}

func validateMultiselect(def *Setting, value any) string {
	v := def.Validation
	elems, isArr := asSlice(value)
	if !isArr || len(elems) == 0 {
		if v != nil && v.Required {
			return ruleMessage(v, "selection_required", nil)
		}
		return ""
	}
	if v != nil {
		if v.MinSelections != nil && len(elems) < *v.MinSelections {
			return ruleMessage(v, "min_selections", map[string]string{"n": strconv.Itoa(*v.MinSelections)})
		}
		if v.MaxSelections != nil && len(elems) > *v.MaxSelections {
			return ruleMessage(v, "max_selections", map[string]string{"n": strconv.Itoa(*v.MaxSelections)})
		}
	}
	for _, el := range elems {
		s, ok := el.(string)
		if !ok || !hasOptionValue(def.Options, s) {
			return ruleMessage(v, "invalid_multi_selection", nil)
		}
	}
	return ""
}

func validateDate(def *Setting, value any) string {
	v := def.Validation
	s, ok := value.(string)
	if !ok || s == "" {
		if v != nil && v.Required {
			return ruleMessage(v, "required", nil)
		}
		return ""
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return ruleMessage(v, "invalid_date", nil)
	}
	if v == nil {
		return ""
	}
	if v.MinDate != "" {
		if min, err := time.Parse(dateLayout, v.MinDate); err == nil && t.Before(min) {
			return ruleMessage(v, "date_min", map[string]string{"date": v.MinDate})
		}
	}
	if v.MaxDate != "" {
		if max, err := time.Parse(dateLayout, v.MaxDate); err == nil && t.After(max) {
			return ruleMessage(v, "date_max", map[string]string{"date": v.MaxDate})
		}
	}
	return ""
}

func validateCompound(def *Setting, value any) string {
	// A non-object value behaves as an empty record: no rule can fire.
	record, _ := value.(map[string]any)
	for _, r := range def.Rules {
		if truthy(record[r.When]) && isEmptyValue(record[r.Require]) {
			return r.Message
		}
	}
	return ""
}

func validateRepeatable(def *Setting, value any) string {
	v := def.Validation
	elems, _ := asSlice(value)
	n := len(elems)
	if v == nil {
		return ""
	}
	if v.MinItems != nil && n < *v.MinItems {
		return ruleMessage(v, "min_items", map[string]string{"n": strconv.Itoa(*v.MinItems)})
	}
	if v.MaxItems != nil && n > *v.MaxItems {
		return ruleMessage(v, "max_items", map[string]string{"n": strconv.Itoa(*v.MaxItems)})
	}
	return ""
}
