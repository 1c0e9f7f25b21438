package dsl

import setskema "github.com/reoring/setskema"

// Eq builds a condition that is true when the referenced setting's value
// equals want. Eq(key, nil) matches an unset or null value.
func Eq(setting string, want any) *setskema.Condition {
	return &setskema.Condition{Setting: setting, Equals: want, HasEquals: true}
}

// Ne is the negation of Eq.
func Ne(setting string, want any) *setskema.Condition {
	return &setskema.Condition{Setting: setting, NotEquals: want, HasNotEquals: true}
}

// OneOf is true when the referenced value equals any of the candidates.
func OneOf(setting string, candidates ...any) *setskema.Condition {
	if candidates == nil {
		candidates = []any{}
	}
	return &setskema.Condition{Setting: setting, OneOf: candidates}
}

// Gt is true when the referenced value is numerically greater than n.
func Gt(setting string, n float64) *setskema.Condition {
	return &setskema.Condition{Setting: setting, GreaterThan: &n}
}

// Lt is true when the referenced value is numerically less than n.
func Lt(setting string, n float64) *setskema.Condition {
	return &setskema.Condition{Setting: setting, LessThan: &n}
}

// Contains is true when the referenced array value contains want.
func Contains(setting string, want any) *setskema.Condition {
	return &setskema.Condition{Setting: setting, Contains: want, HasContains: true}
}

// Empty is true when the referenced value is unset, null, "" or an empty
// array.
func Empty(setting string) *setskema.Condition {
	t := true
	return &setskema.Condition{Setting: setting, IsEmpty: &t}
}

// NotEmpty is the negation of Empty.
func NotEmpty(setting string) *setskema.Condition {
	f := false
	return &setskema.Condition{Setting: setting, IsEmpty: &f}
}

// Truthy carries no operator and falls back to plain truthiness of the
// referenced value.
func Truthy(setting string) *setskema.Condition {
	return &setskema.Condition{Setting: setting}
}

// AnyOf combines conditions with OR. Combine the result with other rules in a
// visibleWhen list for AND-of-ORs.
func AnyOf(conds ...*setskema.Condition) *setskema.ConditionGroup {
	return &setskema.ConditionGroup{Or: conds}
}
