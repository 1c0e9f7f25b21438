package setskema

// VisibilityRule is the sealed union of a single *Condition and an
// or-combining *ConditionGroup.
type VisibilityRule interface {
	visibilityRule()
}

// Visibility is a list of rules combined with AND. A nil or empty list means
// "always visible". Evaluation is order-independent across the list.
type Visibility []VisibilityRule

// Condition is a predicate over another setting's current value. Exactly one
// operator is consulted, in fixed priority: Equals, NotEquals, OneOf,
// GreaterThan, LessThan, Contains, IsEmpty. A condition carrying no operator
// falls back to plain truthiness of the referenced value.
//
// Equals, NotEquals and Contains keep an explicit presence flag so that a
// comparison against nil ("equals null") stays distinguishable from an absent
// operator. The dsl package provides constructors that set the flags.
type Condition struct {
	Setting string `json:"setting"`

	Equals       any  `json:"equals,omitempty"`
	HasEquals    bool `json:"-"`
	NotEquals    any  `json:"notEquals,omitempty"`
	HasNotEquals bool `json:"-"`

	OneOf []any `json:"oneOf,omitempty"`

	GreaterThan *float64 `json:"greaterThan,omitempty"`
	LessThan    *float64 `json:"lessThan,omitempty"`

	Contains    any  `json:"contains,omitempty"`
	HasContains bool `json:"-"`

	IsEmpty *bool `json:"isEmpty,omitempty"`
}

func (*Condition) visibilityRule() {}

// ConditionGroup combines member conditions with OR.
type ConditionGroup struct {
	Or []*Condition `json:"or"`
}

func (*ConditionGroup) visibilityRule() {}

// EvaluateVisibility evaluates a visibility rule list against the host's
// values mapping. It is a total function: malformed rules never error, they
// fall back to truthiness of the referenced value.
func EvaluateVisibility(vis Visibility, values Values) bool {
	for _, rule := range vis {
		if !evaluateRule(rule, values) {
			return false
		}
	}
	return true
}

func evaluateRule(rule VisibilityRule, values Values) bool {
	switch r := rule.(type) {
	case *Condition:
		return evaluateCondition(r, values)
	case *ConditionGroup:
		for _, c := range r.Or {
			if evaluateCondition(c, values) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func evaluateCondition(c *Condition, values Values) bool {
	if c == nil {
		return true
	}
	v := values[c.Setting]
	switch {
	case c.HasEquals:
		return looseEq(v, c.Equals)
	case c.HasNotEquals:
		return !looseEq(v, c.NotEquals)
	case c.OneOf != nil:
		for _, want := range c.OneOf {
			if looseEq(v, want) {
				return true
			}
		}
		return false
	case c.GreaterThan != nil:
		f, ok := toNumber(v)
		return ok && f > *c.GreaterThan
	case c.LessThan != nil:
		f, ok := toNumber(v)
		return ok && f < *c.LessThan
	case c.HasContains:
		elems, ok := asSlice(v)
		if !ok {
			return false
		}
		for _, el := range elems {
			if looseEq(el, c.Contains) {
				return true
			}
		}
		return false
	case c.IsEmpty != nil:
		return isEmptyValue(v) == *c.IsEmpty
	default:
		return truthy(v)
	}
}

// visibilityRefs returns the ordered, de-duplicated setting keys referenced by
// a visibility rule list, including members of or-groups.
func visibilityRefs(vis Visibility) []string {
	var out []string
	seen := map[string]bool{}
	add := func(key string) {
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, key)
	}
	for _, rule := range vis {
		switch r := rule.(type) {
		case *Condition:
			add(r.Setting)
		case *ConditionGroup:
			for _, c := range r.Or {
				add(c.Setting)
			}
		}
	}
	return out
}
