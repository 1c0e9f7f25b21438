package setskema

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidateSchema performs one depth-first pass in declaration order and
// returns every structural diagnostic it finds. It never panics and never
// short-circuits; an empty result means the schema is well-formed. The
// checks are authoring-time only and play no part in runtime value
// validation.
func ValidateSchema(s *Schema) ValidationErrors {
	var errs ValidationErrors
	if s == nil {
		return ValidationErrors{errorAt("", CodeMissingPages, "schema has no pages")}
	}
	if s.Version != SupportedVersion {
		errs = append(errs, errorAt("version", CodeInvalidVersion,
			fmt.Sprintf("unsupported schema version %d (supported: %d)", s.Version, SupportedVersion)))
	}
	if len(s.Pages) == 0 {
		errs = append(errs, errorAt("pages", CodeMissingPages, "schema must declare at least one page"))
	}

	// Pre-pass: collect every resolvable setting key so visibility
	// references can be checked regardless of declaration order.
	known := map[string]bool{}
	WalkSchema(s, Visitor{
		OnSetting: func(st *Setting, _ WalkContext) bool {
			if st.Key != "" {
				known[st.Key] = true
			}
			return true
		},
	})

	sv := &schemaValidator{
		knownSettings: known,
		settingPaths:  map[string]string{},
		siblingKeys:   map[string]map[string]bool{},
	}
	WalkSchema(s, Visitor{
		OnPageGroup:  sv.pageGroup,
		OnPage:       sv.page,
		OnSection:    sv.section,
		OnSubsection: sv.subsection,
		OnSetting:    sv.setting,
	})
	return append(errs, sv.errs...)
}

type schemaValidator struct {
	errs          ValidationErrors
	knownSettings map[string]bool
	settingPaths  map[string]string          // setting key -> first declaration path
	siblingKeys   map[string]map[string]bool // scope -> keys seen in that scope
}

func (sv *schemaValidator) add(path, code, message string) {
	sv.errs = append(sv.errs, errorAt(path, code, message))
}

// dupInScope records key under scope and reports whether it was already
// present. Empty keys are handled by the missing-field checks instead.
func (sv *schemaValidator) dupInScope(scope, key string) bool {
	if key == "" {
		return false
	}
	seen := sv.siblingKeys[scope]
	if seen == nil {
		seen = map[string]bool{}
		sv.siblingKeys[scope] = seen
	}
	if seen[key] {
		return true
	}
	seen[key] = true
	return false
}

func (sv *schemaValidator) checkVisibility(vis Visibility, path string) {
	for _, ref := range visibilityRefs(vis) {
		if !sv.knownSettings[ref] {
			sv.add(path, CodeInvalidVisibilityRef,
				fmt.Sprintf("visibleWhen references unknown setting %q", ref))
		}
	}
}

func (sv *schemaValidator) pageGroup(g *PageGroup, ctx WalkContext) bool {
	if g.Label == "" {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: label")
	}
	return true
}

func (sv *schemaValidator) page(p *Page, ctx WalkContext) bool {
	if p.Key == "" {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: key")
	}
	if p.Title == "" {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: title")
	}
	if sv.dupInScope("page:"+ctx.PageKey, p.Key) {
		sv.add(ctx.Path, CodeDuplicateKey, fmt.Sprintf("duplicate page key %q", p.Key))
	}
	return true
}

func (sv *schemaValidator) section(sec *Section, ctx WalkContext) bool {
	if sec.Key == "" {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: key")
	}
	if sec.Title == "" {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: title")
	}
	if sv.dupInScope("section:"+ctx.PageKey, sec.Key) {
		sv.add(ctx.Path, CodeDuplicateKey, fmt.Sprintf("duplicate section key %q", sec.Key))
	}
	sv.checkVisibility(sec.VisibleWhen, ctx.Path)
	return true
}

func (sv *schemaValidator) subsection(sub *Subsection, ctx WalkContext) bool {
	if sub.Key == "" {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: key")
	}
	if sub.Title == "" {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: title")
	}
	if len(sub.Settings) == 0 {
		sv.add(ctx.Path, CodeMissingRequiredField, "missing required field: settings")
	}
	if sv.dupInScope("subsection:"+ctx.PageKey+":"+ctx.SectionKey, sub.Key) {
		sv.add(ctx.Path, CodeDuplicateKey, fmt.Sprintf("duplicate subsection key %q", sub.Key))
	}
	sv.checkVisibility(sub.VisibleWhen, ctx.Path)
	return true
}

func (sv *schemaValidator) setting(st *Setting, ctx WalkContext) bool {
	if st.Key != "" {
		if first, dup := sv.settingPaths[st.Key]; dup {
			sv.add(ctx.Path, CodeDuplicateKey,
				fmt.Sprintf("duplicate setting key %q (first declared at %s)", st.Key, first))
		} else {
			sv.settingPaths[st.Key] = ctx.Path
		}
	}
	sv.settingBody(st, ctx.Path)
	return true
}

// settingBody runs the per-setting checks shared by top-level settings and
// nested value-settings (compound fields, repeatable item fields, action
// modal fields).
func (sv *schemaValidator) settingBody(st *Setting, path string) {
	if st == nil {
		return
	}
	if st.Key == "" {
		sv.add(path, CodeMissingRequiredField, "missing required field: key")
	}
	if st.Title == "" {
		sv.add(path, CodeMissingRequiredField, "missing required field: title")
	}
	if st.Type == "" {
		sv.add(path, CodeMissingRequiredField, "missing required field: type")
	}
	sv.checkVisibility(st.VisibleWhen, path)

	switch st.Type {
	case TypeSelect, TypeMultiselect:
		sv.checkOptions(st, path)
	case TypeText:
		if st.Validation != nil && st.Validation.Pattern != "" {
			if _, err := regexp.Compile(st.Validation.Pattern); err != nil {
				sv.add(path, CodeInvalidPattern,
					fmt.Sprintf("pattern does not compile: %v", err))
			}
		}
	case TypeCompound:
		sv.checkCompound(st, path)
	case TypeRepeatable:
		sv.checkRepeatable(st, path)
	case TypeAction:
		if st.ButtonLabel == "" {
			sv.add(path, CodeMissingRequiredField, "missing required field: buttonLabel")
		}
		if st.Modal != nil {
			for i, f := range st.Modal.Fields {
				sv.settingBody(f, fmt.Sprintf("%s.modal.fields[%d]", path, i))
			}
		}
	}

	sv.checkDefault(st, path)
}

func (sv *schemaValidator) checkOptions(st *Setting, path string) {
	if len(st.Options) == 0 {
		sv.add(path, CodeEmptyOptions,
			fmt.Sprintf("%s setting must declare at least one option", st.Type))
		return
	}
	seen := map[string]bool{}
	for i, opt := range st.Options {
		if seen[opt.Value] {
			sv.add(fmt.Sprintf("%s.options[%d]", path, i), CodeDuplicateOptionValue,
				fmt.Sprintf("duplicate option value %q", opt.Value))
			continue
		}
		seen[opt.Value] = true
	}
}

func (sv *schemaValidator) checkCompound(st *Setting, path string) {
	fieldKeys := map[string]bool{}
	for i, f := range st.Fields {
		fpath := fmt.Sprintf("%s.fields[%d]", path, i)
		if strings.Contains(f.Key, ".") {
			sv.add(fpath, CodeCompoundFieldDotKey,
				fmt.Sprintf("field key %q must not contain '.'", f.Key))
		}
		fieldKeys[f.Key] = true
		sv.settingBody(f, fpath)
	}
	for i, r := range st.Rules {
		rpath := fmt.Sprintf("%s.rules[%d]", path, i)
		switch {
		case r.When == "" || r.Require == "":
			sv.add(rpath, CodeInvalidCompoundRule, "rule must name both when and require fields")
		case !fieldKeys[r.When]:
			sv.add(rpath, CodeInvalidCompoundRule,
				fmt.Sprintf("rule references unknown field %q", r.When))
		case !fieldKeys[r.Require]:
			sv.add(rpath, CodeInvalidCompoundRule,
				fmt.Sprintf("rule references unknown field %q", r.Require))
		case r.Message == "":
			sv.add(rpath, CodeInvalidCompoundRule, "rule must carry a message")
		}
	}
}

// repeatableItemTypes are the value-bearing types a repeatable may carry.
var repeatableItemTypes = map[SettingType]bool{
	TypeBoolean:  true,
	TypeText:     true,
	TypeNumber:   true,
	TypeSelect:   true,
	TypeDate:     true,
	TypeCompound: true,
}

func (sv *schemaValidator) checkRepeatable(st *Setting, path string) {
	switch {
	case st.ItemType == "":
		sv.add(path, CodeInvalidRepeatableConfig, "repeatable setting must declare itemType")
	case !repeatableItemTypes[st.ItemType]:
		sv.add(path, CodeInvalidRepeatableConfig,
			fmt.Sprintf("unsupported itemType %q", st.ItemType))
	case st.ItemType == TypeCompound && len(st.ItemFields) == 0:
		sv.add(path, CodeInvalidRepeatableConfig, "compound itemType requires itemFields")
	}
	if v := st.Validation; v != nil && v.MinItems != nil && v.MaxItems != nil && *v.MinItems > *v.MaxItems {
		sv.add(path, CodeInvalidRepeatableConfig, "minItems exceeds maxItems")
	}
	for i, f := range st.ItemFields {
		fpath := fmt.Sprintf("%s.itemFields[%d]", path, i)
		if strings.Contains(f.Key, ".") {
			sv.add(fpath, CodeCompoundFieldDotKey,
				fmt.Sprintf("field key %q must not contain '.'", f.Key))
		}
		sv.settingBody(f, fpath)
	}
}

// checkDefault verifies the declared default matches the setting's type
// shape: bool for boolean, string for text, numeric for number, option
// membership for select and multiselect elements, a calendar date for date.
func (sv *schemaValidator) checkDefault(st *Setting, path string) {
	if st.Default == nil {
		return
	}
	bad := func(why string) {
		sv.add(path, CodeInvalidDefault,
			fmt.Sprintf("invalid default for %q: %s", st.Key, why))
	}
	switch st.Type {
	case TypeBoolean:
		if _, ok := st.Default.(bool); !ok {
			bad("expected a boolean")
		}
	case TypeText:
		if _, ok := st.Default.(string); !ok {
			bad("expected a string")
		}
	case TypeNumber:
		if _, ok := numeric(st.Default); !ok {
			bad("expected a number")
		}
	case TypeSelect:
		s, ok := st.Default.(string)
		if !ok || !hasOptionValue(st.Options, s) {
			bad("not one of the declared options")
		}
	case TypeMultiselect:
		elems, ok := asSlice(st.Default)
		if !ok {
			bad("expected an array of option values")
			return
		}
		for _, el := range elems {
			s, isStr := el.(string)
			if !isStr || !hasOptionValue(st.Options, s) {
				bad("not one of the declared options")
				return
			}
		}
	case TypeDate:
		s, ok := st.Default.(string)
		if !ok {
			bad("expected a date string")
			return
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			bad("not a valid calendar date")
		}
	}
}

func hasOptionValue(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
