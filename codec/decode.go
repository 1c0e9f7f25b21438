// Package codec decodes settings-schema documents into the in-memory model.
// JSON is the canonical document form; YAML documents are normalized through
// a JSON round trip. Decoding is purely structural; run
// setskema.ValidateSchema afterwards for authoring diagnostics.
package codec

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	setskema "github.com/reoring/setskema"
)

// DecodeJSON parses a schema document. The pages array, visibleWhen rules and
// condition operators are polymorphic in the document form and are resolved
// here into the sealed model types.
func DecodeJSON(data []byte) (*setskema.Schema, error) {
	var doc schemaDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: decode schema: %w", err)
	}
	s := &setskema.Schema{Version: doc.Version, Meta: doc.Meta}
	for i, raw := range doc.Pages {
		item, err := decodePageItem(raw)
		if err != nil {
			return nil, fmt.Errorf("codec: pages[%d]: %w", i, err)
		}
		s.Pages = append(s.Pages, item)
	}
	return s, nil
}

// DecodeYAML parses a YAML schema document by normalizing it to JSON first.
func DecodeYAML(data []byte) (*setskema.Schema, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}
	normalized, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("codec: normalize yaml: %w", err)
	}
	return DecodeJSON(normalized)
}

// EncodeJSON renders a schema back to its canonical document form. A
// condition comparing against null loses its operator on this path because
// the document form cannot distinguish an absent operator from an explicit
// null; authors relying on "equals: null" should keep the document as source
// of truth.
func EncodeJSON(s *setskema.Schema) ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode schema: %w", err)
	}
	return out, nil
}

type schemaDoc struct {
	Version int               `json:"version"`
	Meta    map[string]any    `json:"meta"`
	Pages   []json.RawMessage `json:"pages"`
}

type pageDoc struct {
	Key         string          `json:"key"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Mode        string          `json:"mode"`
	Renderer    string          `json:"renderer"`
	Sections    []sectionDoc    `json:"sections"`
	Pages       []pageDoc       `json:"pages"`
	Label       json.RawMessage `json:"label"` // presence marks a page group
}

type sectionDoc struct {
	Key         string          `json:"key"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Collapsible bool            `json:"collapsible"`
	VisibleWhen json.RawMessage `json:"visibleWhen"`
	Settings    []settingDoc    `json:"settings"`
	Subsections []subsectionDoc `json:"subsections"`
}

type subsectionDoc struct {
	Key         string          `json:"key"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	VisibleWhen json.RawMessage `json:"visibleWhen"`
	Settings    []settingDoc    `json:"settings"`
}

type settingDoc struct {
	Type        string          `json:"type"`
	Key         string          `json:"key"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	HelpText    string          `json:"helpText"`
	Dangerous   bool            `json:"dangerous"`
	Disabled    bool            `json:"disabled"`
	Badge       string          `json:"badge"`
	Deprecated  bool            `json:"deprecated"`
	VisibleWhen json.RawMessage `json:"visibleWhen"`

	Confirm    *setskema.Confirm        `json:"confirm"`
	Default    any                      `json:"default"`
	Validation *setskema.ValidationRule `json:"validation"`

	Options []setskema.Option       `json:"options"`
	Fields  []settingDoc            `json:"fields"`
	Rules   []setskema.CompoundRule `json:"rules"`

	ItemType   string       `json:"itemType"`
	ItemFields []settingDoc `json:"itemFields"`

	ButtonLabel string    `json:"buttonLabel"`
	ActionType  string    `json:"actionType"`
	Modal       *modalDoc `json:"modal"`
}

type modalDoc struct {
	Title        string       `json:"title"`
	Fields       []settingDoc `json:"fields"`
	ConfirmLabel string       `json:"confirmLabel"`
	CancelLabel  string       `json:"cancelLabel"`
}

func decodePageItem(raw json.RawMessage) (setskema.PageItem, error) {
	var doc pageDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Label != nil {
		var group struct {
			Label string    `json:"label"`
			Pages []pageDoc `json:"pages"`
		}
		if err := json.Unmarshal(raw, &group); err != nil {
			return nil, err
		}
		g := &setskema.PageGroup{Label: group.Label}
		for i := range group.Pages {
			p, err := convertPage(&group.Pages[i])
			if err != nil {
				return nil, fmt.Errorf("pages[%d]: %w", i, err)
			}
			g.Pages = append(g.Pages, p)
		}
		return g, nil
	}
	return convertPage(&doc)
}

func convertPage(doc *pageDoc) (*setskema.Page, error) {
	p := &setskema.Page{
		Key:         doc.Key,
		Title:       doc.Title,
		Description: doc.Description,
		Icon:        doc.Icon,
		Mode:        setskema.PageMode(doc.Mode),
		Renderer:    doc.Renderer,
	}
	for i := range doc.Sections {
		sec, err := convertSection(&doc.Sections[i])
		if err != nil {
			return nil, fmt.Errorf("sections[%d]: %w", i, err)
		}
		p.Sections = append(p.Sections, sec)
	}
	for i := range doc.Pages {
		child, err := convertPage(&doc.Pages[i])
		if err != nil {
			return nil, fmt.Errorf("pages[%d]: %w", i, err)
		}
		p.Pages = append(p.Pages, child)
	}
	return p, nil
}

func convertSection(doc *sectionDoc) (*setskema.Section, error) {
	vis, err := decodeVisibility(doc.VisibleWhen)
	if err != nil {
		return nil, err
	}
	sec := &setskema.Section{
		Key:         doc.Key,
		Title:       doc.Title,
		Description: doc.Description,
		Collapsible: doc.Collapsible,
		VisibleWhen: vis,
	}
	for i := range doc.Settings {
		st, err := convertSetting(&doc.Settings[i])
		if err != nil {
			return nil, fmt.Errorf("settings[%d]: %w", i, err)
		}
		sec.Settings = append(sec.Settings, st)
	}
	for i := range doc.Subsections {
		sub, err := convertSubsection(&doc.Subsections[i])
		if err != nil {
			return nil, fmt.Errorf("subsections[%d]: %w", i, err)
		}
		sec.Subsections = append(sec.Subsections, sub)
	}
	return sec, nil
}

func convertSubsection(doc *subsectionDoc) (*setskema.Subsection, error) {
	vis, err := decodeVisibility(doc.VisibleWhen)
	if err != nil {
		return nil, err
	}
	sub := &setskema.Subsection{
		Key:         doc.Key,
		Title:       doc.Title,
		Description: doc.Description,
		VisibleWhen: vis,
	}
	for i := range doc.Settings {
		st, err := convertSetting(&doc.Settings[i])
		if err != nil {
			return nil, fmt.Errorf("settings[%d]: %w", i, err)
		}
		sub.Settings = append(sub.Settings, st)
	}
	return sub, nil
}

func convertSetting(doc *settingDoc) (*setskema.Setting, error) {
	vis, err := decodeVisibility(doc.VisibleWhen)
	if err != nil {
		return nil, err
	}
	st := &setskema.Setting{
		Type:        setskema.SettingType(doc.Type),
		Key:         doc.Key,
		Title:       doc.Title,
		Description: doc.Description,
		HelpText:    doc.HelpText,
		Dangerous:   doc.Dangerous,
		Disabled:    doc.Disabled,
		Badge:       doc.Badge,
		Deprecated:  doc.Deprecated,
		VisibleWhen: vis,
		Confirm:     doc.Confirm,
		Default:     doc.Default,
		Validation:  doc.Validation,
		Options:     doc.Options,
		Rules:       doc.Rules,
		ItemType:    setskema.SettingType(doc.ItemType),
		ButtonLabel: doc.ButtonLabel,
		ActionType:  doc.ActionType,
	}
	convertFields := func(docs []settingDoc, what string) ([]*setskema.Setting, error) {
		var out []*setskema.Setting
		for i := range docs {
			f, err := convertSetting(&docs[i])
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", what, i, err)
			}
			out = append(out, f)
		}
		return out, nil
	}
	if st.Fields, err = convertFields(doc.Fields, "fields"); err != nil {
		return nil, err
	}
	if st.ItemFields, err = convertFields(doc.ItemFields, "itemFields"); err != nil {
		return nil, err
	}
	if doc.Modal != nil {
		fields, err := convertFields(doc.Modal.Fields, "modal.fields")
		if err != nil {
			return nil, err
		}
		st.Modal = &setskema.ActionModal{
			Title:        doc.Modal.Title,
			Fields:       fields,
			ConfirmLabel: doc.Modal.ConfirmLabel,
			CancelLabel:  doc.Modal.CancelLabel,
		}
	}
	return st, nil
}

// decodeVisibility accepts a single rule object or an array of rules (the
// AND form).
func decodeVisibility(raw json.RawMessage) (setskema.Visibility, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("visibleWhen: %w", err)
		}
		var vis setskema.Visibility
		for i, item := range items {
			rule, err := decodeRule(item)
			if err != nil {
				return nil, fmt.Errorf("visibleWhen[%d]: %w", i, err)
			}
			vis = append(vis, rule)
		}
		return vis, nil
	}
	rule, err := decodeRule(trimmed)
	if err != nil {
		return nil, fmt.Errorf("visibleWhen: %w", err)
	}
	return setskema.Visibility{rule}, nil
}

func decodeRule(raw json.RawMessage) (setskema.VisibilityRule, error) {
	var probe struct {
		Or []json.RawMessage `json:"or"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if probe.Or != nil {
		group := &setskema.ConditionGroup{}
		for i, item := range probe.Or {
			cond, err := decodeCondition(item)
			if err != nil {
				return nil, fmt.Errorf("or[%d]: %w", i, err)
			}
			group.Or = append(group.Or, cond)
		}
		return group, nil
	}
	return decodeCondition(raw)
}

// decodeCondition keeps operator presence explicit so "equals: null" stays
// distinguishable from an absent equals.
func decodeCondition(raw json.RawMessage) (*setskema.Condition, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	c := &setskema.Condition{}
	if v, ok := fields["setting"]; ok {
		if err := json.Unmarshal(v, &c.Setting); err != nil {
			return nil, fmt.Errorf("setting: %w", err)
		}
	}
	if v, ok := fields["equals"]; ok {
		c.HasEquals = true
		if err := json.Unmarshal(v, &c.Equals); err != nil {
			return nil, fmt.Errorf("equals: %w", err)
		}
	}
	if v, ok := fields["notEquals"]; ok {
		c.HasNotEquals = true
		if err := json.Unmarshal(v, &c.NotEquals); err != nil {
			return nil, fmt.Errorf("notEquals: %w", err)
		}
	}
	if v, ok := fields["oneOf"]; ok {
		if err := json.Unmarshal(v, &c.OneOf); err != nil {
			return nil, fmt.Errorf("oneOf: %w", err)
		}
		if c.OneOf == nil {
			c.OneOf = []any{}
		}
	}
	if v, ok := fields["greaterThan"]; ok {
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			return nil, fmt.Errorf("greaterThan: %w", err)
		}
		c.GreaterThan = &f
	}
	if v, ok := fields["lessThan"]; ok {
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			return nil, fmt.Errorf("lessThan: %w", err)
		}
		c.LessThan = &f
	}
	if v, ok := fields["contains"]; ok {
		c.HasContains = true
		if err := json.Unmarshal(v, &c.Contains); err != nil {
			return nil, fmt.Errorf("contains: %w", err)
		}
	}
	if v, ok := fields["isEmpty"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			return nil, fmt.Errorf("isEmpty: %w", err)
		}
		c.IsEmpty = &b
	}
	return c, nil
}
