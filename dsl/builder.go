package dsl

import setskema "github.com/reoring/setskema"

// SchemaBuilder assembles a *setskema.Schema. Zero configuration yields a
// schema at the supported version with no pages.
type SchemaBuilder struct {
	s *setskema.Schema
}

// NewSchema creates a builder for the supported schema version.
func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{s: &setskema.Schema{Version: setskema.SupportedVersion}}
}

// Meta records a metadata entry on the schema.
func (b *SchemaBuilder) Meta(key string, value any) *SchemaBuilder {
	if b.s.Meta == nil {
		b.s.Meta = map[string]any{}
	}
	b.s.Meta[key] = value
	return b
}

// Page appends a root-level page and returns its builder.
func (b *SchemaBuilder) Page(key, title string) *PageBuilder {
	p := &setskema.Page{Key: key, Title: title}
	b.s.Pages = append(b.s.Pages, p)
	return &PageBuilder{page: p}
}

// Group appends a sidebar group and returns its builder.
func (b *SchemaBuilder) Group(label string) *GroupBuilder {
	g := &setskema.PageGroup{Label: label}
	b.s.Pages = append(b.s.Pages, g)
	return &GroupBuilder{group: g}
}

// Build returns the assembled schema.
func (b *SchemaBuilder) Build() *setskema.Schema { return b.s }

// GroupBuilder appends member pages to a PageGroup.
type GroupBuilder struct {
	group *setskema.PageGroup
}

// Page appends a member page to the group.
func (g *GroupBuilder) Page(key, title string) *PageBuilder {
	p := &setskema.Page{Key: key, Title: title}
	g.group.Pages = append(g.group.Pages, p)
	return &PageBuilder{page: p}
}

// PageBuilder configures a page and appends sections and child pages.
type PageBuilder struct {
	page *setskema.Page
}

func (p *PageBuilder) Description(text string) *PageBuilder {
	p.page.Description = text
	return p
}

func (p *PageBuilder) Icon(icon string) *PageBuilder {
	p.page.Icon = icon
	return p
}

// Custom marks the page as custom-rendered by the named renderer.
func (p *PageBuilder) Custom(renderer string) *PageBuilder {
	p.page.Mode = setskema.PageModeCustom
	p.page.Renderer = renderer
	return p
}

// Section appends a section and returns its builder.
func (p *PageBuilder) Section(key, title string) *SectionBuilder {
	sec := &setskema.Section{Key: key, Title: title}
	p.page.Sections = append(p.page.Sections, sec)
	return &SectionBuilder{section: sec}
}

// Page appends a nested child page.
func (p *PageBuilder) Page(key, title string) *PageBuilder {
	child := &setskema.Page{Key: key, Title: title}
	p.page.Pages = append(p.page.Pages, child)
	return &PageBuilder{page: child}
}

// SectionBuilder configures a section and appends settings and subsections.
type SectionBuilder struct {
	section *setskema.Section
}

func (s *SectionBuilder) Description(text string) *SectionBuilder {
	s.section.Description = text
	return s
}

func (s *SectionBuilder) Collapsible() *SectionBuilder {
	s.section.Collapsible = true
	return s
}

// VisibleWhen attaches visibility rules (AND-combined) to the section.
func (s *SectionBuilder) VisibleWhen(rules ...setskema.VisibilityRule) *SectionBuilder {
	s.section.VisibleWhen = append(s.section.VisibleWhen, rules...)
	return s
}

// Subsection appends a subsection and returns its builder.
func (s *SectionBuilder) Subsection(key, title string) *SubsectionBuilder {
	sub := &setskema.Subsection{Key: key, Title: title}
	s.section.Subsections = append(s.section.Subsections, sub)
	return &SubsectionBuilder{sub: sub}
}

// Setting appends an assembled setting as-is.
func (s *SectionBuilder) Setting(st *setskema.Setting) *SectionBuilder {
	s.section.Settings = append(s.section.Settings, st)
	return s
}

func (s *SectionBuilder) add(st *setskema.Setting) *SettingBuilder {
	s.section.Settings = append(s.section.Settings, st)
	return &SettingBuilder{setting: st}
}

func (s *SectionBuilder) Boolean(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeBoolean, Key: key, Title: title})
}

func (s *SectionBuilder) Text(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeText, Key: key, Title: title})
}

func (s *SectionBuilder) Number(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeNumber, Key: key, Title: title})
}

func (s *SectionBuilder) Select(key, title string, options ...setskema.Option) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeSelect, Key: key, Title: title, Options: options})
}

func (s *SectionBuilder) Multiselect(key, title string, options ...setskema.Option) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeMultiselect, Key: key, Title: title, Options: options})
}

func (s *SectionBuilder) Date(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeDate, Key: key, Title: title})
}

func (s *SectionBuilder) Compound(key, title string, fields ...*setskema.Setting) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeCompound, Key: key, Title: title, Fields: fields})
}

func (s *SectionBuilder) Repeatable(key, title string, itemType setskema.SettingType) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeRepeatable, Key: key, Title: title, ItemType: itemType})
}

func (s *SectionBuilder) Action(key, title, buttonLabel string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeAction, Key: key, Title: title, ButtonLabel: buttonLabel})
}

func (s *SectionBuilder) CustomSetting(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeCustom, Key: key, Title: title})
}

// SubsectionBuilder appends settings to a subsection.
type SubsectionBuilder struct {
	sub *setskema.Subsection
}

func (s *SubsectionBuilder) Description(text string) *SubsectionBuilder {
	s.sub.Description = text
	return s
}

func (s *SubsectionBuilder) VisibleWhen(rules ...setskema.VisibilityRule) *SubsectionBuilder {
	s.sub.VisibleWhen = append(s.sub.VisibleWhen, rules...)
	return s
}

func (s *SubsectionBuilder) Setting(st *setskema.Setting) *SubsectionBuilder {
	s.sub.Settings = append(s.sub.Settings, st)
	return s
}

func (s *SubsectionBuilder) add(st *setskema.Setting) *SettingBuilder {
	s.sub.Settings = append(s.sub.Settings, st)
	return &SettingBuilder{setting: st}
}

func (s *SubsectionBuilder) Boolean(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeBoolean, Key: key, Title: title})
}

func (s *SubsectionBuilder) Text(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeText, Key: key, Title: title})
}

func (s *SubsectionBuilder) Number(key, title string) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeNumber, Key: key, Title: title})
}

func (s *SubsectionBuilder) Select(key, title string, options ...setskema.Option) *SettingBuilder {
	return s.add(&setskema.Setting{Type: setskema.TypeSelect, Key: key, Title: title, Options: options})
}

// SettingBuilder configures the shared and value-bearing knobs of a setting.
type SettingBuilder struct {
	setting *setskema.Setting
}

func (b *SettingBuilder) Description(text string) *SettingBuilder {
	b.setting.Description = text
	return b
}

func (b *SettingBuilder) HelpText(text string) *SettingBuilder {
	b.setting.HelpText = text
	return b
}

func (b *SettingBuilder) Dangerous() *SettingBuilder {
	b.setting.Dangerous = true
	return b
}

func (b *SettingBuilder) Disabled() *SettingBuilder {
	b.setting.Disabled = true
	return b
}

func (b *SettingBuilder) Badge(text string) *SettingBuilder {
	b.setting.Badge = text
	return b
}

func (b *SettingBuilder) Deprecated() *SettingBuilder {
	b.setting.Deprecated = true
	return b
}

func (b *SettingBuilder) Default(v any) *SettingBuilder {
	b.setting.Default = v
	return b
}

func (b *SettingBuilder) VisibleWhen(rules ...setskema.VisibilityRule) *SettingBuilder {
	b.setting.VisibleWhen = append(b.setting.VisibleWhen, rules...)
	return b
}

// Confirm attaches a confirmation dialog; requiredText may be empty.
func (b *SettingBuilder) Confirm(message, requiredText string) *SettingBuilder {
	b.setting.Confirm = &setskema.Confirm{Message: message, RequiredText: requiredText}
	return b
}

// Validate attaches the assembled validation rule (see Rule).
func (b *SettingBuilder) Validate(rule *setskema.ValidationRule) *SettingBuilder {
	b.setting.Validation = rule
	return b
}

// Rules attaches cross-field rules to a compound setting.
func (b *SettingBuilder) Rules(rules ...setskema.CompoundRule) *SettingBuilder {
	b.setting.Rules = append(b.setting.Rules, rules...)
	return b
}

// ItemFields declares the per-item fields of a compound repeatable.
func (b *SettingBuilder) ItemFields(fields ...*setskema.Setting) *SettingBuilder {
	b.setting.ItemFields = fields
	return b
}

// Modal attaches a modal with value-setting fields to an action.
func (b *SettingBuilder) Modal(title string, fields ...*setskema.Setting) *SettingBuilder {
	b.setting.Modal = &setskema.ActionModal{Title: title, Fields: fields}
	return b
}

// ActionType records the host-side handler discriminator of an action.
func (b *SettingBuilder) ActionType(t string) *SettingBuilder {
	b.setting.ActionType = t
	return b
}

// Done returns the underlying setting, for use as a compound field or modal
// field.
func (b *SettingBuilder) Done() *setskema.Setting { return b.setting }

// Field builds a bare value-setting for compound fields, item fields and
// modal fields.
func Field(t setskema.SettingType, key, title string) *SettingBuilder {
	return &SettingBuilder{setting: &setskema.Setting{Type: t, Key: key, Title: title}}
}

// RuleBuilder assembles a ValidationRule without pointer noise at call sites.
type RuleBuilder struct {
	rule setskema.ValidationRule
}

// Rule starts an empty validation rule.
func Rule() *RuleBuilder { return &RuleBuilder{} }

func (r *RuleBuilder) Required() *RuleBuilder {
	r.rule.Required = true
	return r
}

func (r *RuleBuilder) Message(text string) *RuleBuilder {
	r.rule.Message = text
	return r
}

func (r *RuleBuilder) MinLength(n int) *RuleBuilder {
	r.rule.MinLength = &n
	return r
}

func (r *RuleBuilder) MaxLength(n int) *RuleBuilder {
	r.rule.MaxLength = &n
	return r
}

func (r *RuleBuilder) Pattern(expr string) *RuleBuilder {
	r.rule.Pattern = expr
	return r
}

func (r *RuleBuilder) Min(n float64) *RuleBuilder {
	r.rule.Min = &n
	return r
}

func (r *RuleBuilder) Max(n float64) *RuleBuilder {
	r.rule.Max = &n
	return r
}

func (r *RuleBuilder) Step(n float64) *RuleBuilder {
	r.rule.Step = &n
	return r
}

func (r *RuleBuilder) MinSelections(n int) *RuleBuilder {
	r.rule.MinSelections = &n
	return r
}

func (r *RuleBuilder) MaxSelections(n int) *RuleBuilder {
	r.rule.MaxSelections = &n
	return r
}

func (r *RuleBuilder) MinDate(date string) *RuleBuilder {
	r.rule.MinDate = date
	return r
}

func (r *RuleBuilder) MaxDate(date string) *RuleBuilder {
	r.rule.MaxDate = date
	return r
}

func (r *RuleBuilder) MinItems(n int) *RuleBuilder {
	r.rule.MinItems = &n
	return r
}

func (r *RuleBuilder) MaxItems(n int) *RuleBuilder {
	r.rule.MaxItems = &n
	return r
}

// Build returns the assembled rule.
func (r *RuleBuilder) Build() *setskema.ValidationRule {
	out := r.rule
	return &out
}
