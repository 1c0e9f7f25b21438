package setskema

// SupportedVersion is the only schema version this engine accepts. Unsupported
// versions are reported by ValidateSchema as INVALID_VERSION, never a crash.
const SupportedVersion = 1

// SettingType discriminates the closed Setting union.
type SettingType string

const (
	TypeBoolean     SettingType = "boolean"
	TypeText        SettingType = "text"
	TypeNumber      SettingType = "number"
	TypeSelect      SettingType = "select"
	TypeMultiselect SettingType = "multiselect"
	TypeDate        SettingType = "date"
	TypeCompound    SettingType = "compound"
	TypeRepeatable  SettingType = "repeatable"
	TypeAction      SettingType = "action"
	TypeCustom      SettingType = "custom"
)

// PageMode selects how a page body is rendered.
type PageMode string

const (
	PageModeSettings PageMode = "settings"
	PageModeCustom   PageMode = "custom"
)

// Schema is the versioned, immutable description of a settings surface. It is
// supplied once by the host; every derived structure (flattened lists, key
// indexes) is built from it and cached per schema identity.
type Schema struct {
	Version int            `json:"version"`
	Meta    map[string]any `json:"meta,omitempty"`
	Pages   []PageItem     `json:"pages"`
}

// PageItem is a sealed union of the two root-level node kinds: *Page (a
// navigable unit, possibly nesting child pages) and *PageGroup (a pure
// sidebar-grouping wrapper). Grouping and nesting are different relations and
// are deliberately kept as distinct variants.
type PageItem interface {
	pageItem()
}

// PageGroup wraps member pages under a sidebar label. It has no key and no
// nesting semantics of its own.
type PageGroup struct {
	Label string  `json:"label"`
	Pages []*Page `json:"pages"`
}

func (*PageGroup) pageItem() {}

// Page is a navigable settings page. Pages may nest pages for hierarchical
// navigation, independent of grouping.
type Page struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Mode        PageMode   `json:"mode,omitempty"`
	Renderer    string     `json:"renderer,omitempty"`
	Sections    []*Section `json:"sections,omitempty"`
	Pages       []*Page    `json:"pages,omitempty"`
}

func (*Page) pageItem() {}

// Section groups settings within a page. Subsections nest exactly one level
// below sections.
type Section struct {
	Key         string        `json:"key"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Collapsible bool          `json:"collapsible,omitempty"`
	VisibleWhen Visibility    `json:"visibleWhen,omitempty"`
	Settings    []*Setting    `json:"settings,omitempty"`
	Subsections []*Subsection `json:"subsections,omitempty"`
}

// Subsection is the single nesting level under a Section; its settings are
// required.
type Subsection struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	VisibleWhen Visibility `json:"visibleWhen,omitempty"`
	Settings    []*Setting `json:"settings"`
}

// Setting is a single typed, keyed configuration item. The struct is a
// discriminated record over Type; consumers must switch exhaustively over the
// SettingType constants and treat unknown types as an unsupported branch.
type Setting struct {
	Type        SettingType `json:"type"`
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	HelpText    string      `json:"helpText,omitempty"`
	Dangerous   bool        `json:"dangerous,omitempty"`
	Disabled    bool        `json:"disabled,omitempty"`
	Badge       string      `json:"badge,omitempty"`
	Deprecated  bool        `json:"deprecated,omitempty"`
	VisibleWhen Visibility  `json:"visibleWhen,omitempty"`

	// Value-bearing variants.
	Confirm    *Confirm        `json:"confirm,omitempty"`
	Default    any             `json:"default,omitempty"`
	Validation *ValidationRule `json:"validation,omitempty"`

	// select / multiselect.
	Options []Option `json:"options,omitempty"`

	// compound: nested value-settings plus cross-field rules.
	Fields []*Setting     `json:"fields,omitempty"`
	Rules  []CompoundRule `json:"rules,omitempty"`

	// repeatable.
	ItemType   SettingType `json:"itemType,omitempty"`
	ItemFields []*Setting  `json:"itemFields,omitempty"`

	// action.
	ButtonLabel string       `json:"buttonLabel,omitempty"`
	ActionType  string       `json:"actionType,omitempty"`
	Modal       *ActionModal `json:"modal,omitempty"`
}

// Option is a single choice of a select or multiselect setting. Values must be
// unique within a setting.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Confirm configures the confirmation dialog shown before a value change or
// action runs. RequiredText, when set, must be retyped exactly by the user
// (see ValidateConfirmText).
type Confirm struct {
	Title        string `json:"title,omitempty"`
	Message      string `json:"message,omitempty"`
	RequiredText string `json:"requiredText,omitempty"`
}

// CompoundRule is a cross-field rule of a compound setting: when the field
// named When holds a truthy value, the field named Require must be non-empty.
type CompoundRule struct {
	When    string `json:"when"`
	Require string `json:"require"`
	Message string `json:"message"`
}

// ActionModal configures the modal of an action setting; its fields are again
// value-settings.
type ActionModal struct {
	Title        string     `json:"title,omitempty"`
	Fields       []*Setting `json:"fields,omitempty"`
	ConfirmLabel string     `json:"confirmLabel,omitempty"`
	CancelLabel  string     `json:"cancelLabel,omitempty"`
}

// ValidationRule carries the per-type validation knobs of a value-bearing
// setting. Only the fields meaningful for the setting's type are consulted.
// Message, when set, replaces the default copy of whichever check fails.
type ValidationRule struct {
	Required bool   `json:"required,omitempty"`
	Message  string `json:"message,omitempty"`

	// text
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// number
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`

	// multiselect
	MinSelections *int `json:"minSelections,omitempty"`
	MaxSelections *int `json:"maxSelections,omitempty"`

	// date (calendar dates, "2006-01-02")
	MinDate string `json:"minDate,omitempty"`
	MaxDate string `json:"maxDate,omitempty"`

	// repeatable
	MinItems *int `json:"minItems,omitempty"`
	MaxItems *int `json:"maxItems,omitempty"`
}

// FlattenedSetting is a read-only projection of a setting produced by the
// walker: the definition plus its location in the tree. Path is a
// declaration-order locator such as
// "pages[0].sections[1].subsections[0].settings[2]".
type FlattenedSetting struct {
	Definition    *Setting
	Path          string
	PageKey       string
	SectionKey    string
	SubsectionKey string
}

// Values is the host-owned runtime mapping of setting key to current value.
// The engine only ever reads it.
type Values map[string]any
