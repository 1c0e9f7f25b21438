package setskema_test

import (
	setskema "github.com/reoring/setskema"
)

func intp(n int) *int { return &n }

func floatp(f float64) *float64 { return &f }

func boolp(b bool) *bool { return &b }

// referenceSchema is the well-formed fixture shared across the package tests:
// a root page with nested pages, a grouped pair of pages, subsections, every
// setting type, and visibility rules in single, AND-list and or-group form.
func referenceSchema() *setskema.Schema {
	return &setskema.Schema{
		Version: setskema.SupportedVersion,
		Pages: []setskema.PageItem{
			&setskema.Page{
				Key:   "general",
				Title: "General",
				Sections: []*setskema.Section{
					{
						Key:   "behavior",
						Title: "Behavior",
						Settings: []*setskema.Setting{
							{Type: setskema.TypeBoolean, Key: "autoSave", Title: "Auto Save", Default: true},
							{
								Type: setskema.TypeSelect, Key: "language", Title: "Language",
								Options: []setskema.Option{
									{Value: "en", Label: "English"},
									{Value: "ja", Label: "Japanese"},
								},
								Default:    "en",
								Validation: &setskema.ValidationRule{Required: true},
							},
						},
						Subsections: []*setskema.Subsection{
							{
								Key:   "performance",
								Title: "Performance",
								Settings: []*setskema.Setting{
									{Type: setskema.TypeBoolean, Key: "lazyLoad", Title: "Lazy Loading"},
									{
										Type: setskema.TypeNumber, Key: "cacheSize", Title: "Cache Size",
										Description: "Maximum cache size in megabytes",
										Validation:  &setskema.ValidationRule{Min: floatp(16), Max: floatp(1024), Step: floatp(16)},
									},
								},
							},
						},
					},
					{
						Key:   "profile",
						Title: "Profile",
						Settings: []*setskema.Setting{
							{
								Type: setskema.TypeText, Key: "displayName", Title: "Display Name",
								Validation: &setskema.ValidationRule{Required: true, MinLength: intp(2), MaxLength: intp(32)},
							},
							{
								Type: setskema.TypeDate, Key: "birthday", Title: "Birthday",
								Validation: &setskema.ValidationRule{MinDate: "1900-01-01", MaxDate: "2100-12-31"},
							},
						},
					},
				},
				Pages: []*setskema.Page{
					{
						Key:   "general.privacy",
						Title: "Privacy",
						Sections: []*setskema.Section{
							{
								Key:   "tracking",
								Title: "Tracking",
								Settings: []*setskema.Setting{
									{Type: setskema.TypeBoolean, Key: "telemetry", Title: "Usage Telemetry"},
									{
										Type: setskema.TypeSelect, Key: "telemetryLevel", Title: "Telemetry Level",
										Options: []setskema.Option{
											{Value: "basic", Label: "Basic"},
											{Value: "full", Label: "Full"},
										},
										VisibleWhen: setskema.Visibility{
											&setskema.Condition{Setting: "telemetry"},
										},
									},
								},
							},
						},
						Pages: []*setskema.Page{
							{
								Key:   "general.privacy.cookies",
								Title: "Cookie Settings",
								Sections: []*setskema.Section{
									{
										Key:   "cookies",
										Title: "Cookies",
										Settings: []*setskema.Setting{
											{
												Type: setskema.TypeSelect, Key: "cookiePolicy", Title: "Cookie Policy",
												Options: []setskema.Option{
													{Value: "all", Label: "Allow all"},
													{Value: "essential", Label: "Essential only"},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
			&setskema.PageGroup{
				Label: "Workspace",
				Pages: []*setskema.Page{
					{
						Key:   "appearance",
						Title: "Appearance",
						Sections: []*setskema.Section{
							{
								Key:   "theme",
								Title: "Theme",
								Settings: []*setskema.Setting{
									{
										Type: setskema.TypeSelect, Key: "theme", Title: "Color Theme",
										Options: []setskema.Option{
											{Value: "system", Label: "System"},
											{Value: "light", Label: "Light"},
											{Value: "dark", Label: "Dark"},
										},
										Default: "system",
									},
									{
										Type: setskema.TypeText, Key: "accentColor", Title: "Accent Color",
										Validation: &setskema.ValidationRule{Pattern: "^#[0-9a-fA-F]{6}$"},
										VisibleWhen: setskema.Visibility{
											&setskema.ConditionGroup{Or: []*setskema.Condition{
												{Setting: "theme", Equals: "dark", HasEquals: true},
												{Setting: "theme", Equals: "light", HasEquals: true},
											}},
										},
									},
									{
										Type: setskema.TypeNumber, Key: "fontSize", Title: "Font Size",
										Validation: &setskema.ValidationRule{Min: floatp(8), Max: floatp(32), Step: floatp(1)},
									},
								},
							},
						},
					},
					{
						Key:   "advanced",
						Title: "Advanced",
						Sections: []*setskema.Section{
							{
								Key:   "danger",
								Title: "Danger Zone",
								Settings: []*setskema.Setting{
									{
										Type: setskema.TypeCompound, Key: "proxy", Title: "HTTP Proxy",
										Fields: []*setskema.Setting{
											{Type: setskema.TypeBoolean, Key: "enabled", Title: "Enabled"},
											{Type: setskema.TypeText, Key: "host", Title: "Host"},
											{Type: setskema.TypeNumber, Key: "port", Title: "Port"},
										},
										Rules: []setskema.CompoundRule{
											{When: "enabled", Require: "host", Message: "Host is required when the proxy is enabled"},
										},
									},
									{
										Type: setskema.TypeRepeatable, Key: "pinnedPages", Title: "Pinned Pages",
										ItemType:   setskema.TypeText,
										Validation: &setskema.ValidationRule{MaxItems: intp(5)},
									},
									{
										Type: setskema.TypeAction, Key: "resetAll", Title: "Reset All Settings",
										Dangerous:   true,
										ButtonLabel: "Reset",
										ActionType:  "reset-all",
										Confirm:     &setskema.Confirm{Message: "This wipes every setting.", RequiredText: "RESET"},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

// flattenedKeys is the declaration-order key list of referenceSchema.
var referenceOrder = []string{
	"autoSave", "language", "lazyLoad", "cacheSize",
	"displayName", "birthday",
	"telemetry", "telemetryLevel",
	"cookiePolicy",
	"theme", "accentColor", "fontSize",
	"proxy", "pinnedPages", "resetAll",
}
