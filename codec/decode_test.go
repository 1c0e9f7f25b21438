package codec_test

import (
	"strings"
	"testing"

	setskema "github.com/reoring/setskema"
	"github.com/reoring/setskema/codec"
)

const sampleJSON = `{
  "version": 1,
  "meta": {"app": "demo"},
  "pages": [
    {
      "key": "general",
      "title": "General",
      "icon": "gear",
      "sections": [
        {
          "key": "behavior",
          "title": "Behavior",
          "settings": [
            {"type": "boolean", "key": "autoSave", "title": "Auto Save", "default": true},
            {
              "type": "select",
              "key": "language",
              "title": "Language",
              "options": [
                {"value": "en", "label": "English"},
                {"value": "ja", "label": "Japanese"}
              ],
              "default": "en"
            },
            {
              "type": "select",
              "key": "telemetryLevel",
              "title": "Telemetry Level",
              "options": [{"value": "basic", "label": "Basic"}],
              "visibleWhen": {"setting": "autoSave", "equals": true}
            }
          ],
          "subsections": [
            {
              "key": "performance",
              "title": "Performance",
              "settings": [
                {
                  "type": "number",
                  "key": "cacheSize",
                  "title": "Cache Size",
                  "validation": {"min": 16, "max": 1024, "step": 16}
                }
              ]
            }
          ]
        }
      ],
      "pages": [
        {
          "key": "general.privacy",
          "title": "Privacy",
          "sections": [
            {
              "key": "tracking",
              "title": "Tracking",
              "settings": [
                {"type": "boolean", "key": "telemetry", "title": "Usage Telemetry"}
              ]
            }
          ]
        }
      ]
    },
    {
      "label": "Workspace",
      "pages": [
        {
          "key": "appearance",
          "title": "Appearance",
          "sections": [
            {
              "key": "theme",
              "title": "Theme",
              "settings": [
                {
                  "type": "text",
                  "key": "accentColor",
                  "title": "Accent Color",
                  "visibleWhen": [
                    {"setting": "telemetry", "equals": true},
                    {"or": [
                      {"setting": "language", "equals": "en"},
                      {"setting": "cacheSize", "greaterThan": 512}
                    ]}
                  ]
                }
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestDecodeJSON(t *testing.T) {
	s, err := codec.DecodeJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Version != 1 || s.Meta["app"] != "demo" {
		t.Fatalf("header lost: %+v", s)
	}
	if errs := setskema.ValidateSchema(s); len(errs) != 0 {
		t.Fatalf("decoded schema should validate cleanly, got %v", errs)
	}

	page, ok := s.Pages[0].(*setskema.Page)
	if !ok {
		t.Fatalf("first item should be a plain page, got %T", s.Pages[0])
	}
	if page.Icon != "gear" || len(page.Pages) != 1 || page.Pages[0].Key != "general.privacy" {
		t.Fatalf("page body lost: %+v", page)
	}

	group, ok := s.Pages[1].(*setskema.PageGroup)
	if !ok {
		t.Fatalf("label presence should decode a group, got %T", s.Pages[1])
	}
	if group.Label != "Workspace" || len(group.Pages) != 1 {
		t.Fatalf("group body lost: %+v", group)
	}

	cache := setskema.SettingByKey(s, "cacheSize")
	if cache == nil || cache.Validation == nil || cache.Validation.Step == nil || *cache.Validation.Step != 16 {
		t.Fatalf("validation rule lost: %+v", cache)
	}
}

func TestDecodeJSON_SingleConditionObject(t *testing.T) {
	s, err := codec.DecodeJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	level := setskema.SettingByKey(s, "telemetryLevel")
	if len(level.VisibleWhen) != 1 {
		t.Fatalf("object form decodes to one rule, got %d", len(level.VisibleWhen))
	}
	cond, ok := level.VisibleWhen[0].(*setskema.Condition)
	if !ok {
		t.Fatalf("got %T", level.VisibleWhen[0])
	}
	if cond.Setting != "autoSave" || !cond.HasEquals || cond.Equals != true {
		t.Fatalf("condition lost: %+v", cond)
	}
}

func TestDecodeJSON_RuleArrayWithOrGroup(t *testing.T) {
	s, err := codec.DecodeJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	accent := setskema.SettingByKey(s, "accentColor")
	if len(accent.VisibleWhen) != 2 {
		t.Fatalf("array form keeps each rule, got %d", len(accent.VisibleWhen))
	}
	if _, ok := accent.VisibleWhen[0].(*setskema.Condition); !ok {
		t.Fatalf("first rule should be a condition, got %T", accent.VisibleWhen[0])
	}
	group, ok := accent.VisibleWhen[1].(*setskema.ConditionGroup)
	if !ok {
		t.Fatalf("second rule should be an or-group, got %T", accent.VisibleWhen[1])
	}
	if len(group.Or) != 2 {
		t.Fatalf("or-group lost branches: %+v", group)
	}
	if gt := group.Or[1].GreaterThan; gt == nil || *gt != 512 {
		t.Fatalf("greaterThan lost: %+v", group.Or[1])
	}
}

func TestDecodeJSON_EqualsNullKeepsOperator(t *testing.T) {
	doc := `{
	  "version": 1,
	  "pages": [{
	    "key": "p", "title": "P",
	    "sections": [{
	      "key": "s", "title": "S",
	      "settings": [
	        {"type": "text", "key": "a", "title": "A"},
	        {"type": "text", "key": "b", "title": "B",
	         "visibleWhen": {"setting": "a", "equals": null}}
	      ]
	    }]
	  }]
	}`
	s, err := codec.DecodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cond := setskema.SettingByKey(s, "b").VisibleWhen[0].(*setskema.Condition)
	if !cond.HasEquals || cond.Equals != nil {
		t.Fatalf("explicit null must keep the operator: %+v", cond)
	}
	// Distinct from an absent operator, which falls through to truthiness.
	if !setskema.EvaluateVisibility(setskema.Visibility{cond}, setskema.Values{"a": nil}) {
		t.Fatalf("equals null should match a nil value")
	}
	if setskema.EvaluateVisibility(setskema.Visibility{cond}, setskema.Values{"a": "x"}) {
		t.Fatalf("equals null should not match a present value")
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `
version: 1
pages:
  - key: general
    title: General
    sections:
      - key: behavior
        title: Behavior
        settings:
          - type: boolean
            key: autoSave
            title: Auto Save
          - type: number
            key: cacheSize
            title: Cache Size
            validation:
              min: 16
              max: 1024
`
	s, err := codec.DecodeYAML([]byte(doc))
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if errs := setskema.ValidateSchema(s); len(errs) != 0 {
		t.Fatalf("yaml schema should validate cleanly, got %v", errs)
	}
	cache := setskema.SettingByKey(s, "cacheSize")
	if cache.Validation == nil || cache.Validation.Min == nil || *cache.Validation.Min != 16 {
		t.Fatalf("yaml validation lost: %+v", cache)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	if _, err := codec.DecodeJSON([]byte(`{"version": 1, "pages": [`)); err == nil {
		t.Fatalf("truncated document must fail")
	}
	_, err := codec.DecodeJSON([]byte(`{"version": 1, "pages": [{"key": "p", "title": "P",
	  "sections": [{"key": "s", "title": "S",
	    "settings": [{"type": "text", "key": "a", "title": "A",
	      "visibleWhen": {"setting": "x", "greaterThan": "not-a-number"}}]}]}]}`))
	if err == nil || !strings.Contains(err.Error(), "greaterThan") {
		t.Fatalf("operator type errors should name the operator, got %v", err)
	}
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	s, err := codec.DecodeJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := codec.EncodeJSON(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := codec.DecodeJSON(out)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if setskema.SettingByKey(again, "cacheSize") == nil {
		t.Fatalf("round trip lost settings")
	}
	if _, ok := again.Pages[1].(*setskema.PageGroup); !ok {
		t.Fatalf("round trip lost the group shape")
	}
}
