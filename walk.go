package setskema

import "fmt"

// WalkContext locates the node a visitor callback receives. For sections,
// subsections and settings, PageKey is the owning page's key. For pages,
// PageKey is the key of the parent page ("" for root-level pages, including
// members of a PageGroup), which is what lets a single walk discover the
// parent-of relation between nested pages.
type WalkContext struct {
	PageKey       string
	SectionKey    string
	SubsectionKey string
	Depth         int
	Path          string
}

// Visitor supplies any subset of callbacks; nil callbacks are skipped. A
// callback returning false aborts the entire walk immediately, not merely the
// current subtree.
type Visitor struct {
	OnPageGroup  func(group *PageGroup, ctx WalkContext) bool
	OnPage       func(page *Page, ctx WalkContext) bool
	OnSection    func(section *Section, ctx WalkContext) bool
	OnSubsection func(sub *Subsection, ctx WalkContext) bool
	OnSetting    func(setting *Setting, ctx WalkContext) bool
}

// WalkSchema walks the schema depth-first in declaration order: for a page,
// its sections then its nested pages; for a section, its direct settings then
// its subsections. It reports whether the walk ran to completion (false when
// a callback aborted it).
func WalkSchema(s *Schema, v Visitor) bool {
	if s == nil {
		return true
	}
	for i, item := range s.Pages {
		path := fmt.Sprintf("pages[%d]", i)
		switch it := item.(type) {
		case *PageGroup:
			if v.OnPageGroup != nil && !v.OnPageGroup(it, WalkContext{Depth: 0, Path: path}) {
				return false
			}
			for j, p := range it.Pages {
				if !walkPage(p, "", 0, fmt.Sprintf("%s.pages[%d]", path, j), v) {
					return false
				}
			}
		case *Page:
			if !walkPage(it, "", 0, path, v) {
				return false
			}
		}
	}
	return true
}

func walkPage(p *Page, parentKey string, depth int, path string, v Visitor) bool {
	if p == nil {
		return true
	}
	if v.OnPage != nil && !v.OnPage(p, WalkContext{PageKey: parentKey, Depth: depth, Path: path}) {
		return false
	}
	for j, sec := range p.Sections {
		if !walkSection(sec, p.Key, depth+1, fmt.Sprintf("%s.sections[%d]", path, j), v) {
			return false
		}
	}
	for k, child := range p.Pages {
		if !walkPage(child, p.Key, depth+1, fmt.Sprintf("%s.pages[%d]", path, k), v) {
			return false
		}
	}
	return true
}

func walkSection(sec *Section, pageKey string, depth int, path string, v Visitor) bool {
	if sec == nil {
		return true
	}
	if v.OnSection != nil && !v.OnSection(sec, WalkContext{PageKey: pageKey, Depth: depth, Path: path}) {
		return false
	}
	for i, st := range sec.Settings {
		if v.OnSetting == nil {
			break
		}
		ctx := WalkContext{
			PageKey:    pageKey,
			SectionKey: sec.Key,
			Depth:      depth + 1,
			Path:       fmt.Sprintf("%s.settings[%d]", path, i),
		}
		if !v.OnSetting(st, ctx) {
			return false
		}
	}
	for k, sub := range sec.Subsections {
		subPath := fmt.Sprintf("%s.subsections[%d]", path, k)
		if v.OnSubsection != nil {
			ctx := WalkContext{PageKey: pageKey, SectionKey: sec.Key, Depth: depth + 1, Path: subPath}
			if !v.OnSubsection(sub, ctx) {
				return false
			}
		}
		for i, st := range sub.Settings {
			if v.OnSetting == nil {
				break
			}
			ctx := WalkContext{
				PageKey:       pageKey,
				SectionKey:    sec.Key,
				SubsectionKey: sub.Key,
				Depth:         depth + 2,
				Path:          fmt.Sprintf("%s.settings[%d]", subPath, i),
			}
			if !v.OnSetting(st, ctx) {
				return false
			}
		}
	}
	return true
}

// FlattenSettings collects every setting in walk order as read-only
// projections. Prefer IndexOf(s).Flat when calling repeatedly for the same
// schema.
func FlattenSettings(s *Schema) []FlattenedSetting {
	var out []FlattenedSetting
	WalkSchema(s, Visitor{
		OnSetting: func(st *Setting, ctx WalkContext) bool {
			out = append(out, FlattenedSetting{
				Definition:    st,
				Path:          ctx.Path,
				PageKey:       ctx.PageKey,
				SectionKey:    ctx.SectionKey,
				SubsectionKey: ctx.SubsectionKey,
			})
			return true
		},
	})
	return out
}

// SettingByKey returns the first setting with the given key anywhere in the
// schema, including subsection settings and settings of nested pages, or nil.
func SettingByKey(s *Schema, key string) *Setting {
	var found *Setting
	WalkSchema(s, Visitor{
		OnSetting: func(st *Setting, ctx WalkContext) bool {
			if st.Key == key {
				found = st
				return false
			}
			return true
		},
	})
	return found
}

// PageByKey returns the first page with the given key anywhere in the schema,
// including group members and nested pages, or nil.
func PageByKey(s *Schema, key string) *Page {
	var found *Page
	WalkSchema(s, Visitor{
		OnPage: func(p *Page, ctx WalkContext) bool {
			if p.Key == key {
				found = p
				return false
			}
			return true
		},
	})
	return found
}

// IsFlattenedPage reports whether a page is a pure pass-through in the
// navigation tree: exactly one child page and no sections.
func IsFlattenedPage(p *Page) bool {
	return p != nil && len(p.Pages) == 1 && len(p.Sections) == 0
}

// maxResolveDepth bounds ResolvePageKey descents. The counter is explicit so
// the cutoff point is deterministic and testable.
const maxResolveDepth = 10

// ResolvePageKey follows single-child section-less pages downward and returns
// the key of the page navigation should land on. After maxResolveDepth
// successful descents it returns the key of the page reached at that depth.
func ResolvePageKey(p *Page) string {
	if p == nil {
		return ""
	}
	cur := p
	for depth := 0; depth < maxResolveDepth && IsFlattenedPage(cur); depth++ {
		cur = cur.Pages[0]
	}
	return cur.Key
}

// IsPageGroup reports whether a root-level item is a grouping wrapper.
func IsPageGroup(item PageItem) bool {
	_, ok := item.(*PageGroup)
	return ok
}

// FlattenPageItems expands PageGroup wrappers into their member pages,
// preserving declaration order, for consumers that need a flat root-page
// list.
func FlattenPageItems(items []PageItem) []*Page {
	var out []*Page
	for _, item := range items {
		switch it := item.(type) {
		case *PageGroup:
			out = append(out, it.Pages...)
		case *Page:
			out = append(out, it)
		}
	}
	return out
}

// ResolveDependencies maps every setting that carries a visibleWhen to the
// ordered, de-duplicated setting keys its conditions reference (including
// members of or-groups). Settings without visibleWhen are absent from the
// map.
func ResolveDependencies(s *Schema) map[string][]string {
	deps := map[string][]string{}
	WalkSchema(s, Visitor{
		OnSetting: func(st *Setting, ctx WalkContext) bool {
			if len(st.VisibleWhen) == 0 {
				return true
			}
			if _, ok := deps[st.Key]; !ok {
				deps[st.Key] = visibilityRefs(st.VisibleWhen)
			}
			return true
		},
	})
	return deps
}
