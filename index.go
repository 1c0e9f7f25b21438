package setskema

import "sync"

// Index holds the derived structures the presentation layer consults on every
// interaction. It is built once per schema and never mutated afterwards, so
// per-edit costs stay O(1) or O(#settings) instead of repeated tree walks.
type Index struct {
	// Settings maps setting key to its definition (first match wins when a
	// schema carries duplicates; ValidateSchema flags those).
	Settings map[string]*Setting
	// Sections maps "pageKey:sectionKey" to the section definition.
	Sections map[string]*Section
	// Pages maps page key to its definition, including nested pages.
	Pages map[string]*Page
	// Parents maps a nested page's key to its parent page's key. Root-level
	// pages, including group members, are absent.
	Parents map[string]string
	// Flat is the declaration-order flattened settings list.
	Flat []FlattenedSetting
	// Dependencies is the ResolveDependencies projection.
	Dependencies map[string][]string
}

// NewIndex builds every derived structure in a single walk.
func NewIndex(s *Schema) *Index {
	idx := &Index{
		Settings:     map[string]*Setting{},
		Sections:     map[string]*Section{},
		Pages:        map[string]*Page{},
		Parents:      map[string]string{},
		Dependencies: map[string][]string{},
	}
	WalkSchema(s, Visitor{
		OnPage: func(p *Page, ctx WalkContext) bool {
			if _, ok := idx.Pages[p.Key]; !ok {
				idx.Pages[p.Key] = p
			}
			if ctx.PageKey != "" {
				idx.Parents[p.Key] = ctx.PageKey
			}
			return true
		},
		OnSection: func(sec *Section, ctx WalkContext) bool {
			key := ctx.PageKey + ":" + sec.Key
			if _, ok := idx.Sections[key]; !ok {
				idx.Sections[key] = sec
			}
			return true
		},
		OnSetting: func(st *Setting, ctx WalkContext) bool {
			if _, ok := idx.Settings[st.Key]; !ok {
				idx.Settings[st.Key] = st
			}
			idx.Flat = append(idx.Flat, FlattenedSetting{
				Definition:    st,
				Path:          ctx.Path,
				PageKey:       ctx.PageKey,
				SectionKey:    ctx.SectionKey,
				SubsectionKey: ctx.SubsectionKey,
			})
			if len(st.VisibleWhen) > 0 {
				if _, ok := idx.Dependencies[st.Key]; !ok {
					idx.Dependencies[st.Key] = visibilityRefs(st.VisibleWhen)
				}
			}
			return true
		},
	})
	return idx
}

// indexCache memoizes indexes by schema identity (the *Schema pointer). A
// schema is immutable after load, so an entry stays valid for the schema's
// lifetime; a new schema is a new pointer and gets a fresh entry.
var indexCache sync.Map // *Schema -> *Index

// IndexOf returns the memoized Index for a schema, building it on first use.
// Concurrent callers for the same schema observe a single, referentially
// stable instance.
func IndexOf(s *Schema) *Index {
	if v, ok := indexCache.Load(s); ok {
		return v.(*Index)
	}
	built := NewIndex(s)
	actual, _ := indexCache.LoadOrStore(s, built)
	return actual.(*Index)
}
