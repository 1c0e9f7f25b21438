package setskema

import "strings"

// SearchResult holds the setting and page keys matched by a query.
type SearchResult struct {
	SettingKeys map[string]bool
	PageKeys    map[string]bool
}

// SearchSchema matches a query case-insensitively against page titles, group
// labels, section/subsection titles and setting titles/descriptions in a
// single walk. A matching group label or page title pulls in every setting
// transitively under the page; a matching section title pulls in that
// section's settings including subsection settings; a subsection or setting
// match stays local. PageKeys is closed under the parent-of relation: every
// ancestor of a matched page is included, unrelated siblings never are. An
// empty query yields empty sets, never an error.
func SearchSchema(s *Schema, query string) SearchResult {
	res := SearchResult{SettingKeys: map[string]bool{}, PageKeys: map[string]bool{}}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return res
	}
	match := func(text string) bool {
		return text != "" && strings.Contains(strings.ToLower(text), q)
	}

	// matchedPages are pages whose own title (or group label) matched; every
	// setting transitively under them is included. Pages that enter PageKeys
	// only because one of their settings matched do not spill over.
	matchedPages := map[string]bool{}
	parents := map[string]string{}
	matchedSections := map[string]bool{}    // pageKey:sectionKey
	matchedSubsections := map[string]bool{} // pageKey:sectionKey:subsectionKey

	// Declaration order guarantees ancestors are walked before descendants,
	// so the parent chain is complete whenever a setting is visited.
	underMatchedPage := func(pageKey string) bool {
		for k := pageKey; k != ""; k = parents[k] {
			if matchedPages[k] {
				return true
			}
		}
		return false
	}

	WalkSchema(s, Visitor{
		OnPageGroup: func(g *PageGroup, ctx WalkContext) bool {
			if match(g.Label) {
				for _, p := range g.Pages {
					matchedPages[p.Key] = true
					res.PageKeys[p.Key] = true
				}
			}
			return true
		},
		OnPage: func(p *Page, ctx WalkContext) bool {
			if ctx.PageKey != "" {
				parents[p.Key] = ctx.PageKey
			}
			if match(p.Title) {
				matchedPages[p.Key] = true
				res.PageKeys[p.Key] = true
			}
			return true
		},
		OnSection: func(sec *Section, ctx WalkContext) bool {
			if match(sec.Title) {
				matchedSections[ctx.PageKey+":"+sec.Key] = true
				res.PageKeys[ctx.PageKey] = true
			}
			return true
		},
		OnSubsection: func(sub *Subsection, ctx WalkContext) bool {
			if match(sub.Title) {
				matchedSubsections[ctx.PageKey+":"+ctx.SectionKey+":"+sub.Key] = true
				res.PageKeys[ctx.PageKey] = true
			}
			return true
		},
		OnSetting: func(st *Setting, ctx WalkContext) bool {
			switch {
			case underMatchedPage(ctx.PageKey):
				res.SettingKeys[st.Key] = true
			case matchedSections[ctx.PageKey+":"+ctx.SectionKey]:
				res.SettingKeys[st.Key] = true
			case ctx.SubsectionKey != "" &&
				matchedSubsections[ctx.PageKey+":"+ctx.SectionKey+":"+ctx.SubsectionKey]:
				res.SettingKeys[st.Key] = true
			case match(st.Title) || match(st.Description):
				res.SettingKeys[st.Key] = true
				res.PageKeys[ctx.PageKey] = true
			}
			return true
		},
	})

	// Close PageKeys under the parent-of relation discovered above.
	for key := range res.PageKeys {
		for k := parents[key]; k != ""; k = parents[k] {
			res.PageKeys[k] = true
		}
	}
	return res
}
