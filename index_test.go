package setskema_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	setskema "github.com/reoring/setskema"
)

func TestNewIndex_Lookups(t *testing.T) {
	idx := setskema.NewIndex(referenceSchema())

	if def := idx.Settings["cacheSize"]; def == nil || def.Type != setskema.TypeNumber {
		t.Fatalf("setting index miss: %+v", def)
	}
	if sec := idx.Sections["general:behavior"]; sec == nil || sec.Title != "Behavior" {
		t.Fatalf("section index miss: %+v", sec)
	}
	if sec := idx.Sections["advanced:danger"]; sec == nil {
		t.Fatalf("group member sections must be indexed")
	}
	if _, ok := idx.Sections["behavior"]; ok {
		t.Fatalf("section keys are qualified by page")
	}

	wantParents := map[string]string{
		"general.privacy":         "general",
		"general.privacy.cookies": "general.privacy",
	}
	if diff := cmp.Diff(wantParents, idx.Parents); diff != "" {
		t.Fatalf("parent map (-want +got):\n%s", diff)
	}

	if len(idx.Flat) != len(referenceOrder) {
		t.Fatalf("flat list has %d entries, want %d", len(idx.Flat), len(referenceOrder))
	}
	for i, f := range idx.Flat {
		if f.Definition.Key != referenceOrder[i] {
			t.Fatalf("flat[%d] = %q, want %q", i, f.Definition.Key, referenceOrder[i])
		}
	}

	if diff := cmp.Diff([]string{"telemetry"}, idx.Dependencies["telemetryLevel"]); diff != "" {
		t.Fatalf("dependencies (-want +got):\n%s", diff)
	}
}

func TestIndexOf_MemoizedBySchemaIdentity(t *testing.T) {
	s := referenceSchema()
	a := setskema.IndexOf(s)
	b := setskema.IndexOf(s)
	if a != b {
		t.Fatalf("same schema must yield the same index instance")
	}

	other := referenceSchema()
	if setskema.IndexOf(other) == a {
		t.Fatalf("distinct schema identities must not share an index")
	}
}

func TestIndexOf_ConcurrentCallersShareOneIndex(t *testing.T) {
	s := referenceSchema()
	const n = 16
	results := make([]*setskema.Index, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = setskema.IndexOf(s)
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("caller %d observed a different index", i)
		}
	}
}

func TestNewIndex_FirstMatchWinsOnDuplicates(t *testing.T) {
	// Duplicate keys are a validation error, but lookups must still behave:
	// the first declaration wins, matching SettingByKey.
	s := &setskema.Schema{
		Version: setskema.SupportedVersion,
		Pages: []setskema.PageItem{
			&setskema.Page{
				Key: "p", Title: "P",
				Sections: []*setskema.Section{{
					Key: "s", Title: "S",
					Settings: []*setskema.Setting{
						{Type: setskema.TypeBoolean, Key: "dup", Title: "First"},
						{Type: setskema.TypeText, Key: "dup", Title: "Second"},
					},
				}},
			},
		},
	}
	idx := setskema.NewIndex(s)
	if idx.Settings["dup"].Title != "First" {
		t.Fatalf("index kept %q", idx.Settings["dup"].Title)
	}
	if setskema.SettingByKey(s, "dup").Title != "First" {
		t.Fatalf("lookup disagreement with index")
	}
}
