// Package setskema renders and validates declarative settings screens from a
// versioned schema of pages, sections and typed settings. It provides:
//
// - A stable diagnostic model via ValidationError (path, code, message)
// - Structural schema validation (ValidateSchema) that accumulates every error
// - Depth-first traversal, flattening and memoized key indexes (WalkSchema, Index)
// - A conditional-visibility evaluator over host-owned values (EvaluateVisibility)
// - A per-type value-validation pipeline (ValidateSettingValue)
// - Title/description search with ancestor closure (SearchSchema)
//
// Design policy:
// - Keep only public APIs in the root package; detailed helpers stay unexported.
// - Place the authoring DSL under dsl/, document decoding under codec/, message
//   catalogs under i18n/, and the CLI under cmd/setskema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := loadSchema()
//	if errs := setskema.ValidateSchema(schema); len(errs) > 0 {
//		log.Printf("schema diagnostics: %v", errs)
//	}
//	idx := setskema.IndexOf(schema)
//	def := idx.Settings["autoSave"]
//	visible := setskema.EvaluateVisibility(def.VisibleWhen, values)
//	msg := setskema.ValidateSettingValue(def, values[def.Key])
//
// The schema is supplied once by the host and treated as immutable; every
// function here is a synchronous, side-effect-free read of it.
package setskema
