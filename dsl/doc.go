// Package dsl provides fluent builders for authoring settings schemas in Go
// source, as an alternative to decoding them from JSON or YAML documents via
// the codec package. Builders only assemble the model; run
// setskema.ValidateSchema on the result to surface authoring mistakes.
package dsl
