// Package registry holds the immutable, ordered mapping from form-type name
// to field schema. Registries are built once, either from Go values, from
// JSON/YAML documents on an fs.FS, or from an OpenAPI document, and are safe
// to share across sessions.
package registry
