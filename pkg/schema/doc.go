// Package schema defines the data model shared by the registry, the engine,
// the store and the renderers: field definitions, form types, values,
// validation errors and submitted records.
package schema
