// Package render turns form schemas and engine state into view models that
// concrete renderers (HTML, terminal) consume. Field presentation is
// dispatched on the field kind through one Control per kind.
package render
