// Package entities defines the concrete federation entity types and
// registers them with the entity type registry at init time. Importing
// this package (usually blank) installs the builtin types.
//
// All wire values are text, so entity fields are strings. Field
// constraints are declared as validator tags and enforced by each
// constructor; a property map that fails validation is rejected as a
// whole.
package entities
