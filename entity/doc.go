// Package entity defines the federation entity type system: the Entity
// interface, per-type property schemas, the global type registry, and
// schema-driven serialization of entities to XML fragments.
//
// An entity type declares an ordered schema of property definitions. Each
// property is either a scalar (text on the wire), a single nested entity,
// or a repeated nested entity. The schema drives both serialization
// (ToXML) and reconstruction (package envelope).
package entity
