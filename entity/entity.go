package entity

// Kind classifies how a schema property maps onto the wire.
type Kind int

const (
	// Scalar is a text-valued property carried as a child element whose
	// tag equals the property name.
	Scalar Kind = iota
	// SingleNested is a single nested entity, located by the nested
	// type's wire tag.
	SingleNested
	// RepeatedNested is an ordered list of nested entities of one type.
	RepeatedNested
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case SingleNested:
		return "single-nested"
	case RepeatedNested:
		return "repeated-nested"
	}
	return "unknown"
}

// PropertyDef is one entry of an entity type's ordered schema. Ref names
// the nested entity type and must be set for SingleNested and
// RepeatedNested properties; it is ignored for Scalar.
type PropertyDef struct {
	Name string
	Kind Kind
	Ref  *Type
}

// Type describes a constructible entity type. Name is the canonical
// identifier used for registry lookups, Tag the lower-case wire element
// name. New builds an instance from a property map and may reject it.
type Type struct {
	Name   string
	Tag    string
	Schema []PropertyDef
	New    func(Props) (Entity, error)
}

// Entity is implemented by all federation entity instances.
type Entity interface {
	// EntityType returns the type descriptor this instance belongs to.
	EntityType() *Type
	// Props returns the instance's properties keyed by schema name.
	// Scalar values are strings, nested values Entity or []Entity.
	Props() Props
}

// Props is the transient property map passed between the reconstructor,
// serializer, and entity constructors. Absence of a key means the
// property was omitted, which is distinct from an empty value.
type Props map[string]any

// String returns the scalar value under name, or "" when the property is
// absent or not a string.
func (p Props) String(name string) string {
	s, _ := p[name].(string)
	return s
}

// StringOr returns the scalar value under name, or def when the property
// is absent or empty.
func (p Props) StringOr(name, def string) string {
	if s := p.String(name); s != "" {
		return s
	}
	return def
}

// Entity returns the nested entity under name, or nil when absent.
func (p Props) Entity(name string) Entity {
	e, _ := p[name].(Entity)
	return e
}

// Entities returns the nested entity list under name, or nil when absent.
func (p Props) Entities(name string) []Entity {
	es, _ := p[name].([]Entity)
	return es
}

// Has reports whether name is present in the map, regardless of value.
func (p Props) Has(name string) bool {
	_, ok := p[name]
	return ok
}
