package entity

import "github.com/beevik/etree"

// ToXML serializes an entity to an XML element tree driven by its
// type's schema. The element tag is the type's wire tag; each scalar
// property becomes a text child named after the property, each nested
// property a child tree tagged with the nested type's wire tag. Empty
// scalars and absent nested entities produce no element.
func ToXML(e Entity) *etree.Element {
	t := e.EntityType()
	el := etree.NewElement(t.Tag)
	props := e.Props()
	for _, def := range t.Schema {
		switch def.Kind {
		case Scalar:
			if s := props.String(def.Name); s != "" {
				el.CreateElement(def.Name).SetText(s)
			}
		case SingleNested:
			if nested := props.Entity(def.Name); nested != nil {
				el.AddChild(ToXML(nested))
			}
		case RepeatedNested:
			for _, nested := range props.Entities(def.Name) {
				if nested != nil {
					el.AddChild(ToXML(nested))
				}
			}
		}
	}
	return el
}
