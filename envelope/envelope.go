package envelope

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/fedisphere/fedxml/entity"
)

const (
	outerTag = "XML"
	innerTag = "post"
)

// maxNestingDepth bounds recursive reconstruction. The entity type graph
// is acyclic by convention only; a registry wired with a cycle would
// otherwise recurse without limit on crafted input.
const maxNestingDepth = 32

// Pack wraps an entity's XML serialization in the wire envelope and
// returns the outer XML element. The serialized fragment is owned by the
// returned tree.
func Pack(e entity.Entity) (*etree.Element, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: pack requires a non-nil entity", ErrInvalidArgument)
	}
	outer := etree.NewElement(outerTag)
	outer.CreateElement(innerTag).AddChild(entity.ToXML(e))
	return outer, nil
}

// Unpack validates the envelope shape of el, resolves the payload
// element's tag to a registered entity type, and reconstructs the entity
// from the payload. Payload siblings beyond the first are ignored.
func Unpack(el *etree.Element) (entity.Entity, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: unpack requires a non-nil element", ErrInvalidArgument)
	}
	if el.Tag != outerTag {
		return nil, fmt.Errorf("%w: outer element is %q, want %q", ErrInvalidStructure, el.Tag, outerTag)
	}
	inner := el.SelectElement(innerTag)
	if inner == nil {
		return nil, fmt.Errorf("%w: missing %q element", ErrInvalidStructure, innerTag)
	}
	children := inner.ChildElements()
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: %q element has no payload", ErrInvalidStructure, innerTag)
	}
	payload := children[0]

	name := ResolveName(payload.Tag)
	t, ok := entity.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}
	return reconstruct(t, payload, 0)
}

// reconstruct builds an entity of type t from el by walking t's schema
// in declaration order, recursing depth-first into nested entities. A
// scalar or single-nested property with no matching child is omitted
// from the property map; a repeated property is always present, possibly
// as an empty list. Constructor rejections propagate unclassified.
func reconstruct(t *entity.Type, el *etree.Element, depth int) (entity.Entity, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d while rebuilding %q", ErrSchemaCycle, maxNestingDepth, t.Name)
	}
	props := entity.Props{}
	for _, def := range t.Schema {
		switch def.Kind {
		case entity.Scalar:
			if child := el.SelectElement(def.Name); child != nil {
				props[def.Name] = child.Text()
			}
		case entity.SingleNested:
			if child := el.SelectElement(def.Ref.Tag); child != nil {
				nested, err := reconstruct(def.Ref, child, depth+1)
				if err != nil {
					return nil, err
				}
				props[def.Name] = nested
			}
		case entity.RepeatedNested:
			matches := el.SelectElements(def.Ref.Tag)
			list := make([]entity.Entity, 0, len(matches))
			for _, child := range matches {
				nested, err := reconstruct(def.Ref, child, depth+1)
				if err != nil {
					return nil, err
				}
				list = append(list, nested)
			}
			props[def.Name] = list
		}
	}
	return t.New(props)
}
