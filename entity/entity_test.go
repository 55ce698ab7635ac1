package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntity struct {
	t *Type
	p Props
}

func (f fakeEntity) EntityType() *Type { return f.t }
func (f fakeEntity) Props() Props      { return f.p }

func newFakeType(name, tag string, schema []PropertyDef) *Type {
	t := &Type{Name: name, Tag: tag, Schema: schema}
	t.New = func(p Props) (Entity, error) {
		return fakeEntity{t: t, p: p}, nil
	}
	return t
}

func TestRegisterAndResolve(t *testing.T) {
	ft := newFakeType("RegTest", "reg_test", nil)
	require.NoError(t, Register(ft))

	got, ok := Resolve("RegTest")
	require.True(t, ok)
	assert.Same(t, ft, got)

	_, ok = Resolve("NoSuchType")
	assert.False(t, ok)
}

func TestRegisterDuplicate(t *testing.T) {
	ft := newFakeType("DupTest", "dup_test", nil)
	require.NoError(t, Register(ft))
	assert.Error(t, Register(newFakeType("DupTest", "dup_test", nil)))
}

func TestRegisterIncomplete(t *testing.T) {
	assert.Error(t, Register(nil))
	assert.Error(t, Register(&Type{Name: "NoTag"}))
	assert.Error(t, Register(&Type{Name: "NoCtor", Tag: "no_ctor"}))
}

func TestPropsAccessors(t *testing.T) {
	nested := fakeEntity{t: newFakeType("PropsNested", "props_nested", nil)}
	p := Props{
		"text":  "hello",
		"child": Entity(nested),
		"items": []Entity{nested},
	}

	assert.Equal(t, "hello", p.String("text"))
	assert.Equal(t, "", p.String("missing"))
	assert.Equal(t, "hello", p.StringOr("text", "fallback"))
	assert.Equal(t, "fallback", p.StringOr("missing", "fallback"))
	assert.NotNil(t, p.Entity("child"))
	assert.Nil(t, p.Entity("missing"))
	assert.Len(t, p.Entities("items"), 1)
	assert.Nil(t, p.Entities("missing"))
	assert.True(t, p.Has("text"))
	assert.False(t, p.Has("missing"))
}

func TestToXMLSchemaDriven(t *testing.T) {
	itemType := newFakeType("XMLItem", "xml_item", []PropertyDef{
		{Name: "value", Kind: Scalar},
	})
	parentType := newFakeType("XMLParent", "xml_parent", nil)
	parentType.Schema = []PropertyDef{
		{Name: "title", Kind: Scalar},
		{Name: "empty_one", Kind: Scalar},
		{Name: "item", Kind: SingleNested, Ref: itemType},
		{Name: "items", Kind: RepeatedNested, Ref: itemType},
	}

	item := func(v string) Entity {
		return fakeEntity{t: itemType, p: Props{"value": v}}
	}
	parent := fakeEntity{t: parentType, p: Props{
		"title":     "t",
		"empty_one": "",
		"item":      item("single"),
		"items":     []Entity{item("a"), item("b")},
	}}

	el := ToXML(parent)
	require.Equal(t, "xml_parent", el.Tag)

	title := el.SelectElement("title")
	require.NotNil(t, title)
	assert.Equal(t, "t", title.Text())

	assert.Nil(t, el.SelectElement("empty_one"), "empty scalar should not be written")

	// Single plus two repeated, all tagged with the nested wire tag,
	// in schema-then-document order.
	nested := el.SelectElements("xml_item")
	require.Len(t, nested, 3)
	assert.Equal(t, "single", nested[0].SelectElement("value").Text())
	assert.Equal(t, "a", nested[1].SelectElement("value").Text())
	assert.Equal(t, "b", nested[2].SelectElement("value").Text())
}

func TestValidate(t *testing.T) {
	type subject struct {
		Author string `validate:"required"`
	}
	assert.Error(t, Validate(&subject{}))
	assert.NoError(t, Validate(&subject{Author: "alice@pod.example"}))
}
