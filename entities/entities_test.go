package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedisphere/fedxml/entity"
)

func TestBuiltinTypesRegistered(t *testing.T) {
	for _, name := range []string{
		"Person", "Profile", "StatusMessage", "Photo", "Location",
		"Poll", "PollAnswer", "Comment", "Like", "Participation", "Retraction",
	} {
		_, ok := entity.Resolve(name)
		assert.True(t, ok, "type %s not registered", name)
	}
}

func TestCommentConstructor(t *testing.T) {
	props := entity.Props{
		"author":      "alice@pod.example",
		"guid":        "0123456789abcdef",
		"parent_guid": "fedcba9876543210",
		"text":        "hi",
	}

	ent, err := CommentType.New(props)
	require.NoError(t, err)
	c := ent.(*Comment)
	assert.Equal(t, "alice@pod.example", c.Author)
	assert.NotEmpty(t, c.CreatedAt, "created_at should default when absent")
}

func TestCommentConstructorRejections(t *testing.T) {
	valid := entity.Props{
		"author":      "alice@pod.example",
		"guid":        "0123456789abcdef",
		"parent_guid": "fedcba9876543210",
		"text":        "hi",
	}

	tests := []struct {
		name   string
		mutate func(entity.Props)
	}{
		{name: "missing author", mutate: func(p entity.Props) { delete(p, "author") }},
		{name: "missing text", mutate: func(p entity.Props) { delete(p, "text") }},
		{name: "short guid", mutate: func(p entity.Props) { p["guid"] = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := entity.Props{}
			for k, v := range valid {
				props[k] = v
			}
			tt.mutate(props)
			_, err := CommentType.New(props)
			assert.Error(t, err)
		})
	}
}

func TestLikeConstructorParentType(t *testing.T) {
	props := entity.Props{
		"author":      "alice@pod.example",
		"guid":        "0123456789abcdef",
		"parent_guid": "fedcba9876543210",
		"parent_type": "Post",
		"positive":    "true",
	}
	_, err := LikeType.New(props)
	require.NoError(t, err)

	props["parent_type"] = "Photo"
	_, err = LikeType.New(props)
	assert.Error(t, err, "parent_type outside Post/Comment should be rejected")
}

func TestPersonWithProfile(t *testing.T) {
	profile, err := ProfileType.New(entity.Props{
		"author":     "carol@pod.example",
		"first_name": "Carol",
	})
	require.NoError(t, err)

	ent, err := PersonType.New(entity.Props{
		"guid":    "abcdabcdabcdabcd",
		"author":  "carol@pod.example",
		"url":     "https://pod.example/",
		"profile": profile,
	})
	require.NoError(t, err)

	person := ent.(*Person)
	require.NotNil(t, person.Profile)
	assert.Equal(t, "Carol", person.Profile.FirstName)

	// Serialization nests the profile under its own wire tag.
	el := entity.ToXML(person)
	nested := el.SelectElement("profile")
	require.NotNil(t, nested)
	assert.Equal(t, "Carol", nested.SelectElement("first_name").Text())
}

func TestStatusMessageSchemaOrder(t *testing.T) {
	// The repeated photos property always round-trips as a list; the
	// optional location and poll are omitted when absent.
	ent, err := StatusMessageType.New(entity.Props{
		"author": "bob@pod.example",
		"guid":   "aaaabbbbccccdddd",
		"text":   "plain",
		"photos": []entity.Entity{},
	})
	require.NoError(t, err)

	msg := ent.(*StatusMessage)
	assert.Empty(t, msg.Photos)
	assert.Nil(t, msg.Location)
	assert.Nil(t, msg.Poll)

	el := entity.ToXML(msg)
	assert.Nil(t, el.SelectElement("location"))
	assert.Nil(t, el.SelectElement("poll"))
	assert.Empty(t, el.SelectElements("photo"))
}
