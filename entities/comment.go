package entities

import (
	"github.com/fedisphere/fedxml/entity"
	"github.com/fedisphere/fedxml/internal"
)

// Comment is a reply to a post, addressed by the parent's GUID.
type Comment struct {
	Author     string `json:"author" validate:"required"`
	GUID       string `json:"guid" validate:"required,min=16"`
	ParentGUID string `json:"parent_guid" validate:"required,min=16"`
	CreatedAt  string `json:"created_at"`
	Text       string `json:"text" validate:"required"`
}

var CommentType = &entity.Type{
	Name: "Comment",
	Tag:  "comment",
	Schema: []entity.PropertyDef{
		{Name: "author", Kind: entity.Scalar},
		{Name: "guid", Kind: entity.Scalar},
		{Name: "parent_guid", Kind: entity.Scalar},
		{Name: "created_at", Kind: entity.Scalar},
		{Name: "text", Kind: entity.Scalar},
	},
	New: newComment,
}

func init() {
	entity.MustRegister(CommentType)
}

func newComment(p entity.Props) (entity.Entity, error) {
	c := &Comment{
		Author:     p.String("author"),
		GUID:       p.String("guid"),
		ParentGUID: p.String("parent_guid"),
		CreatedAt:  p.StringOr("created_at", internal.Iso8601Now()),
		Text:       p.String("text"),
	}
	if err := entity.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) EntityType() *entity.Type { return CommentType }

func (c *Comment) Props() entity.Props {
	return entity.Props{
		"author":      c.Author,
		"guid":        c.GUID,
		"parent_guid": c.ParentGUID,
		"created_at":  c.CreatedAt,
		"text":        c.Text,
	}
}
