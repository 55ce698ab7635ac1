package entities

import "github.com/fedisphere/fedxml/entity"

// Like expresses a positive or negative reaction to a post or comment.
type Like struct {
	Author     string `json:"author" validate:"required"`
	GUID       string `json:"guid" validate:"required,min=16"`
	ParentGUID string `json:"parent_guid" validate:"required,min=16"`
	ParentType string `json:"parent_type" validate:"required,oneof=Post Comment"`
	Positive   string `json:"positive" validate:"omitempty,oneof=true false"`
}

var LikeType = &entity.Type{
	Name: "Like",
	Tag:  "like",
	Schema: []entity.PropertyDef{
		{Name: "author", Kind: entity.Scalar},
		{Name: "guid", Kind: entity.Scalar},
		{Name: "parent_guid", Kind: entity.Scalar},
		{Name: "parent_type", Kind: entity.Scalar},
		{Name: "positive", Kind: entity.Scalar},
	},
	New: newLike,
}

func init() {
	entity.MustRegister(LikeType)
}

func newLike(p entity.Props) (entity.Entity, error) {
	l := &Like{
		Author:     p.String("author"),
		GUID:       p.String("guid"),
		ParentGUID: p.String("parent_guid"),
		ParentType: p.String("parent_type"),
		Positive:   p.String("positive"),
	}
	if err := entity.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Like) EntityType() *entity.Type { return LikeType }

func (l *Like) Props() entity.Props {
	return entity.Props{
		"author":      l.Author,
		"guid":        l.GUID,
		"parent_guid": l.ParentGUID,
		"parent_type": l.ParentType,
		"positive":    l.Positive,
	}
}
