package entities

import "github.com/fedisphere/fedxml/entity"

// Participation subscribes its author to future interactions on a post.
type Participation struct {
	Author     string `json:"author" validate:"required"`
	GUID       string `json:"guid" validate:"required,min=16"`
	ParentGUID string `json:"parent_guid" validate:"required,min=16"`
	ParentType string `json:"parent_type" validate:"required,oneof=Post"`
}

var ParticipationType = &entity.Type{
	Name: "Participation",
	Tag:  "participation",
	Schema: []entity.PropertyDef{
		{Name: "author", Kind: entity.Scalar},
		{Name: "guid", Kind: entity.Scalar},
		{Name: "parent_guid", Kind: entity.Scalar},
		{Name: "parent_type", Kind: entity.Scalar},
	},
	New: newParticipation,
}

func init() {
	entity.MustRegister(ParticipationType)
}

func newParticipation(p entity.Props) (entity.Entity, error) {
	part := &Participation{
		Author:     p.String("author"),
		GUID:       p.String("guid"),
		ParentGUID: p.String("parent_guid"),
		ParentType: p.String("parent_type"),
	}
	if err := entity.Validate(part); err != nil {
		return nil, err
	}
	return part, nil
}

func (p *Participation) EntityType() *entity.Type { return ParticipationType }

func (p *Participation) Props() entity.Props {
	return entity.Props{
		"author":      p.Author,
		"guid":        p.GUID,
		"parent_guid": p.ParentGUID,
		"parent_type": p.ParentType,
	}
}
