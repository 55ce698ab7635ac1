package entities

import "github.com/fedisphere/fedxml/entity"

// Retraction revokes a previously federated entity by GUID.
type Retraction struct {
	Author     string `json:"author" validate:"required"`
	TargetGUID string `json:"target_guid" validate:"required,min=16"`
	TargetType string `json:"target_type" validate:"required"`
}

var RetractionType = &entity.Type{
	Name: "Retraction",
	Tag:  "retraction",
	Schema: []entity.PropertyDef{
		{Name: "author", Kind: entity.Scalar},
		{Name: "target_guid", Kind: entity.Scalar},
		{Name: "target_type", Kind: entity.Scalar},
	},
	New: newRetraction,
}

func init() {
	entity.MustRegister(RetractionType)
}

func newRetraction(p entity.Props) (entity.Entity, error) {
	r := &Retraction{
		Author:     p.String("author"),
		TargetGUID: p.String("target_guid"),
		TargetType: p.String("target_type"),
	}
	if err := entity.Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Retraction) EntityType() *entity.Type { return RetractionType }

func (r *Retraction) Props() entity.Props {
	return entity.Props{
		"author":      r.Author,
		"target_guid": r.TargetGUID,
		"target_type": r.TargetType,
	}
}
