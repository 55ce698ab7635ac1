package entities

import "github.com/fedisphere/fedxml/entity"

// Location is a geotag nested inside a StatusMessage.
type Location struct {
	Address string `json:"address"`
	Lat     string `json:"lat" validate:"required"`
	Lng     string `json:"lng" validate:"required"`
}

var LocationType = &entity.Type{
	Name: "Location",
	Tag:  "location",
	Schema: []entity.PropertyDef{
		{Name: "address", Kind: entity.Scalar},
		{Name: "lat", Kind: entity.Scalar},
		{Name: "lng", Kind: entity.Scalar},
	},
	New: newLocation,
}

func init() {
	entity.MustRegister(LocationType)
}

func newLocation(p entity.Props) (entity.Entity, error) {
	loc := &Location{
		Address: p.String("address"),
		Lat:     p.String("lat"),
		Lng:     p.String("lng"),
	}
	if err := entity.Validate(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (l *Location) EntityType() *entity.Type { return LocationType }

func (l *Location) Props() entity.Props {
	return entity.Props{
		"address": l.Address,
		"lat":     l.Lat,
		"lng":     l.Lng,
	}
}
