package entities

import (
	"github.com/fedisphere/fedxml/entity"
	"github.com/fedisphere/fedxml/internal"
)

// Photo is an image attachment, either standalone or nested inside a
// StatusMessage.
type Photo struct {
	Author            string `json:"author" validate:"required"`
	GUID              string `json:"guid" validate:"required,min=16"`
	CreatedAt         string `json:"created_at"`
	RemotePhotoPath   string `json:"remote_photo_path" validate:"required"`
	RemotePhotoName   string `json:"remote_photo_name" validate:"required"`
	Text              string `json:"text"`
	StatusMessageGUID string `json:"status_message_guid"`
	Height            string `json:"height"`
	Width             string `json:"width"`
}

var PhotoType = &entity.Type{
	Name: "Photo",
	Tag:  "photo",
	Schema: []entity.PropertyDef{
		{Name: "author", Kind: entity.Scalar},
		{Name: "guid", Kind: entity.Scalar},
		{Name: "created_at", Kind: entity.Scalar},
		{Name: "remote_photo_path", Kind: entity.Scalar},
		{Name: "remote_photo_name", Kind: entity.Scalar},
		{Name: "text", Kind: entity.Scalar},
		{Name: "status_message_guid", Kind: entity.Scalar},
		{Name: "height", Kind: entity.Scalar},
		{Name: "width", Kind: entity.Scalar},
	},
	New: newPhoto,
}

func init() {
	entity.MustRegister(PhotoType)
}

func newPhoto(p entity.Props) (entity.Entity, error) {
	photo := &Photo{
		Author:            p.String("author"),
		GUID:              p.String("guid"),
		CreatedAt:         p.StringOr("created_at", internal.Iso8601Now()),
		RemotePhotoPath:   p.String("remote_photo_path"),
		RemotePhotoName:   p.String("remote_photo_name"),
		Text:              p.String("text"),
		StatusMessageGUID: p.String("status_message_guid"),
		Height:            p.String("height"),
		Width:             p.String("width"),
	}
	if err := entity.Validate(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (p *Photo) EntityType() *entity.Type { return PhotoType }

func (p *Photo) Props() entity.Props {
	return entity.Props{
		"author":              p.Author,
		"guid":                p.GUID,
		"created_at":          p.CreatedAt,
		"remote_photo_path":   p.RemotePhotoPath,
		"remote_photo_name":   p.RemotePhotoName,
		"text":                p.Text,
		"status_message_guid": p.StatusMessageGUID,
		"height":              p.Height,
		"width":               p.Width,
	}
}
