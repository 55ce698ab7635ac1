package entities

import (
	"github.com/fedisphere/fedxml/entity"
	"github.com/fedisphere/fedxml/internal"
)

// StatusMessage is a public or limited post. Attached photos, an
// optional location, and an optional poll arrive as nested entities.
type StatusMessage struct {
	Author              string `json:"author" validate:"required"`
	GUID                string `json:"guid" validate:"required,min=16"`
	CreatedAt           string `json:"created_at"`
	ProviderDisplayName string `json:"provider_display_name"`
	Text                string `json:"text" validate:"required"`
	Photos              []*Photo
	Location            *Location
	Poll                *Poll
	Public              string `json:"public"`
}

var StatusMessageType = &entity.Type{
	Name: "StatusMessage",
	Tag:  "status_message",
	Schema: []entity.PropertyDef{
		{Name: "author", Kind: entity.Scalar},
		{Name: "guid", Kind: entity.Scalar},
		{Name: "created_at", Kind: entity.Scalar},
		{Name: "provider_display_name", Kind: entity.Scalar},
		{Name: "text", Kind: entity.Scalar},
		{Name: "photos", Kind: entity.RepeatedNested, Ref: PhotoType},
		{Name: "location", Kind: entity.SingleNested, Ref: LocationType},
		{Name: "poll", Kind: entity.SingleNested, Ref: PollType},
		{Name: "public", Kind: entity.Scalar},
	},
	New: newStatusMessage,
}

func init() {
	entity.MustRegister(StatusMessageType)
}

func newStatusMessage(p entity.Props) (entity.Entity, error) {
	msg := &StatusMessage{
		Author:              p.String("author"),
		GUID:                p.String("guid"),
		CreatedAt:           p.StringOr("created_at", internal.Iso8601Now()),
		ProviderDisplayName: p.String("provider_display_name"),
		Text:                p.String("text"),
		Public:              p.String("public"),
	}
	for _, e := range p.Entities("photos") {
		if photo, ok := e.(*Photo); ok {
			msg.Photos = append(msg.Photos, photo)
		}
	}
	if loc, ok := p.Entity("location").(*Location); ok {
		msg.Location = loc
	}
	if poll, ok := p.Entity("poll").(*Poll); ok {
		msg.Poll = poll
	}
	if err := entity.Validate(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (m *StatusMessage) EntityType() *entity.Type { return StatusMessageType }

func (m *StatusMessage) Props() entity.Props {
	photos := make([]entity.Entity, 0, len(m.Photos))
	for _, photo := range m.Photos {
		photos = append(photos, photo)
	}
	props := entity.Props{
		"author":                m.Author,
		"guid":                  m.GUID,
		"created_at":            m.CreatedAt,
		"provider_display_name": m.ProviderDisplayName,
		"text":                  m.Text,
		"photos":                photos,
		"public":                m.Public,
	}
	if m.Location != nil {
		props["location"] = entity.Entity(m.Location)
	}
	if m.Poll != nil {
		props["poll"] = entity.Entity(m.Poll)
	}
	return props
}
