package entities

import "github.com/fedisphere/fedxml/entity"

// Person is the public identity record of a federation account.
type Person struct {
	GUID        string `json:"guid" validate:"required,min=16"`
	Author      string `json:"author" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	Profile     *Profile
	ExportedKey string `json:"exported_key"`
}

// Profile carries the descriptive fields attached to a Person.
type Profile struct {
	Author     string `json:"author" validate:"required"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ImageURL   string `json:"image_url"`
	Birthday   string `json:"birthday"`
	Gender     string `json:"gender"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Searchable string `json:"searchable"`
	Public     string `json:"public"`
	NSFW       string `json:"nsfw"`
	TagString  string `json:"tag_string"`
}

var PersonType = &entity.Type{
	Name: "Person",
	Tag:  "person",
	Schema: []entity.PropertyDef{
		{Name: "guid", Kind: entity.Scalar},
		{Name: "author", Kind: entity.Scalar},
		{Name: "url", Kind: entity.Scalar},
		{Name: "profile", Kind: entity.SingleNested, Ref: ProfileType},
		{Name: "exported_key", Kind: entity.Scalar},
	},
	New: newPerson,
}

var ProfileType = &entity.Type{
	Name: "Profile",
	Tag:  "profile",
	Schema: []entity.PropertyDef{
		{Name: "author", Kind: entity.Scalar},
		{Name: "first_name", Kind: entity.Scalar},
		{Name: "last_name", Kind: entity.Scalar},
		{Name: "image_url", Kind: entity.Scalar},
		{Name: "birthday", Kind: entity.Scalar},
		{Name: "gender", Kind: entity.Scalar},
		{Name: "bio", Kind: entity.Scalar},
		{Name: "location", Kind: entity.Scalar},
		{Name: "searchable", Kind: entity.Scalar},
		{Name: "public", Kind: entity.Scalar},
		{Name: "nsfw", Kind: entity.Scalar},
		{Name: "tag_string", Kind: entity.Scalar},
	},
	New: newProfile,
}

func init() {
	entity.MustRegister(PersonType)
	entity.MustRegister(ProfileType)
}

func newPerson(p entity.Props) (entity.Entity, error) {
	person := &Person{
		GUID:        p.String("guid"),
		Author:      p.String("author"),
		URL:         p.String("url"),
		ExportedKey: p.String("exported_key"),
	}
	if profile, ok := p.Entity("profile").(*Profile); ok {
		person.Profile = profile
	}
	if err := entity.Validate(person); err != nil {
		return nil, err
	}
	return person, nil
}

func (p *Person) EntityType() *entity.Type { return PersonType }

func (p *Person) Props() entity.Props {
	props := entity.Props{
		"guid":         p.GUID,
		"author":       p.Author,
		"url":          p.URL,
		"exported_key": p.ExportedKey,
	}
	if p.Profile != nil {
		props["profile"] = entity.Entity(p.Profile)
	}
	return props
}

func newProfile(p entity.Props) (entity.Entity, error) {
	profile := &Profile{
		Author:     p.String("author"),
		FirstName:  p.String("first_name"),
		LastName:   p.String("last_name"),
		ImageURL:   p.String("image_url"),
		Birthday:   p.String("birthday"),
		Gender:     p.String("gender"),
		Bio:        p.String("bio"),
		Location:   p.String("location"),
		Searchable: p.String("searchable"),
		Public:     p.String("public"),
		NSFW:       p.String("nsfw"),
		TagString:  p.String("tag_string"),
	}
	if err := entity.Validate(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (p *Profile) EntityType() *entity.Type { return ProfileType }

func (p *Profile) Props() entity.Props {
	return entity.Props{
		"author":     p.Author,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"image_url":  p.ImageURL,
		"birthday":   p.Birthday,
		"gender":     p.Gender,
		"bio":        p.Bio,
		"location":   p.Location,
		"searchable": p.Searchable,
		"public":     p.Public,
		"nsfw":       p.NSFW,
		"tag_string": p.TagString,
	}
}
