// Package expert models the credentialed authors and reviewers whose
// bylines appear on published content.
package expert

import (
	"fmt"
	"strings"
	"time"

	"vitalis/internal/shared/slug"
)

type Expert struct {
	id        uint
	slug      string
	name      string
	title     string // e.g. "RD, PhD"
	bio       string // markdown
	avatarURL string
	createdAt time.Time
	updatedAt time.Time
}

func NewExpert(name, slugValue, title, bio, avatarURL string) (*Expert, error) {
	if name = strings.TrimSpace(name); name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if slugValue == "" {
		slugValue = slug.Make(name)
	}
	if !slug.IsValid(slugValue) {
		return nil, fmt.Errorf("invalid slug: %q", slugValue)
	}

	now := time.Now().UTC()
	return &Expert{
		slug:      slugValue,
		name:      name,
		title:     title,
		bio:       bio,
		avatarURL: avatarURL,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uint, slugValue, name, title, bio, avatarURL string, createdAt, updatedAt time.Time) *Expert {
	return &Expert{
		id:        id,
		slug:      slugValue,
		name:      name,
		title:     title,
		bio:       bio,
		avatarURL: avatarURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e *Expert) ID() uint             { return e.id }
func (e *Expert) Slug() string         { return e.slug }
func (e *Expert) Name() string         { return e.name }
func (e *Expert) Title() string        { return e.title }
func (e *Expert) Bio() string          { return e.bio }
func (e *Expert) AvatarURL() string    { return e.avatarURL }
func (e *Expert) CreatedAt() time.Time { return e.createdAt }
func (e *Expert) UpdatedAt() time.Time { return e.updatedAt }

func (e *Expert) SetID(id uint) { e.id = id }

func (e *Expert) Update(name, slugValue, title, bio, avatarURL string) error {
	if name = strings.TrimSpace(name); name == "" {
		return fmt.Errorf("name is required")
	}
	if slugValue != "" && slugValue != e.slug {
		if !slug.IsValid(slugValue) {
			return fmt.Errorf("invalid slug: %q", slugValue)
		}
		e.slug = slugValue
	}

	e.name = name
	e.title = title
	e.bio = bio
	e.avatarURL = avatarURL
	e.updatedAt = time.Now().UTC()
	return nil
}
