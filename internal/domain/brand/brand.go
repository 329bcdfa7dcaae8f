// Package brand models supplement manufacturers referenced by reviews.
package brand

import (
	"fmt"
	"strings"
	"time"

	"vitalis/internal/shared/slug"
)

type Brand struct {
	id          uint
	slug        string
	name        string
	description string
	websiteURL  string
	logoURL     string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBrand(name, slugValue, description, websiteURL, logoURL string) (*Brand, error) {
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
	return &Brand{
		slug:        slugValue,
		name:        name,
		description: description,
		websiteURL:  websiteURL,
		logoURL:     logoURL,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id uint, slugValue, name, description, websiteURL, logoURL string, createdAt, updatedAt time.Time) *Brand {
	return &Brand{
		id:          id,
		slug:        slugValue,
		name:        name,
		description: description,
		websiteURL:  websiteURL,
		logoURL:     logoURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Brand) ID() uint             { return b.id }
func (b *Brand) Slug() string         { return b.slug }
func (b *Brand) Name() string         { return b.name }
func (b *Brand) Description() string  { return b.description }
func (b *Brand) WebsiteURL() string   { return b.websiteURL }
func (b *Brand) LogoURL() string      { return b.logoURL }
func (b *Brand) CreatedAt() time.Time { return b.createdAt }
func (b *Brand) UpdatedAt() time.Time { return b.updatedAt }

func (b *Brand) SetID(id uint) { b.id = id }

func (b *Brand) Update(name, slugValue, description, websiteURL, logoURL string) error {
	if name = strings.TrimSpace(name); name == "" {
		return fmt.Errorf("name is required")
	}
	if slugValue != "" && slugValue != b.slug {
		if !slug.IsValid(slugValue) {
			return fmt.Errorf("invalid slug: %q", slugValue)
		}
		b.slug = slugValue
	}

	b.name = name
	b.description = description
	b.websiteURL = websiteURL
	b.logoURL = logoURL
	b.updatedAt = time.Now().UTC()
	return nil
}
