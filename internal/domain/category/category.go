// Package category models the taxonomy shared by articles, supplements
// and FAQs. Each kind has its own namespace of slugs.
package category

import (
	"fmt"
	"strings"
	"time"

	"vitalis/internal/shared/slug"
)

type Kind string

const (
	KindArticle    Kind = "article"
	KindSupplement Kind = "supplement"
	KindFAQ        Kind = "faq"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindArticle, KindSupplement, KindFAQ:
		return true
	}
	return false
}

type Category struct {
	id          uint
	slug        string
	name        string
	kind        Kind
	description string
	sortOrder   int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, slugValue string, kind Kind, description string, sortOrder int) (*Category, error) {
	if name = strings.TrimSpace(name); name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid category kind: %q", kind)
	}
	if slugValue == "" {
		slugValue = slug.Make(name)
	}
	if !slug.IsValid(slugValue) {
		return nil, fmt.Errorf("invalid slug: %q", slugValue)
	}

	now := time.Now().UTC()
	return &Category{
		slug:        slugValue,
		name:        name,
		kind:        kind,
		description: description,
		sortOrder:   sortOrder,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id uint, slugValue, name string, kind Kind, description string, sortOrder int, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		slug:        slugValue,
		name:        name,
		kind:        kind,
		description: description,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Slug() string         { return c.slug }
func (c *Category) Name() string         { return c.name }
func (c *Category) Kind() Kind           { return c.kind }
func (c *Category) Description() string  { return c.description }
func (c *Category) SortOrder() int       { return c.sortOrder }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func (c *Category) SetID(id uint) { c.id = id }

// Update edits name, description and ordering. Kind is fixed after
// creation so existing content never changes namespace.
func (c *Category) Update(name, slugValue, description string, sortOrder int) error {
	if name = strings.TrimSpace(name); name == "" {
		return fmt.Errorf("name is required")
	}
	if slugValue != "" && slugValue != c.slug {
		if !slug.IsValid(slugValue) {
			return fmt.Errorf("invalid slug: %q", slugValue)
		}
		c.slug = slugValue
	}

	c.name = name
	c.description = description
	c.sortOrder = sortOrder
	c.updatedAt = time.Now().UTC()
	return nil
}
