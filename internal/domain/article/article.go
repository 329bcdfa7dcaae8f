// Package article models editorial articles: long-form health content
// written in markdown, published under a unique slug.
package article

import (
	"fmt"
	"strings"
	"time"

	"vitalis/internal/shared/slug"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

type Article struct {
	id            uint
	slug          string
	title         string
	excerpt       string
	body          string // markdown source
	coverImageURL string
	categoryID    *uint
	authorID      *uint // references an expert
	status        Status
	publishedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewArticle creates a draft. When slugValue is empty one is derived from
// the title.
func NewArticle(title, slugValue, excerpt, body, coverImageURL string, categoryID, authorID *uint) (*Article, error) {
	if title = strings.TrimSpace(title); title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if slugValue == "" {
		slugValue = slug.Make(title)
	}
	if !slug.IsValid(slugValue) {
		return nil, fmt.Errorf("invalid slug: %q", slugValue)
	}

	now := time.Now().UTC()
	return &Article{
		slug:          slugValue,
		title:         title,
		excerpt:       excerpt,
		body:          body,
		coverImageURL: coverImageURL,
		categoryID:    categoryID,
		authorID:      authorID,
		status:        StatusDraft,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id uint,
	slugValue, title, excerpt, body, coverImageURL string,
	categoryID, authorID *uint,
	status Status,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Article {
	return &Article{
		id:            id,
		slug:          slugValue,
		title:         title,
		excerpt:       excerpt,
		body:          body,
		coverImageURL: coverImageURL,
		categoryID:    categoryID,
		authorID:      authorID,
		status:        status,
		publishedAt:   publishedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (a *Article) ID() uint                { return a.id }
func (a *Article) Slug() string            { return a.slug }
func (a *Article) Title() string           { return a.title }
func (a *Article) Excerpt() string         { return a.excerpt }
func (a *Article) Body() string            { return a.body }
func (a *Article) CoverImageURL() string   { return a.coverImageURL }
func (a *Article) CategoryID() *uint       { return a.categoryID }
func (a *Article) AuthorID() *uint         { return a.authorID }
func (a *Article) Status() Status          { return a.status }
func (a *Article) PublishedAt() *time.Time { return a.publishedAt }
func (a *Article) CreatedAt() time.Time    { return a.createdAt }
func (a *Article) UpdatedAt() time.Time    { return a.updatedAt }

func (a *Article) SetID(id uint) { a.id = id }

func (a *Article) IsPublished() bool {
	return a.status == StatusPublished
}

// Update replaces the editable fields. The slug may change while in draft;
// published articles keep their slug so public URLs stay stable.
func (a *Article) Update(title, slugValue, excerpt, body, coverImageURL string, categoryID, authorID *uint) error {
	if title = strings.TrimSpace(title); title == "" {
		return fmt.Errorf("title is required")
	}
	if slugValue != "" && slugValue != a.slug {
		if a.IsPublished() {
			return fmt.Errorf("cannot change slug of a published article")
		}
		if !slug.IsValid(slugValue) {
			return fmt.Errorf("invalid slug: %q", slugValue)
		}
		a.slug = slugValue
	}

	a.title = title
	a.excerpt = excerpt
	a.body = body
	a.coverImageURL = coverImageURL
	a.categoryID = categoryID
	a.authorID = authorID
	a.touch()
	return nil
}

func (a *Article) Publish() error {
	if a.IsPublished() {
		return fmt.Errorf("article is already published")
	}
	now := time.Now().UTC()
	a.status = StatusPublished
	a.publishedAt = &now
	a.touch()
	return nil
}

func (a *Article) Unpublish() {
	a.status = StatusDraft
	a.publishedAt = nil
	a.touch()
}

func (a *Article) touch() {
	a.updatedAt = time.Now().UTC()
}
