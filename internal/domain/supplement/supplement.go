// Package supplement models the ingredient encyclopedia entries: what a
// compound is, what the evidence says, dosing and safety notes.
package supplement

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

type Supplement struct {
	id           uint
	slug         string
	name         string
	overview     string // markdown
	benefits     string // markdown
	dosage       string // markdown
	sideEffects  string // markdown
	interactions string // markdown
	categoryID   *uint
	status       Status
	publishedAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSupplement(name, slugValue, overview, benefits, dosage, sideEffects, interactions string, categoryID *uint) (*Supplement, error) {
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
	return &Supplement{
		slug:         slugValue,
		name:         name,
		overview:     overview,
		benefits:     benefits,
		dosage:       dosage,
		sideEffects:  sideEffects,
		interactions: interactions,
		categoryID:   categoryID,
		status:       StatusDraft,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id uint,
	slugValue, name, overview, benefits, dosage, sideEffects, interactions string,
	categoryID *uint,
	status Status,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Supplement {
	return &Supplement{
		id:           id,
		slug:         slugValue,
		name:         name,
		overview:     overview,
		benefits:     benefits,
		dosage:       dosage,
		sideEffects:  sideEffects,
		interactions: interactions,
		categoryID:   categoryID,
		status:       status,
		publishedAt:  publishedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Supplement) ID() uint                { return s.id }
func (s *Supplement) Slug() string            { return s.slug }
func (s *Supplement) Name() string            { return s.name }
func (s *Supplement) Overview() string        { return s.overview }
func (s *Supplement) Benefits() string        { return s.benefits }
func (s *Supplement) Dosage() string          { return s.dosage }
func (s *Supplement) SideEffects() string     { return s.sideEffects }
func (s *Supplement) Interactions() string    { return s.interactions }
func (s *Supplement) CategoryID() *uint       { return s.categoryID }
func (s *Supplement) Status() Status          { return s.status }
func (s *Supplement) PublishedAt() *time.Time { return s.publishedAt }
func (s *Supplement) CreatedAt() time.Time    { return s.createdAt }
func (s *Supplement) UpdatedAt() time.Time    { return s.updatedAt }

func (s *Supplement) SetID(id uint) { s.id = id }

func (s *Supplement) IsPublished() bool {
	return s.status == StatusPublished
}

func (s *Supplement) Update(name, slugValue, overview, benefits, dosage, sideEffects, interactions string, categoryID *uint) error {
	if name = strings.TrimSpace(name); name == "" {
		return fmt.Errorf("name is required")
	}
	if slugValue != "" && slugValue != s.slug {
		if s.IsPublished() {
			return fmt.Errorf("cannot change slug of a published supplement")
		}
		if !slug.IsValid(slugValue) {
			return fmt.Errorf("invalid slug: %q", slugValue)
		}
		s.slug = slugValue
	}

	s.name = name
	s.overview = overview
	s.benefits = benefits
	s.dosage = dosage
	s.sideEffects = sideEffects
	s.interactions = interactions
	s.categoryID = categoryID
	s.touch()
	return nil
}

func (s *Supplement) Publish() error {
	if s.IsPublished() {
		return fmt.Errorf("supplement is already published")
	}
	now := time.Now().UTC()
	s.status = StatusPublished
	s.publishedAt = &now
	s.touch()
	return nil
}

func (s *Supplement) Unpublish() {
	s.status = StatusDraft
	s.publishedAt = nil
	s.touch()
}

func (s *Supplement) touch() {
	s.updatedAt = time.Now().UTC()
}
