// Package review models product reviews: a rated write-up of a single
// supplement product, optionally tied to a brand.
package review

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

type Review struct {
	id            uint
	slug          string
	productName   string
	brandID       *uint
	rating        int // 1 to 5
	verdict       string
	pros          []string
	cons          []string
	body          string // markdown source
	coverImageURL string
	authorID      *uint
	status        Status
	publishedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(productName, slugValue, verdict, body, coverImageURL string, rating int, brandID, authorID *uint, pros, cons []string) (*Review, error) {
	if productName = strings.TrimSpace(productName); productName == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if slugValue == "" {
		slugValue = slug.Make(productName)
	}
	if !slug.IsValid(slugValue) {
		return nil, fmt.Errorf("invalid slug: %q", slugValue)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	now := time.Now().UTC()
	return &Review{
		slug:          slugValue,
		productName:   productName,
		brandID:       brandID,
		rating:        rating,
		verdict:       verdict,
		pros:          pros,
		cons:          cons,
		body:          body,
		coverImageURL: coverImageURL,
		authorID:      authorID,
		status:        StatusDraft,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id uint,
	slugValue, productName string,
	brandID *uint,
	rating int,
	verdict string,
	pros, cons []string,
	body, coverImageURL string,
	authorID *uint,
	status Status,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:            id,
		slug:          slugValue,
		productName:   productName,
		brandID:       brandID,
		rating:        rating,
		verdict:       verdict,
		pros:          pros,
		cons:          cons,
		body:          body,
		coverImageURL: coverImageURL,
		authorID:      authorID,
		status:        status,
		publishedAt:   publishedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) ID() uint                { return r.id }
func (r *Review) Slug() string            { return r.slug }
func (r *Review) ProductName() string     { return r.productName }
func (r *Review) BrandID() *uint          { return r.brandID }
func (r *Review) Rating() int             { return r.rating }
func (r *Review) Verdict() string         { return r.verdict }
func (r *Review) Pros() []string          { return r.pros }
func (r *Review) Cons() []string          { return r.cons }
func (r *Review) Body() string            { return r.body }
func (r *Review) CoverImageURL() string   { return r.coverImageURL }
func (r *Review) AuthorID() *uint         { return r.authorID }
func (r *Review) Status() Status          { return r.status }
func (r *Review) PublishedAt() *time.Time { return r.publishedAt }
func (r *Review) CreatedAt() time.Time    { return r.createdAt }
func (r *Review) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Review) SetID(id uint) { r.id = id }

func (r *Review) IsPublished() bool {
	return r.status == StatusPublished
}

func (r *Review) Update(productName, slugValue, verdict, body, coverImageURL string, rating int, brandID, authorID *uint, pros, cons []string) error {
	if productName = strings.TrimSpace(productName); productName == "" {
		return fmt.Errorf("product name is required")
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	if slugValue != "" && slugValue != r.slug {
		if r.IsPublished() {
			return fmt.Errorf("cannot change slug of a published review")
		}
		if !slug.IsValid(slugValue) {
			return fmt.Errorf("invalid slug: %q", slugValue)
		}
		r.slug = slugValue
	}

	r.productName = productName
	r.rating = rating
	r.verdict = verdict
	r.pros = pros
	r.cons = cons
	r.body = body
	r.coverImageURL = coverImageURL
	r.brandID = brandID
	r.authorID = authorID
	r.touch()
	return nil
}

func (r *Review) Publish() error {
	if r.IsPublished() {
		return fmt.Errorf("review is already published")
	}
	now := time.Now().UTC()
	r.status = StatusPublished
	r.publishedAt = &now
	r.touch()
	return nil
}

func (r *Review) Unpublish() {
	r.status = StatusDraft
	r.publishedAt = nil
	r.touch()
}

func (r *Review) touch() {
	r.updatedAt = time.Now().UTC()
}
