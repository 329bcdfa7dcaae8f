// Package faq models the question and answer entries shown on the public
// FAQ pages, grouped by category and manually ordered.
package faq

import (
	"fmt"
	"strings"
	"time"
)

type FAQ struct {
	id         uint
	question   string
	answer     string // markdown
	categoryID *uint
	sortOrder  int
	published  bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewFAQ(question, answer string, categoryID *uint, sortOrder int) (*FAQ, error) {
	if question = strings.TrimSpace(question); question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	now := time.Now().UTC()
	return &FAQ{
		question:   question,
		answer:     answer,
		categoryID: categoryID,
		sortOrder:  sortOrder,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(id uint, question, answer string, categoryID *uint, sortOrder int, published bool, createdAt, updatedAt time.Time) *FAQ {
	return &FAQ{
		id:         id,
		question:   question,
		answer:     answer,
		categoryID: categoryID,
		sortOrder:  sortOrder,
		published:  published,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (f *FAQ) ID() uint             { return f.id }
func (f *FAQ) Question() string     { return f.question }
func (f *FAQ) Answer() string       { return f.answer }
func (f *FAQ) CategoryID() *uint    { return f.categoryID }
func (f *FAQ) SortOrder() int       { return f.sortOrder }
func (f *FAQ) IsPublished() bool    { return f.published }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }

func (f *FAQ) SetID(id uint) { f.id = id }

func (f *FAQ) Update(question, answer string, categoryID *uint, sortOrder int) error {
	if question = strings.TrimSpace(question); question == "" {
		return fmt.Errorf("question is required")
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return fmt.Errorf("answer is required")
	}

	f.question = question
	f.answer = answer
	f.categoryID = categoryID
	f.sortOrder = sortOrder
	f.touch()
	return nil
}

func (f *FAQ) Publish() {
	f.published = true
	f.touch()
}

func (f *FAQ) Unpublish() {
	f.published = false
	f.touch()
}

func (f *FAQ) touch() {
	f.updatedAt = time.Now().UTC()
}
