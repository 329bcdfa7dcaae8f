// Package setting models site-wide key/value configuration editable from
// the admin panel. Public entries are exposed on the public API.
package setting

import (
	"fmt"
	"strings"
	"time"
)

type Setting struct {
	id        uint
	key       string
	value     string
	isPublic  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSetting(key, value string, isPublic bool) (*Setting, error) {
	if key = strings.TrimSpace(key); key == "" {
		return nil, fmt.Errorf("key is required")
	}

	now := time.Now().UTC()
	return &Setting{
		key:       key,
		value:     value,
		isPublic:  isPublic,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uint, key, value string, isPublic bool, createdAt, updatedAt time.Time) *Setting {
	return &Setting{
		id:        id,
		key:       key,
		value:     value,
		isPublic:  isPublic,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Setting) ID() uint             { return s.id }
func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) IsPublic() bool       { return s.isPublic }
func (s *Setting) CreatedAt() time.Time { return s.createdAt }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

func (s *Setting) SetID(id uint) { s.id = id }

func (s *Setting) UpdateValue(value string, isPublic bool) {
	s.value = value
	s.isPublic = isPublic
	s.updatedAt = time.Now().UTC()
}
