package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	a, err := NewArticle("Vitamin D and Immunity", "", "short", "# body", "", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "vitamin-d-and-immunity", a.Slug())
	assert.Equal(t, StatusDraft, a.Status())
	assert.Nil(t, a.PublishedAt())
}

func TestNewArticle_Validation(t *testing.T) {
	_, err := NewArticle("  ", "slug", "", "", "", nil, nil)
	assert.Error(t, err)

	_, err = NewArticle("Title", "Bad Slug!", "", "", "", nil, nil)
	assert.Error(t, err)
}

func TestArticle_PublishUnpublish(t *testing.T) {
	a, err := NewArticle("Title", "title", "", "", "", nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.Publish())
	assert.True(t, a.IsPublished())
	require.NotNil(t, a.PublishedAt())

	assert.Error(t, a.Publish())

	a.Unpublish()
	assert.False(t, a.IsPublished())
	assert.Nil(t, a.PublishedAt())
}

func TestArticle_Update_SlugLockedWhenPublished(t *testing.T) {
	a, err := NewArticle("Title", "title", "", "", "", nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.Update("Title", "new-slug", "", "", "", nil, nil))
	assert.Equal(t, "new-slug", a.Slug())

	require.NoError(t, a.Publish())
	assert.Error(t, a.Update("Title", "other-slug", "", "", "", nil, nil))
	assert.Equal(t, "new-slug", a.Slug())
}
