package access_test

import (
	"testing"

	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/stretchr/testify/assert"
)

func TestScope_ZeroValueIsEmpty(t *testing.T) {
	var s access.Scope
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsAll())
	assert.False(t, s.Contains("r1"))
}

func TestScope_All(t *testing.T) {
	s := access.All()
	assert.True(t, s.IsAll())
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains("anything"))
	assert.Nil(t, s.IDs())
	assert.Equal(t, "all", s.Key())
}

func TestScope_Restricted(t *testing.T) {
	s := access.Restricted([]string{"r2", "r1", "r2", ""})
	assert.Equal(t, []string{"r1", "r2"}, s.IDs())
	assert.True(t, s.Contains("r1"))
	assert.False(t, s.Contains("r3"))
	assert.Equal(t, "r1,r2", s.Key())
}

func TestScope_Intersect(t *testing.T) {
	s := access.Restricted([]string{"r1", "r2"})
	assert.Equal(t, []string{"r2"}, s.Intersect([]string{"r2", "r9"}).IDs())
	assert.True(t, s.Intersect([]string{"r9"}).IsEmpty())
	assert.Equal(t, s.IDs(), s.Intersect(nil).IDs())
	assert.Equal(t, []string{"r9"}, access.All().Intersect([]string{"r9"}).IDs())
}
