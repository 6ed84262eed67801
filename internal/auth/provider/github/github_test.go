package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	first, last := splitName("Mona Lisa Octocat", "octocat")
	assert.Equal(t, "Mona", first)
	assert.Equal(t, "Lisa Octocat", last)

	first, last = splitName("Mona", "octocat")
	assert.Equal(t, "Mona", first)
	assert.Equal(t, "", last)

	first, last = splitName("", "octocat")
	assert.Equal(t, "octocat", first)
	assert.Equal(t, "", last)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New("", "secret", "http://localhost/callback")
	assert.Error(t, err)

	p, err := New("id", "secret", "http://localhost/callback")
	assert.NoError(t, err)
	assert.Equal(t, "github", p.Name())
}
