package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubView struct {
	oldest string
	ok     bool
	length int
}

func (v stubView) Oldest() (string, bool) { return v.oldest, v.ok }
func (v stubView) Len() int               { return v.length }

func TestLRUPolicy(t *testing.T) {
	p := LRU[string]()

	key, ok := p.Victim(stubView{oldest: "x", ok: true, length: 3})
	assert.True(t, ok)
	assert.Equal(t, "x", key)

	_, ok = p.Victim(stubView{ok: false})
	assert.False(t, ok, "an empty view has no victim")
}
