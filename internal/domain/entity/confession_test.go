package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactionOf(t *testing.T) {
	confession := &Confession{
		Reactions: map[string][]string{
			"❤️": {"alice"},
			"😂": {"bob", "carol"},
		},
	}

	assert.Equal(t, "❤️", confession.ReactionOf("alice"))
	assert.Equal(t, "😂", confession.ReactionOf("carol"))
	assert.Equal(t, "", confession.ReactionOf("dave"))
}
