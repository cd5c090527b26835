package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	a := assert.New(t)

	var hand Hand
	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))

	a.Equal("2c,14s", hand.String())
	a.True(hand.HasCard(CardFromString("14s")))
	a.False(hand.HasCard(CardFromString("14h")))

	clone := hand.Clone()
	clone[0] = CardFromString("3d")
	a.Equal("2c,14s", hand.String())
	a.Equal("3d,14s", clone.String())
}
