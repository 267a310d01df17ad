package app

import (
	"image"
	"testing"

	"memorygame/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestWindowLayouts(t *testing.T) {
	single, multi := WindowLayouts(1100, 570, 16)

	// 4x4 grid; 400px of height shrinks the 100px cards to 92
	assert.Equal(t, domain.Layout{Origin: image.Pt(351, 111), CardSize: 92, Gap: 10}, single)
	assert.Equal(t, domain.Layout{Origin: image.Pt(100, 155), CardSize: 80, Gap: 10}, multi[0])
	assert.Equal(t, domain.Layout{Origin: image.Pt(650, 155), CardSize: 80, Gap: 10}, multi[1])

	left := domain.NewBoard(make([]string, 16), multi[0])
	right := domain.NewBoard(make([]string, 16), multi[1])
	for i := range left.Cards {
		assert.Less(t, left.Cards[i].Bounds.Max.X, 550)
		assert.GreaterOrEqual(t, right.Cards[i].Bounds.Min.X, 550)
		assert.LessOrEqual(t, right.Cards[i].Bounds.Max.Y, 510)
	}
}

func TestRulesCramped(t *testing.T) {
	assert.False(t, DefaultRules().Cramped())

	rules := DefaultRules()
	rules.SinglePlayerLayout, rules.MultiplayerLayouts = WindowLayouts(1100, 570, 16)
	assert.False(t, rules.Cramped())

	// 400 identities: a 29x28 grid leaves only a few pixels per card
	rules.SinglePlayerLayout, rules.MultiplayerLayouts = WindowLayouts(1100, 570, 800)
	assert.True(t, rules.Cramped())
	assert.Less(t, rules.MultiplayerLayouts[0].CardSize, MinPlayableCardSize)
}
