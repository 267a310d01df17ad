package app

import (
	"io"
	"log/slog"
	"testing"

	"memorygame/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countSound struct{ plays int }

func (s *countSound) PlayMatch() { s.plays++ }

type hop struct{ from, to Scene }

func newTestDirector(t *testing.T, ids ...string) (*Director, *countSound, *[]hop) {
	t.Helper()
	svc, _ := newTestService(3)
	sound := &countSound{}
	hops := &[]hop{}
	d := NewDirector(DirectorConfig{
		Service:    svc,
		Opponent:   randomAgent(t, 4),
		Identities: ids,
		Sound:      sound,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, func(from, to Scene) { *hops = append(*hops, hop{from, to}) })
	return d, sound, hops
}

func clickPair(d *Director, side domain.Side, identity string) {
	b := d.Session().Board(side)
	for _, idx := range indicesOf(b, identity) {
		d.Click(center(b.Cards[idx]))
	}
}

func TestDirectorSinglePlayerWin(t *testing.T) {
	d, sound, hops := newTestDirector(t, "cat", "dog")
	require.Equal(t, SceneMenu, d.Scene())
	require.Nil(t, d.Session())

	require.NoError(t, d.Start(ModeSinglePlayer))
	assert.Equal(t, SceneSinglePlayer, d.Scene())
	require.NotNil(t, d.Session())

	clickPair(d, domain.SidePlayer, "cat")
	assert.Equal(t, 1, sound.plays)
	require.NoError(t, d.Update())
	assert.Equal(t, SceneSinglePlayer, d.Scene())

	clickPair(d, domain.SidePlayer, "dog")
	assert.Equal(t, 2, sound.plays)
	require.NoError(t, d.Update())

	assert.Equal(t, SceneVictory, d.Scene())
	assert.Nil(t, d.Session())
	assert.Equal(t, "YOU WON!", d.Result().Headline())
	assert.Equal(t, BannerWin, d.Result().Banner())
	assert.Equal(t, [2]int{2, 0}, d.Result().Scores)

	require.NoError(t, d.Quit(), "quit is ignored on the results screen")
	assert.Equal(t, SceneVictory, d.Scene())

	require.NoError(t, d.Back())
	assert.Equal(t, SceneMenu, d.Scene())
	assert.Equal(t, []hop{
		{SceneMenu, SceneSinglePlayer},
		{SceneSinglePlayer, SceneVictory},
		{SceneVictory, SceneMenu},
	}, *hops)
}

func TestDirectorMultiplayerTie(t *testing.T) {
	d, sound, _ := newTestDirector(t, "cat", "dog")
	require.NoError(t, d.Start(ModeMultiplayer))

	clickPair(d, domain.SidePlayer1, "cat")
	require.NoError(t, d.Update())
	require.Equal(t, domain.SidePlayer2, d.Session().Turn())

	clickPair(d, domain.SidePlayer2, "dog")
	require.NoError(t, d.Update())

	assert.Equal(t, 2, sound.plays)
	assert.Equal(t, SceneVictory, d.Scene())
	assert.Equal(t, "TIE!", d.Result().Headline())
	assert.Equal(t, BannerTie, d.Result().Banner())
}

func TestDirectorQuitDiscardsSession(t *testing.T) {
	d, sound, _ := newTestDirector(t, "cat", "dog", "fox")
	require.NoError(t, d.Start(ModeMultiplayer))
	first := d.Session()

	require.NoError(t, d.Quit())
	assert.Equal(t, SceneMenu, d.Scene())
	assert.Nil(t, d.Session())
	assert.Zero(t, sound.plays)

	require.NoError(t, d.Back(), "back is ignored outside the results screen")
	assert.Equal(t, SceneMenu, d.Scene())

	require.NoError(t, d.Start(ModeSinglePlayer))
	assert.NotSame(t, first, d.Session())
	assert.NotEqual(t, first.SessionID(), d.Session().SessionID())
}

func TestDirectorIgnoresRejectedClicks(t *testing.T) {
	d, sound, _ := newTestDirector(t, "cat", "dog")
	require.NoError(t, d.Start(ModeSinglePlayer))

	b := d.Session().Board(domain.SidePlayer)
	cat := b.Cards[indicesOf(b, "cat")[0]]
	d.Click(center(cat))
	d.Click(center(cat))
	d.Click(b.Cards[len(b.Cards)-1].Bounds.Max.Add(b.Cards[0].Bounds.Size()))

	assert.Len(t, d.Session().Pending(), 1)
	assert.Zero(t, sound.plays)
	require.NoError(t, d.Update())
	assert.Equal(t, SceneSinglePlayer, d.Scene())
}

func TestDirectorStartFailureStaysOnMenu(t *testing.T) {
	d, _, hops := newTestDirector(t)

	err := d.Start(ModeSinglePlayer)
	assert.ErrorIs(t, err, domain.ErrNoIdentities)
	assert.Equal(t, SceneMenu, d.Scene())
	assert.Nil(t, d.Session())
	assert.Empty(t, *hops)

	assert.Error(t, d.Start("tournament"))
}
