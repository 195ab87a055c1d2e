package court

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saoPaulo      = Coordinates{Latitude: -23.5505, Longitude: -46.6333}
	rioDeJaneiro  = Coordinates{Latitude: -22.9068, Longitude: -43.1729}
	buenosAires   = Coordinates{Latitude: -34.6037, Longitude: -58.3816}
	sameSpotTwice = Coordinates{Latitude: 10, Longitude: 20}
)

func TestDistance_KnownPair(t *testing.T) {
	assert.InDelta(t, 361, Distance(saoPaulo, rioDeJaneiro), 5)
	assert.Zero(t, Distance(sameSpotTwice, sameSpotTwice))
}

func TestDistance_IsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := Coordinates{Latitude: rng.Float64()*180 - 90, Longitude: rng.Float64()*360 - 180}
		b := Coordinates{Latitude: rng.Float64()*180 - 90, Longitude: rng.Float64()*360 - 180}
		assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9, "a=%v b=%v", a, b)
	}
	// Swapping latitude and longitude of one side must change the answer.
	swapped := Coordinates{Latitude: saoPaulo.Longitude, Longitude: saoPaulo.Latitude}
	assert.NotEqual(t, Distance(saoPaulo, rioDeJaneiro), Distance(swapped, rioDeJaneiro))
}

func TestNearest(t *testing.T) {
	courts := []Court{
		{ID: "ba", Latitude: buenosAires.Latitude, Longitude: buenosAires.Longitude},
		{ID: "rj", Latitude: rioDeJaneiro.Latitude, Longitude: rioDeJaneiro.Longitude},
		{ID: "sp", Latitude: saoPaulo.Latitude, Longitude: saoPaulo.Longitude},
	}

	got := Nearest(courts, saoPaulo, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "sp", got[0].ID)
	assert.Equal(t, "rj", got[1].ID)
	assert.Len(t, Nearest(courts, saoPaulo, 0), 3)
}
