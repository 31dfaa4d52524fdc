package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "krakow", Fold("Kraków"))
	assert.Equal(t, "lodz", Fold("Łódź"))
	assert.Equal(t, "zamkniete", Fold("ZAMKNIĘTE"))
	assert.Equal(t, "zaza", Fold("żąźą"))
	assert.Equal(t, "plain ascii", Fold("Plain ASCII"))
	assert.Equal(t, "", Fold(""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Przychodnia Weterynaryjna Łapa", "łapa"))
	assert.True(t, containsFold("Kraków", "krakow"))
	assert.True(t, containsFold("Gdańsk", "ansk"))
	assert.False(t, containsFold("Poznań", "krakow"))
}
