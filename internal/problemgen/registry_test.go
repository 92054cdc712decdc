package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathforge/internal/catalog"
)

func TestValidateRegistry(t *testing.T) {
	require.NoError(t, ValidateRegistry())
}

func TestOperations_MatchCatalog(t *testing.T) {
	assert.ElementsMatch(t, catalog.AllOperations(), Operations())
	assert.Len(t, Operations(), 121)
}

func TestDispatch_Known(t *testing.T) {
	gen, served := Dispatch(catalog.OpMagicSquares)
	require.NotNil(t, gen)
	assert.Equal(t, catalog.OpMagicSquares, served)
}

func TestDispatch_UnknownFallsBack(t *testing.T) {
	gen, served := Dispatch("quantum_physics")
	require.NotNil(t, gen)
	assert.Equal(t, FallbackOperation, served)
}
