package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessTitlePrefersVedPhrase(t *testing.T) {
	kt := "Mål 1:50 | 2450 x 1200 | Rumopdeling ved skranke | Snit A-A"
	assert.Equal(t, "Rumopdeling ved skranke", GuessTitle(kt))
}

func TestGuessTitleFallsBackToLetterScore(t *testing.T) {
	kt := "1234 5678 | Facadeopstalt mod syd | 2450x1200x35"
	assert.Equal(t, "Facadeopstalt mod syd", GuessTitle(kt))
}

func TestGuessTitleSkipsShortPieces(t *testing.T) {
	assert.Equal(t, "", GuessTitle("a | bc | 1:50"))
	assert.Equal(t, "", GuessTitle(""))
}

func TestGuessTitleTrimsPunctuation(t *testing.T) {
	kt := "-- Indretning af forhal .,"
	assert.Equal(t, "Indretning af forhal", GuessTitle(kt))
}

func TestGuessTitlePenalizesDigitHeavyPieces(t *testing.T) {
	kt := "Tegning 104-2 rev 3 | Oversigtsplan kælder"
	assert.Equal(t, "Oversigtsplan kælder", GuessTitle(kt))
}
