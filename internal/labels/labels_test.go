package labels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbruhn/drawing-archive/internal/entity"
)

func TestParseTitles(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		got := ParseTitles(`["Rumopdeling ved skranke", " Detalje "]`)
		assert.Equal(t, []string{"Rumopdeling ved skranke", "Detalje"}, got)
	})

	t.Run("blanks dropped", func(t *testing.T) {
		got := ParseTitles(`["", "  ", "Snit A-A"]`)
		assert.Equal(t, []string{"Snit A-A"}, got)
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Nil(t, ParseTitles(`{"not":"a list"}`))
		assert.Nil(t, ParseTitles(`[1, 2`))
		assert.Nil(t, ParseTitles(""))
	})

	t.Run("mixed element types", func(t *testing.T) {
		got := ParseTitles(`["Plan", 7, null]`)
		assert.Equal(t, []string{"Plan"}, got)
	})
}

func TestResolve(t *testing.T) {
	gen1 := entity.LabelGen{
		TitlesJSON: `["Gammel titel"]`,
		Nr:         "104",
		Scale:      "1:5",
	}
	gen2 := entity.LabelGen{
		TitlesJSON: `["Rumopdeling ved skranke","Opstalt"]`,
		Nr:         "135",
		Scale:      "1:2",
	}

	t.Run("generation 2 wins", func(t *testing.T) {
		l := Resolve(gen1, gen2)
		assert.Equal(t, "Rumopdeling ved skranke", l.Title)
		assert.Equal(t, []string{"Opstalt"}, l.Extras)
		assert.Equal(t, "Nr. 135", l.Nr)
		assert.Equal(t, "1:2", l.Scale)
	})

	t.Run("per-field fallback to generation 1", func(t *testing.T) {
		l := Resolve(gen1, entity.LabelGen{TitlesJSON: `["Ny titel"]`})
		assert.Equal(t, "Ny titel", l.Title)
		assert.Equal(t, "Nr. 104", l.Nr)
		assert.Equal(t, "1:5", l.Scale)
	})

	t.Run("fallback transparency", func(t *testing.T) {
		// gen1-only metadata must resolve identically to the same values
		// duplicated into gen2.
		only1 := Resolve(gen1, entity.LabelGen{})
		dup2 := Resolve(entity.LabelGen{}, entity.LabelGen{
			TitlesJSON: gen1.TitlesJSON,
			Nr:         gen1.Nr,
			Scale:      gen1.Scale,
		})
		assert.Equal(t, only1, dup2)
	})

	t.Run("placeholder when no titles anywhere", func(t *testing.T) {
		l := Resolve(entity.LabelGen{}, entity.LabelGen{Nr: "7"})
		assert.Equal(t, Placeholder, l.Title)
		assert.Empty(t, l.Extras)
		assert.Equal(t, "Nr. 7", l.Nr)
	})
}

func TestCanonicalNr(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"135", "Nr. 135"},
		{"Nr. 135", "Nr. 135"},
		{"nr 135", "nr 135"},
		{"NR.135", "NR.135"},
		{".104", "Nr. 104"},
		{" .-104", "Nr. 104"},
		{"  ", ""},
		{"", ""},
		{".-. ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanonicalNr(c.in), "input %q", c.in)
	}
}

func TestCleanTitles(t *testing.T) {
	t.Run("trim and dedupe case-insensitively", func(t *testing.T) {
		got := CleanTitles([]string{" Plan ", "plan", "PLAN", "Snit"})
		assert.Equal(t, []string{"Plan", "Snit"}, got)
	})

	t.Run("caps length and count", func(t *testing.T) {
		long := strings.Repeat("å", 120)
		got := CleanTitles([]string{long, "a", "b", "c", "d", "e", "f"})
		require.Len(t, got, 5)
		assert.Len(t, []rune(got[0]), 90)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, CleanTitles(nil))
		assert.Empty(t, CleanTitles([]string{"", "  "}))
	})
}

func TestSearchBlob(t *testing.T) {
	assert.Equal(t,
		"Rumopdeling ved skranke · Nr. 135 · 1:2",
		SearchBlob([]string{"Rumopdeling ved skranke"}, "Nr. 135", "1:2"))

	assert.Equal(t, "Plan", SearchBlob([]string{"Plan"}, "", "  "))
	assert.Equal(t, "", SearchBlob(nil, "", ""))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "Rumopdeling ved skranke", SafeFilename("Rumopdeling ved skranke"))
	assert.Equal(t, "Snit A-A 12", SafeFilename(`Snit A-A: 1/2!`))
	assert.Equal(t, "side", SafeFilename("  ???  "))
	assert.Equal(t, "æøå ÆØÅ", SafeFilename("æøå ÆØÅ"))

	long := strings.Repeat("x", 200)
	assert.Len(t, SafeFilename(long), 120)
}
