package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// The fallback chain is: requested locale → English → French → fallback.
func TestBilingual_Localize(t *testing.T) {
	full := domain.Bilingual{En: "Recycling", Fr: "Recyclage"}
	enOnly := domain.Bilingual{En: "Recycling"}
	frOnly := domain.Bilingual{Fr: "Recyclage"}
	empty := domain.Bilingual{}

	assert.Equal(t, "Recycling", full.Localize("en", "?"))
	assert.Equal(t, "Recyclage", full.Localize("fr", "?"))

	assert.Equal(t, "Recycling", enOnly.Localize("fr", "?"), "missing fr falls back to en")
	assert.Equal(t, "Recyclage", frOnly.Localize("en", "?"), "missing en falls back to fr")

	assert.Equal(t, "?", empty.Localize("en", "?"))
	assert.Equal(t, "", empty.Localize("fr", ""))
}

func TestBilingual_IsZero(t *testing.T) {
	assert.True(t, domain.Bilingual{}.IsZero())
	assert.False(t, domain.Bilingual{Fr: "x"}.IsZero())
}

func TestBilingualList_Localize(t *testing.T) {
	full := domain.BilingualList{En: []string{"cans"}, Fr: []string{"canettes"}}
	enOnly := domain.BilingualList{En: []string{"cans"}}

	assert.Equal(t, []string{"canettes"}, full.Localize("fr"))
	assert.Equal(t, []string{"cans"}, full.Localize("en"))
	assert.Equal(t, []string{"cans"}, enOnly.Localize("fr"), "empty fr list falls back to en")
	assert.Empty(t, domain.BilingualList{}.Localize("en"))
}
