package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreValid(t *testing.T) {
	tables := DefaultTables()
	require.NoError(t, tables.Validate())
}

func TestDefaultTablesRelationCounts(t *testing.T) {
	tables := DefaultTables()

	for _, a := range Animals() {
		trine := tables.TrineOf(a)
		require.GreaterOrEqual(t, trine, 0, "%s has no trine", a)

		mates := 0
		allies := 0
		for _, b := range Animals() {
			if tables.TrineMates(a, b) {
				mates++
			}
			if tables.IsAlly(a, b) {
				allies++
				assert.True(t, tables.IsAlly(b, a), "ally %s-%s not symmetric", a, b)
			}
		}
		assert.Equal(t, 2, mates, "%s trine-mates", a)
		assert.Equal(t, 2, allies, "%s allies", a)

		assert.Equal(t, a, tables.Clashes[tables.Clashes[a]], "clash of %s", a)
		assert.Equal(t, a, tables.SecretFriends[tables.SecretFriends[a]], "secret friend of %s", a)
	}
}

func TestTrineMatesExcludesSameAnimal(t *testing.T) {
	tables := DefaultTables()
	assert.False(t, tables.TrineMates(Rat, Rat))
	assert.True(t, tables.TrineMates(Rat, Dragon))
	assert.True(t, tables.TrineMates(Monkey, Rat))
	assert.False(t, tables.TrineMates(Rat, Ox))
}

func TestShareTrineIncludesSameAnimal(t *testing.T) {
	tables := DefaultTables()
	for _, a := range Animals() {
		assert.True(t, tables.ShareTrine(a, a), "%s", a)
	}
	assert.True(t, tables.ShareTrine(Dragon, Monkey))
	assert.False(t, tables.ShareTrine(Dragon, Dog))
}

func TestValidate_RejectsAlliesOverlappingTrines(t *testing.T) {
	tables := DefaultTables()
	// Aliados iguales a los compañeros de tríada: Rat-Dragon coincidiría con dos reglas.
	for _, trine := range tables.Trines {
		for i, a := range trine {
			tables.Allies[a] = [2]Animal{trine[(i+1)%3], trine[(i+2)%3]}
		}
	}

	err := tables.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTables))
	assert.Contains(t, err.Error(), "pair Rat-Dragon matches 2 animal rules")
}

func TestValidate_RejectsAsymmetricRelations(t *testing.T) {
	t.Run("clash", func(t *testing.T) {
		tables := DefaultTables()
		tables.Clashes[Rat] = Ox
		err := tables.Validate()
		require.ErrorIs(t, err, ErrInvalidTables)
		assert.Contains(t, err.Error(), "Rat clashes with Ox")
	})

	t.Run("secret friend", func(t *testing.T) {
		tables := DefaultTables()
		tables.SecretFriends[Rat] = Tiger
		err := tables.Validate()
		require.ErrorIs(t, err, ErrInvalidTables)
		assert.Contains(t, err.Error(), "secret friend Rat-Tiger is not symmetric")
	})

	t.Run("ally", func(t *testing.T) {
		tables := DefaultTables()
		tables.Allies[Rat] = [2]Animal{Tiger, Goat}
		err := tables.Validate()
		require.ErrorIs(t, err, ErrInvalidTables)
		assert.Contains(t, err.Error(), "ally Rat-Goat is not symmetric")
	})

	t.Run("self ally", func(t *testing.T) {
		tables := DefaultTables()
		tables.Allies[Ox] = [2]Animal{Ox, Pig}
		err := tables.Validate()
		require.ErrorIs(t, err, ErrInvalidTables)
		assert.Contains(t, err.Error(), "Ox is its own ally")
	})
}

func TestValidate_RejectsBrokenTrines(t *testing.T) {
	tables := DefaultTables()
	tables.Trines[0][0] = Ox

	err := tables.Validate()
	require.ErrorIs(t, err, ErrInvalidTables)
	msg := err.Error()
	assert.Contains(t, msg, "Rat appears in 0 trines, want 1")
	assert.Contains(t, msg, "Ox appears in 2 trines, want 1")
}

func TestValidate_RejectsBrokenElementCycles(t *testing.T) {
	t.Run("fixed point", func(t *testing.T) {
		tables := DefaultTables()
		tables.Generating[Wood] = Wood
		err := tables.Validate()
		require.ErrorIs(t, err, ErrInvalidTables)
		assert.Contains(t, err.Error(), "Wood maps to itself")
	})

	t.Run("generating equals overcoming", func(t *testing.T) {
		tables := DefaultTables()
		tables.Overcoming[Wood] = Fire
		err := tables.Validate()
		require.ErrorIs(t, err, ErrInvalidTables)
		msg := err.Error()
		assert.Contains(t, msg, "Wood generates and overcomes Fire")
		assert.Contains(t, msg, "overcoming cycle never reaches Earth")
	})
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	tables := DefaultTables()
	tables.Clashes[Rat] = Ox
	tables.SecretFriends[Pig] = Rat

	err := tables.Validate()
	require.Error(t, err)
	assert.GreaterOrEqual(t, strings.Count(err.Error(), ErrInvalidTables.Error()), 2)
}

func TestDefaultTablesReturnsCopy(t *testing.T) {
	tables := DefaultTables()
	tables.Clashes[Rat] = Ox

	fresh := DefaultTables()
	assert.Equal(t, Horse, fresh.Clashes[Rat])
}
