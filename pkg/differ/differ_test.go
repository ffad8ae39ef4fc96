package differ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/differ"
)

func charmander() catalogs.Entry {
	return catalogs.Entry{
		ID:          4,
		Name:        "Charmander",
		Types:       catalogs.Elements("fire"),
		Weaknesses:  catalogs.Elements("ground", "rock", "water"),
		Resistances: catalogs.Elements("bug", "fairy", "fire", "grass", "ice", "steel"),
		Immunities:  []catalogs.Element{},
	}
}

func TestEntryNoDrift(t *testing.T) {
	d := differ.New()
	assert.Nil(t, d.Entry(charmander(), charmander()))
}

func TestEntryAddedAndRemoved(t *testing.T) {
	stored := charmander()
	stored.Weaknesses = catalogs.Elements("rock", "water")
	stored.Resistances = append(stored.Resistances, "ground")

	update := differ.New().Entry(stored, charmander())
	require.NotNil(t, update)
	assert.Equal(t, 4, update.ID)
	assert.Equal(t, []string{differ.FieldWeaknesses, differ.FieldResistances}, update.Fields())

	w := update.Changes[0]
	assert.Equal(t, differ.ChangeTypeUpdate, w.Type)
	assert.Equal(t, catalogs.Elements("ground"), w.Added)
	assert.Empty(t, w.Removed)

	r := update.Changes[1]
	assert.Equal(t, catalogs.Elements("ground"), r.Removed)
	assert.Equal(t, "weaknesses +ground; resistances -ground", update.Describe())
}

func TestEntryReorderOnly(t *testing.T) {
	stored := charmander()
	stored.Weaknesses = catalogs.Elements("water", "ground", "rock")

	update := differ.New().Entry(stored, charmander())
	require.NotNil(t, update)
	require.Len(t, update.Changes, 1)
	assert.Equal(t, differ.ChangeTypeReorder, update.Changes[0].Type)
	assert.Equal(t, "weaknesses reordered", update.Changes[0].String())

	stored.Weaknesses = catalogs.Elements("ground", "rock", "rock", "water")
	update = differ.New().Entry(stored, charmander())
	require.NotNil(t, update)
	assert.Equal(t, differ.ChangeTypeReorder, update.Changes[0].Type, "repeats count as drift")
}

func TestEntryIgnoredFields(t *testing.T) {
	stored := charmander()
	stored.Immunities = catalogs.Elements("ghost")

	d := differ.New(differ.WithIgnoredFields(differ.FieldImmunities))
	assert.Nil(t, d.Entry(stored, charmander()))
}

func TestEntries(t *testing.T) {
	drifted := charmander()
	drifted.Weaknesses = nil
	removed := catalogs.Entry{ID: 9, Name: "Blastoise"}
	added := catalogs.Entry{ID: 5, Name: "Charmeleon"}

	cs := differ.New().Entries(
		[]catalogs.Entry{drifted, removed},
		[]catalogs.Entry{charmander(), added},
	)

	assert.True(t, cs.HasChanges())
	assert.Equal(t, "1 added, 1 updated, 1 removed", cs.Summary())
	assert.Equal(t, 5, cs.Added[0].ID)
	assert.Equal(t, 4, cs.Updated[0].ID)
	assert.Equal(t, 9, cs.Removed[0].ID)

	empty := differ.New().Entries(nil, nil)
	assert.False(t, empty.HasChanges())
}
