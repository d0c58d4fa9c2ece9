package board

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/DedS3t/cryptopoly-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadShippedBoard(t *testing.T) {
	b, err := Load("board.json")
	require.NoError(t, err)

	assert.Equal(t, 40, b.Size())

	start := b.SpaceAt(0)
	assert.Equal(t, "GO", start.Name)
	assert.Equal(t, models.SpaceSpecial, start.Type)

	jail := b.SpaceAt(10)
	assert.Equal(t, "Jail", jail.Name)

	boardwalk := b.SpaceAt(39)
	assert.Equal(t, models.SpaceProperty, boardwalk.Type)
	require.NotNil(t, boardwalk.Price)
	assert.Equal(t, 400, *boardwalk.Price)

	// Classic layout: 22 streets, 4 railroads, 2 utilities.
	assert.Len(t, b.Properties(), 22)
	assert.Len(t, b.Purchasable(), 28)
}

func TestSpaceAtOutsideBoardIsUnknown(t *testing.T) {
	b, err := Load("board.json")
	require.NoError(t, err)

	space := b.SpaceAt(99)
	assert.Equal(t, models.SpaceUnknown, space.Type)
	assert.Equal(t, "Space 99", space.Name)
	assert.Equal(t, 99, space.Position)
}

func TestPropertiesOrderedByPosition(t *testing.T) {
	b, err := Load("board.json")
	require.NoError(t, err)

	last := -1
	for _, space := range b.Properties() {
		assert.Greater(t, space.Position, last)
		assert.Equal(t, models.SpaceProperty, space.Type)
		last = space.Position
	}
}

func TestLoadDefaultsAndUnknownTypes(t *testing.T) {
	path := writeFixture(t, `{"spaces":[{"position":1,"name":"Mystery"}]}`)

	b, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40, b.Size())
	assert.Equal(t, models.SpaceUnknown, b.SpaceAt(1).Type)
}

func TestLoadCustomSize(t *testing.T) {
	path := writeFixture(t, `{"size":8,"spaces":[{"position":0,"name":"GO","type":"special"}]}`)

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, b.Size())
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeFixture(t, `{"size":`)
	_, err := Load(path)
	assert.Error(t, err)
}
