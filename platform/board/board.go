package board

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

const defaultSize = 40

type boardFile struct {
	Size   int            `json:"size"`
	Spaces []models.Space `json:"spaces"`
}

// Board is the immutable 40-space layout, loaded once at startup and indexed
// by position.
type Board struct {
	size   int
	spaces map[int]models.Space
}

// Load reads the board configuration from a JSON file. A missing or malformed
// file is a startup failure, not a per-request one.
func Load(path string) (*Board, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("board config %s: %w", path, err)
	}

	var file boardFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("board config %s: %w", path, err)
	}

	size := file.Size
	if size == 0 {
		size = defaultSize
	}

	b := &Board{size: size, spaces: make(map[int]models.Space, len(file.Spaces))}
	for _, space := range file.Spaces {
		if space.Type == "" {
			space.Type = models.SpaceUnknown
		}
		b.spaces[space.Position] = space
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

// SpaceAt never fails; positions outside the configuration come back as a
// typed unknown placeholder.
func (b *Board) SpaceAt(position int) models.Space {
	if space, ok := b.spaces[position]; ok {
		return space
	}
	return models.Space{
		Position: position,
		Name:     fmt.Sprintf("Space %d", position),
		Type:     models.SpaceUnknown,
	}
}

// Properties returns the property-type spaces ordered by position.
func (b *Board) Properties() []models.Space {
	var out []models.Space
	for _, space := range b.spaces {
		if space.IsProperty() {
			out = append(out, space)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// Purchasable returns every space that can be owned, ordered by position.
func (b *Board) Purchasable() []models.Space {
	var out []models.Space
	for _, space := range b.spaces {
		if space.Purchasable() {
			out = append(out, space)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}
