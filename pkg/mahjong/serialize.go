package mahjong

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// SerializedBlock is the wire form of a Block.
type SerializedBlock struct {
	Tiles string `json:"tiles"`
	Kind  string `json:"kind"`
}

func (b Block) Serialize() SerializedBlock {
	return SerializedBlock{Tiles: b.String(), Kind: b.kind.String()}
}

// Deserialize parses v.Tiles and checks the parsed kind against v.Kind.
// Pair, isolated, triplet and run cannot be told apart from a concealed
// hand by shape, so they are taken as declared.
func Deserialize(v SerializedBlock) (Block, error) {
	kind, ok := kindOf(v.Kind)
	if !ok {
		return Block{}, notationErrorf("unknown block kind %q", v.Kind)
	}
	blocks, err := Parse(v.Tiles)
	if err != nil {
		return Block{}, err
	}
	if len(blocks) != 1 {
		return Block{}, notationErrorf("block must be 1: %s", v.Tiles)
	}

	got := blocks[0]
	switch kind {
	case KindPair, KindIsolated, KindTriplet, KindRun:
	default:
		if got.kind != kind {
			return Block{}, notationErrorf("input kind is %s but got %s: %s", kind, got.kind, v.Tiles)
		}
	}
	return NewBlock(kind, got.tiles...), nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Serialize())
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var v SerializedBlock
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "decode block")
	}
	d, err := Deserialize(v)
	if err != nil {
		return err
	}
	*b = d
	return nil
}

// MarshalText lets a Tile be used as a JSON string.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tile) UnmarshalText(data []byte) error {
	v, err := ParseTile(string(data))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
