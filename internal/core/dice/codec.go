package dice

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// dieWire is the portable encoding of a Die.
type dieWire struct {
	Faces int `json:"faces" cbor:"faces"`
}

// MarshalJSON encodes the die as {"faces": N}.
func (d Die) MarshalJSON() ([]byte, error) {
	return json.Marshal(dieWire{Faces: d.Faces()})
}

// UnmarshalJSON decodes {"faces": N}, rejecting non-positive face counts.
func (d *Die) UnmarshalJSON(data []byte) error {
	var wire dieWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode die json: %w", err)
	}
	return d.fromWire(wire)
}

// MarshalCBOR encodes the die as a CBOR map with a "faces" key.
func (d Die) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(dieWire{Faces: d.Faces()})
}

// UnmarshalCBOR decodes a CBOR map with a "faces" key, rejecting
// non-positive face counts.
func (d *Die) UnmarshalCBOR(data []byte) error {
	var wire dieWire
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode die cbor: %w", err)
	}
	return d.fromWire(wire)
}

func (d *Die) fromWire(wire dieWire) error {
	die, err := New(wire.Faces)
	if err != nil {
		return err
	}
	*d = die
	return nil
}
