package keyframe

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A key is either a bare angle or [angle, [kind, dTime, dAngle], [kind, dTime, dAngle]].
// A handle is always [kind, dTime, dAngle].

// UnmarshalJSON reads a handle from [kind, dTime, dAngle].
func (h *Handle) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "handle must be [kind, dTime, dAngle]")
	}
	return h.fromSlice(raw)
}

// MarshalJSON writes the handle as [kind, dTime, dAngle].
func (h Handle) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{float64(h.Kind), h.DTime, h.DAngle})
}

// UnmarshalYAML reads a handle from [kind, dTime, dAngle].
func (h *Handle) UnmarshalYAML(value *yaml.Node) error {
	var raw []float64
	if err := value.Decode(&raw); err != nil {
		return errors.Wrap(err, "handle must be [kind, dTime, dAngle]")
	}
	return h.fromSlice(raw)
}

func (h *Handle) fromSlice(raw []float64) error {
	if len(raw) != 3 {
		return errors.Errorf("handle must have 3 elements, got %d", len(raw))
	}
	*h = Handle{Kind: InterpolationKind(raw[0]), DTime: raw[1], DAngle: raw[2]}
	return nil
}

// UnmarshalJSON reads a key from a bare angle or [angle, left, right].
func (p *Point) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		var angle float64
		if err := json.Unmarshal(data, &angle); err != nil {
			return errors.Wrap(err, "key must be an angle or [angle, left, right]")
		}
		*p = Point{Angle: angle}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "key must be an angle or [angle, left, right]")
	}
	if len(raw) != 3 {
		return errors.Errorf("key must have 3 elements, got %d", len(raw))
	}
	var pt Point
	if err := json.Unmarshal(raw[0], &pt.Angle); err != nil {
		return errors.Wrap(err, "bad key angle")
	}
	if err := json.Unmarshal(raw[1], &pt.Left); err != nil {
		return errors.Wrap(err, "bad left handle")
	}
	if err := json.Unmarshal(raw[2], &pt.Right); err != nil {
		return errors.Wrap(err, "bad right handle")
	}
	*p = pt
	return nil
}

// MarshalJSON writes the key as [angle, left, right].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Angle, p.Left, p.Right})
}

// UnmarshalYAML reads a key from a bare angle or [angle, left, right].
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		var angle float64
		if err := value.Decode(&angle); err != nil {
			return errors.Wrap(err, "key must be an angle or [angle, left, right]")
		}
		*p = Point{Angle: angle}
		return nil
	}

	if len(value.Content) != 3 {
		return errors.Errorf("key must have 3 elements, got %d", len(value.Content))
	}
	var pt Point
	if err := value.Content[0].Decode(&pt.Angle); err != nil {
		return errors.Wrap(err, "bad key angle")
	}
	if err := value.Content[1].Decode(&pt.Left); err != nil {
		return errors.Wrap(err, "bad left handle")
	}
	if err := value.Content[2].Decode(&pt.Right); err != nil {
		return errors.Wrap(err, "bad right handle")
	}
	*p = pt
	return nil
}
