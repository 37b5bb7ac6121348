// Package solidspec describes calibration block solids as small declarative
// operation lists that a CAD/drawing layer can execute without knowing
// anything about calibration. A solid is either a sketch (circles) plus one
// extrusion, or a single base box, optionally followed by cut boxes and
// through-holes. Dimensions in mm.
package solidspec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Axis names a principal axis for hole operations.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Op is one geometry operation. Implementations are the closed set below;
// the engine switches over them exhaustively.
type Op interface {
	validate() error
}

// SketchCircle draws a circle in the XY sketch plane. Hole circles cut
// material out of the extruded solid.
type SketchCircle struct {
	Radius float64 `json:"radius"`
	IsHole bool    `json:"is_hole"`
}

func (o SketchCircle) validate() error {
	if o.Radius <= 0 {
		return errors.New("sketch circle radius must be positive")
	}
	return nil
}

// Extrude extrudes the current sketch profile along +Z.
type Extrude struct {
	Length float64 `json:"length"`
}

func (o Extrude) validate() error {
	if o.Length <= 0 {
		return errors.New("extrude length must be positive")
	}
	return nil
}

// BaseBox defines the base solid directly as an axis-aligned box.
type BaseBox struct {
	Width      float64 `json:"width"`
	Depth      float64 `json:"depth"`
	Height     float64 `json:"height"`
	CenteredXY bool    `json:"centered_xy"`
	CenteredZ  bool    `json:"centered_z"`
}

func (o BaseBox) validate() error {
	if o.Width <= 0 || o.Depth <= 0 || o.Height <= 0 {
		return errors.New("base box dimensions must be positive")
	}
	return nil
}

// CutBox subtracts an axis-aligned box centered at Center.
type CutBox struct {
	Width  float64    `json:"width"`
	Depth  float64    `json:"depth"`
	Height float64    `json:"height"`
	Center [3]float64 `json:"center"`
}

func (o CutBox) validate() error {
	if o.Width <= 0 || o.Depth <= 0 || o.Height <= 0 {
		return errors.New("cut box dimensions must be positive")
	}
	return nil
}

// ThroughHole cuts a cylinder along the given axis, centered at Center.
type ThroughHole struct {
	Radius float64    `json:"radius"`
	Depth  float64    `json:"depth"`
	Axis   Axis       `json:"axis"`
	Center [3]float64 `json:"center"`
}

func (o ThroughHole) validate() error {
	if o.Radius <= 0 || o.Depth <= 0 {
		return errors.New("through hole radius and depth must be positive")
	}
	switch o.Axis {
	case AxisX, AxisY, AxisZ:
		return nil
	}
	return fmt.Errorf("through hole axis must be x, y or z, got %q", o.Axis)
}

// SolidSpec describes how to build one solid body.
type SolidSpec struct {
	ID         string `json:"id"`
	Operations []Op   `json:"operations"`
}

// Validate enforces the engine's structural rules: at least one operation,
// exactly one base style (sketch+extrude or base box, never both), at most
// one extrusion, and positive dimensions everywhere.
func (s SolidSpec) Validate() error {
	if len(s.Operations) == 0 {
		return fmt.Errorf("solid spec %q contains no operations", s.ID)
	}

	var circles, extrudes, boxes int
	for _, op := range s.Operations {
		if err := op.validate(); err != nil {
			return fmt.Errorf("solid spec %q: %w", s.ID, err)
		}
		switch op.(type) {
		case SketchCircle:
			circles++
		case Extrude:
			extrudes++
		case BaseBox:
			boxes++
		}
	}

	if extrudes > 1 {
		return fmt.Errorf("solid spec %q contains %d extrude operations; only one is supported", s.ID, extrudes)
	}
	if boxes > 1 {
		return fmt.Errorf("solid spec %q defines %d base boxes; only one base primitive is supported", s.ID, boxes)
	}
	if boxes > 0 && (circles > 0 || extrudes > 0) {
		return fmt.Errorf("solid spec %q mixes a base box with sketch/extrude operations", s.ID)
	}
	if boxes == 0 && extrudes == 0 {
		return fmt.Errorf("solid spec %q must define either a base box or an extrude with sketch geometry", s.ID)
	}
	if extrudes == 1 {
		positive := 0
		for _, op := range s.Operations {
			if c, ok := op.(SketchCircle); ok && !c.IsHole {
				positive++
			}
		}
		if positive == 0 {
			return fmt.Errorf("solid spec %q defines no positive geometry to extrude", s.ID)
		}
	}
	return nil
}

// MarshalJSON writes each operation with an explicit "op" discriminator so
// the drawing layer can decode the list without Go type information.
func (s SolidSpec) MarshalJSON() ([]byte, error) {
	ops := make([]map[string]any, 0, len(s.Operations))
	for _, op := range s.Operations {
		raw, err := json.Marshal(op)
		if err != nil {
			return nil, err
		}
		m := map[string]any{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		m["op"] = opName(op)
		ops = append(ops, m)
	}
	return json.Marshal(struct {
		ID         string           `json:"id"`
		Operations []map[string]any `json:"operations"`
	}{s.ID, ops})
}

func opName(op Op) string {
	switch op.(type) {
	case SketchCircle:
		return "sketch_circle"
	case Extrude:
		return "extrude"
	case BaseBox:
		return "base_box"
	case CutBox:
		return "cut_box"
	case ThroughHole:
		return "through_hole"
	}
	return "unknown"
}
