package boundary

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// An edit script is a YAML list of edits, applied in order:
//
//	- {op: insert, index: 2, x: 5, z: 12}
//	- {op: move, index: 0, x: -1, y: 3, z: -1}
//	- {op: delete, index: 4}

type Op string

const (
	OpInsert Op = "insert"
	OpDelete Op = "delete"
	OpMove   Op = "move"
)

type Edit struct {
	Op    Op      `yaml:"op"`
	Index int     `yaml:"index"`
	X     float32 `yaml:"x,omitempty"`
	Y     float32 `yaml:"y,omitempty"`
	Z     float32 `yaml:"z,omitempty"`
}

func (e Edit) Point() Point {
	return Point{X: e.X, Y: e.Y, Z: e.Z}
}

func (e Edit) String() string {
	if e.Op == OpDelete {
		return fmt.Sprintf("delete %d", e.Index)
	}
	return fmt.Sprintf("%s %d %v", e.Op, e.Index, e.Point())
}

// Which edit of a script failed, and why.
type StepError struct {
	Step int
	Edit Edit
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%v): %v", e.Step, e.Edit, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func (e *StepError) Cause() error {
	return e.Err
}

func ParseScript(r io.Reader) ([]Edit, error) {
	var edits []Edit
	if err := yaml.NewDecoder(r).Decode(&edits); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "parse edit script")
	}
	for i, edit := range edits {
		switch edit.Op {
		case OpInsert, OpDelete, OpMove:
		default:
			return nil, errors.Errorf("edit %d: unknown op %q", i, edit.Op)
		}
	}
	return edits, nil
}

func LoadScript(path string) ([]Edit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open edit script")
	}
	defer f.Close()
	return ParseScript(f)
}

func (b *Boundary) ApplyEdit(edit Edit) error {
	switch edit.Op {
	case OpInsert:
		return b.InsertPoint(edit.Index, edit.Point())
	case OpDelete:
		return b.DeletePoint(edit.Index)
	case OpMove:
		return b.MovePoint(edit.Index, edit.Point())
	}
	return errors.Errorf("unknown op %q", edit.Op)
}

// Apply edits in order. Either every edit is applied, or the boundary is left
// untouched and the error says which step was rejected.
func (b *Boundary) Apply(edits []Edit) error {
	scratch := b.Clone()
	for i, edit := range edits {
		if err := scratch.ApplyEdit(edit); err != nil {
			return &StepError{Step: i, Edit: edit, Err: err}
		}
	}
	b.Points = scratch.Points
	return nil
}
