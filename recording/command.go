package recording

import "github.com/gogpu/rive"

// CommandType identifies the type of a command.
// Each command type corresponds to one Renderer call.
type CommandType uint8

const (
	CmdSave      CommandType = iota // Save current transform
	CmdRestore                      // Restore previous transform
	CmdTransform                    // Multiply current transform
	CmdClipPath                     // Install a clip
	CmdDrawPath                     // Draw a path with a paint
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:      "Save",
	CmdRestore:   "Restore",
	CmdTransform: "Transform",
	CmdClipPath:  "ClipPath",
	CmdDrawPath:  "DrawPath",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path snapshot in the resource pool.
type PathRef uint32

// PaintRef is a reference to a paint snapshot in the resource pool.
type PaintRef uint32

// InvalidRef is the sentinel value for an invalid reference.
// It is recorded when a call received a nil or foreign path or paint.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid paint.
func (r PaintRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// SaveCommand records Renderer.Save.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand records Renderer.Restore.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TransformCommand records Renderer.Transform.
type TransformCommand struct {
	// Matrix is the transform passed to Transform.
	Matrix rive.Mat2D
}

// Type implements Command.
func (TransformCommand) Type() CommandType { return CmdTransform }

// ClipPathCommand records Renderer.ClipPath.
type ClipPathCommand struct {
	// Path references the clip geometry as it was at call time.
	Path PathRef
}

// Type implements Command.
func (ClipPathCommand) Type() CommandType { return CmdClipPath }

// DrawPathCommand records Renderer.DrawPath.
type DrawPathCommand struct {
	// Path references the geometry as it was at call time.
	Path PathRef
	// Paint references the paint state as it was at call time.
	Paint PaintRef
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }
