// Package scenegraph provides a read-only inspection surface over a
// point-in-time scene of frames and geometries, plus an in-memory
// implementation of it.
package scenegraph

import (
	"github.com/mechlab/scenebridge/spatialmath"
)

// GeometryID uniquely identifies a geometry within one scene snapshot.
type GeometryID int64

// FrameID uniquely identifies a frame within one scene snapshot.
type FrameID int64

// Role selects which appearance-property set of a geometry to read. A
// geometry may carry properties for any subset of roles; lacking a role is
// valid and means "not visualized under this role".
type Role int

const (
	// RoleProximity marks properties used for collision and proximity queries.
	RoleProximity Role = iota
	// RoleIllustration marks properties used for visual display.
	RoleIllustration
	// RolePerception marks properties used by simulated sensors.
	RolePerception
)

func (r Role) String() string {
	switch r {
	case RoleProximity:
		return "proximity"
	case RoleIllustration:
		return "illustration"
	case RolePerception:
		return "perception"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of all geometries, their shapes, frames, and
// poses at one point in time. Implementations must stay stable for the
// duration of a conversion; converters never retain a Snapshot across calls.
type Snapshot interface {
	// GeometryIDs enumerates every geometry in the snapshot, in the
	// snapshot's native order.
	GeometryIDs() []GeometryID
	// Shape returns the shape of the given geometry.
	Shape(id GeometryID) (spatialmath.Geometry, error)
	// Frame returns the frame owning the given geometry. Every geometry is
	// owned by exactly one frame.
	Frame(id GeometryID) (FrameID, error)
	// PoseInFrame returns the pose of the geometry relative to its owning frame.
	PoseInFrame(id GeometryID) (spatialmath.Pose, error)
	// GeometryName returns the name of the given geometry.
	GeometryName(id GeometryID) (string, error)
	// FrameName returns the name of the given frame.
	FrameName(id FrameID) (string, error)
	// WorldPose returns the pose of the given frame relative to the world frame.
	WorldPose(id FrameID) (spatialmath.Pose, error)
	// RoleProperties returns the property set assigned to the geometry under
	// the given role, or nil if the role is not assigned to it.
	RoleProperties(role Role, id GeometryID) (*Properties, error)
}
