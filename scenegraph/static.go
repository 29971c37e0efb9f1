package scenegraph

import (
	"github.com/mechlab/scenebridge/spatialmath"
)

// StaticScene is an in-memory Snapshot. Frames and geometries are registered
// up front; afterwards the scene serves read-only queries. It is not safe for
// concurrent mutation.
type StaticScene struct {
	frames     map[FrameID]*frameRecord
	geometries map[GeometryID]*geometryRecord
	order      []GeometryID

	nextFrame    FrameID
	nextGeometry GeometryID
}

type frameRecord struct {
	name      string
	worldPose spatialmath.Pose
}

type geometryRecord struct {
	name        string
	frame       FrameID
	shape       spatialmath.Geometry
	poseInFrame spatialmath.Pose
	properties  map[Role]*Properties
}

// NewStaticScene returns an empty scene.
func NewStaticScene() *StaticScene {
	return &StaticScene{
		frames:     map[FrameID]*frameRecord{},
		geometries: map[GeometryID]*geometryRecord{},
	}
}

// AddFrame registers a frame with its pose relative to the world frame and
// returns the frame's identifier.
func (s *StaticScene) AddFrame(name string, worldPose spatialmath.Pose) FrameID {
	id := s.nextFrame
	s.nextFrame++
	s.frames[id] = &frameRecord{name: name, worldPose: worldPose}
	return id
}

// AddGeometry attaches a shape to a frame at the given pose relative to that
// frame and returns the geometry's identifier.
func (s *StaticScene) AddGeometry(
	frame FrameID,
	name string,
	shape spatialmath.Geometry,
	poseInFrame spatialmath.Pose,
) (GeometryID, error) {
	if _, ok := s.frames[frame]; !ok {
		return 0, newUnknownFrameError(frame)
	}
	id := s.nextGeometry
	s.nextGeometry++
	s.geometries[id] = &geometryRecord{
		name:        name,
		frame:       frame,
		shape:       shape,
		poseInFrame: poseInFrame,
		properties:  map[Role]*Properties{},
	}
	s.order = append(s.order, id)
	return id, nil
}

// SetRoleProperties assigns a property set to a geometry under the given role.
func (s *StaticScene) SetRoleProperties(id GeometryID, role Role, props *Properties) error {
	rec, ok := s.geometries[id]
	if !ok {
		return newUnknownGeometryError(id)
	}
	rec.properties[role] = props
	return nil
}

// GeometryIDs enumerates every geometry in insertion order.
func (s *StaticScene) GeometryIDs() []GeometryID {
	ids := make([]GeometryID, len(s.order))
	copy(ids, s.order)
	return ids
}

// Shape returns the shape of the given geometry.
func (s *StaticScene) Shape(id GeometryID) (spatialmath.Geometry, error) {
	rec, ok := s.geometries[id]
	if !ok {
		return nil, newUnknownGeometryError(id)
	}
	return rec.shape, nil
}

// Frame returns the frame owning the given geometry.
func (s *StaticScene) Frame(id GeometryID) (FrameID, error) {
	rec, ok := s.geometries[id]
	if !ok {
		return 0, newUnknownGeometryError(id)
	}
	return rec.frame, nil
}

// PoseInFrame returns the pose of the geometry relative to its owning frame.
func (s *StaticScene) PoseInFrame(id GeometryID) (spatialmath.Pose, error) {
	rec, ok := s.geometries[id]
	if !ok {
		return nil, newUnknownGeometryError(id)
	}
	return rec.poseInFrame, nil
}

// GeometryName returns the name of the given geometry.
func (s *StaticScene) GeometryName(id GeometryID) (string, error) {
	rec, ok := s.geometries[id]
	if !ok {
		return "", newUnknownGeometryError(id)
	}
	return rec.name, nil
}

// FrameName returns the name of the given frame.
func (s *StaticScene) FrameName(id FrameID) (string, error) {
	rec, ok := s.frames[id]
	if !ok {
		return "", newUnknownFrameError(id)
	}
	return rec.name, nil
}

// WorldPose returns the pose of the given frame relative to the world frame.
func (s *StaticScene) WorldPose(id FrameID) (spatialmath.Pose, error) {
	rec, ok := s.frames[id]
	if !ok {
		return nil, newUnknownFrameError(id)
	}
	return rec.worldPose, nil
}

// RoleProperties returns the property set assigned to the geometry under the
// given role, or nil when the role is not assigned.
func (s *StaticScene) RoleProperties(role Role, id GeometryID) (*Properties, error) {
	rec, ok := s.geometries[id]
	if !ok {
		return nil, newUnknownGeometryError(id)
	}
	return rec.properties[role], nil
}
