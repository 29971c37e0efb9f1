package spatialmath

import "fmt"

// Mesh is a shape whose surface is described by a resource file on disk,
// scaled uniformly on all axes. A convex mesh promises that its surface is a
// convex hull, which downstream consumers may exploit; for visualization the
// two are interchangeable.
type Mesh struct {
	pose     Pose
	filename string
	scale    float64
	convex   bool
	label    string
}

// NewMesh instantiates a new Mesh from the given resource file.
func NewMesh(pose Pose, filename string, scale float64, label string) (*Mesh, error) {
	return newMesh(pose, filename, scale, false, label)
}

// NewConvexMesh instantiates a new Mesh whose surface is a convex hull.
func NewConvexMesh(pose Pose, filename string, scale float64, label string) (*Mesh, error) {
	return newMesh(pose, filename, scale, true, label)
}

func newMesh(pose Pose, filename string, scale float64, convex bool, label string) (*Mesh, error) {
	if filename == "" {
		return nil, newBadMeshFilenameError()
	}
	if scale <= 0 {
		return nil, newBadGeometryDimensionsError(&Mesh{})
	}
	return &Mesh{pose: pose, filename: filename, scale: scale, convex: convex, label: label}, nil
}

// Pose returns the pose of the mesh.
func (m *Mesh) Pose() Pose {
	return m.pose
}

// Label returns the label of this mesh.
func (m *Mesh) Label() string {
	return m.label
}

// Filename returns the path of the resource file describing the mesh surface.
func (m *Mesh) Filename() string {
	return m.filename
}

// Scale returns the uniform scale applied to the mesh on all three axes.
func (m *Mesh) Scale() float64 {
	return m.scale
}

// Convex reports whether the mesh surface is a convex hull.
func (m *Mesh) Convex() bool {
	return m.convex
}

// String returns a human readable string that represents the mesh.
func (m *Mesh) String() string {
	kind := "Mesh"
	if m.convex {
		kind = "ConvexMesh"
	}
	return fmt.Sprintf("Type: %s | File: %s | Scale: %.2f", kind, m.filename, m.scale)
}
