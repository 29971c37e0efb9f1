package spatialmath

import "fmt"

// Sphere represents a 3D sphere. It has a pose and a radius that fully define it.
type Sphere struct {
	pose   Pose
	radius float64
	label  string
}

// NewSphere instantiates a new Sphere.
func NewSphere(pose Pose, radius float64, label string) (*Sphere, error) {
	if radius <= 0 {
		return nil, newBadGeometryDimensionsError(&Sphere{})
	}
	return &Sphere{pose: pose, radius: radius, label: label}, nil
}

// Pose returns the pose of the sphere.
func (s *Sphere) Pose() Pose {
	return s.pose
}

// Label returns the label of this sphere.
func (s *Sphere) Label() string {
	return s.label
}

// Radius returns the radius of the sphere.
func (s *Sphere) Radius() float64 {
	return s.radius
}

// String returns a human readable string that represents the sphere.
func (s *Sphere) String() string {
	pt := s.pose.Point()
	return fmt.Sprintf("Type: Sphere | Position: X:%.1f, Y:%.1f, Z:%.1f | Radius: %.0f", pt.X, pt.Y, pt.Z, s.radius)
}
