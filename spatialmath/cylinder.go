package spatialmath

import "fmt"

// Cylinder represents a 3D cylinder. It has a pose, a radius, and a length
// that fully define it. The length spans the local z axis, centered on the pose.
type Cylinder struct {
	pose   Pose
	radius float64
	length float64
	label  string
}

// NewCylinder instantiates a new Cylinder.
func NewCylinder(pose Pose, radius, length float64, label string) (*Cylinder, error) {
	if radius <= 0 || length <= 0 {
		return nil, newBadGeometryDimensionsError(&Cylinder{})
	}
	return &Cylinder{pose: pose, radius: radius, length: length, label: label}, nil
}

// Pose returns the pose of the cylinder.
func (c *Cylinder) Pose() Pose {
	return c.pose
}

// Label returns the label of this cylinder.
func (c *Cylinder) Label() string {
	return c.label
}

// Radius returns the radius of the cylinder.
func (c *Cylinder) Radius() float64 {
	return c.radius
}

// Length returns the tip to tip length of the cylinder.
func (c *Cylinder) Length() float64 {
	return c.length
}

// String returns a human readable string that represents the cylinder.
func (c *Cylinder) String() string {
	pt := c.pose.Point()
	return fmt.Sprintf("Type: Cylinder | Position: X:%.1f, Y:%.1f, Z:%.1f | Radius: %.0f, Length: %.0f",
		pt.X, pt.Y, pt.Z, c.radius, c.length)
}
