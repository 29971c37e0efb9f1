package spatialmath

// Geometry is an entry point with which to access all types of shapes a scene
// can hold. The set of implementations in this package is closed; converters
// dispatch on the concrete type.
type Geometry interface {
	// Pose returns the pose of the geometry's reference point.
	Pose() Pose
	// Label returns the name of the geometry.
	Label() string
	String() string
}
