package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a 6dof rigid transform: a position in 3D space and an
// orientation. Poses are immutable once constructed.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// dualQuaternion performs rigid transformations in 3D. The real part holds
// the rotation quaternion and the dual part encodes the translation.
type dualQuaternion struct {
	dualquat.Number
}

// newDualQuaternion returns a pointer to a new dualQuaternion whose rotation
// is an identity quaternion. Since the real part should be a unit quaternion,
// not all zeroes, this should be used instead of &dualQuaternion{}.
func newDualQuaternion() *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

func newDualQuaternionFromRotation(o Orientation) *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: o.Quaternion(),
		Dual: quat.Number{},
	}}
}

// NewZeroPose returns a pose at the origin with no rotation.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose returns a pose at the given point with the given orientation.
func NewPose(p r3.Vector, o Orientation) Pose {
	q := newDualQuaternionFromRotation(o)
	q.setTranslation(p)
	return q
}

// NewPoseFromPoint returns a pose at the given point with no rotation.
func NewPoseFromPoint(p r3.Vector) Pose {
	q := newDualQuaternion()
	q.setTranslation(p)
	return q
}

// NewPoseFromOrientation returns a pose at the origin with the given orientation.
func NewPoseFromOrientation(o Orientation) Pose {
	return newDualQuaternionFromRotation(o)
}

// setTranslation correctly sets the translation quaternion against the rotation.
func (q *dualQuaternion) setTranslation(pt r3.Vector) {
	q.Dual = quat.Mul(quat.Number{Imag: pt.X / 2, Jmag: pt.Y / 2, Kmag: pt.Z / 2}, q.Real)
}

// Point returns the translation of the pose.
func (q *dualQuaternion) Point() r3.Vector {
	tQuat := quat.Mul(quat.Scale(2, q.Dual), quat.Conj(q.Real))
	return r3.Vector{X: tQuat.Imag, Y: tQuat.Jmag, Z: tQuat.Kmag}
}

// Orientation returns the rotation of the pose.
func (q *dualQuaternion) Orientation() Orientation {
	o := quaternion(q.Real)
	return &o
}

// Compose returns the pose equivalent to applying transform a followed by
// transform b. The rotation of the result is renormalized to guard against
// float drift across repeated compositions.
func Compose(a, b Pose) Pose {
	result := &dualQuaternion{dualquat.Mul(dualQuaternionFromPose(a).Number, dualQuaternionFromPose(b).Number)}
	if vecLen := quat.Abs(result.Real); vecLen != 1 {
		result.Real = quat.Scale(1/vecLen, result.Real)
	}
	return result
}

// PoseInverse returns the pose which undoes the given pose.
func PoseInverse(p Pose) Pose {
	q := dualQuaternionFromPose(p)
	return &dualQuaternion{dualquat.ConjQuat(q.Number)}
}

func dualQuaternionFromPose(p Pose) *dualQuaternion {
	if q, ok := p.(*dualQuaternion); ok {
		return q
	}
	q := newDualQuaternionFromRotation(p.Orientation())
	q.setTranslation(p.Point())
	return q
}

// PoseAlmostEqual will return a bool describing whether two poses are
// approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, 1e-6)
}

// PoseAlmostEqualEps will return a bool describing whether two poses are
// approximately the same, within the given tolerance.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon) &&
		QuaternionAlmostEqual(a.Orientation().Quaternion(), b.Orientation().Quaternion(), epsilon)
}

// R3VectorAlmostEqual compares two r3 vectors for element-wise equality
// within the given tolerance.
func R3VectorAlmostEqual(a, b r3.Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}
