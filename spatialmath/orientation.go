// Package spatialmath defines the rigid transforms and shape types the scene
// bridge translates.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the rotation of a rigid object
// or a frame of reference in 3D Euclidean space.
type Orientation interface {
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{1, 0, 0, 0}
}

// NewOrientationFromQuaternion returns an Orientation wrapping the given
// quaternion as-is. No renormalization is performed; a non-unit quaternion
// yields a transform that is not rigid.
func NewOrientationFromQuaternion(q quat.Number) Orientation {
	o := quaternion(q)
	return &o
}

type quaternion quat.Number

func (q *quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

func (q *quaternion) EulerAngles() *EulerAngles {
	return quatToEulerAngles(quat.Number(*q))
}

// EulerAngles are three angles used to represent the rotation of an object in
// 3D Euclidean space, applied in z-y'-x'' order.
type EulerAngles struct {
	Roll  float64 // rotation about the x axis, radians
	Pitch float64 // rotation about the y axis, radians
	Yaw   float64 // rotation about the z axis, radians
}

// Quaternion returns the rotation quaternion of the Euler angles.
func (ea *EulerAngles) Quaternion() quat.Number {
	mq := mgl64.AnglesToQuat(ea.Yaw, ea.Pitch, ea.Roll, mgl64.ZYX)
	return quat.Number{Real: mq.W, Imag: mq.X(), Jmag: mq.Y(), Kmag: mq.Z()}
}

// EulerAngles returns the orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// quatToEulerAngles converts a rotation unit quaternion to Euler angles.
// See the following wikipedia page for the formulas used here:
// https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles#Quaternion_to_Euler_angles_conversion
func quatToEulerAngles(q quat.Number) *EulerAngles {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &EulerAngles{
		Roll:  math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)),
		Pitch: math.Asin(2 * (w*y - x*z)),
		Yaw:   math.Atan2(2*(w*z+y*x), 1-2*(y*y+z*z)),
	}
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing
// the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual checks whether two quaternions represent approximately
// the same rotation, accounting for the double cover of rotation space.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quatAlmostEqual(a, b, tol) || quatAlmostEqual(a, Flip(b), tol)
}

func quatAlmostEqual(a, b quat.Number, tol float64) bool {
	return scalar.EqualWithinAbs(a.Real, b.Real, tol) &&
		scalar.EqualWithinAbs(a.Imag, b.Imag, tol) &&
		scalar.EqualWithinAbs(a.Jmag, b.Jmag, tol) &&
		scalar.EqualWithinAbs(a.Kmag, b.Kmag, tol)
}

// OrientationAlmostEqual will return a bool describing whether two
// orientations are approximately the same rotation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}
