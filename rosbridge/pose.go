// Package rosbridge translates scene-graph snapshots into ROS1 geometry,
// visualization, and TF messages, and rigid transforms back out of them.
//
// All operations are stateless pure functions over read-only inputs; nothing
// is retained across calls and no transport is involved.
package rosbridge

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/mechlab/scenebridge/msgs/geometry_msgs"
	"github.com/mechlab/scenebridge/spatialmath"
)

// PoseToMessage converts a rigid transform to a ROS pose message.
func PoseToMessage(pose spatialmath.Pose) *geometry_msgs.Pose {
	pt := pose.Point()
	q := pose.Orientation().Quaternion()
	return &geometry_msgs.Pose{
		Position:    geometry_msgs.Point{X: pt.X, Y: pt.Y, Z: pt.Z},
		Orientation: geometry_msgs.Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real},
	}
}

// TransformToMessage converts a rigid transform to a ROS transform message.
// Same field mapping as PoseToMessage under a different message schema.
func TransformToMessage(pose spatialmath.Pose) *geometry_msgs.Transform {
	pt := pose.Point()
	q := pose.Orientation().Quaternion()
	return &geometry_msgs.Transform{
		Translation: geometry_msgs.Vector3{X: pt.X, Y: pt.Y, Z: pt.Z},
		Rotation:    geometry_msgs.Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real},
	}
}

// PoseFromMessage converts a ROS pose message back to a rigid transform.
// The stored quaternion is used as-is, with no renormalization: a non-unit
// quaternion passes through silently and yields an invalid transform.
func PoseFromMessage(msg *geometry_msgs.Pose) spatialmath.Pose {
	return poseFromParts(
		r3.Vector{X: msg.Position.X, Y: msg.Position.Y, Z: msg.Position.Z},
		quat.Number{Real: msg.Orientation.W, Imag: msg.Orientation.X, Jmag: msg.Orientation.Y, Kmag: msg.Orientation.Z},
	)
}

// TransformFromMessage converts a ROS transform message back to a rigid
// transform. Same quaternion pass-through behavior as PoseFromMessage.
func TransformFromMessage(msg *geometry_msgs.Transform) spatialmath.Pose {
	return poseFromParts(
		r3.Vector{X: msg.Translation.X, Y: msg.Translation.Y, Z: msg.Translation.Z},
		quat.Number{Real: msg.Rotation.W, Imag: msg.Rotation.X, Jmag: msg.Rotation.Y, Kmag: msg.Rotation.Z},
	)
}

func poseFromParts(pt r3.Vector, q quat.Number) spatialmath.Pose {
	return spatialmath.NewPose(pt, spatialmath.NewOrientationFromQuaternion(q))
}
