package tf2_msgs

import (
	"bytes"
	"testing"

	"go.viam.com/test"

	"github.com/mechlab/scenebridge/msgs/geometry_msgs"
)

func TestTFMessageRoundTrip(t *testing.T) {
	msg := TFMessage{Transforms: make([]geometry_msgs.TransformStamped, 2)}
	msg.Transforms[0].Header.Stamp.Sec = 10
	msg.Transforms[0].Header.FrameId = "world"
	msg.Transforms[0].ChildFrameId = "table"
	msg.Transforms[0].Transform = geometry_msgs.Transform{
		Translation: geometry_msgs.Vector3{X: 1, Y: -2, Z: 0.25},
		Rotation:    geometry_msgs.Quaternion{Z: 1},
	}
	msg.Transforms[1].Header.Stamp.Sec = 10
	msg.Transforms[1].Header.FrameId = "world"
	msg.Transforms[1].ChildFrameId = "shelf"
	msg.Transforms[1].Transform.Rotation = geometry_msgs.Quaternion{W: 1}

	var buf bytes.Buffer
	test.That(t, msg.Serialize(&buf), test.ShouldBeNil)

	var decoded TFMessage
	test.That(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())), test.ShouldBeNil)
	test.That(t, decoded, test.ShouldResemble, msg)
}

func TestTFMessageType(t *testing.T) {
	var msg TFMessage
	test.That(t, msg.Type().Name(), test.ShouldEqual, "tf2_msgs/TFMessage")
	test.That(t, msg.Type().MD5Sum(), test.ShouldEqual, "94810edda583a504dfda3829e70d7eec")
}
