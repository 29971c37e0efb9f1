package rosbridge

import (
	"testing"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/mechlab/scenebridge/scenegraph"
	"github.com/mechlab/scenebridge/spatialmath"
)

func TestSnapshotToTFMessage(t *testing.T) {
	scene := markerTestScene(t)

	var stamp ros.Time
	stamp.Sec = 100
	msg, err := SnapshotToTFMessage(scene, stamp)
	test.That(t, err, test.ShouldBeNil)

	// the table frame holds two geometries but is published once
	test.That(t, len(msg.Transforms), test.ShouldEqual, 2)
	test.That(t, msg.Transforms[0].ChildFrameId, test.ShouldEqual, "table")
	test.That(t, msg.Transforms[1].ChildFrameId, test.ShouldEqual, "shelf")

	for _, transform := range msg.Transforms {
		test.That(t, transform.Header.FrameId, test.ShouldEqual, "world")
		test.That(t, transform.Header.Stamp.Sec, test.ShouldEqual, uint32(100))
	}

	test.That(t, msg.Transforms[0].Transform.Translation.Z, test.ShouldEqual, 1.0)
	test.That(t, msg.Transforms[1].Transform.Translation.X, test.ShouldEqual, 2.0)
}

func TestSnapshotToTFMessageEmptyScene(t *testing.T) {
	scene := scenegraph.NewStaticScene()
	scene.AddFrame("unused", spatialmath.NewPoseFromPoint(r3.Vector{X: 5}))

	// frames with no geometry attached are not published
	msg, err := SnapshotToTFMessage(scene, ros.Time{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(msg.Transforms), test.ShouldEqual, 0)
}
