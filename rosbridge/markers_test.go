package rosbridge

import (
	"testing"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/mechlab/scenebridge/msgs/geometry_msgs"
	"github.com/mechlab/scenebridge/msgs/std_msgs"
	"github.com/mechlab/scenebridge/msgs/visualization_msgs"
	"github.com/mechlab/scenebridge/scenegraph"
	"github.com/mechlab/scenebridge/spatialmath"
)

func singleMarker(t *testing.T, shape spatialmath.Geometry, color *scenegraph.Color) *visualization_msgs.Marker {
	t.Helper()
	var stamp ros.Time
	stamp.Sec = 1663268558
	markers, err := ShapeToMarkers(shape, stamp, "table", spatialmath.NewPoseFromPoint(r3.Vector{X: 1}), color)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(markers), test.ShouldEqual, 1)
	return markers[0]
}

func TestBoxToMarker(t *testing.T) {
	box, err := spatialmath.NewBox(spatialmath.NewZeroPose(), r3.Vector{X: 1, Y: 2, Z: 3}, "")
	test.That(t, err, test.ShouldBeNil)
	marker := singleMarker(t, box, nil)
	test.That(t, marker.MarkerType, test.ShouldEqual, visualization_msgs.Marker_CUBE)
	test.That(t, marker.Scale, test.ShouldResemble, geometry_msgs.Vector3{X: 1, Y: 2, Z: 3})
	test.That(t, marker.Header.FrameId, test.ShouldEqual, "table")
	test.That(t, marker.Header.Stamp.Sec, test.ShouldEqual, uint32(1663268558))
	test.That(t, marker.Action, test.ShouldEqual, visualization_msgs.Marker_ADD)
	test.That(t, marker.Lifetime, test.ShouldResemble, ros.Duration{})
	test.That(t, marker.FrameLocked, test.ShouldBeTrue)
	test.That(t, marker.Pose.Position.X, test.ShouldEqual, 1.0)
}

func TestSphereToMarker(t *testing.T) {
	sphere, err := spatialmath.NewSphere(spatialmath.NewZeroPose(), 2, "")
	test.That(t, err, test.ShouldBeNil)
	marker := singleMarker(t, sphere, nil)
	test.That(t, marker.MarkerType, test.ShouldEqual, visualization_msgs.Marker_SPHERE)
	test.That(t, marker.Scale, test.ShouldResemble, geometry_msgs.Vector3{X: 2, Y: 2, Z: 2})
}

func TestCylinderToMarker(t *testing.T) {
	cylinder, err := spatialmath.NewCylinder(spatialmath.NewZeroPose(), 1, 4, "")
	test.That(t, err, test.ShouldBeNil)
	marker := singleMarker(t, cylinder, nil)
	test.That(t, marker.MarkerType, test.ShouldEqual, visualization_msgs.Marker_CYLINDER)
	test.That(t, marker.Scale, test.ShouldResemble, geometry_msgs.Vector3{X: 1, Y: 1, Z: 4})
}

func TestMeshToMarker(t *testing.T) {
	mesh, err := spatialmath.NewMesh(spatialmath.NewZeroPose(), "meshes/base.obj", 0.5, "")
	test.That(t, err, test.ShouldBeNil)
	marker := singleMarker(t, mesh, nil)
	test.That(t, marker.MarkerType, test.ShouldEqual, visualization_msgs.Marker_MESH_RESOURCE)
	test.That(t, marker.MeshResource, test.ShouldEqual, "file://meshes/base.obj")
	test.That(t, marker.MeshUseEmbeddedMaterials, test.ShouldBeTrue)
	test.That(t, marker.Scale, test.ShouldResemble, geometry_msgs.Vector3{X: 0.5, Y: 0.5, Z: 0.5})

	convex, err := spatialmath.NewConvexMesh(spatialmath.NewZeroPose(), "meshes/hull.obj", 1, "")
	test.That(t, err, test.ShouldBeNil)
	marker = singleMarker(t, convex, nil)
	test.That(t, marker.MarkerType, test.ShouldEqual, visualization_msgs.Marker_MESH_RESOURCE)
	test.That(t, marker.MeshResource, test.ShouldEqual, "file://meshes/hull.obj")
}

func TestMarkerColorDefaults(t *testing.T) {
	box, err := spatialmath.NewBox(spatialmath.NewZeroPose(), r3.Vector{X: 1, Y: 1, Z: 1}, "")
	test.That(t, err, test.ShouldBeNil)

	marker := singleMarker(t, box, nil)
	test.That(t, marker.Color, test.ShouldResemble, std_msgs.ColorRGBA{R: 0.9, G: 0.9, B: 0.9, A: 1.0})

	// supplied colors are written through without clamping
	marker = singleMarker(t, box, &scenegraph.Color{R: 2, G: -1, B: 0.5, A: 1})
	test.That(t, marker.Color, test.ShouldResemble, std_msgs.ColorRGBA{R: 2, G: -1, B: 0.5, A: 1})
}

func TestUnsupportedShape(t *testing.T) {
	capsule, err := spatialmath.NewCapsule(spatialmath.NewZeroPose(), 1, 4, "")
	test.That(t, err, test.ShouldBeNil)
	_, err = ShapeToMarkers(capsule, ros.Time{}, "table", spatialmath.NewZeroPose(), nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not supported")
}

func markerTestScene(t *testing.T) *scenegraph.StaticScene {
	t.Helper()
	scene := scenegraph.NewStaticScene()
	table := scene.AddFrame("table", spatialmath.NewPoseFromPoint(r3.Vector{Z: 1}))
	shelf := scene.AddFrame("shelf", spatialmath.NewPoseFromPoint(r3.Vector{X: 2}))

	box, err := spatialmath.NewBox(spatialmath.NewZeroPose(), r3.Vector{X: 1, Y: 2, Z: 3}, "crate")
	test.That(t, err, test.ShouldBeNil)
	sphere, err := spatialmath.NewSphere(spatialmath.NewZeroPose(), 2, "ball")
	test.That(t, err, test.ShouldBeNil)
	cylinder, err := spatialmath.NewCylinder(spatialmath.NewZeroPose(), 1, 4, "can")
	test.That(t, err, test.ShouldBeNil)

	crate, err := scene.AddGeometry(table, "crate", box, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldBeNil)
	ball, err := scene.AddGeometry(table, "ball", sphere, spatialmath.NewPoseFromPoint(r3.Vector{Y: 1}))
	test.That(t, err, test.ShouldBeNil)
	can, err := scene.AddGeometry(shelf, "can", cylinder, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldBeNil)

	// crate and can are visualized, ball only has proximity properties
	err = scene.SetRoleProperties(crate, scenegraph.RoleIllustration,
		scenegraph.NewProperties().Set("phong", "diffuse", scenegraph.Color{R: 1, A: 1}))
	test.That(t, err, test.ShouldBeNil)
	err = scene.SetRoleProperties(ball, scenegraph.RoleProximity, scenegraph.NewProperties())
	test.That(t, err, test.ShouldBeNil)
	err = scene.SetRoleProperties(can, scenegraph.RoleIllustration, scenegraph.NewProperties())
	test.That(t, err, test.ShouldBeNil)

	return scene
}

func TestSnapshotToMarkerArray(t *testing.T) {
	scene := markerTestScene(t)

	array, err := SnapshotToMarkerArray(scene, scenegraph.RoleIllustration, ros.Time{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(array.Markers), test.ShouldEqual, 2)

	// ids are the marker's index in the array
	for i, marker := range array.Markers {
		test.That(t, marker.Id, test.ShouldEqual, int32(i))
	}

	// the crate carries a diffuse color, the can falls back to the default
	test.That(t, array.Markers[0].MarkerType, test.ShouldEqual, visualization_msgs.Marker_CUBE)
	test.That(t, array.Markers[0].Color, test.ShouldResemble, std_msgs.ColorRGBA{R: 1, A: 1})
	test.That(t, array.Markers[1].MarkerType, test.ShouldEqual, visualization_msgs.Marker_CYLINDER)
	test.That(t, array.Markers[1].Color, test.ShouldResemble, std_msgs.ColorRGBA{R: 0.9, G: 0.9, B: 0.9, A: 1.0})

	// the ball is only visualized under the proximity role
	array, err = SnapshotToMarkerArray(scene, scenegraph.RoleProximity, ros.Time{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(array.Markers), test.ShouldEqual, 1)
	test.That(t, array.Markers[0].MarkerType, test.ShouldEqual, visualization_msgs.Marker_SPHERE)
	test.That(t, array.Markers[0].Id, test.ShouldEqual, int32(0))

	// no geometry carries perception properties
	array, err = SnapshotToMarkerArray(scene, scenegraph.RolePerception, ros.Time{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(array.Markers), test.ShouldEqual, 0)
}

func TestSnapshotToMarkerArrayUnsupportedShapeAborts(t *testing.T) {
	scene := scenegraph.NewStaticScene()
	frame := scene.AddFrame("base", spatialmath.NewZeroPose())
	capsule, err := spatialmath.NewCapsule(spatialmath.NewZeroPose(), 1, 4, "pill")
	test.That(t, err, test.ShouldBeNil)
	pill, err := scene.AddGeometry(frame, "pill", capsule, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldBeNil)
	err = scene.SetRoleProperties(pill, scenegraph.RoleIllustration, scenegraph.NewProperties())
	test.That(t, err, test.ShouldBeNil)

	_, err = SnapshotToMarkerArray(scene, scenegraph.RoleIllustration, ros.Time{})
	test.That(t, err, test.ShouldNotBeNil)
}
