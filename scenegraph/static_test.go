package scenegraph

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/mechlab/scenebridge/spatialmath"
)

func TestStaticScene(t *testing.T) {
	scene := NewStaticScene()
	frame := scene.AddFrame("table", spatialmath.NewPoseFromPoint(r3.Vector{Z: 1}))

	shape, err := spatialmath.NewBox(spatialmath.NewZeroPose(), r3.Vector{X: 1, Y: 1, Z: 1}, "cube")
	test.That(t, err, test.ShouldBeNil)
	geom, err := scene.AddGeometry(frame, "cube", shape, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldBeNil)

	test.That(t, scene.GeometryIDs(), test.ShouldResemble, []GeometryID{geom})

	name, err := scene.GeometryName(geom)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, name, test.ShouldEqual, "cube")

	owner, err := scene.Frame(geom)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, owner, test.ShouldEqual, frame)

	frameName, err := scene.FrameName(frame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frameName, test.ShouldEqual, "table")

	worldPose, err := scene.WorldPose(frame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.R3VectorAlmostEqual(worldPose.Point(), r3.Vector{Z: 1}, 1e-8), test.ShouldBeTrue)
}

func TestStaticSceneUnknownIDs(t *testing.T) {
	scene := NewStaticScene()

	_, err := scene.Shape(12)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = scene.FrameName(3)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = scene.AddGeometry(7, "floater", nil, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldNotBeNil)
	err = scene.SetRoleProperties(0, RoleIllustration, NewProperties())
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRoleProperties(t *testing.T) {
	scene := NewStaticScene()
	frame := scene.AddFrame("base", spatialmath.NewZeroPose())
	shape, err := spatialmath.NewSphere(spatialmath.NewZeroPose(), 1, "ball")
	test.That(t, err, test.ShouldBeNil)
	geom, err := scene.AddGeometry(frame, "ball", shape, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldBeNil)

	// no role assigned yet
	props, err := scene.RoleProperties(RoleIllustration, geom)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, props, test.ShouldBeNil)

	err = scene.SetRoleProperties(geom, RoleIllustration,
		NewProperties().Set("phong", "diffuse", Color{R: 1, G: 0, B: 0, A: 1}))
	test.That(t, err, test.ShouldBeNil)

	props, err = scene.RoleProperties(RoleIllustration, geom)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, props, test.ShouldNotBeNil)
	test.That(t, props.Has("phong", "diffuse"), test.ShouldBeTrue)
	c, ok := props.Color("phong", "diffuse")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, c, test.ShouldResemble, Color{R: 1, G: 0, B: 0, A: 1})

	// other roles remain unassigned
	props, err = scene.RoleProperties(RolePerception, geom)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, props, test.ShouldBeNil)
}

func TestPropertiesAccessors(t *testing.T) {
	var nilProps *Properties
	test.That(t, nilProps.Has("phong", "diffuse"), test.ShouldBeFalse)

	props := NewProperties().Set("phong", "diffuse", Color{A: 1}).Set("label", "group", "groupA")
	test.That(t, props.Has("phong", "diffuse"), test.ShouldBeTrue)
	test.That(t, props.Has("phong", "specular"), test.ShouldBeFalse)

	_, ok := props.Color("label", "group")
	test.That(t, ok, test.ShouldBeFalse)

	v, ok := props.Value("label", "group")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldEqual, "groupA")
}

func TestRoleString(t *testing.T) {
	test.That(t, RoleProximity.String(), test.ShouldEqual, "proximity")
	test.That(t, RoleIllustration.String(), test.ShouldEqual, "illustration")
	test.That(t, RolePerception.String(), test.ShouldEqual, "perception")
	test.That(t, Role(42).String(), test.ShouldEqual, "unknown")
}
