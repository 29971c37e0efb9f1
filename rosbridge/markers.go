package rosbridge

import (
	"github.com/edwinhayes/rosgo/ros"

	"github.com/mechlab/scenebridge/msgs/geometry_msgs"
	"github.com/mechlab/scenebridge/msgs/std_msgs"
	"github.com/mechlab/scenebridge/msgs/visualization_msgs"
	"github.com/mechlab/scenebridge/scenegraph"
	"github.com/mechlab/scenebridge/spatialmath"
)

// defaultColor is applied to any geometry without a diffuse color property.
var defaultColor = scenegraph.Color{R: 0.9, G: 0.9, B: 0.9, A: 1.0}

// resolveColor substitutes the default color when none is supplied. Supplied
// components pass through without clamping or range checks.
func resolveColor(color *scenegraph.Color) scenegraph.Color {
	if color == nil {
		return defaultColor
	}
	return *color
}

// ShapeToMarkers converts a single shape at the given pose within the named
// frame into visualization markers. Every marker is emitted with action ADD,
// an infinite lifetime, and the frame-locked flag set, so viewers track the
// frame's live pose instead of baking the pose at publish time.
//
// A slice is returned because a future shape kind may need more than one
// marker; callers must flatten rather than assume a single element.
func ShapeToMarkers(
	shape spatialmath.Geometry,
	stamp ros.Time,
	frameName string,
	poseInFrame spatialmath.Pose,
	color *scenegraph.Color,
) ([]*visualization_msgs.Marker, error) {
	marker := &visualization_msgs.Marker{}
	marker.Header.Stamp = stamp
	marker.Header.FrameId = frameName
	marker.Pose = *PoseToMessage(poseInFrame)
	marker.Action = visualization_msgs.Marker_ADD
	marker.Lifetime = ros.Duration{}
	marker.FrameLocked = true
	c := resolveColor(color)
	marker.Color = std_msgs.ColorRGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}

	switch s := shape.(type) {
	case *spatialmath.Box:
		marker.MarkerType = visualization_msgs.Marker_CUBE
		dims := s.Dims()
		marker.Scale = geometry_msgs.Vector3{X: dims.X, Y: dims.Y, Z: dims.Z}
	case *spatialmath.Sphere:
		marker.MarkerType = visualization_msgs.Marker_SPHERE
		marker.Scale = geometry_msgs.Vector3{X: s.Radius(), Y: s.Radius(), Z: s.Radius()}
	case *spatialmath.Cylinder:
		marker.MarkerType = visualization_msgs.Marker_CYLINDER
		marker.Scale = geometry_msgs.Vector3{X: s.Radius(), Y: s.Radius(), Z: s.Length()}
	case *spatialmath.Mesh:
		marker.MarkerType = visualization_msgs.Marker_MESH_RESOURCE
		marker.MeshResource = "file://" + s.Filename()
		marker.MeshUseEmbeddedMaterials = true
		marker.Scale = geometry_msgs.Vector3{X: s.Scale(), Y: s.Scale(), Z: s.Scale()}
	default:
		return nil, newUnsupportedShapeError(shape)
	}
	return []*visualization_msgs.Marker{marker}, nil
}

// SnapshotToMarkerArray converts every geometry carrying the given role into
// a marker array. Geometries without the role are skipped; an unsupported
// shape aborts the whole conversion. Marker identifiers are rewritten to the
// marker's index in the flattened array, guaranteeing array-wide uniqueness
// regardless of any identifier assigned earlier.
func SnapshotToMarkerArray(
	snap scenegraph.Snapshot,
	role scenegraph.Role,
	stamp ros.Time,
) (*visualization_msgs.MarkerArray, error) {
	array := &visualization_msgs.MarkerArray{}
	for _, id := range snap.GeometryIDs() {
		shape, err := snap.Shape(id)
		if err != nil {
			return nil, err
		}
		frame, err := snap.Frame(id)
		if err != nil {
			return nil, err
		}
		poseInFrame, err := snap.PoseInFrame(id)
		if err != nil {
			return nil, err
		}
		frameName, err := snap.FrameName(frame)
		if err != nil {
			return nil, err
		}
		properties, err := snap.RoleProperties(role, id)
		if err != nil {
			return nil, err
		}
		if properties == nil {
			// this role is not assigned for this geometry, skip it
			continue
		}
		var color *scenegraph.Color
		if c, ok := properties.Color("phong", "diffuse"); ok {
			color = &c
		}
		markers, err := ShapeToMarkers(shape, stamp, frameName, poseInFrame, color)
		if err != nil {
			return nil, err
		}
		for _, marker := range markers {
			array.Markers = append(array.Markers, *marker)
		}
	}
	for i := range array.Markers {
		array.Markers[i].Id = int32(i)
	}
	return array, nil
}
