package rosbridge

import (
	"github.com/edwinhayes/rosgo/ros"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/mechlab/scenebridge/msgs/geometry_msgs"
	"github.com/mechlab/scenebridge/msgs/tf2_msgs"
	"github.com/mechlab/scenebridge/scenegraph"
)

// worldFrameName is the fixed parent frame for every published transform.
const worldFrameName = "world"

// SnapshotToTFMessage emits one timestamped world-to-frame transform per
// distinct frame referenced by any geometry in the snapshot. Output is
// ordered by frame identifier so repeated conversions of the same snapshot
// are deterministic.
func SnapshotToTFMessage(snap scenegraph.Snapshot, stamp ros.Time) (*tf2_msgs.TFMessage, error) {
	ids := snap.GeometryIDs()
	frames := make([]scenegraph.FrameID, 0, len(ids))
	for _, id := range ids {
		frame, err := snap.Frame(id)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	frames = lo.Uniq(frames)
	slices.Sort(frames)

	msg := &tf2_msgs.TFMessage{}
	for _, frame := range frames {
		name, err := snap.FrameName(frame)
		if err != nil {
			return nil, err
		}
		worldPose, err := snap.WorldPose(frame)
		if err != nil {
			return nil, err
		}
		var transform geometry_msgs.TransformStamped
		transform.Header.Stamp = stamp
		transform.Header.FrameId = worldFrameName
		transform.ChildFrameId = name
		transform.Transform = *TransformToMessage(worldPose)
		msg.Transforms = append(msg.Transforms, transform)
	}
	return msg, nil
}
