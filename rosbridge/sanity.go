package rosbridge

import (
	"github.com/edaniels/golog"
	"go.uber.org/multierr"

	"github.com/mechlab/scenebridge/scenegraph"
)

// SanityCheck verifies that every frame and every geometry in the snapshot
// ultimately has a unique name, so that no two distinct entities alias one
// visualization name on the ROS side. Callers should run this once per
// snapshot before converting it.
//
// The geometry to frame mapping is logged at debug level as each geometry is
// visited, which is useful when tracking down which entities collide.
func SanityCheck(snap scenegraph.Snapshot, logger golog.Logger) error {
	frameIDs := map[scenegraph.FrameID]bool{}
	frameNames := map[string]bool{}
	geometryIDs := map[scenegraph.GeometryID]bool{}
	geometryNames := map[string]bool{}

	for _, id := range snap.GeometryIDs() {
		geometryName, err := snap.GeometryName(id)
		if err != nil {
			return err
		}
		frame, err := snap.Frame(id)
		if err != nil {
			return err
		}
		frameName, err := snap.FrameName(frame)
		if err != nil {
			return err
		}
		geometryIDs[id] = true
		geometryNames[geometryName] = true
		frameIDs[frame] = true
		frameNames[frameName] = true
		logger.Debugf("geometry %q -> frame %q", geometryName, frameName)
	}

	var result error
	if len(frameIDs) != len(frameNames) {
		result = multierr.Append(result, newDuplicateNameError("frame", len(frameIDs), len(frameNames)))
	}
	if len(geometryIDs) != len(geometryNames) {
		result = multierr.Append(result, newDuplicateNameError("geometry", len(geometryIDs), len(geometryNames)))
	}
	return result
}
