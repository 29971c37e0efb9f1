package scenegraph

import "github.com/pkg/errors"

func newUnknownFrameError(id FrameID) error {
	return errors.Errorf("no frame with id %d in scene", id)
}

func newUnknownGeometryError(id GeometryID) error {
	return errors.Errorf("no geometry with id %d in scene", id)
}
