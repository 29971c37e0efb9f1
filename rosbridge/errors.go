package rosbridge

import (
	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"

	"github.com/mechlab/scenebridge/spatialmath"
)

func newUnsupportedShapeError(shape spatialmath.Geometry) error {
	return errors.Errorf("shape type %T is not supported by the marker codec", shape)
}

func newDuplicateNameError(kind string, ids, names int) error {
	return errors.Errorf("snapshot has %d distinct %s ids but %d distinct %s names", ids, kind, names, kind)
}

func newMessageTypeMismatchError(a, b ros.Message) error {
	return errors.Errorf("cannot compare messages of differing types %s and %s", a.Type().Name(), b.Type().Name())
}
