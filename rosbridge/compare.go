package rosbridge

import (
	"bytes"

	"github.com/edwinhayes/rosgo/ros"
)

// SerializeMessage encodes a message into its canonical ROS1 byte encoding.
func SerializeMessage(msg ros.Message) ([]byte, error) {
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MessagesEqual reports whether two messages of the same type have identical
// canonical byte encodings. Passing messages of differing types is a
// programming error and is reported as such. Semantically equivalent but
// byte-distinct encodings compare unequal, e.g. two quaternions differing
// only by sign represent the same rotation but are not equal here.
func MessagesEqual(a, b ros.Message) (bool, error) {
	if a.Type().Name() != b.Type().Name() {
		return false, newMessageTypeMismatchError(a, b)
	}
	dataA, err := SerializeMessage(a)
	if err != nil {
		return false, err
	}
	dataB, err := SerializeMessage(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(dataA, dataB), nil
}
