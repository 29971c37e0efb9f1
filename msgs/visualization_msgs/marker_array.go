// Package visualization_msgs is automatically generated from the message definition "visualization_msgs/MarkerArray.msg"
package visualization_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMarkerArray struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMarkerArray) Text() string {
	return t.text
}

func (t *_MsgMarkerArray) Name() string {
	return t.name
}

func (t *_MsgMarkerArray) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMarkerArray) NewMessage() ros.Message {
	m := new(MarkerArray)
	m.Markers = []Marker{}
	return m
}

var (
	MsgMarkerArray = &_MsgMarkerArray{
		`Marker[] markers
`,
		"visualization_msgs/MarkerArray",
		"d155b9ce5188fbaf89745847fd5882d7",
	}
)

type MarkerArray struct {
	Markers []Marker `rosmsg:"markers:Marker[]"`
}

func (m *MarkerArray) Type() ros.MessageType {
	return MsgMarkerArray
}

func (m *MarkerArray) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Markers)))
	for i := range m.Markers {
		if err = m.Markers[i].Serialize(buf); err != nil {
			return err
		}
	}
	return err
}

func (m *MarkerArray) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Markers = make([]Marker, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.Markers[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	return err
}
