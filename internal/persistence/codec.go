package persistence

import (
	"bytes"
	"encoding/gob"

	"github.com/jranta/kanvas/pkg/api"
)

// encodeEvent serializes an event with encoding/gob. Payload types are
// registered in pkg/api, so the interface round-trips.
func encodeEvent(ev api.Event) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&ev); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeEvent is the inverse of encodeEvent.
func decodeEvent(data []byte) (api.Event, error) {
	var ev api.Event
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&ev); err != nil {
		return api.Event{}, err
	}
	return ev, nil
}
