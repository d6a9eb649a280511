package notes

import (
	"encoding/json"

	"github.com/boltnotes/bolt-notes/internal/model"
)

// The wire format is a plain JSON array of notes with RFC3339
// timestamps. Previously stored collections must keep decoding, so
// the shape is fixed.

func encode(collection []model.Note) ([]byte, error) {
	if collection == nil {
		collection = []model.Note{}
	}
	return json.Marshal(collection)
}

func decode(data []byte) ([]model.Note, error) {
	var collection []model.Note
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, err
	}
	return collection, nil
}
