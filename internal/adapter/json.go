package adapter

import (
	"encoding/json"
)

// JSON abstracts the codec used for seed files and change-event payloads so
// decode failures can be simulated in tests
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type stdJSON struct{}

// NewJSON creates a JSON codec backed by encoding/json
func NewJSON() JSON {
	return &stdJSON{}
}

func (j *stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
