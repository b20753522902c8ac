package codec

import "encoding/json"

// JSON is the default codec. Integer-keyed maps encode with decimal string
// keys and the output is two-space indented, so a snapshot file is readable
// by (and interchangeable with) the original JSON cache tooling.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
