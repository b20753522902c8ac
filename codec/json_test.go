package codec

import (
	"strings"
	"testing"
)

// The JSON codec must write string keys for integer-keyed maps so snapshot
// files stay interchangeable with the original cache format.
func TestJSONIntKeysEncodeAsStrings(t *testing.T) {
	c := JSON[map[int][]string]{}

	raw, err := c.Encode(map[int][]string{3: {"ant", "cat"}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(raw), `"3": [`) {
		t.Fatalf("expected string key in output, got %s", raw)
	}

	back, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(back[3]) != 2 || back[3][0] != "ant" {
		t.Fatalf("roundtrip mismatch: %v", back)
	}
}

func TestLimitCodec(t *testing.T) {
	inner := JSON[map[int][]string]{}
	c := LimitCodec[map[int][]string]{Inner: inner, MaxDecode: 4}

	raw, err := c.Encode(map[int][]string{3: {"cat"}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := c.Decode(raw); err == nil {
		t.Fatalf("Decode over MaxDecode should fail")
	}
	c.MaxDecode = 0
	if _, err := c.Decode(raw); err != nil {
		t.Fatalf("Decode with limit disabled: %v", err)
	}
}
