package hints

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWaybarModule_Snippet(t *testing.T) {
	snippet, err := NewWaybarModule("tasuki", "foot").Snippet()
	if err != nil {
		t.Fatalf("Snippet: %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal([]byte(snippet), &decoded); err != nil {
		t.Fatalf("snippet is not JSON: %v\n%s", err, snippet)
	}
	mod, ok := decoded["custom/tasuki"]
	if !ok {
		t.Fatalf("missing custom/tasuki key: %s", snippet)
	}
	for _, key := range []string{"exec", "return-type", "format", "on-click", "interval", "tooltip"} {
		if _, ok := mod[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if mod["on-click"] != "foot -e tasuki" {
		t.Errorf("on-click = %v", mod["on-click"])
	}
	if mod["return-type"] != "json" {
		t.Errorf("return-type = %v", mod["return-type"])
	}
}

func TestBox(t *testing.T) {
	out := Box("PATH", "add it")
	if !strings.Contains(out, "PATH") || !strings.Contains(out, "add it") {
		t.Errorf("Box() lost content: %q", out)
	}
}
