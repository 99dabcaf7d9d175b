package duckdb

import (
	"encoding/json"
	"testing"
)

// TestCanonicalJSONDeterministicKeyOrder verifies maps canonicalize to the
// same bytes regardless of construction order.
func TestCanonicalJSONDeterministicKeyOrder(t *testing.T) {
	first, err := CanonicalJSON(map[string]interface{}{"b": 2, "a": 1})
	if err != nil {
		t.Fatalf("canonical: %v", err)
	}
	second, err := CanonicalJSON(json.RawMessage(`{"a": 1, "b": 2}`))
	if err != nil {
		t.Fatalf("canonical raw: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected identical canonical JSON, got %s and %s", first, second)
	}
}

// TestFingerprintStableForStructs verifies a struct fingerprints identically
// to its decoded JSON form.
func TestFingerprintStableForStructs(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	fromStruct, err := FingerprintJSON(payload{Name: "t1", Count: 3})
	if err != nil {
		t.Fatalf("fingerprint struct: %v", err)
	}
	fromRaw, err := FingerprintJSON(json.RawMessage(`{"count": 3, "name": "t1"}`))
	if err != nil {
		t.Fatalf("fingerprint raw: %v", err)
	}
	if fromStruct != fromRaw {
		t.Fatalf("expected matching fingerprints, got %s and %s", fromStruct, fromRaw)
	}
}

// TestFingerprintDiffers verifies distinct payloads fingerprint differently.
func TestFingerprintDiffers(t *testing.T) {
	first, err := FingerprintJSON(map[string]interface{}{"a": 1})
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	second, err := FingerprintJSON(map[string]interface{}{"a": 2})
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if first == second {
		t.Fatalf("expected different fingerprints")
	}
}
