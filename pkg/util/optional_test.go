package util

import (
	"encoding/json"
	"testing"
)

type optionalPayload struct {
	Name   Optional[string]   `json:"name"`
	Salary Optional[*float64] `json:"salary"`
}

func TestOptionalAbsentField(t *testing.T) {
	var payload optionalPayload
	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Name.Set || payload.Salary.Set {
		t.Fatal("absent fields must decode with Set=false")
	}
}

func TestOptionalExplicitNull(t *testing.T) {
	var payload optionalPayload
	if err := json.Unmarshal([]byte(`{"salary": null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !payload.Salary.Set {
		t.Fatal("explicit null must decode with Set=true")
	}
	if payload.Salary.Value != nil {
		t.Fatal("explicit null on a pointer field must clear the value")
	}
	if payload.Name.Set {
		t.Fatal("untouched sibling field must stay Set=false")
	}
}

func TestOptionalValue(t *testing.T) {
	var payload optionalPayload
	if err := json.Unmarshal([]byte(`{"name":"Ada","salary":75000}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !payload.Name.Set || payload.Name.Value != "Ada" {
		t.Fatalf("unexpected name %+v", payload.Name)
	}
	if !payload.Salary.Set || payload.Salary.Value == nil || *payload.Salary.Value != 75000 {
		t.Fatalf("unexpected salary %+v", payload.Salary)
	}
}
