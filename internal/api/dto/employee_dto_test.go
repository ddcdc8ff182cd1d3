package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spec-kit/employee-erp-service/internal/domain"
)

func TestCreateEmployeeRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateEmployeeRequest
		ok   bool
	}{
		{"valid", CreateEmployeeRequest{FullName: "John Doe", Email: "john.doe@example.com"}, true},
		{"missing name", CreateEmployeeRequest{Email: "john.doe@example.com"}, false},
		{"missing email", CreateEmployeeRequest{FullName: "John Doe"}, false},
		{"malformed email", CreateEmployeeRequest{FullName: "John Doe", Email: "not-an-email"}, false},
		{"bad date", CreateEmployeeRequest{FullName: "John Doe", Email: "a@b.com", DateJoined: strPtr("28-11-2025")}, false},
		{"good date", CreateEmployeeRequest{FullName: "John Doe", Email: "a@b.com", DateJoined: strPtr("2025-11-28")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, ok := Validate(tt.req)
			if ok != tt.ok {
				t.Fatalf("Validate = %v (details %v), want %v", ok, details, tt.ok)
			}
		})
	}
}

func TestUpdateEmployeeRequestPresence(t *testing.T) {
	var req UpdateEmployeeRequest
	payload := `{"salary": null, "role": "Engineer"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !req.Salary.Set || req.Salary.Value != nil {
		t.Fatal("explicit null salary must decode as set-and-cleared")
	}
	if !req.Role.Set || req.Role.Value == nil || *req.Role.Value != "Engineer" {
		t.Fatalf("unexpected role %+v", req.Role)
	}
	if req.FullName.Set || req.Email.Set || req.DepartmentID.Set {
		t.Fatal("absent fields must stay unset")
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("a@example.com") {
		t.Fatal("valid address rejected")
	}
	if ValidEmail("nope") || ValidEmail("") {
		t.Fatal("invalid address accepted")
	}
}

func TestNewEmployeeResponseEmbedsDepartment(t *testing.T) {
	deptID := int64(3)
	emp := &domain.Employee{
		ID:           7,
		FullName:     "John Doe",
		Email:        "john.doe@example.com",
		IsActive:     true,
		DateJoined:   time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC),
		DepartmentID: &deptID,
		Department:   &domain.Department{ID: deptID, Name: "Engineering"},
	}
	resp := NewEmployeeResponse(emp)
	if resp.DateJoined != "2025-11-28" {
		t.Fatalf("unexpected date_joined %q", resp.DateJoined)
	}
	if resp.Department == nil || resp.Department.Name != "Engineering" {
		t.Fatalf("department not embedded: %+v", resp.Department)
	}
}

func strPtr(s string) *string {
	return &s
}
