package jsonapi

import (
	"testing"
)

func TestPayloadToResourceRelationshipKinds(t *testing.T) {
	in := PayloadResource{
		Type: "Person",
		Id:   "1",
		Relationships: map[string]interface{}{
			"emails": map[string]interface{}{
				"data": []interface{}{
					map[string]interface{}{"type": "Email", "id": "11"},
				},
			},
			"primary_campus": map[string]interface{}{
				"data": map[string]interface{}{
					"type": "Campus", "id": "5",
				},
			},
			"spouse": map[string]interface{}{"data": nil},
		},
	}
	included := map[string]Resource{
		"Email:11": {
			Type:       "Email",
			Id:         "11",
			Attributes: map[string]interface{}{"address": "a@example.com"},
		},
	}

	resource, err := payloadToResource(in, included, nil)
	if err != nil {
		t.Fatal(err)
	}

	emails := resource.Relationships["emails"]
	if emails.Type != PLURAL {
		t.Error("A 'data' array should make a plural relationship")
	}
	if !emails.DataPlural[0].Resolved() {
		t.Error("Included email should be resolved")
	}

	campus := resource.Relationships["primary_campus"]
	if campus.Type != SINGULAR {
		t.Error("A 'data' object should make a singular relationship")
	}
	if campus.DataSingular.Id != "5" || campus.Fetched {
		t.Error("Campus is not included; expected an unfetched stub")
	}

	spouse := resource.Relationships["spouse"]
	if spouse.Type != NULL {
		t.Error("A null 'data' should make a null relationship")
	}
}

func TestMergeIncludedKeysByTypeAndId(t *testing.T) {
	included := make(map[string]Resource)
	err := mergeIncluded(included, []PayloadResource{
		{Type: "Email", Id: "1"},
		{Type: "PhoneNumber", Id: "1"},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(included) != 2 {
		t.Error("Same id with different types should not collide")
	}
	if _, exists := included["Email:1"]; !exists {
		t.Error("Expected 'Email:1' key")
	}
	if _, exists := included["PhoneNumber:1"]; !exists {
		t.Error("Expected 'PhoneNumber:1' key")
	}
}

func TestMapAttributes(t *testing.T) {
	resource := Resource{
		Attributes: map[string]interface{}{
			"first_name":   "John",
			"member_count": 4.0,
			"child":        nil,
		},
	}
	var attributes struct {
		FirstName   string `json:"first_name"`
		MemberCount int    `json:"member_count"`
		Child       *bool  `json:"child"`
	}
	err := resource.MapAttributes(&attributes)
	if err != nil {
		t.Fatal(err)
	}
	if attributes.FirstName != "John" || attributes.MemberCount != 4 ||
		attributes.Child != nil {
		t.Errorf("Mapped wrong attributes: %+v", attributes)
	}
}

func TestAttributeHelpers(t *testing.T) {
	resource := Resource{
		Attributes: map[string]interface{}{
			"name":         "Band",
			"member_count": 3.0,
			"nullable":     nil,
		},
	}
	if resource.StringAttribute("name") != "Band" {
		t.Error("StringAttribute should return the value")
	}
	if resource.StringAttribute("nullable") != "" ||
		resource.StringAttribute("missing") != "" {
		t.Error("StringAttribute should default to empty")
	}
	if resource.IntAttribute("member_count") != 3 {
		t.Error("IntAttribute should return the value")
	}
	if resource.IntAttribute("missing") != 0 {
		t.Error("IntAttribute should default to zero")
	}
}
