package pcoapi

import (
	"reflect"
	"testing"

	"github.com/pcotoolkit/cli/pkg/assert"
	"github.com/pcotoolkit/cli/pkg/jsonapi"
)

func TestGetTeams(t *testing.T) {
	query := jsonapi.Query{
		Extras: map[string]string{"per_page": "100"},
	}.Encode()
	mockData := jsonapi.MockData{
		teamsPath + "?" + query: &jsonapi.MockEndpoint{
			Requests: []jsonapi.MockRequest{{
				Response: jsonapi.MockResponse{
					Text: `{"data": [
                        {"type": "Team", "id": "1",
                         "attributes": {"name": "Band",
                                        "positions": ["Guitar", "Drums"]}},
                        {"type": "Team", "id": "2",
                         "attributes": {"name": "Ushers"}},
                        {"type": "Team", "id": "3",
                         "attributes": {"name": "Greeters"}}
                    ]}`,
				},
			}},
		},
	}
	api := jsonapi.GetTestConnection(mockData)

	teams, err := GetTeams(&api, 2, 100)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(teams), 2)
	assert.Equal(t, teams[0].Id, "1")
	assert.Equal(t, teams[0].Name, "Band")
	if !reflect.DeepEqual(teams[0].Positions, []string{"Guitar", "Drums"}) {
		t.Errorf("Got positions %v, expected [Guitar Drums]",
			teams[0].Positions)
	}
	assert.Equal(t, teams[1].Name, "Ushers")
	if len(teams[1].Positions) != 0 {
		t.Error("A team without positions should have an empty list")
	}
}

func TestGetTeamMembers(t *testing.T) {
	query := jsonapi.Query{
		Includes: []string{"emails", "phone_numbers"},
		Extras:   map[string]string{"per_page": "100"},
	}.Encode()
	mockData := jsonapi.MockData{
		"/services/v2/teams/1/people?" + query: &jsonapi.MockEndpoint{
			Requests: []jsonapi.MockRequest{{
				Response: jsonapi.MockResponse{
					Text: `{"data": [
                        {"type": "Person", "id": "9",
                         "attributes": {"first_name": "John",
                                        "last_name": "Doe"},
                         "relationships": {
                             "emails": {"data": [
                                 {"type": "Email", "id": "e1"},
                                 {"type": "Email", "id": "missing"}
                             ]},
                             "phone_numbers": {"data": [
                                 {"type": "PhoneNumber", "id": "p1"}
                             ]}
                         }}
                    ],
                    "included": [
                        {"type": "Email", "id": "e1",
                         "attributes": {"address": "john@example.com"}},
                        {"type": "PhoneNumber", "id": "p1",
                         "attributes": {"number": "555-1234"}}
                    ]}`,
				},
			}},
		},
	}
	api := jsonapi.GetTestConnection(mockData)

	members, err := GetTeamMembers(&api, "1", 100)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(members), 1)
	member := members[0]
	assert.Equal(t, member.Id, "9")
	assert.Equal(t, member.FirstName, "John")
	assert.Equal(t, member.LastName, "Doe")
	if !reflect.DeepEqual(member.Emails, []string{"john@example.com"}) {
		t.Errorf("Got emails %v, expected the resolved one only",
			member.Emails)
	}
	if !reflect.DeepEqual(member.PhoneNumbers, []string{"555-1234"}) {
		t.Errorf("Got phone numbers %v, expected [555-1234]",
			member.PhoneNumbers)
	}
}
