package pcoapi

import (
	"strconv"

	"github.com/pcotoolkit/cli/pkg/jsonapi"
)

const peoplePath = "/people/v2/people"

type PersonAttributes struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Nickname        string `json:"nickname"`
	Birthdate       string `json:"birthdate"`
	Anniversary     string `json:"anniversary"`
	Gender          string `json:"gender"`
	MaritalStatus   string `json:"marital_status"`
	Child           *bool  `json:"child"`
	Avatar          string `json:"avatar"`
	Status          string `json:"status"`
	InactivatedAt   string `json:"inactivated_at"`
	InactiveReason  string `json:"inactive_reason"`
	Membership      string `json:"membership"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	GraduationYear  *int   `json:"graduation_year"`
	MedicalNotes    string `json:"medical_notes"`
	SchoolType      string `json:"school_type"`
	LoginIdentifier string `json:"login_identifier"`
}

/*
FlattenedPerson is a person record merged with its resolved contact
relationships: home/work address fields, concatenated phone/email lists and
a summed household member count. Every field defaults to its zero value
when the source attribute or relationship is absent.
*/
type FlattenedPerson struct {
	Id string
	PersonAttributes
	HouseholdCount int
	HomeStreet     string
	HomeCity       string
	HomeState      string
	HomeZip        string
	WorkStreet     string
	WorkCity       string
	WorkState      string
	WorkZip        string
	PhoneNumbers   []string
	Emails         []string
}

/*
FlattenPerson resolves a person's side-loaded relationships into a
FlattenedPerson. References that were not present in the response's
included set are skipped silently. Phone numbers and emails keep the order
of the relationship arrays; for addresses the last one of a given location
wins; member counts of multiple households accumulate.
*/
func FlattenPerson(person *jsonapi.Resource) (FlattenedPerson, error) {
	result := FlattenedPerson{Id: person.Id}
	err := person.MapAttributes(&result.PersonAttributes)
	if err != nil {
		return result, err
	}

	for key, relationship := range person.Relationships {
		if relationship.Type != jsonapi.PLURAL {
			continue
		}
		for i := range relationship.DataPlural {
			item := &relationship.DataPlural[i]
			if !item.Resolved() {
				continue
			}
			switch key {
			case "phone_numbers":
				result.PhoneNumbers = append(
					result.PhoneNumbers, item.StringAttribute("number"),
				)
			case "emails":
				result.Emails = append(
					result.Emails, item.StringAttribute("address"),
				)
			case "addresses":
				switch item.StringAttribute("location") {
				case "Home":
					result.HomeStreet = item.StringAttribute("street")
					result.HomeCity = item.StringAttribute("city")
					result.HomeState = item.StringAttribute("state")
					result.HomeZip = item.StringAttribute("zip")
				case "Work":
					result.WorkStreet = item.StringAttribute("street")
					result.WorkCity = item.StringAttribute("city")
					result.WorkState = item.StringAttribute("state")
					result.WorkZip = item.StringAttribute("zip")
				}
			case "households":
				if item.Type == "Household" {
					result.HouseholdCount += item.IntAttribute("member_count")
				}
			}
		}
	}

	return result, nil
}

/*
GetPeople fetches up to 'limit' people (0 for everyone) with their contact
relationships side-loaded and returns them flattened.
*/
func GetPeople(
	api *jsonapi.Connection, limit, perPage int,
) ([]FlattenedPerson, error) {
	query := jsonapi.Query{
		Includes: []string{
			"phone_numbers", "emails", "addresses", "households",
		},
		Extras: map[string]string{"per_page": strconv.Itoa(perPage)},
	}.Encode()

	people, err := api.FetchAll(peoplePath, query, limit)
	if err != nil {
		return nil, err
	}

	result := make([]FlattenedPerson, 0, len(people))
	for i := range people {
		flattened, err := FlattenPerson(&people[i])
		if err != nil {
			return nil, err
		}
		result = append(result, flattened)
	}
	return result, nil
}
