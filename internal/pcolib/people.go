package pcolib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pcotoolkit/cli/pkg/jsonapi"
	"github.com/pcotoolkit/cli/pkg/pcoapi"
)

var peopleHeaders = []string{
	"ID",
	"First Name",
	"Last Name",
	"Nickname",
	"Birthday",
	"Anniversary",
	"Gender",
	"Marital Status",
	"Child",
	"Avatar URL",
	"Status",
	"Inactivated At",
	"Inactive Reason",
	"Membership",
	"Created At",
	"Updated At",
	"Household Count",
	"Home Street",
	"Home City",
	"Home State",
	"Home Zip",
	"Work Street",
	"Work City",
	"Work State",
	"Work Zip",
	"Phone Numbers",
	"Emails",
}

type GetPeopleArguments struct {
	Limit   int
	PerPage int
}

/*
GetPeopleCommand fetches people with their contact relationships and prints
them as tab-delimited rows, one header line first.
*/
func GetPeopleCommand(
	api *jsonapi.Connection, arguments *GetPeopleArguments,
) error {
	people, err := pcoapi.GetPeople(api, arguments.Limit, arguments.PerPage)
	if err != nil {
		return fmt.Errorf("error fetching people: %w", err)
	}

	fmt.Println(strings.Join(peopleHeaders, "\t"))
	for i := range people {
		fmt.Println(strings.Join(peopleRow(&people[i]), "\t"))
	}
	return nil
}

func peopleRow(person *pcoapi.FlattenedPerson) []string {
	child := ""
	if person.Child != nil {
		child = strconv.FormatBool(*person.Child)
	}
	return []string{
		person.Id,
		person.FirstName,
		person.LastName,
		person.Nickname,
		person.Birthdate,
		person.Anniversary,
		person.Gender,
		person.MaritalStatus,
		child,
		person.Avatar,
		person.Status,
		person.InactivatedAt,
		person.InactiveReason,
		person.Membership,
		person.CreatedAt,
		person.UpdatedAt,
		strconv.Itoa(person.HouseholdCount),
		person.HomeStreet,
		person.HomeCity,
		person.HomeState,
		person.HomeZip,
		person.WorkStreet,
		person.WorkCity,
		person.WorkState,
		person.WorkZip,
		strings.Join(person.PhoneNumbers, ", "),
		strings.Join(person.Emails, ", "),
	}
}
