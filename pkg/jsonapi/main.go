/*
Package jsonapi
Interface for interacting with {json:api} APIs over HTTP Basic auth.

Usage:

    import "github.com/pcotoolkit/cli/pkg/jsonapi"

    api := jsonapi.Connection{
        Host:     "https://api.planningcenteronline.com",
        Username: "<client_id>",
        Password: "<client_secret>",
    }

    // Lets get a list of things
    query := jsonapi.Query{
        Includes: []string{"emails", "phone_numbers"},
    }.Encode()
    page, err := api.List("/people/v2/people", query)
    for {
        for _, person := range page.Data {
            fmt.Println(person.Attributes["first_name"])
        }
        if page.Next == "" {
            break
        } else {
            page, err = page.GetNext()
        }
    }

    // Or let the library follow the 'links.next' chain for us, stopping
    // after 50 records
    people, err := api.FetchAll("/people/v2/people", query, 50)

    // Lets get a single thing
    person, err := api.Get("/people/v2/people/123")
    var attributes struct {
        FirstName string `json:"first_name"`
    }
    person.MapAttributes(&attributes)

    // Lets delete something; the server signals success with 204 only
    err = api.Delete(
        "/services/v2/service_types/1/team_positions/2" +
            "/person_team_position_assignments/3",
    )
*/
package jsonapi
