package jsonapi

import (
	"testing"
)

func TestPaginationNext(t *testing.T) {
	var capturedMethod string
	var capturedPath string

	firstPage := Collection{
		API: &Connection{RequestMethod: func(
			method, path string, payload []byte,
		) (int, []byte, error) {
			capturedMethod = method
			capturedPath = path

			response := `{"data": [{"type": "Team",
                                    "id": "1",
                                    "attributes": {"name": "Team One"}},
                                   {"type": "Team",
                                    "id": "2",
                                    "attributes": {"name": "Team Two"}}]}`
			return 200, []byte(response), nil
		}},
		Next: "/services/v2/teams?offset=25",
	}

	secondPage, err := firstPage.GetNext()
	if err != nil {
		t.Error(err)
	}

	if capturedMethod != "GET" ||
		capturedPath != "/services/v2/teams?offset=25" {
		t.Error("Captured wrong arguments to request")
	}

	testCases := []struct {
		name     string
		getter   func() interface{}
		expected interface{}
	}{
		{"response's length",
			func() interface{} { return len(secondPage.Data) },
			2},
		{"response's next",
			func() interface{} { return secondPage.Next },
			""},
		{"response's previous",
			func() interface{} { return secondPage.Previous },
			""},
		{"first team's type",
			func() interface{} { return secondPage.Data[0].Type },
			"Team"},
		{"first team's id",
			func() interface{} { return secondPage.Data[0].Id },
			"1"},
		{"first team's name",
			func() interface{} {
				return secondPage.Data[0].Attributes["name"]
			},
			"Team One"},
	}
	for _, testCase := range testCases {
		value := testCase.getter()
		if value != testCase.expected {
			t.Errorf("Got %s '%v', expected '%v'",
				testCase.name, value, testCase.expected)
		}
	}
}

func TestPaginationWithoutNextPage(t *testing.T) {
	page := Collection{API: &Connection{}}
	_, err := page.GetNext()
	if err == nil {
		t.Error("Expected an error when there is no next page")
	}
	_, err = page.GetPrevious()
	if err == nil {
		t.Error("Expected an error when there is no previous page")
	}
}
