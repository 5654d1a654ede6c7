package jsonapi

import (
	"fmt"
	"net/url"
	"strings"
)

type Query struct {
	Filters  map[string]string
	Includes []string
	Extras   map[string]string
}

/*
Encode
Converts a Query object to a string that's ready to be used as GET variables
for {json:api} requests. Filters become 'where[<key>]' variables, the way the
Planning Center API spells them.
*/
func (q Query) Encode() string {
	result := make(url.Values)
	if q.Filters != nil {
		for key, value := range q.Filters {
			result.Add(fmt.Sprintf("where[%s]", key), value)
		}
	}
	if q.Includes != nil {
		result.Add("include", strings.Join(q.Includes, ","))
	}
	if q.Extras != nil {
		for key, value := range q.Extras {
			result.Add(key, value)
		}
	}
	return result.Encode()
}
