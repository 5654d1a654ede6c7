package jsonapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// How many times a single request will be attempted before a throttled
// response is returned to the caller as an error.
const maxAttempts = 3

type Connection struct {
	Host     string
	Username string
	Password string
	Client   http.Client
	Headers  map[string]string

	// Used for testing
	RequestMethod func(method, path string,
		payload []byte) (int, []byte, error)

	// Used for testing; when nil, time.Sleep is used between throttled
	// attempts
	sleep func(time.Duration)
}

func (c *Connection) request(
	method, path string, payload []byte,
) (int, []byte, error) {
	var statusCode int
	var headers http.Header
	var body []byte
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		statusCode, headers, body, err = c.requestOnce(method, path, payload)
		if err != nil {
			return statusCode, body, err
		}
		throttleError := parseThrottleResponse(statusCode, headers)
		if throttleError == nil {
			break
		}
		if attempt == maxAttempts-1 {
			return statusCode, body, throttleError
		}
		c.wait(time.Duration(throttleError.RetryAfter) * time.Second)
	}

	errorResponse := parseErrorResponse(statusCode, body)
	if errorResponse != nil {
		return statusCode, body, errorResponse
	}
	return statusCode, body, nil
}

func (c *Connection) requestOnce(
	method, path string, payload []byte,
) (int, http.Header, []byte, error) {
	if c.RequestMethod != nil {
		statusCode, body, err := c.RequestMethod(method, path, payload)
		return statusCode, nil, body, err
	}

	if strings.HasPrefix(path, "/") {
		path = c.Host + path
	}

	if c.Client.CheckRedirect == nil {
		c.Client.CheckRedirect = func(
			req *http.Request, via []*http.Request,
		) error {
			return &RedirectError{Location: req.URL.String()}
		}
	}

	requestObj, err := http.NewRequest(method, path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, nil, err
	}

	requestObj.Header.Add("Content-Type", "application/json")
	requestObj.SetBasicAuth(c.Username, c.Password)
	for header, value := range c.Headers {
		requestObj.Header.Add(header, value)
	}
	response, err := c.Client.Do(requestObj)
	if err != nil {
		return 0, nil, nil, err
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return response.StatusCode, response.Header, nil, err
	}

	return response.StatusCode, response.Header, body, nil
}

func (c *Connection) wait(duration time.Duration) {
	if c.sleep != nil {
		c.sleep(duration)
	} else {
		time.Sleep(duration)
	}
}

/*
Get
Returns a Resource instance from the server based on its path.
*/
func (c *Connection) Get(path string) (Resource, error) {
	var response PayloadSingular
	var result Resource

	_, body, err := c.request("GET", path, nil)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(body, &response)
	if err != nil {
		return result, err
	}
	return payloadToResource(response.Data, nil, c)
}

/*
List
Returns a Collection instance from the server. Query is a URL encoded set of
GET variables that can be easily generated from the Query type and
Query.Encode method.
*/
func (c *Connection) List(path, query string) (Collection, error) {
	if query != "" {
		path = path + "?" + query
	}
	return c.listFromPath(path, nil)
}

// Included records resolve against the 'included' map; when the map is
// non-nil this page's included records are merged into it, so records
// side-loaded on earlier pages of the same fetch stay resolvable.
func (c *Connection) listFromPath(
	path string, included map[string]Resource,
) (Collection, error) {
	var result Collection
	_, body, err := c.request("GET", path, nil)
	if err != nil {
		return result, err
	}

	var response PayloadPluralRead
	err = json.Unmarshal(body, &response)
	if err != nil {
		return result, err
	}

	if included == nil {
		included = make(map[string]Resource)
	}
	err = mergeIncluded(included, response.Included, c)
	if err != nil {
		return result, err
	}

	result.API = c
	result.Previous = response.Links.Previous
	result.Next = response.Links.Next
	result.included = included
	result.Data = make([]Resource, 0, len(response.Data))

	for _, item := range response.Data {
		resource, err := payloadToResource(item, included, c)
		if err != nil {
			return result, err
		}
		result.Data = append(result.Data, resource)
	}

	return result, nil
}

/*
FetchAll
Fetches a full paginated collection by following the 'links.next' chain until
it is absent. A positive limit stops the fetch once that many records have
been collected; records past the limit boundary on the final page are
discarded. The included map is shared across all fetched pages.
*/
func (c *Connection) FetchAll(
	path, query string, limit int,
) ([]Resource, error) {
	if query != "" {
		path = path + "?" + query
	}

	var result []Resource
	included := make(map[string]Resource)
	for {
		page, err := c.listFromPath(path, included)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Data...)
		if limit > 0 && len(result) >= limit {
			result = result[:limit]
			break
		}
		if page.Next == "" {
			break
		}
		path = page.Next
	}
	return result, nil
}

/*
Delete
Deletes the resource at the given path. The server signals success with a 204
status; any other status is an error.
*/
func (c *Connection) Delete(path string) error {
	statusCode, body, err := c.request("DELETE", path, nil)
	if err != nil {
		return err
	}
	if statusCode != http.StatusNoContent {
		errorResponse := Error{StatusCode: statusCode}
		_ = json.Unmarshal(body, &errorResponse)
		return &errorResponse
	}
	return nil
}
