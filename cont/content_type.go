package cont

import "mime"

type ContentType string

const (
	ApplicationJson ContentType = "application/json"
	FormUrlEncoded  ContentType = "application/x-www-form-urlencoded"
)

// MediaType strips parameters such as charset from a Content-Type header value.
func MediaType(header string) ContentType {
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return ContentType(mt)
}
