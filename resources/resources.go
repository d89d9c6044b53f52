package resources

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

//go:embed data/sample.txt
//go:embed data/low_lower.txt
//go:embed data/tokenizer_config.json
var f embed.FS

// GetEmbeddedResource
// Returns the bytes of the named resource that is embedded in the binary,
// or nil when there is no such resource.
func GetEmbeddedResource(path string) *[]byte {
	resourceBytes, err := f.ReadFile("data/" + path)
	if err != nil {
		return nil
	}
	return &resourceBytes
}

// EmbeddedExists
// Returns true if the given resource is embedded in the binary, otherwise
// false and an error.
func EmbeddedExists(path string) (bool, error) {
	if _, err := f.Open("data/" + path); err != nil {
		return false, err
	} else {
		return true, nil
	}
}

// FetchHTTP
// Fetch a resource from a remote HTTP server with optional bearer token
// auth.
func FetchHTTP(uri string, auth string) (io.ReadCloser, error) {
	req, reqErr := http.NewRequest("GET", uri, nil)
	if reqErr != nil {
		return nil, reqErr
	}
	if auth != "" {
		req.Header.Add("Authorization", "Bearer "+auth)
	}
	resp, remoteErr := http.DefaultClient.Do(req)
	if remoteErr != nil {
		return nil, remoteErr
	}
	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, errors.New(fmt.Sprintf("HTTP status code %d",
			resp.StatusCode))
	}
	return resp.Body, nil
}

// SizeHTTP
// Get the size of a resource from a remote HTTP server with optional
// bearer token auth.
func SizeHTTP(uri string, auth string) (uint, error) {
	req, reqErr := http.NewRequest("HEAD", uri, nil)
	if reqErr != nil {
		return 0, reqErr
	}
	if auth != "" {
		req.Header.Add("Authorization", "Bearer "+auth)
	}
	resp, remoteErr := http.DefaultClient.Do(req)
	if remoteErr != nil {
		return 0, remoteErr
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return 0, errors.New(fmt.Sprintf("HTTP status code %d",
			resp.StatusCode))
	} else {
		size, _ := strconv.Atoi(resp.Header.Get("Content-Length"))
		return uint(size), nil
	}
}
