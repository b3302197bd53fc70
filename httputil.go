package exmini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultDataPath locates the records when a payload wraps them in an object.
const DefaultDataPath = "$.transactions"

// Source produces raw transaction records, or fails.
type Source interface {
	Name() string
	Records(ctx context.Context) ([]RawRecord, error)
}

// HTTPSource reads records with a single GET of a JSON payload.
type HTTPSource struct {
	URL      string
	DataPath string       // DataPath is the jsonpath of the array in an object payload, DefaultDataPath if empty.
	Client   *http.Client // Client defaults to http.DefaultClient.
}

func (s *HTTPSource) Name() string { return s.URL }

// Records fetches and unwraps the payload. Any non 2xx response is a failure.
func (s *HTTPSource) Records(ctx context.Context) ([]RawRecord, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	data, err := jget(ctx, client, s.URL)
	if err != nil {
		return nil, err
	}
	return unwrap(data, s.DataPath)
}

// FileSource reads records from a JSON file.
type FileSource struct {
	Path     string
	DataPath string // DataPath is the jsonpath of the array in an object payload, DefaultDataPath if empty.
}

func (s *FileSource) Name() string { return s.Path }

// Records reads and unwraps the file.
func (s *FileSource) Records(_ context.Context) ([]RawRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return unwrap(data, s.DataPath)
}

// jget performs an HTTP GET request and returns the body of a 2xx response.
func jget(ctx context.Context, client *http.Client, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// unwrap decodes a payload that is either an array of records or an object
// holding the array at path.
func unwrap(data []byte, path string) ([]RawRecord, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Records(v)
	}
	if path == "" {
		path = DefaultDataPath
	}
	inner, err := jsonpath.Get(path, obj)
	if err != nil {
		// the object does not hold the records.
		return nil, &InvalidShapeError{Kind: "object without " + path}
	}
	return Records(inner)
}
