package reader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONValue decodes a JSON file into a generic value tree, returned
// unmodified; any JSON type is legal. Numbers decode as json.Number so
// re-emission preserves the source's numeric text.
func JSONValue(path string, maxSize int64) (any, error) {
	if err := checkSize(path, maxSize); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	// A JSON document is one value; trailing content is malformed input,
	// not something to silently drop.
	var extra any
	switch err := dec.Decode(&extra); err {
	case io.EOF:
		return v, nil
	case nil:
		return nil, fmt.Errorf("trailing data after JSON value")
	default:
		return nil, err
	}
}
