package utils

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	return json.Unmarshal(body, dst)
}

// QueryInt reads an integer query parameter, returning ok=false when it is absent.
func QueryInt(r *http.Request, key string) (value int, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
