package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// acceptedTimeLayouts are tried in order when parsing date query parameters.
var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// int64Query parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func int64Query(c echo.Context, name string, def int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// timeQuery parses an optional timestamp query parameter. Absence yields
// (nil, nil); a malformed value is a client error.
func timeQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid %s: %q", name, raw)
}
