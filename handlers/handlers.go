// Package handlers exposes the quoting session over the PocketBase router as
// JSON endpoints and document downloads.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

func apiError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]string{"error": message})
}

// pathInt parses an integer path parameter.
func pathInt(e *core.RequestEvent, name string) (int, error) {
	raw := e.Request.PathValue(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}

// parseOverrides reads repeated "override=<equipmentId>:<quantity>" query
// values.
func parseOverrides(r *http.Request) (map[int]int, error) {
	values := r.URL.Query()["override"]
	if len(values) == 0 {
		return nil, nil
	}
	out := make(map[int]int, len(values))
	for _, v := range values {
		idStr, qtyStr, ok := strings.Cut(v, ":")
		if !ok {
			return nil, fmt.Errorf("invalid override %q", v)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("invalid override %q", v)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil {
			return nil, fmt.Errorf("invalid override %q", v)
		}
		out[id] = qty
	}
	return out, nil
}
