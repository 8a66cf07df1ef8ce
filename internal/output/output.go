// Package output defines the destinations for the cleaned dataset and
// shared value-encoding helpers.
package output

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/crimson-sun/scour/internal/model"
)

// Output writes one cleaned dataset to a destination. Implementations own
// all output I/O; the cleaning stages never touch storage.
type Output interface {
	Write(ctx context.Context, ds *model.Dataset) error
	Close() error
}

// CellString renders one cell for flat text encodings. Nulls render empty;
// int-list cells render as a JSON array so they survive a round trip.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case []int64:
		data, _ := json.Marshal(x)
		return string(data)
	default:
		data, _ := json.Marshal(x)
		return string(data)
	}
}
