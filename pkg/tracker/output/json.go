// Package output serializes run results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker"
)

// ToJSON serializes a run result.
func ToJSON(res *tracker.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}
