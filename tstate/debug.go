package tstate

import jsoniter "github.com/json-iterator/go"

// debugJSON mirrors encoding/json's defaults; StateKey.String is diagnostic
// output only and is never parsed back, so speed (not stdlib compatibility)
// is what matters here.
var debugJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// debugForm is the JSON shape StateKey.String renders, deliberately close
// to the "degrees|endpoints" string keys the reference implementation used
// for its memo table, so a table dump reads the same way.
type debugForm struct {
	Degrees   []int `json:"degrees"`
	Endpoints []int `json:"endpoints"`
}

// String renders key as a human-readable JSON object, for table snapshots
// and debug logging. It is never used as a map key itself — StateKey
// already is one.
func (key StateKey) String() string {
	form := debugForm{
		Degrees:   DecodeDegrees(key),
		Endpoints: DecodeEndpoints(key),
	}
	b, err := debugJSON.Marshal(form)
	if err != nil {
		// Marshal of two int slices cannot fail; keep a safe fallback.
		return "{}"
	}

	return string(b)
}
