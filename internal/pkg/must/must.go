package must

import (
	"encoding/json"
)

// PanicIf will call panic(err) in case given err is not nil.
func PanicIf(err error) {
	if err != nil {
		panic(err)
	}
}

// MarshalJson is a wrapper for json.Marshal of values that always marshal.
func MarshalJson(v interface{}) []byte {
	data, err := json.Marshal(v)
	PanicIf(err)
	return data
}
