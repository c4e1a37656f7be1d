package collection

import (
	"bytes"
	"encoding/json"
)

// marshalPairs encodes keys and values as one JSON object in the given order.
// Keys that do not encode to JSON strings use their JSON text as the name.
func marshalPairs(keys, values []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		if len(kb) == 0 || kb[0] != '"' {
			if kb, err = json.Marshal(string(kb)); err != nil {
				return nil, err
			}
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
