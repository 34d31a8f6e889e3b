package session

import (
	"encoding/json"
	"strings"
)

func marshalValue(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

func unmarshalValue(raw []byte, out interface{}) error {
	return json.Unmarshal(raw, out)
}

// likePrefix escapes SQL LIKE metacharacters so a key prefix matches
// literally.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
