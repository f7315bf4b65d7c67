package remote

import (
	"bytes"
	"encoding/json"
	"errors"
)

// decodeEnvelope разбирает тело ответа в dst. Бэкенд отдает данные либо
// напрямую, либо обернутыми в объект под одним из ключей keys.
func decodeEnvelope(raw []byte, dst any, keys ...string) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return errors.New("empty response body")
	}

	if trimmed[0] == '{' && len(keys) > 0 {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return err
		}
		for _, key := range keys {
			inner, ok := envelope[key]
			if !ok || bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
				continue
			}
			return json.Unmarshal(inner, dst)
		}
	}
	return json.Unmarshal(trimmed, dst)
}
