package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingToken = errors.New("auth: bearer token is missing")

// subjectClaims - поля, в которых бэкенд кладет идентификатор пользователя, по приоритету
var subjectClaims = []string{"sub", "id", "userId"}

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

func normalize(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
}

// Subject извлекает идентификатор субъекта из полезной нагрузки токена.
// Декодируется только средний сегмент, заголовок и подпись не проверяются.
// Пустая строка означает "не аутентифицирован". Результат годится только
// для отображения и логов: субъект выбирает тот, кто выпустил токен.
func Subject(token string) string {
	parts := strings.Split(normalize(token), ".")
	if len(parts) != 3 {
		return ""
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return ""
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return ""
	}

	for _, key := range subjectClaims {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// Key возвращает ключ владельца токена: sha256 от самого токена.
// Подобрать чужой ключ без чужого токена нельзя, поэтому по нему
// разделяются доски и подписки на уведомления. Пустой токен дает "".
func Key(token string) string {
	token = normalize(token)
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
