package auth

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func segment(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func TestSubject(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "sub claim", token: signedToken(t, jwt.MapClaims{"sub": "ngo-42"}), want: "ngo-42"},
		{name: "id fallback", token: signedToken(t, jwt.MapClaims{"id": "user-7"}), want: "user-7"},
		{name: "userId fallback", token: signedToken(t, jwt.MapClaims{"userId": "u-1"}), want: "u-1"},
		{name: "numeric id", token: signedToken(t, jwt.MapClaims{"id": 42}), want: "42"},
		{name: "sub wins over id", token: signedToken(t, jwt.MapClaims{"sub": "a", "id": "b"}), want: "a"},
		{name: "bearer prefix", token: "Bearer " + signedToken(t, jwt.MapClaims{"sub": "x"}), want: "x"},
		{name: "no subject", token: signedToken(t, jwt.MapClaims{"role": "admin"}), want: ""},
		{name: "empty", token: "", want: ""},
		{name: "one segment", token: "opaque-token", want: ""},
		{name: "two segments", token: "a.b", want: ""},
		{name: "four segments", token: "a.b.c.d", want: ""},
		{name: "bad base64", token: header + ".!!!.sig", want: ""},
		{name: "payload not json", token: header + "." + base64.RawURLEncoding.EncodeToString([]byte("hello")) + ".sig", want: ""},
		{name: "header without alg", token: segment(`{"typ":"JWT"}`) + "." + segment(`{"sub":"ngo-42"}`) + ".sig", want: "ngo-42"},
		{name: "unknown alg", token: segment(`{"alg":"XYZ"}`) + "." + segment(`{"sub":"ngo-42"}`) + ".sig", want: "ngo-42"},
		{name: "garbage header", token: "!!!." + segment(`{"sub":"ngo-42"}`) + ".sig", want: "ngo-42"},
		{name: "empty signature", token: segment(`{"alg":"none"}`) + "." + segment(`{"userId":"u-9"}`) + ".", want: "u-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, Subject(tt.token))
			})
		})
	}
}

func TestSubject_IgnoresSignature(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "ngo-42"})
	tampered := token[:len(token)-4] + "AAAA"

	assert.Equal(t, "ngo-42", Subject(tampered))
}

func TestKey(t *testing.T) {
	victim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ngo-42"}).SignedString([]byte("secret-a"))
	require.NoError(t, err)
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ngo-42"}).SignedString([]byte("secret-b"))
	require.NoError(t, err)

	assert.Equal(t, Subject(victim), Subject(forged))
	assert.NotEqual(t, Key(victim), Key(forged))
	assert.Len(t, Key(victim), 64)
	assert.Equal(t, Key(victim), Key("Bearer "+victim))
	assert.Equal(t, "", Key(""))
	assert.Equal(t, "", Key("Bearer "))
}

type memoryStore struct {
	token string
	err   error
}

func (m *memoryStore) Get(context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.token == "" {
		return "", ErrMissingToken
	}
	return m.token, nil
}

func (m *memoryStore) Set(_ context.Context, token string) error {
	m.token = token
	return nil
}

func (m *memoryStore) Clear(context.Context) error {
	m.token = ""
	return nil
}

func TestCurrentSubject(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}

	assert.Equal(t, "", CurrentSubject(ctx, store))

	require.NoError(t, store.Set(ctx, signedToken(t, jwt.MapClaims{"sub": "kiosk"})))
	assert.Equal(t, "kiosk", CurrentSubject(ctx, store))

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, "", CurrentSubject(ctx, store))
}
