package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flixhub/pkg/utils"
)

func TestSignAndParse(t *testing.T) {
	ts := TokenService{Secret: []byte("secret"), Issuer: "flixhub", Duration: time.Hour}

	tok, exp, err := ts.Sign("ops", ScopeAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := ts.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, ScopeAdmin, claims.Scope)
	assert.Equal(t, "flixhub", claims.Issuer)
}

func TestParse_Rejects(t *testing.T) {
	ts := TokenService{Secret: []byte("secret"), Issuer: "flixhub", Duration: time.Hour}

	expired, _, err := TokenService{Secret: ts.Secret, Issuer: "flixhub", Duration: -time.Minute}.Sign("ops", ScopeAdmin)
	require.NoError(t, err)
	otherIssuer, _, err := TokenService{Secret: ts.Secret, Issuer: "elsewhere", Duration: time.Hour}.Sign("ops", ScopeAdmin)
	require.NoError(t, err)
	otherSecret, _, err := TokenService{Secret: []byte("nope"), Issuer: "flixhub", Duration: time.Hour}.Sign("ops", ScopeAdmin)
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{Scope: ScopeAdmin}).SignedString(ts.Secret)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":     expired,
		"issuer":      otherIssuer,
		"secret":      otherSecret,
		"method":      hs512,
		"not a token": "abc.def",
	} {
		_, err := ts.Parse(tok)
		assert.Error(t, err, name)
	}
}

func TestSign_NoSecret(t *testing.T) {
	_, _, err := TokenService{}.Sign("ops", ScopeAdmin)
	assert.Error(t, err)
}

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService(utils.AuthConfig{JWTSecret: "s", Issuer: "flixhub"})
	assert.Equal(t, []byte("s"), ts.Secret)
	assert.Equal(t, 24*time.Hour, ts.Duration)

	ts = NewTokenService(utils.AuthConfig{JWTSecret: "s", TokenTTL: time.Minute})
	assert.Equal(t, time.Minute, ts.Duration)
}
