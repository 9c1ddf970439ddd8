package auth

import (
	"testing"
	"time"

	"kazrockets/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenPairRoundTrip(t *testing.T) {
	user := &repository.User{Id: uuid.New(), Role: repository.RoleParticipant}
	pair, err := CreateTokenPair(user)
	assert.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	claims, err := ParseToken(pair.AccessToken, TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, user.Id, claims.UserId)
	assert.Equal(t, repository.RoleParticipant, claims.Role)

	claims, err = ParseToken(pair.RefreshToken, TokenTypeRefresh)
	assert.NoError(t, err)
	assert.Equal(t, user.Id, claims.UserId)
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	user := &repository.User{Id: uuid.New(), Role: repository.RoleJudge}
	pair, err := CreateTokenPair(user)
	assert.NoError(t, err)

	_, err = ParseToken(pair.RefreshToken, TokenTypeAccess)
	assert.Error(t, err)
	_, err = ParseToken(pair.AccessToken, TokenTypeRefresh)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tokenString, err := signToken(jwt.MapClaims{
		"sub":        uuid.New().String(),
		"token_type": TokenTypeAccess,
		"exp":        time.Now().Add(-time.Minute).Unix(),
	})
	assert.NoError(t, err)

	_, err = ParseToken(tokenString, TokenTypeAccess)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", TokenTypeAccess)
	assert.Error(t, err)
}
