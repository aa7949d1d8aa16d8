package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	storeID := uint(4)
	token, err := GenerateToken(7, "owner@example.com", "admin", &storeID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	if assert.NotNil(t, claims.StoreID) {
		assert.Equal(t, storeID, *claims.StoreID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestTokenWithoutStore(t *testing.T) {
	token, err := GenerateToken(1, "new@example.com", "store_owner", nil)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Nil(t, claims.StoreID)
}
