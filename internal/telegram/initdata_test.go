package telegram

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeInitData(userJSON string) string {
	v := url.Values{}
	v.Set("query_id", "AAH_test")
	v.Set("user", userJSON)
	v.Set("auth_date", "1700000000")
	v.Set("hash", "deadbeef")
	return v.Encode()
}

func TestParseInitDataUser(t *testing.T) {
	initData := encodeInitData(`{"id":123456789,"first_name":"Иван","last_name":"Петренко","username":"ivan_p"}`)

	user, err := ParseInitDataUser(initData)
	require.NoError(t, err)

	assert.Equal(t, int64(123456789), user.ID)
	assert.Equal(t, "Иван", user.FirstName)
	assert.Equal(t, "ivan_p", user.Username)
}

func TestParseInitDataUser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		initData string
	}{
		{name: "empty", initData: ""},
		{name: "no user field", initData: "query_id=AAH&auth_date=1"},
		{name: "malformed user json", initData: encodeInitData("{not json")},
		{name: "user without id", initData: encodeInitData(`{"first_name":"X"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInitDataUser(tt.initData)
			require.Error(t, err)
		})
	}
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Иван", (&User{ID: 1, FirstName: "Иван", Username: "ivan"}).DisplayName())
	assert.Equal(t, "@ivan", (&User{ID: 1, Username: "ivan"}).DisplayName())
	assert.Equal(t, "id42", (&User{ID: 42}).DisplayName())
}
