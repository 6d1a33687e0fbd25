package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_UnmarshalServerShape(t *testing.T) {
	body := `{
		"id": 7,
		"name": "Ada Nurse",
		"email": "ada@example.com",
		"phone": "1234567890",
		"date_of_birth": "1990-04-12",
		"created_at": "2025-10-30T12:01:02.123456",
		"last_login": null
	}`

	var a Account
	require.NoError(t, json.Unmarshal([]byte(body), &a))

	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, "1990-04-12", a.DateOfBirth.String())
	require.NotNil(t, a.CreatedAt)
	assert.Equal(t, 2025, a.CreatedAt.Year())
	assert.Nil(t, a.LastLogin)
}

func TestAccount_OptionalTimestampsAbsent(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"n","email":"e","phone":"p","date_of_birth":"2000-01-01"}`), &a))
	assert.Nil(t, a.CreatedAt)
	assert.Nil(t, a.LastLogin)
}

func TestRegisterRequest_SerialisesDateAsYYYYMMDD(t *testing.T) {
	req := RegisterRequest{
		Name:        "Ada",
		Email:       "ada@example.com",
		Phone:       "1234567890",
		DateOfBirth: NewDate(1990, time.April, 2),
		Password:    "secret123",
	}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","email":"ada@example.com","phone":"1234567890","date_of_birth":"1990-04-02","password":"secret123"}`, string(b))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-04-02T00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "1990-04-02", d.String())

	_, err = ParseDate("04/02/1990")
	require.Error(t, err)
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	require.Error(t, json.Unmarshal([]byte(`19900402`), &d))
}

func TestTimestamp_UnmarshalLayouts(t *testing.T) {
	for _, in := range []string{`"2025-10-30T12:01:02Z"`, `"2025-10-30T12:01:02.5+02:00"`, `"2025-10-30 12:01:02"`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.Equal(t, 30, ts.Day())
	}

	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"last tuesday"`), &ts))
}
