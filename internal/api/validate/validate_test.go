package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goodEmail    = "someone@example.com"
	goodPassword = "Abc!defg"
	goodAddress  = "12 Main Street"
)

func nameOfLen(n int) string { return strings.Repeat("a", n) }

func TestAccountNameBoundaries(t *testing.T) {
	assert.ErrorIs(t, Account(nameOfLen(19), goodEmail, goodPassword, goodAddress), ErrNameLength)
	assert.ErrorIs(t, Account(nameOfLen(61), goodEmail, goodPassword, goodAddress), ErrNameLength)
	assert.NoError(t, Account(nameOfLen(20), goodEmail, goodPassword, goodAddress))
	assert.NoError(t, Account(nameOfLen(60), goodEmail, goodPassword, goodAddress))
}

func TestAccountPresenceFirst(t *testing.T) {
	// Presence beats every later rule, whichever field is missing.
	assert.ErrorIs(t, Account("", goodEmail, goodPassword, goodAddress), ErrFieldsRequired)
	assert.ErrorIs(t, Account(nameOfLen(20), "", goodPassword, goodAddress), ErrFieldsRequired)
	assert.ErrorIs(t, Account(nameOfLen(20), goodEmail, "", goodAddress), ErrFieldsRequired)
	assert.ErrorIs(t, Account(nameOfLen(20), goodEmail, goodPassword, ""), ErrFieldsRequired)
}

func TestAccountCheckOrder(t *testing.T) {
	// Name length is reported before the also-bad address and password.
	err := Account(nameOfLen(5), "not-an-email", "short", strings.Repeat("x", 401))
	assert.ErrorIs(t, err, ErrNameLength)

	// Address length before password rules.
	err = Account(nameOfLen(20), goodEmail, "short", strings.Repeat("x", 401))
	assert.ErrorIs(t, err, ErrAddressLength)

	// Password rules before email format.
	err = Account(nameOfLen(20), "not-an-email", "short", goodAddress)
	assert.ErrorIs(t, err, ErrPasswordLength)
}

func TestAccountLengthsCountCharactersNotBytes(t *testing.T) {
	// 35 characters but 70 bytes: within the 20-60 character range.
	assert.NoError(t, Account(strings.Repeat("é", 35), goodEmail, goodPassword, goodAddress))
	assert.ErrorIs(t, Account(strings.Repeat("é", 19), goodEmail, goodPassword, goodAddress), ErrNameLength)
	assert.ErrorIs(t, Account(strings.Repeat("é", 61), goodEmail, goodPassword, goodAddress), ErrNameLength)

	// 400 characters, 800 bytes
	assert.NoError(t, Account(nameOfLen(20), goodEmail, goodPassword, strings.Repeat("é", 400)))
	assert.ErrorIs(t, Account(nameOfLen(20), goodEmail, goodPassword, strings.Repeat("é", 401)), ErrAddressLength)

	// 16 characters, 17 bytes
	assert.NoError(t, Password("Aé!defghijklmnop"))
	assert.ErrorIs(t, Password("Aé!defghijklmnopq"), ErrPasswordLength)
}

func TestAccountAddressLimit(t *testing.T) {
	assert.NoError(t, Account(nameOfLen(20), goodEmail, goodPassword, strings.Repeat("x", 400)))
	assert.ErrorIs(t, Account(nameOfLen(20), goodEmail, goodPassword, strings.Repeat("x", 401)), ErrAddressLength)
}

func TestAccountEmailFormat(t *testing.T) {
	for _, bad := range []string{"plain", "a@b", "a b@c.com", "a@b c.com", "@example.com"} {
		assert.ErrorIs(t, Account(nameOfLen(20), bad, goodPassword, goodAddress), ErrEmailFormat, bad)
	}
	assert.NoError(t, Account(nameOfLen(20), "user.name@sub.example.co", goodPassword, goodAddress))
}

func TestPassword(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"Abc!defg", nil},
		{"Abcdefg1", ErrPasswordCompose}, // uppercase + digit but no symbol
		{"abc!defg", ErrPasswordCompose}, // symbol but no uppercase
		{"Ab!cdef", ErrPasswordLength},   // 7 chars
		{"Ab!cdefghijklmnop", ErrPasswordLength}, // 17 chars
		{"Abcdefg!", nil},
		{"A1b2c3d4!", nil},
	}
	for _, tc := range cases {
		err := Password(tc.password)
		if tc.want == nil {
			assert.NoError(t, err, tc.password)
		} else {
			assert.ErrorIs(t, err, tc.want, tc.password)
		}
	}
}

func TestPasswordSymbolSet(t *testing.T) {
	for _, sym := range strings.Split(passwordSymbols, "") {
		require.NoError(t, Password("Abcdefg"+sym))
	}
	// A symbol outside the fixed set does not count.
	assert.ErrorIs(t, Password("Abcdefg?"), ErrPasswordCompose)
}
