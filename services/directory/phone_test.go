package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "+48123456789", FormatPhoneNumber("123 456 789"))
	assert.Equal(t, "+48123456789", FormatPhoneNumber("48123456789"))
	assert.Equal(t, "+48123456789", FormatPhoneNumber("+48 123-456-789"))
	assert.Equal(t, "+48123456789", FormatPhoneNumber("0123456789"))
	assert.Equal(t, "+48123456789", FormatPhoneNumber("(123) 456 789"))
	assert.Equal(t, "", FormatPhoneNumber(""))
}

func TestIsValidPolishPhone(t *testing.T) {
	assert.True(t, IsValidPolishPhone("601 234 567"))
	assert.True(t, IsValidPolishPhone("+48 601 234 567"))
	assert.False(t, IsValidPolishPhone("601 234"))
	assert.False(t, IsValidPolishPhone("numer w recepcji"))
}

func TestFormatPhoneDisplay(t *testing.T) {
	assert.Equal(t, "+48 601 234 567", FormatPhoneDisplay("601234567"))
	// Non-Polish numbers pass through without grouping.
	assert.Equal(t, "+4912345", FormatPhoneDisplay("+4912345"))
}
