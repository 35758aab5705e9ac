package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingNumber(t *testing.T) {
	number := GenerateBookingNumber()
	assert.Regexp(t, regexp.MustCompile(`^BOOK-\d{8}-\d{6}-\d{4}$`), number)
}
