package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactEmailTag(t *testing.T) {
	v := New()

	valid := []string{"jane@example.com", "a.b+c@sub.domain.io", "x@y.z"}
	for _, email := range valid {
		assert.NoError(t, v.Var(email, TagContactEmail), email)
	}

	invalid := []string{"", "jane", "jane@example", "jane @example.com", "jane@exa mple.com", "@example.com", "jane@@example.com", "jane@.com."}
	for _, email := range invalid {
		assert.Error(t, v.Var(email, TagContactEmail), email)
	}
}

func TestContactPhoneTag(t *testing.T) {
	v := New()

	valid := []string{"", "(561) 418-2016", "+1 561 418 2016", "5614182016"}
	for _, phone := range valid {
		assert.NoError(t, v.Var(phone, TagContactPhone), phone)
	}

	invalid := []string{"abc123", "561.418.2016", "ext 12", "561#418"}
	for _, phone := range invalid {
		assert.Error(t, v.Var(phone, TagContactPhone), phone)
	}
}

func TestMinUTF16Tag(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("Jo", TagMinUTF16+"=2"))
	assert.Error(t, v.Var("J", TagMinUTF16+"=2"))
	// one astral-plane character is a surrogate pair
	assert.NoError(t, v.Var("\U0001F600", TagMinUTF16+"=2"))
	assert.Error(t, v.Var("\u00e9", TagMinUTF16+"=2"))
	assert.Equal(t, 2, UTF16Len("\U0001F600"))
}
