package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageURL(t *testing.T) {
	t.Run("strips hyphens and prepends base", func(t *testing.T) {
		url := PageURL("12345678-90ab-cdef-1234-567890abcdef")
		assert.Equal(t, "https://www.notion.so/1234567890abcdef1234567890abcdef", url)
	})

	t.Run("leaves an already bare identifier untouched", func(t *testing.T) {
		url := PageURL("1234567890abcdef1234567890abcdef")
		assert.Equal(t, "https://www.notion.so/1234567890abcdef1234567890abcdef", url)
	})
}

func TestPageIDFromURL(t *testing.T) {
	t.Run("regroups the trailing 32 hex chars as 8-4-4-4-12", func(t *testing.T) {
		id, err := PageIDFromURL("https://www.notion.so/1234567890abcdef1234567890abcdef")
		require.NoError(t, err)
		assert.Equal(t, "12345678-90ab-cdef-1234-567890abcdef", id)
	})

	t.Run("handles slugged page URLs", func(t *testing.T) {
		id, err := PageIDFromURL("https://www.notion.so/My-Book-Quotes-1234567890abcdef1234567890abcdef")
		require.NoError(t, err)
		assert.Equal(t, "12345678-90ab-cdef-1234-567890abcdef", id)
	})

	t.Run("ignores query string and fragment", func(t *testing.T) {
		id, err := PageIDFromURL("https://www.notion.so/1234567890abcdef1234567890abcdef?pvs=4")
		require.NoError(t, err)
		assert.Equal(t, "12345678-90ab-cdef-1234-567890abcdef", id)
	})

	t.Run("rejects a segment shorter than 32 chars", func(t *testing.T) {
		_, err := PageIDFromURL("https://www.notion.so/abc123")
		assert.ErrorIs(t, err, ErrMalformedPageURL)
	})

	t.Run("rejects non-hex trailing characters", func(t *testing.T) {
		_, err := PageIDFromURL("https://www.notion.so/zzzz567890abcdef1234567890abcdef")
		assert.ErrorIs(t, err, ErrMalformedPageURL)
	})

	t.Run("rejects an empty URL", func(t *testing.T) {
		_, err := PageIDFromURL("")
		assert.ErrorIs(t, err, ErrMalformedPageURL)
	})
}

func TestPageIDRoundTrip(t *testing.T) {
	ids := []string{
		"12345678-90ab-cdef-1234-567890abcdef",
		"00000000-0000-0000-0000-000000000000",
		"deadbeef-dead-beef-dead-beefdeadbeef",
	}

	for _, id := range ids {
		got, err := PageIDFromURL(PageURL(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}
