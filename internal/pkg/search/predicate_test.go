package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/escolar/escolar-backend/internal/pkg/search"
)

func TestMatchText(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query matches", "", []string{"whatever"}, true},
		{"whitespace query matches", "   ", []string{"whatever"}, true},
		{"empty query over no fields", "", nil, true},
		{"case-insensitive substring", "GAR", []string{"Ana", "García"}, true},
		{"substring in later field", "lópez", []string{"Carlos", "López Ruiz"}, true},
		{"no match", "zzz", []string{"Ana", "García"}, false},
		{"empty fields are skipped", "ana", []string{"", ""}, false},
		{"query is trimmed before matching", "  ana  ", []string{"Ana García"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.MatchText(tt.query, tt.fields...))
		})
	}
}

func TestMatchExact(t *testing.T) {
	assert.True(t, search.MatchExact("", "anything"))
	assert.True(t, search.MatchExact("Primero", "Primero"))
	assert.False(t, search.MatchExact("Primero", "primero"))
	assert.False(t, search.MatchExact("Primero", "Segundo"))
}

func TestMatchFold(t *testing.T) {
	assert.True(t, search.MatchFold("", "anything"))
	assert.True(t, search.MatchFold("PAGADO", "pagado"))
	assert.False(t, search.MatchFold("pagado", "pendiente"))
}

func TestMatchBool(t *testing.T) {
	yes, no := true, false
	assert.True(t, search.MatchBool(nil, true))
	assert.True(t, search.MatchBool(nil, false))
	assert.True(t, search.MatchBool(&yes, true))
	assert.False(t, search.MatchBool(&yes, false))
	assert.True(t, search.MatchBool(&no, false))
}

func TestValueCompare(t *testing.T) {
	assert.Equal(t, 0, search.String("abc").Compare(search.Number(3)), "mismatched kinds compare equal")
	assert.Equal(t, 0, search.String("ABC").Compare(search.String("abc")), "strings compare case-insensitively")
	assert.Equal(t, -1, search.String("2024-01-01").Compare(search.String("2024-02-01")), "ISO dates keep chronological order")
	assert.Equal(t, 1, search.Int(10).Compare(search.Int(2)))
	assert.Equal(t, -1, search.Bool(false).Compare(search.Bool(true)))
	assert.True(t, search.MissingValue().Missing())
	assert.False(t, search.String("").Missing())
}
