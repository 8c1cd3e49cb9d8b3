package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingMatches(t *testing.T) {
	l := Listing{
		Title:       "Modern Downtown Apartment",
		Location:    "Downtown Seattle, WA",
		Description: "Beautiful 2-bedroom apartment with city views",
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "title", query: "modern", want: true},
		{name: "location upper case", query: "SEATTLE", want: true},
		{name: "description", query: "City Views", want: true},
		{name: "substring", query: "ownto", want: true},
		{name: "no match", query: "waterfront", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Matches(tt.query))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Listing not found", ErrListingNotFound.Error())
	assert.Equal(t, "Missing required field: title", NewValidationError("Missing required field: title").Error())
}
