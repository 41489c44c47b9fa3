package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilding(t *testing.T) {
	testCases := []struct {
		name     string
		location string
		expected string
	}{
		{
			name:     "room, building and floor",
			location: "Room 101, Main Building, Floor 2",
			expected: "Main Building",
		},
		{
			name:     "trailing non-floor segment wins",
			location: "Block A, Floor 1, Boys Washroom",
			expected: "Boys Washroom",
		},
		{
			name:     "ground floor marker is skipped",
			location: "Cafeteria, Ground Floor",
			expected: "Cafeteria",
		},
		{
			name:     "no commas",
			location: "Main Auditorium",
			expected: "Main Auditorium",
		},
		{
			name:     "two plain segments",
			location: "Central Library, Reading Hall",
			expected: "Reading Hall",
		},
		{
			name:     "empty trailing segment",
			location: "IT Block, ",
			expected: "IT Block",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Building(tc.location))
		})
	}
}
