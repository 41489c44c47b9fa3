package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccms-backend/internal/model"
	"ccms-backend/internal/store"
)

func TestWriteComplaints(t *testing.T) {
	submitted := time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC)
	updated := time.Date(2025, time.January, 15, 16, 0, 0, 0, time.UTC)

	complaints := []store.Complaint{
		{
			ID:           1,
			Subject:      `Broken "Ceiling" Fan, urgent`,
			Category:     "Fan",
			Location:     "Room 101, Main Building",
			Status:       store.StatusResolved,
			Priority:     store.PriorityHigh,
			SubmittedBy:  "Rahul Sharma",
			Email:        "rahul@college.edu",
			SubmittedAt:  submitted,
			UpdatedAt:    updated,
			Description:  "Makes strange noises.\nNeeds repair.",
			AdminRemarks: `Replaced the "capacitor"`,
		},
		{
			ID:          2,
			Subject:     "Ragging Incident",
			Category:    "Other",
			Location:    "Block C",
			Status:      store.StatusPending,
			Priority:    store.PriorityHigh,
			SubmittedBy: "Asha Verma",
			Email:       "asha@college.edu",
			IsAnonymous: true,
			SubmittedAt: submitted,
			UpdatedAt:   submitted,
			Description: "Reported anonymously.",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComplaints(&buf, complaints))

	// Quotes inside quoted fields must be doubled.
	assert.Contains(t, buf.String(), `"Broken ""Ceiling"" Fan, urgent"`)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per complaint")

	assert.Equal(t, []string{
		"ID", "Subject", "Category", "Location", "Status", "Priority",
		"Submitted By", "Email", "Submitted At", "Description",
		"Admin Remarks", "Updated At",
	}, records[0])

	first := records[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, `Broken "Ceiling" Fan, urgent`, first[1])
	assert.Equal(t, "Resolved", first[4])
	assert.Equal(t, "2025-01-15 09:30:00", first[8])
	assert.Equal(t, "Makes strange noises.\nNeeds repair.", first[9])
	assert.Equal(t, "2025-01-15 16:00:00", first[11])

	// Anonymous complaints never export the submitter's identity.
	second := records[2]
	assert.Equal(t, AnonymousDisplayName, second[6])
	assert.Empty(t, second[7])
}

func TestWriteActivityLogs(t *testing.T) {
	ts := time.Date(2025, time.January, 23, 12, 0, 0, 0, time.UTC)
	logs := []model.ActivityLog{
		{
			ID:         "abc",
			Timestamp:  ts,
			Type:       model.ActivityStatusChange,
			ActorName:  "Admin",
			ActorEmail: "admin@college.edu",
			ActorRole:  "System Administrator",
			Details:    `{"complaintId":3,"to":"Resolved"}`,
			URL:        "/complaints/3",
			SessionID:  "sess-1",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteActivityLogs(&buf, logs))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "STATUS_CHANGE", records[1][1])
	assert.Equal(t, `{"complaintId":3,"to":"Resolved"}`, records[1][5])
	assert.Equal(t, "2025-01-23 12:00:00", records[1][0])
}
