// Package export serializes complaint and activity data to CSV for download
// from the admin console.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"ccms-backend/internal/model"
	"ccms-backend/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

// AnonymousDisplayName replaces the submitter identity of anonymous
// complaints in every exported or displayed row.
const AnonymousDisplayName = "Anonymous Student"

var complaintHeaders = []string{
	"ID",
	"Subject",
	"Category",
	"Location",
	"Status",
	"Priority",
	"Submitted By",
	"Email",
	"Submitted At",
	"Description",
	"Admin Remarks",
	"Updated At",
}

// WriteComplaints writes the fixed-column CSV rendering of the given
// complaints. Free-text fields are quoted with doubled internal quotes per
// standard CSV rules (encoding/csv handles that). Identity fields of
// anonymous complaints are withheld.
func WriteComplaints(w io.Writer, complaints []store.Complaint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(complaintHeaders); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range complaints {
		submittedBy, email := c.SubmittedBy, c.Email
		if c.IsAnonymous {
			submittedBy, email = AnonymousDisplayName, ""
		}
		row := []string{
			strconv.Itoa(c.ID),
			c.Subject,
			c.Category,
			c.Location,
			string(c.Status),
			string(c.Priority),
			submittedBy,
			email,
			c.SubmittedAt.Format(timeLayout),
			c.Description,
			c.AdminRemarks,
			c.UpdatedAt.Format(timeLayout),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for complaint %d: %w", c.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

var activityHeaders = []string{
	"Timestamp",
	"Type",
	"Admin Name",
	"Admin Email",
	"Admin Role",
	"Action Details",
	"URL",
	"Device",
	"Session ID",
}

// WriteActivityLogs writes the CSV rendering of the given audit entries.
func WriteActivityLogs(w io.Writer, logs []model.ActivityLog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(activityHeaders); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, l := range logs {
		row := []string{
			l.Timestamp.Format(timeLayout),
			l.Type,
			l.ActorName,
			l.ActorEmail,
			l.ActorRole,
			l.Details,
			l.URL,
			l.Device,
			l.SessionID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for log %s: %w", l.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
