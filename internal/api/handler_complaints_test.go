package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccms-backend/internal/notification"
	"ccms-backend/internal/seed"
	"ccms-backend/internal/store"
)

type recordingNotifier struct {
	events []notification.Event
}

func (n *recordingNotifier) Dispatch(ev notification.Event) {
	n.events = append(n.events, ev)
}

func setupComplaintRouter() (*gin.Engine, store.Store, *recordingNotifier) {
	s := store.NewMemStore(seed.Complaints(), "")
	notifier := &recordingNotifier{}
	handler := NewHandler(s, nil, nil, notifier, nil, nil, nil)

	r := gin.Default()
	r.GET("/api/complaints", handler.ListComplaints)
	r.POST("/api/complaints", handler.CreateComplaint)
	r.GET("/api/complaints/export", handler.ExportComplaints)
	r.GET("/api/complaints/:id", handler.GetComplaint)
	r.PUT("/api/complaints/:id/status", handler.UpdateStatus)
	return r, s, notifier
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListComplaints(t *testing.T) {
	router, _, _ := setupComplaintRouter()

	w := doJSON(t, router, "GET", "/api/complaints", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var complaints []store.Complaint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &complaints))
	require.Len(t, complaints, 12)
	assert.Equal(t, 12, complaints[0].ID, "newest complaint should come first")
}

func TestListComplaintsFiltered(t *testing.T) {
	router, _, _ := setupComplaintRouter()

	w := doJSON(t, router, "GET", "/api/complaints?status=Pending", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var complaints []store.Complaint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &complaints))
	require.Len(t, complaints, 5)
	for _, c := range complaints {
		assert.Equal(t, store.StatusPending, c.Status)
	}
}

func TestListComplaintsBadStatus(t *testing.T) {
	router, _, _ := setupComplaintRouter()

	w := doJSON(t, router, "GET", "/api/complaints?status=Bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetComplaint(t *testing.T) {
	router, _, _ := setupComplaintRouter()

	w := doJSON(t, router, "GET", "/api/complaints/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var complaint store.Complaint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &complaint))
	assert.Equal(t, 3, complaint.ID)
	assert.Equal(t, "Projector Not Working in Lab 203", complaint.Subject)

	w = doJSON(t, router, "GET", "/api/complaints/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "GET", "/api/complaints/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComplaintRedactsAnonymous(t *testing.T) {
	router, s, _ := setupComplaintRouter()

	w := doJSON(t, router, "POST", "/api/complaints", gin.H{
		"subject":     "Leaking Tap",
		"category":    "Plumbing",
		"location":    "Hostel Block C, Floor 1",
		"submittedBy": "Priya Sharma",
		"email":       "priya@college.edu",
		"isAnonymous": true,
		"description": "The tap in the common washroom has been leaking for days.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created store.Complaint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 13, created.ID)
	assert.Equal(t, "Anonymous Student", created.SubmittedBy)
	assert.Empty(t, created.Email)

	// The store keeps the real identity for internal routing.
	stored, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", stored.SubmittedBy)
	assert.Equal(t, "priya@college.edu", stored.Email)
}

func TestCreateComplaintValidation(t *testing.T) {
	router, _, _ := setupComplaintRouter()

	w := doJSON(t, router, "POST", "/api/complaints", gin.H{"subject": "No description"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	router, _, notifier := setupComplaintRouter()

	// Pending -> In Progress assigns the default team and notifies watchers.
	w := doJSON(t, router, "PUT", "/api/complaints/1/status", gin.H{
		"status":  "In Progress",
		"remarks": "Electrician scheduled",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated store.Complaint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, store.StatusInProgress, updated.Status)
	assert.Equal(t, "Maintenance Team", updated.AssignedTo)
	assert.Equal(t, "Electrician scheduled", updated.AdminRemarks)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notification.Event{
		ComplaintID: 1,
		Subject:     "Broken Ceiling Fan in Room 101",
		Status:      store.StatusInProgress,
	}, notifier.events[0])

	// Resolving without remarks is rejected.
	w = doJSON(t, router, "PUT", "/api/complaints/1/status", gin.H{"status": "Resolved"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PUT", "/api/complaints/1/status", gin.H{
		"status":  "Resolved",
		"remarks": "Fan replaced",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, notifier.events, 2)

	// Resolved is terminal.
	w = doJSON(t, router, "PUT", "/api/complaints/1/status", gin.H{
		"status":  "In Progress",
		"remarks": "Reopening",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateStatusErrors(t *testing.T) {
	router, _, notifier := setupComplaintRouter()

	w := doJSON(t, router, "PUT", "/api/complaints/999/status", gin.H{"status": "In Progress"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Skipping In Progress is an illegal transition even with remarks.
	w = doJSON(t, router, "PUT", "/api/complaints/1/status", gin.H{
		"status":  "Resolved",
		"remarks": "Fixed",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, "PUT", "/api/complaints/1/status", gin.H{"remarks": "no status"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, notifier.events)
}

func TestExportComplaints(t *testing.T) {
	router, _, _ := setupComplaintRouter()

	w := doJSON(t, router, "GET", "/api/complaints/export?status=Resolved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "complaints.csv")

	lines := bytes.Split(bytes.TrimSpace(w.Body.Bytes()), []byte("\n"))
	require.Len(t, lines, 3, "header plus two resolved complaints")
	assert.True(t, bytes.HasPrefix(lines[0], []byte("ID,Subject,Category")))
}
