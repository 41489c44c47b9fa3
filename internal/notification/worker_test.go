package notification

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ccms-backend/internal/model"
	"ccms-backend/internal/store"
)

// mockSender is a mock implementation of the Sender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PushSubscription{}, &model.ComplaintWatch{}))
	return db
}

func watch(t *testing.T, db *gorm.DB, endpoint string, complaintID int) {
	t.Helper()
	require.NoError(t, db.Create(&model.PushSubscription{
		Endpoint: endpoint,
		P256DH:   "test_p256dh",
		Auth:     "test_auth",
	}).Error)
	require.NoError(t, db.Create(&model.ComplaintWatch{
		SubscriptionEndpoint: endpoint,
		ComplaintID:          complaintID,
	}).Error)
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(bytes.NewBufferString("")),
	}
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, newTestDB(t), &webpush.Options{})

	wp.Dispatch(Event{ComplaintID: 3, Subject: "Projector Not Working", Status: store.StatusResolved})

	select {
	case job := <-wp.jobs:
		assert.Equal(t, 3, job.ComplaintID)
		assert.Equal(t, store.StatusResolved, job.Status)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_NotifiesWatchers(t *testing.T) {
	db := newTestDB(t)
	watch(t, db, "https://example.com/push", 3)

	wp := NewWorkerPool(1, db, &webpush.Options{})

	var wg sync.WaitGroup
	wg.Add(1)
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			assert.Equal(t, "https://example.com/push", sub.Endpoint)
			assert.Equal(t, "Complaint #3 (Projector Not Working) is now Resolved", string(payload))
			wg.Done()
			return okResponse(), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Event{ComplaintID: 3, Subject: "Projector Not Working", Status: store.StatusResolved})
	wg.Wait()
}

func TestWorkerPool_SkipsUnwatchedComplaints(t *testing.T) {
	db := newTestDB(t)
	watch(t, db, "https://example.com/push", 3)

	wp := NewWorkerPool(1, db, &webpush.Options{})

	var mu sync.Mutex
	var sends int
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			mu.Lock()
			sends++
			mu.Unlock()
			return okResponse(), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Event{ComplaintID: 99, Subject: "Nobody watches this", Status: store.StatusRejected})
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, sends)
}

func TestWorkerPool_DeletesExpiredSubscription(t *testing.T) {
	db := newTestDB(t)
	watch(t, db, "https://example.com/expired", 7)

	wp := NewWorkerPool(1, db, &webpush.Options{})
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusGone,
				Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Event{ComplaintID: 7, Subject: "Slow WiFi", Status: store.StatusInProgress})
	time.Sleep(100 * time.Millisecond)

	var count int64
	require.NoError(t, db.Model(&model.PushSubscription{}).Count(&count).Error)
	assert.Zero(t, count, "expired subscription should be removed")
}
