package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genesis-backend-go/internal/models"
)

type fakeMessageRepo struct {
	createFn func(ctx context.Context, message *models.Message) (*models.Message, error)
	calls    int
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	f.calls++
	if f.createFn == nil {
		created := *message
		created.ID = "msg-1"
		return &created, nil
	}
	return f.createFn(ctx, message)
}

func newTestMessageService(repo *fakeMessageRepo, now time.Time) *messageService {
	svc := NewMessageService(repo, nil).(*messageService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSendMessage(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := newTestMessageService(repo, time.UnixMilli(4200))

	created, err := svc.SendMessage(context.Background(), "user-1", models.MessageRequest{
		Message:   "hello",
		UserID:    "spoofed-user",
		Timestamp: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "msg-1", created.ID)
	assert.Equal(t, "hello", created.Message)
	assert.Equal(t, "user-1", created.UserID, "sender comes from the authenticated context")
	assert.Equal(t, int64(4200), created.Timestamp, "timestamp comes from the server clock")
	assert.Equal(t, "sent", created.Status)
}

func TestSendMessageEmpty(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := newTestMessageService(repo, time.Now())

	for _, body := range []string{"", "   ", "\n\t"} {
		created, err := svc.SendMessage(context.Background(), "user-1", models.MessageRequest{Message: body})
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Zero(t, repo.calls)
}

func TestSendMessageRepoError(t *testing.T) {
	repo := &fakeMessageRepo{createFn: func(ctx context.Context, message *models.Message) (*models.Message, error) {
		return nil, errors.New("firestore unavailable")
	}}
	svc := newTestMessageService(repo, time.Now())

	created, err := svc.SendMessage(context.Background(), "user-1", models.MessageRequest{Message: "hello"})
	assert.Nil(t, created)
	require.Error(t, err)
}
