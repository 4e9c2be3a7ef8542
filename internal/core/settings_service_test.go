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

type fakeSettingsRepo struct {
	err       error
	enabled   bool
	updatedBy string
	at        time.Time
	calls     int
}

func (f *fakeSettingsRepo) SetRootEnabled(ctx context.Context, enabled bool, updatedBy string, at time.Time) error {
	f.calls++
	f.enabled = enabled
	f.updatedBy = updatedBy
	f.at = at
	return f.err
}

func newTestSettingsService(repo *fakeSettingsRepo, audit AuditService) *settingsService {
	svc := NewSettingsService(repo, audit, nil).(*settingsService)
	svc.now = func() time.Time { return time.UnixMilli(8000) }
	return svc
}

func TestToggleRoot(t *testing.T) {
	repo := &fakeSettingsRepo{}
	audit := &fakeAuditService{}
	svc := newTestSettingsService(repo, audit)
	admin := &models.Identity{UID: "admin-1", IsAdmin: true}

	require.NoError(t, svc.ToggleRoot(context.Background(), admin, true))

	assert.True(t, repo.enabled)
	assert.Equal(t, "admin-1", repo.updatedBy)
	assert.Equal(t, time.UnixMilli(8000).UTC(), repo.at)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "ROOT_TOGGLE", audit.entries[0].Action)
	assert.Equal(t, "admin-1", audit.entries[0].UserID)
}

func TestToggleRootRequiresAdmin(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := newTestSettingsService(repo, nil)

	err := svc.ToggleRoot(context.Background(), &models.Identity{UID: "user-1"}, true)
	assert.ErrorIs(t, err, ErrAdminRequired)
	assert.Zero(t, repo.calls, "the repository must not be touched on a denied toggle")

	err = svc.ToggleRoot(context.Background(), nil, true)
	assert.ErrorIs(t, err, ErrAdminRequired)
}

func TestToggleRootRepoError(t *testing.T) {
	repo := &fakeSettingsRepo{err: errors.New("firestore unavailable")}
	audit := &fakeAuditService{}
	svc := newTestSettingsService(repo, audit)

	err := svc.ToggleRoot(context.Background(), &models.Identity{UID: "admin-1", IsAdmin: true}, false)
	require.Error(t, err)
	assert.Empty(t, audit.entries, "no audit entry for a failed toggle")
}

func TestToggleRootAuditFailureIsNonFatal(t *testing.T) {
	repo := &fakeSettingsRepo{}
	audit := &fakeAuditService{err: errors.New("audit collection unavailable")}
	svc := newTestSettingsService(repo, audit)

	err := svc.ToggleRoot(context.Background(), &models.Identity{UID: "admin-1", IsAdmin: true}, true)
	assert.NoError(t, err)
}
