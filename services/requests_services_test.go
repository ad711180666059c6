package services

import (
	"fmt"
	"testing"

	"gamediary/config"
	"gamediary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequest_Quota(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)

	for i := 0; i < config.MaxPendingRequests; i++ {
		_, err := CreateRequest(profile, fmt.Sprintf("please help %d", i))
		require.NoError(t, err)
	}

	_, err := CreateRequest(profile, "one too many")
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// Solving a request frees a slot.
	pending, err := PendingRequests()
	require.NoError(t, err)
	require.NotEmpty(t, pending)
	_, err = SwitchRequestStatus(pending[0].ID)
	require.NoError(t, err)

	_, err = CreateRequest(profile, "now it fits")
	assert.NoError(t, err)
}

func TestCreateRequest_QuotaIsPerProfile(t *testing.T) {
	setupTestDB(t)
	_, alice := createTestUser(t, "alice", models.RolePlayer, false)
	_, bob := createTestUser(t, "bob", models.RolePlayer, false)

	for i := 0; i < config.MaxPendingRequests; i++ {
		_, err := CreateRequest(alice, "from alice")
		require.NoError(t, err)
	}

	_, err := CreateRequest(bob, "from bob")
	assert.NoError(t, err)
}

func TestCreateRequest_NilProfile(t *testing.T) {
	setupTestDB(t)

	_, err := CreateRequest(nil, "anonymous")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSwitchRequestStatus_Reversible(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)

	request, err := CreateRequest(profile, "please help")
	require.NoError(t, err)
	assert.True(t, request.Active)

	solved, err := SwitchRequestStatus(request.ID)
	require.NoError(t, err)
	assert.False(t, solved.Active)

	reopened, err := SwitchRequestStatus(request.ID)
	require.NoError(t, err)
	assert.True(t, reopened.Active)
}

func TestSwitchRequestStatus_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := SwitchRequestStatus(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestListings(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)

	first, err := CreateRequest(profile, "first")
	require.NoError(t, err)
	_, err = CreateRequest(profile, "second")
	require.NoError(t, err)

	_, err = SwitchRequestStatus(first.ID)
	require.NoError(t, err)

	pending, err := PendingRequests()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].Text)
	require.NotNil(t, pending[0].Profile)
	assert.Equal(t, "alice", pending[0].Profile.Username())

	solved, err := SolvedRequests()
	require.NoError(t, err)
	require.Len(t, solved, 1)
	assert.Equal(t, "first", solved[0].Text)

	all, err := AllRequests()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := PendingCountForProfile(profile)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
