package cosa_test

import (
	"net/http"
	"testing"

	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/stretchr/testify/require"
)

// TestAdminUserManagement exercises the account administration surface.
func TestAdminUserManagement(t *testing.T) {
	client := setupServer(t)

	_, admin := newUser(t, client, "admin")
	student := registerUser(t, client, "student")

	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 2)

	got, err := admin.GetUser(t.Context(), student.ID)
	require.NoError(t, err)
	require.Equal(t, student.Username, got.Username)

	_, err = admin.GetUser(t.Context(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	requireAPIError(t, err, http.StatusNotFound, cosasdk.ErrorCodeNotFound)

	// Role change applies to the account record immediately.
	require.NoError(t, admin.SetUserRole(t.Context(), student.ID, "coordinator"))
	got, err = admin.GetUser(t.Context(), student.ID)
	require.NoError(t, err)
	require.Equal(t, "coordinator", got.Role)

	err = admin.SetUserRole(t.Context(), student.ID, "wizard")
	requireAPIError(t, err, http.StatusBadRequest, cosasdk.ErrorCodeInvalidRole)

	// Deactivate / reactivate.
	require.NoError(t, admin.SetUserActive(t.Context(), student.ID, false))
	got, err = admin.GetUser(t.Context(), student.ID)
	require.NoError(t, err)
	require.False(t, got.Active)

	require.NoError(t, admin.SetUserActive(t.Context(), student.ID, true))

	// Delete removes the account entirely.
	require.NoError(t, admin.DeleteUser(t.Context(), student.ID))
	_, err = admin.GetUser(t.Context(), student.ID)
	requireAPIError(t, err, http.StatusNotFound, cosasdk.ErrorCodeNotFound)
}

// TestAdminEndpointsForbiddenForOtherRoles checks that every non-admin
// role is turned away from the administration endpoints.
func TestAdminEndpointsForbiddenForOtherRoles(t *testing.T) {
	client := setupServer(t)
	target := registerUser(t, client, "student")

	for _, role := range []string{"student", "coordinator", "employer"} {
		_, session := newUser(t, client, role)

		_, err := session.ListUsers(t.Context())
		requireAPIError(t, err, http.StatusForbidden, cosasdk.ErrorCodeForbidden)

		err = session.SetUserActive(t.Context(), target.ID, false)
		requireAPIError(t, err, http.StatusForbidden, cosasdk.ErrorCodeForbidden)

		err = session.DeleteUser(t.Context(), target.ID)
		requireAPIError(t, err, http.StatusForbidden, cosasdk.ErrorCodeForbidden)
	}
}

// TestDeactivationKillsLiveSessions confirms an admin deactivating an
// account immediately revokes its open sessions, and that reactivation
// does not resurrect them.
func TestDeactivationKillsLiveSessions(t *testing.T) {
	client := setupServer(t)

	_, admin := newUser(t, client, "admin")
	user := registerUser(t, client, "employer")
	session, secret := authenticate(t, client, user.Username)

	require.NoError(t, admin.SetUserActive(t.Context(), user.ID, false))

	_, err := session.Me(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidToken)

	require.NoError(t, admin.SetUserActive(t.Context(), user.ID, true))

	// The old token stays dead, but a fresh login works.
	_, err = session.Me(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidToken)

	fresh := authenticateWithSecret(t, client, user.Username, secret)
	me, err := fresh.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
}

// TestRoleSnapshotOutlivesRoleChange checks authority is pinned at login:
// a role change only takes effect on the next session.
func TestRoleSnapshotOutlivesRoleChange(t *testing.T) {
	client := setupServer(t)

	_, admin := newUser(t, client, "admin")
	user := registerUser(t, client, "student")
	session, secret := authenticate(t, client, user.Username)

	// Students may list the job board but not post to it.
	_, err := session.ListJobs(t.Context())
	require.NoError(t, err)

	require.NoError(t, admin.SetUserRole(t.Context(), user.ID, "employer"))

	// The live session still carries student authority.
	_, err = session.PostJob(t.Context(), cosasdk.JobCreateRequest{Title: "Winter Intern"})
	requireAPIError(t, err, http.StatusForbidden, cosasdk.ErrorCodeForbidden)

	// A fresh login picks up the new role.
	fresh := authenticateWithSecret(t, client, user.Username, secret)
	_, err = fresh.PostJob(t.Context(), cosasdk.JobCreateRequest{Title: "Winter Intern"})
	require.NoError(t, err)
}
