package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	anonymous = Anonymous
	owner     = Actor{ID: 1, Authenticated: true}
	other     = Actor{ID: 2, Authenticated: true}
	admin     = Actor{ID: 3, Admin: true, Authenticated: true}
)

func TestAuthorize_View(t *testing.T) {
	for _, actor := range []Actor{anonymous, owner, other, admin} {
		d := Authorize(actor, 1, ActionView)
		assert.True(t, d.Allowed)
	}
}

func TestAuthorize_New(t *testing.T) {
	d := Authorize(anonymous, 0, ActionNew)
	assert.True(t, d.Allowed)

	// Signed-in users get bounced home from the sign-up form.
	d = Authorize(owner, 0, ActionNew)
	assert.False(t, d.Allowed)
	assert.Equal(t, RedirectHome, d.Redirect)
}

func TestAuthorize_Index(t *testing.T) {
	d := Authorize(anonymous, 0, ActionIndex)
	assert.False(t, d.Allowed)
	assert.Equal(t, RedirectSignIn, d.Redirect)

	assert.True(t, Authorize(owner, 0, ActionIndex).Allowed)
}

func TestAuthorize_EditUpdate(t *testing.T) {
	for _, action := range []Action{ActionEdit, ActionUpdate} {
		d := Authorize(anonymous, 1, action)
		assert.False(t, d.Allowed)
		assert.Equal(t, RedirectSignIn, d.Redirect)

		d = Authorize(other, 1, action)
		assert.False(t, d.Allowed)
		assert.Equal(t, RedirectHome, d.Redirect)

		// Admins are not exempt from the owner-only rule.
		d = Authorize(admin, 1, action)
		assert.False(t, d.Allowed)
		assert.Equal(t, RedirectHome, d.Redirect)

		assert.True(t, Authorize(owner, 1, action).Allowed)
	}
}

func TestAuthorize_Destroy(t *testing.T) {
	d := Authorize(anonymous, 1, ActionDestroy)
	assert.False(t, d.Allowed)
	assert.Equal(t, RedirectSignIn, d.Redirect)

	d = Authorize(other, 1, ActionDestroy)
	assert.False(t, d.Allowed)
	assert.Equal(t, RedirectHome, d.Redirect)

	// The owner being the target does not help; destroy stays admin-only.
	d = Authorize(owner, 1, ActionDestroy)
	assert.False(t, d.Allowed)
	assert.Equal(t, RedirectHome, d.Redirect)

	assert.True(t, Authorize(admin, 1, ActionDestroy).Allowed)
	assert.True(t, Authorize(admin, admin.ID, ActionDestroy).Allowed)
}
