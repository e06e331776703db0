package auth

// Action is an operation an actor may attempt against a user resource.
type Action string

const (
	ActionView    Action = "view"
	ActionIndex   Action = "index"
	ActionNew     Action = "new"
	ActionEdit    Action = "edit"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// Redirect names the destination a denied actor should be sent to.
type Redirect string

const (
	RedirectNone   Redirect = ""
	RedirectSignIn Redirect = "signin"
	RedirectHome   Redirect = "home"
)

// Actor identifies the caller of a request. The zero value is anonymous.
type Actor struct {
	ID            uint
	Admin         bool
	Authenticated bool
}

// Anonymous is the unauthenticated actor.
var Anonymous = Actor{}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed  bool
	Redirect Redirect
	Reason   string
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(r Redirect, reason string) Decision {
	return Decision{Redirect: r, Reason: reason}
}

// Authorize decides whether the actor may perform the action on the target
// user. targetID is ignored for actions without a specific target (index,
// new). Session state is passed in explicitly via the actor; there is no
// ambient current-user.
func Authorize(actor Actor, targetID uint, action Action) Decision {
	switch action {
	case ActionView:
		// Profiles are public, including for anonymous visitors.
		return allowed()

	case ActionNew:
		// A signed-in user has no business on the sign-up form.
		if actor.Authenticated {
			return denied(RedirectHome, "already signed in")
		}
		return allowed()

	case ActionIndex:
		if !actor.Authenticated {
			return denied(RedirectSignIn, "please sign in")
		}
		return allowed()

	case ActionEdit, ActionUpdate:
		if !actor.Authenticated {
			return denied(RedirectSignIn, "please sign in")
		}
		if actor.ID != targetID {
			return denied(RedirectHome, "cannot edit another user")
		}
		return allowed()

	case ActionDestroy:
		if !actor.Authenticated {
			return denied(RedirectSignIn, "please sign in")
		}
		if !actor.Admin {
			return denied(RedirectHome, "admin access required")
		}
		return allowed()
	}

	return denied(RedirectHome, "unknown action")
}
