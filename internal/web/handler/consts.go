package handler

const (
	// RouterRootPath is the root path used when registering grouped routes.
	RouterRootPath = "/"

	// SessionCookieName is the name of the login session cookie.
	SessionCookieName = "session"

	// LocalsSessionKey is the fiber.Locals key holding the per-request
	// session resolver.
	LocalsSessionKey = "portalbox_session"

	// CheckAlivePath is probed by load balancers.
	CheckAlivePath = "/checkalive"
)
