package permissions

// Access is the level a protected operation declares.
type Access string

const (
	AccessAuthenticated Access = "authenticated"
	AccessCompany       Access = "company"
	AccessAdmin         Access = "admin"
)

// Remedy tells the client how the user can gain the missing access. Admin
// denials carry none: there is nothing a non-admin can do about it.
type Remedy struct {
	Action     string `json:"action"`
	RedirectTo string `json:"redirectTo"`
}

// Decision is the gate's verdict. Title and Description are human-readable
// and only set on denial.
type Decision struct {
	Allowed     bool    `json:"allowed"`
	Tier        Tier    `json:"tier"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Remedy      *Remedy `json:"remedy,omitempty"`
}

var accessTiers = map[Access]map[Tier]bool{
	AccessAuthenticated: {TierGeneral: true, TierCompany: true, TierAdmin: true},
	AccessCompany:       {TierCompany: true, TierAdmin: true},
	AccessAdmin:         {TierAdmin: true},
}

// Authorize evaluates a session against a required access level. Pure
// decision: the caller enforces it (abort, redirect, restricted render).
func Authorize(s Session, required Access) Decision {
	tier, _ := Classify(s)
	if accessTiers[required][tier] {
		return Decision{Allowed: true, Tier: tier}
	}

	d := Decision{Allowed: false, Tier: tier}
	switch required {
	case AccessCompany:
		d.Title = "Company verification required"
		d.Description = "This area is reserved for verified company employees."
		d.Remedy = &Remedy{Action: "verify-company", RedirectTo: "/company/verification"}
	case AccessAdmin:
		d.Title = "Admin only"
		d.Description = "This action requires administrator privileges."
		// no remedy: hard stop
	default:
		d.Title = "Sign in required"
		d.Description = "You must be signed in to do this."
		d.Remedy = &Remedy{Action: "login", RedirectTo: "/login"}
	}

	// A guest asking for company or admin access is first of all not signed
	// in; point them at login instead of a verification flow they cannot
	// reach anyway.
	if tier == TierGuest && required == AccessCompany {
		d.Remedy = &Remedy{Action: "login", RedirectTo: "/login"}
	}

	return d
}
