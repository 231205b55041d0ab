package domain

// Perm is a client-side permission used to decide what to show
type Perm string

const (
	PermStaff          Perm = "staff"
	PermModerate       Perm = "moderate"
	PermCreateNewsPost Perm = "create:news_post"
)

// Discord role IDs that grant permissions
const (
	RoleAdministrator = "441043545735036929"
	RoleModerator     = "442462642599231499"
	RoleArchivist     = "475413811394904074"
	RoleDeveloper     = "871819872408055828"
	RoleMechanic      = "477773789724409861"
	RoleHacker        = "442987546046103562"
	RoleTester        = "442988314480476170"
	RoleCurator       = "442665038642413569"
	RoleEditor        = "1128307753459392513"
)

var modRoles = []string{RoleAdministrator, RoleModerator}

var staffRoles = []string{
	RoleAdministrator, RoleModerator, RoleArchivist, RoleDeveloper, RoleMechanic,
	RoleHacker, RoleEditor, RoleTester, RoleCurator,
}

// DerivePermissions maps Discord role IDs to client permissions.
// The server re-checks everything; this only gates visibility.
func DerivePermissions(roleIDs []string) []Perm {
	perms := []Perm{}
	if containsAny(roleIDs, modRoles) {
		perms = append(perms, PermCreateNewsPost, PermModerate)
	}
	if containsAny(roleIDs, staffRoles) {
		perms = append(perms, PermStaff)
	}
	return perms
}

func containsAny(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Session is the already-resolved login state handed to the client
type Session struct {
	User User
}

// NewSession builds a session for an authenticated user and derives its permissions
func NewSession(id, username string, roles []string) Session {
	return Session{User: User{
		ID:       id,
		Authed:   id != "",
		Username: username,
		Roles:    append([]string(nil), roles...),
		Perms:    DerivePermissions(roles),
	}}
}

// LoggedIn returns true if the session carries an authenticated user
func (s Session) LoggedIn() bool {
	return s.User.Authed
}

// Can reports whether the session holds the given permission
func (s Session) Can(p Perm) bool {
	return s.User.HasPerm(p)
}
