package domain

// Role is the coarse capability class of an account, fixed at creation.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

// User is the domain model for portal accounts. Citizens register themselves;
// the single admin account is seeded at bootstrap.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Region       string
}
