package domain

type Role string

const (
	RoleVoter     Role = "voter"
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
	RoleLecturer  Role = "lecturer"
)

// Identity is the signed-in user. HasVoted is derived from the
// eligibility records whenever the identity is materialized; the
// stored snapshot is never trusted for it.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Role      Role   `json:"role"`
	HasVoted  bool   `json:"has_voted"`
}
