// Package lexicon provides the keyword, verb, and pattern tables that drive
// cover letter scoring, together with their validation and compilation.
package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role name is not part of the AIRole set.
var ErrUnknownRole = errors.New("unknown role")

// Severity ranks red flags.
type Severity int

// Severity levels. The zero value is invalid so that an unset severity
// can never pass validation.
const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
)

var severityNames = map[Severity]string{
	SeverityLow:    "low",
	SeverityMedium: "medium",
	SeverityHigh:   "high",
}

// String returns the lowercase severity name.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Valid reports whether s is one of the defined levels.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// ParseSeverity converts "high", "medium", or "low" (any case) to a Severity.
func ParseSeverity(s string) (Severity, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for sev, name := range severityNames {
		if name == needle {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("invalid severity %q (want high, medium, or low)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Role identifies one of the closed set of AI roles that carry dedicated
// keyword lists. RoleNone means no role was supplied.
type Role int

const (
	RoleNone Role = iota
	RoleMachineLearningEngineer
	RoleDataScientist
	RoleAIResearcher
	RoleMLOpsEngineer
	RoleDataEngineer
	RoleNLPEngineer
	RoleComputerVisionEngineer

	roleCount
)

var roleNames = [roleCount]string{
	RoleNone:                    "",
	RoleMachineLearningEngineer: "Machine Learning Engineer",
	RoleDataScientist:           "Data Scientist",
	RoleAIResearcher:            "AI Researcher",
	RoleMLOpsEngineer:           "MLOps Engineer",
	RoleDataEngineer:            "Data Engineer",
	RoleNLPEngineer:             "NLP Engineer",
	RoleComputerVisionEngineer:  "Computer Vision Engineer",
}

// String returns the display name of the role, or "" for RoleNone.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Valid reports whether r is RoleNone or a member of the AIRole set.
func (r Role) Valid() bool {
	return r >= RoleNone && r < roleCount
}

// Roles returns every AIRole in declaration order, excluding RoleNone.
func Roles() []Role {
	roles := make([]Role, 0, roleCount-1)
	for r := RoleNone + 1; r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// ParseRole resolves a display name (case-insensitive, surrounding
// whitespace ignored) to a Role. The empty string yields RoleNone.
func ParseRole(s string) (Role, error) {
	needle := strings.TrimSpace(s)
	if needle == "" {
		return RoleNone, nil
	}
	for _, r := range Roles() {
		if strings.EqualFold(roleNames[r], needle) {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// VerbBucket is one of the four action verb categories.
type VerbBucket int

const (
	BucketAchievement VerbBucket = iota
	BucketTechnical
	BucketLeadership
	BucketCollaboration

	// NumBuckets is the number of verb buckets.
	NumBuckets
)

var bucketNames = [NumBuckets]string{
	BucketAchievement:   "achievement",
	BucketTechnical:     "technical",
	BucketLeadership:    "leadership",
	BucketCollaboration: "collaboration",
}

// String returns the lowercase bucket name.
func (b VerbBucket) String() string {
	if b < 0 || b >= NumBuckets {
		return fmt.Sprintf("bucket(%d)", int(b))
	}
	return bucketNames[b]
}

// Buckets returns all verb buckets in declaration order.
func Buckets() []VerbBucket {
	return []VerbBucket{BucketAchievement, BucketTechnical, BucketLeadership, BucketCollaboration}
}

// ParseBucket resolves a bucket name (case-insensitive).
func ParseBucket(s string) (VerbBucket, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, b := range Buckets() {
		if bucketNames[b] == needle {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown verb bucket %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b VerbBucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *VerbBucket) UnmarshalText(text []byte) error {
	parsed, err := ParseBucket(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
