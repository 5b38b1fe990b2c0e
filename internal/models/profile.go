package models

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RolePastor    Role = "pastor"
	RoleTreasurer Role = "tesoureiro"
	RoleLeader    Role = "lider"
	RoleMember    Role = "membro"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePastor, RoleTreasurer, RoleLeader, RoleMember:
		return true
	}
	return false
}

type MemberStatus string

const (
	StatusMember   MemberStatus = "membro"
	StatusVisitor  MemberStatus = "visitante"
	StatusInactive MemberStatus = "inativo"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case StatusMember, StatusVisitor, StatusInactive:
		return true
	}
	return false
}

// Profile is a person known to a church: member, visitor or staff.
type Profile struct {
	ID           string       `json:"id"`
	ChurchID     string       `json:"church_id"`
	Name         string       `json:"name"`
	Email        *string      `json:"email,omitempty"`
	Phone        string       `json:"phone"`
	BirthDate    *time.Time   `json:"birth_date,omitempty"`
	Address      string       `json:"address,omitempty"`
	Role         Role         `json:"role"`
	Status       MemberStatus `json:"status"`
	AvatarURL    *string      `json:"avatar_url,omitempty"`
	PasswordHash *string      `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type ProfileFilter struct {
	Query  string
	Status MemberStatus
	Limit  int
	Offset int
}
