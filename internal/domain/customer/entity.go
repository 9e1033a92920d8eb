package customer

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName  = errors.New("customer name cannot be empty")
	ErrEmptyPhone = errors.New("customer phone cannot be empty")
)

const RoleCustomer = "customer"

// Profile is the guest record upserted as a side effect of booking. The
// phone number is the unique key; repeated bookings refresh the name.
type Profile struct {
	fullName string
	phone    string
	role     string
}

func NewProfile(fullName, phone string) (*Profile, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	if fullName == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	return &Profile{
		fullName: fullName,
		phone:    phone,
		role:     RoleCustomer,
	}, nil
}

func (p *Profile) FullName() string { return p.fullName }
func (p *Profile) Phone() string    { return p.phone }
func (p *Profile) Role() string     { return p.role }
