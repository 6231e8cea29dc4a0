package profile

import (
	"regexp"
	"strings"
	"time"

	"flightdeals/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidID     = errs.NewValidation("profile id is required")
	ErrInvalidName   = errs.NewValidation("name must be 1-100 characters")
	ErrInvalidEmail  = errs.NewValidation("invalid email format")
	ErrInvalidPhone  = errs.NewValidation("invalid phone number")
	ErrExpiryNoGrant = errs.NewValidation("premium expiry requires an active premium flag")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)
)

// Profile mirrors the identity provider's subject. Premium state is stored as a
// flag plus an optional expiry and is only trusted through PremiumActiveAt.
type Profile struct {
	id               uuid.UUID
	name             string
	email            string
	phone            *string
	isPremium        bool
	premiumExpiresAt *time.Time
	isAdmin          bool
	createdAt        time.Time
	updatedAt        time.Time
}

func New(id uuid.UUID, name, email string, now time.Time) (*Profile, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	e := strings.TrimSpace(email)
	if !emailRegex.MatchString(e) {
		return nil, ErrInvalidEmail
	}
	return &Profile{
		id:        id,
		name:      n,
		email:     e,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, email string, phone *string, isPremium bool, premiumExpiresAt *time.Time, isAdmin bool, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		id:               id,
		name:             name,
		email:            email,
		phone:            phone,
		isPremium:        isPremium,
		premiumExpiresAt: premiumExpiresAt,
		isAdmin:          isAdmin,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// PremiumActiveAt reports whether the premium grant is valid at now. An elapsed
// expiry wins over the stored flag; nothing sweeps expired grants.
func (p *Profile) PremiumActiveAt(now time.Time) bool {
	if p == nil || !p.isPremium {
		return false
	}
	if p.premiumExpiresAt == nil {
		return true
	}
	return now.Before(*p.premiumExpiresAt)
}

// UpdateContact is the self-service edit. Nil leaves a field unchanged; an
// empty phone clears it.
func (p *Profile) UpdateContact(name, phone *string, now time.Time) error {
	next := *p
	if name != nil {
		n, err := normalizeName(*name)
		if err != nil {
			return err
		}
		next.name = n
	}
	if phone != nil {
		ph := strings.TrimSpace(*phone)
		switch {
		case ph == "":
			next.phone = nil
		case !phoneRegex.MatchString(ph):
			return ErrInvalidPhone
		default:
			next.phone = &ph
		}
	}
	next.updatedAt = now
	*p = next
	return nil
}

// GrantAdmin returns false when the profile already was an admin.
func (p *Profile) GrantAdmin(now time.Time) bool {
	if p.isAdmin {
		return false
	}
	p.isAdmin = true
	p.updatedAt = now
	return true
}

// SetSubscription overwrites the premium grant. A nil expiry means no expiry
// while the flag holds.
func (p *Profile) SetSubscription(isPremium bool, expiresAt *time.Time, now time.Time) error {
	if !isPremium && expiresAt != nil {
		return ErrExpiryNoGrant
	}
	p.isPremium = isPremium
	if expiresAt != nil {
		t := expiresAt.UTC()
		p.premiumExpiresAt = &t
	} else {
		p.premiumExpiresAt = nil
	}
	p.updatedAt = now
	return nil
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" || len([]rune(n)) > 100 {
		return "", ErrInvalidName
	}
	return n, nil
}

func (p *Profile) ID() uuid.UUID                { return p.id }
func (p *Profile) Name() string                 { return p.name }
func (p *Profile) Email() string                { return p.email }
func (p *Profile) Phone() *string               { return p.phone }
func (p *Profile) IsPremium() bool              { return p.isPremium }
func (p *Profile) PremiumExpiresAt() *time.Time { return p.premiumExpiresAt }
func (p *Profile) IsAdmin() bool                { return p.isAdmin }
func (p *Profile) CreatedAt() time.Time         { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time         { return p.updatedAt }
