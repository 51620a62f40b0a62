package session

import (
	"strings"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/models"
)

var documentFields = map[models.DocumentKind]string{
	models.DocumentIDCard:              FieldIDCard,
	models.DocumentDrivingLicense:      FieldDrivingLicense,
	models.DocumentVehicleRegistration: FieldVehicleRegistration,
}

// Gate tracks a driver's verification and decides whether they may go online.
// Gate is not safe for concurrent use; Session serializes access.
type Gate struct {
	profile models.DriverProfile
}

// NewGate creates an unverified profile for the driver
func NewGate(driverID string) *Gate {
	return &Gate{
		profile: models.DriverProfile{
			DriverID:          driverID,
			VehicleType:       models.VehicleUnset,
			Documents:         make(map[models.DocumentKind]bool, len(models.RequiredDocuments)),
			VerificationState: models.VerificationUnverified,
		},
	}
}

// Profile returns a copy of the profile
func (g *Gate) Profile() models.DriverProfile {
	p := g.profile
	p.Documents = make(map[models.DocumentKind]bool, len(g.profile.Documents))
	for k, v := range g.profile.Documents {
		p.Documents[k] = v
	}
	if g.profile.VerifiedAt != nil {
		at := *g.profile.VerifiedAt
		p.VerifiedAt = &at
	}
	return p
}

// Verified reports whether the driver passed verification
func (g *Gate) Verified() bool {
	return g.profile.VerificationState == models.VerificationVerified
}

func (g *Gate) locked() bool {
	return g.profile.VerificationState != models.VerificationUnverified
}

// SelectVehicle sets the vehicle type. Changing the type of a verified or
// pending profile re-opens the gate; reopened reports whether that happened.
func (g *Gate) SelectVehicle(v models.VehicleType, brand, model string) (reopened bool, err error) {
	if !v.Valid() {
		return false, ErrInvalidVehicleType
	}
	if g.locked() && v != g.profile.VehicleType {
		g.profile.VerificationState = models.VerificationUnverified
		g.profile.VerifiedAt = nil
		reopened = true
	}
	g.profile.VehicleType = v
	if brand != "" {
		g.profile.VehicleBrand = strings.TrimSpace(brand)
	}
	if model != "" {
		g.profile.VehicleModel = strings.TrimSpace(model)
	}
	return reopened, nil
}

// SubmitDocument marks a document as present. Content is never inspected.
func (g *Gate) SubmitDocument(kind models.DocumentKind, upload models.DocumentUpload) error {
	if _, ok := documentFields[kind]; !ok {
		return ErrUnknownDocument
	}
	if upload.Size <= 0 && len(upload.Content) == 0 {
		return ErrEmptyDocument
	}
	if g.locked() {
		return ErrProfileLocked
	}
	g.profile.Documents[kind] = true
	return nil
}

// SetPlateNumber stores the trimmed plate number
func (g *Gate) SetPlateNumber(plate string) error {
	if g.locked() {
		return ErrProfileLocked
	}
	g.profile.PlateNumber = strings.ToUpper(strings.TrimSpace(plate))
	return nil
}

// Missing lists the fields that block onboarding in reporting order
func (g *Gate) Missing() []string {
	var missing []string
	if !g.profile.VehicleType.Valid() {
		missing = append(missing, FieldVehicleType)
	}
	for _, kind := range models.RequiredDocuments {
		if !g.profile.Documents[kind] {
			missing = append(missing, documentFields[kind])
		}
	}
	if g.profile.PlateNumber == "" {
		missing = append(missing, FieldPlateNumber)
	}
	return missing
}

func (g *Gate) checkComplete() error {
	if missing := g.Missing(); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// CompleteOnboarding verifies the profile in one step. Nothing changes on failure.
func (g *Gate) CompleteOnboarding(now time.Time) error {
	if g.Verified() {
		return nil
	}
	if err := g.checkComplete(); err != nil {
		return err
	}
	g.profile.VerificationState = models.VerificationVerified
	g.profile.VerifiedAt = &now
	return nil
}

// SubmitForReview moves a complete profile to pending
func (g *Gate) SubmitForReview() error {
	if g.locked() {
		return nil
	}
	if err := g.checkComplete(); err != nil {
		return err
	}
	g.profile.VerificationState = models.VerificationPending
	return nil
}

// Approve finishes a pending review. It reports false when the profile is
// no longer pending, for example after a vehicle change.
func (g *Gate) Approve(now time.Time) bool {
	if g.profile.VerificationState != models.VerificationPending {
		return false
	}
	g.profile.VerificationState = models.VerificationVerified
	g.profile.VerifiedAt = &now
	return true
}
