package entity

const (
	DefaultPickupLocation = "Main Gate"
	DefaultPaymentMethod  = "UPI"
)

type UserInfo struct {
	Name           string `json:"name"`
	CollegeID      string `json:"collegeId"`
	Phone          string `json:"phone"`
	PickupLocation string `json:"pickupLocation"`
	PaymentMethod  string `json:"paymentMethod"`
	Notes          string `json:"notes,omitempty"`
}

// MissingFields lists every required field that is empty. Pickup location,
// payment method and notes are not required.
func (u UserInfo) MissingFields() []string {
	var missing []string
	if u.Name == "" {
		missing = append(missing, "name")
	}
	if u.CollegeID == "" {
		missing = append(missing, "collegeId")
	}
	if u.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// ApplyDefaults fills the optional choice fields the way the checkout form
// pre-selects them.
func (u *UserInfo) ApplyDefaults() {
	if u.PickupLocation == "" {
		u.PickupLocation = DefaultPickupLocation
	}
	if u.PaymentMethod == "" {
		u.PaymentMethod = DefaultPaymentMethod
	}
}
