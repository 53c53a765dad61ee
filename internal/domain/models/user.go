// internal/domain/models/user.go
package models

// User is a driver account as the admin API reports it.
//
// NOTE:
//   - IsActive (1 = active, 0 = inactive) is the canonical status field.
//     Some API responses also carry a Status string ("active"/"inactive");
//     it is decoded for wire compatibility but must never be used to make
//     decisions. Derive display state with Active / StatusLabel.
type User struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	MobilePhone string `json:"mobilePhone"` // login identifier, unique per the API contract
	IsActive    int    `json:"isActive"`
	Status      string `json:"status,omitempty"` // deprecated: derived upstream from IsActive

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Active reports whether the account is enabled, from IsActive alone.
func (u User) Active() bool {
	return u.IsActive == 1
}

// StatusLabel returns the display label for the account's state.
func (u User) StatusLabel() string {
	if u.Active() {
		return "Active"
	}
	return "Inactive"
}
