package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// Stored field names of a Profile document. Partial updates are keyed by these names.
const (
	ProfileFieldEmail        = "email"
	ProfileFieldUsername     = "username"
	ProfileFieldPhoneNumber  = "phoneNumber"
	ProfileFieldFirstName    = "firstName"
	ProfileFieldLastName     = "lastName"
	ProfileFieldGoogleID     = "googleId"
	ProfileFieldFacebookID   = "facebookId"
	ProfileFieldAuthProvider = "authProvider"
	ProfileFieldDateJoined   = "dateJoined"
	ProfileFieldLastLogin    = "lastLogin"
	ProfileFieldIsActive     = "isActive"
	ProfileFieldIsStaff      = "isStaff"
	ProfileFieldIsSuperuser  = "isSuperuser"
	ProfileFieldDisplayName  = "displayName"
	ProfileFieldPhotoURL     = "photoURL"
)

// ProfileFields lists every stored Profile field.
var ProfileFields = []string{
	ProfileFieldEmail,
	ProfileFieldUsername,
	ProfileFieldPhoneNumber,
	ProfileFieldFirstName,
	ProfileFieldLastName,
	ProfileFieldGoogleID,
	ProfileFieldFacebookID,
	ProfileFieldAuthProvider,
	ProfileFieldDateJoined,
	ProfileFieldLastLogin,
	ProfileFieldIsActive,
	ProfileFieldIsStaff,
	ProfileFieldIsSuperuser,
	ProfileFieldDisplayName,
	ProfileFieldPhotoURL,
}

// NullableProfileFields are the stored fields that may hold null.
var NullableProfileFields = map[string]struct{}{
	ProfileFieldPhoneNumber: {},
	ProfileFieldGoogleID:    {},
	ProfileFieldFacebookID:  {},
	ProfileFieldPhotoURL:    {},
}

// Profile is the application-level record describing a user.
// Its document ID is always the owning Identity's UID.
type Profile struct {
	Email        string    `firestore:"email" bson:"email" json:"email"`
	Username     string    `firestore:"username" bson:"username" json:"username"`
	PhoneNumber  *string   `firestore:"phoneNumber" bson:"phoneNumber" json:"phoneNumber"`
	FirstName    string    `firestore:"firstName" bson:"firstName" json:"firstName"`
	LastName     string    `firestore:"lastName" bson:"lastName" json:"lastName"`
	GoogleID     *string   `firestore:"googleId" bson:"googleId" json:"googleId"`
	FacebookID   *string   `firestore:"facebookId" bson:"facebookId" json:"facebookId"`
	AuthProvider string    `firestore:"authProvider" bson:"authProvider" json:"authProvider"`
	DateJoined   time.Time `firestore:"dateJoined" bson:"dateJoined" json:"dateJoined"`
	LastLogin    time.Time `firestore:"lastLogin" bson:"lastLogin" json:"lastLogin"`
	IsActive     bool      `firestore:"isActive" bson:"isActive" json:"isActive"`
	IsStaff      bool      `firestore:"isStaff" bson:"isStaff" json:"isStaff"`
	IsSuperuser  bool      `firestore:"isSuperuser" bson:"isSuperuser" json:"isSuperuser"`
	DisplayName  string    `firestore:"displayName" bson:"displayName" json:"displayName"`
	PhotoURL     *string   `firestore:"photoURL" bson:"photoURL" json:"photoURL"`
}

// ProfileExtra carries caller-supplied profile fields. Every non-nil field, and
// every Nullable that is Set, overrides whatever was derived from defaults or from the Identity.
type ProfileExtra struct {
	Email        *string    `json:"email,omitempty"`
	Username     *string    `json:"username,omitempty"`
	PhoneNumber  Nullable   `json:"phoneNumber"`
	FirstName    *string    `json:"firstName,omitempty"`
	LastName     *string    `json:"lastName,omitempty"`
	GoogleID     Nullable   `json:"googleId"`
	FacebookID   Nullable   `json:"facebookId"`
	AuthProvider *string    `json:"authProvider,omitempty"`
	DateJoined   *time.Time `json:"dateJoined,omitempty"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	IsActive     *bool      `json:"isActive,omitempty"`
	IsStaff      *bool      `json:"isStaff,omitempty"`
	IsSuperuser  *bool      `json:"isSuperuser,omitempty"`
	DisplayName  *string    `json:"displayName,omitempty"`
	PhotoURL     Nullable   `json:"photoURL"`
}

// ApplyTo overwrites the profile with every field set on the extra.
func (x *ProfileExtra) ApplyTo(p *Profile) {
	if x == nil {
		return
	}

	setString(&p.Email, x.Email)
	setString(&p.Username, x.Username)
	setNullable(&p.PhoneNumber, x.PhoneNumber)
	setString(&p.FirstName, x.FirstName)
	setString(&p.LastName, x.LastName)
	setNullable(&p.GoogleID, x.GoogleID)
	setNullable(&p.FacebookID, x.FacebookID)
	setString(&p.AuthProvider, x.AuthProvider)
	if x.DateJoined != nil {
		p.DateJoined = *x.DateJoined
	}
	if x.LastLogin != nil {
		p.LastLogin = *x.LastLogin
	}
	setBool(&p.IsActive, x.IsActive)
	setBool(&p.IsStaff, x.IsStaff)
	setBool(&p.IsSuperuser, x.IsSuperuser)
	setString(&p.DisplayName, x.DisplayName)
	setNullable(&p.PhotoURL, x.PhotoURL)
}

// Nullable is an optional string field that can also be set to null.
// The zero value means "not supplied".
type Nullable struct {
	Set   bool
	Value *string
}

// NullableOf wraps a pointer: nil stays unsupplied, anything else sets the value.
func NullableOf(s *string) Nullable {
	if s == nil {
		return Nullable{}
	}

	v := *s

	return Nullable{Set: true, Value: &v}
}

// Null is a supplied null.
func Null() Nullable {
	return Nullable{Set: true}
}

// UnmarshalJSON marks the field as supplied, including an explicit null.
func (n *Nullable) UnmarshalJSON(data []byte) error {
	n.Set = true
	n.Value = nil
	if string(data) == "null" {
		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v

	return nil
}

func (n Nullable) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

// EmailLocalPart returns the part of an email address before the first "@".
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}

// NullableString maps "" to nil.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setNullable(dst **string, src Nullable) {
	if !src.Set {
		return
	}
	if src.Value == nil {
		*dst = nil

		return
	}

	v := *src.Value
	*dst = &v
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
