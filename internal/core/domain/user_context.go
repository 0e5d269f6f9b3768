package domain

// UserContext describes the viewer behind an ad request: demographics,
// location, device and interest keywords. It is built per request by the
// inbound adapter and never stored.
type UserContext struct {
	Age        *int       `json:"age,omitempty"`
	Gender     Gender     `json:"gender,omitempty"`
	Country    string     `json:"country,omitempty"`
	City       string     `json:"city,omitempty"`
	DeviceType DeviceType `json:"device_type,omitempty"`
	Keywords   []string   `json:"keywords,omitempty"`
}

// EffectiveGender returns the viewer gender, defaulting to GenderAny.
func (u UserContext) EffectiveGender() Gender {
	if u.Gender == "" {
		return GenderAny
	}
	return u.Gender
}
