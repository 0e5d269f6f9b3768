package domain

import (
	"fmt"
	"strings"
)

// Gender is the audience gender a rule targets or a viewer reports.
// GenderAny is a wildcard on the rule side.
type Gender string

const (
	GenderAny    Gender = "ANY"
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender normalises s into a Gender. An empty string maps to GenderAny.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(s))); g {
	case "", GenderAny:
		return GenderAny, nil
	case GenderMale, GenderFemale:
		return g, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

// DeviceType classifies the viewer's device.
type DeviceType string

const (
	DeviceMobile  DeviceType = "MOBILE"
	DeviceDesktop DeviceType = "DESKTOP"
	DeviceTablet  DeviceType = "TABLET"
	DeviceSmartTV DeviceType = "SMART_TV"
)

// ParseDeviceType normalises s into a DeviceType. An empty string yields an
// empty DeviceType, which never matches a device criterion.
func ParseDeviceType(s string) (DeviceType, error) {
	switch d := DeviceType(strings.ToUpper(strings.TrimSpace(s))); d {
	case "":
		return "", nil
	case DeviceMobile, DeviceDesktop, DeviceTablet, DeviceSmartTV:
		return d, nil
	default:
		return "", fmt.Errorf("unknown device type %q", s)
	}
}

// Demographics is the age/gender part of a targeting rule. All fields are
// optional; build it with NewDemographics to get the range checks.
type Demographics struct {
	AgeMin *int   `json:"age_min,omitempty"`
	AgeMax *int   `json:"age_max,omitempty"`
	Gender Gender `json:"gender,omitempty"`
}

// NewDemographics validates the age bounds and returns a Demographics value.
func NewDemographics(ageMin, ageMax *int, gender Gender) (Demographics, error) {
	if ageMin != nil && *ageMin < 0 {
		return Demographics{}, fmt.Errorf("%w: age_min %d is negative", ErrInvalidTargetingRule, *ageMin)
	}
	if ageMax != nil && *ageMax < 0 {
		return Demographics{}, fmt.Errorf("%w: age_max %d is negative", ErrInvalidTargetingRule, *ageMax)
	}
	if ageMin != nil && ageMax != nil && *ageMin > *ageMax {
		return Demographics{}, fmt.Errorf("%w: age_min %d exceeds age_max %d", ErrInvalidTargetingRule, *ageMin, *ageMax)
	}
	if gender == "" {
		gender = GenderAny
	}
	return Demographics{AgeMin: ageMin, AgeMax: ageMax, Gender: gender}, nil
}

// HasCriteria reports whether the demographics constrain anything at all.
func (d Demographics) HasCriteria() bool {
	return d.AgeMin != nil || d.AgeMax != nil || !d.anyGender()
}

func (d Demographics) anyGender() bool {
	return d.Gender == "" || d.Gender == GenderAny
}

// TargetingRule describes which audience a campaign wants to reach. Geo
// targets mix country and city tokens in one flat list; geo and keyword
// comparisons are case-insensitive.
type TargetingRule struct {
	ID           string        `json:"id"`
	CampaignID   string        `json:"campaign_id"`
	Demographics *Demographics `json:"demographics,omitempty"`
	GeoTargets   []string      `json:"geo_targets,omitempty"`
	DeviceTypes  []DeviceType  `json:"device_types,omitempty"`
	Keywords     []string      `json:"keywords,omitempty"`
}

// Validate checks the invariants a stored rule must hold.
func (r TargetingRule) Validate() error {
	if strings.TrimSpace(r.CampaignID) == "" {
		return fmt.Errorf("%w: campaign id is blank", ErrInvalidTargetingRule)
	}
	if r.Demographics != nil {
		d := r.Demographics
		if _, err := NewDemographics(d.AgeMin, d.AgeMax, d.Gender); err != nil {
			return err
		}
	}
	return nil
}

// HasCriteria reports whether the rule narrows the audience. A rule without
// criteria matches every viewer.
func (r TargetingRule) HasCriteria() bool {
	return r.hasDemographics() ||
		len(r.GeoTargets) > 0 ||
		len(r.DeviceTypes) > 0 ||
		len(r.Keywords) > 0
}

func (r TargetingRule) hasDemographics() bool {
	return r.Demographics != nil && r.Demographics.HasCriteria()
}
