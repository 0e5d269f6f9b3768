package domain

import "strings"

// Facet weights of the match score. A facet only counts towards the
// denominator when the rule specifies it.
const (
	DemographicsWeight = 30
	GeoWeight          = 25
	DeviceWeight       = 20
	KeywordWeight      = 25

	MaxMatchScore = 100
)

// Score measures how well rule fits user on a 0..100 scale. Earned points are
// renormalised by the points the rule could award, so a rule using a single
// facet still reaches 100 on a perfect match. A nil user scores 0 and a rule
// without criteria scores 100.
func Score(rule TargetingRule, user *UserContext) int {
	if user == nil {
		return 0
	}
	if !rule.HasCriteria() {
		return MaxMatchScore
	}

	var earned, possible int
	if rule.hasDemographics() {
		possible += DemographicsWeight
		if matchDemographics(*rule.Demographics, user) {
			earned += DemographicsWeight
		}
	}
	if len(rule.GeoTargets) > 0 {
		possible += GeoWeight
		if matchGeo(rule.GeoTargets, user) {
			earned += GeoWeight
		}
	}
	if len(rule.DeviceTypes) > 0 {
		possible += DeviceWeight
		if matchDevice(rule.DeviceTypes, user) {
			earned += DeviceWeight
		}
	}
	if len(rule.Keywords) > 0 {
		possible += KeywordWeight
		earned += keywordPoints(rule.Keywords, user.Keywords)
	}

	if possible == 0 {
		return 0
	}
	return earned * MaxMatchScore / possible
}

func matchDemographics(d Demographics, user *UserContext) bool {
	if d.AgeMin != nil && (user.Age == nil || *user.Age < *d.AgeMin) {
		return false
	}
	if d.AgeMax != nil && (user.Age == nil || *user.Age > *d.AgeMax) {
		return false
	}
	if d.anyGender() {
		return true
	}
	return user.EffectiveGender() == d.Gender
}

// matchGeo requires a known country; the city alone never earns geo points.
func matchGeo(targets []string, user *UserContext) bool {
	if user.Country == "" {
		return false
	}
	for _, t := range targets {
		if strings.EqualFold(t, user.Country) {
			return true
		}
		if user.City != "" && strings.EqualFold(t, user.City) {
			return true
		}
	}
	return false
}

func matchDevice(devices []DeviceType, user *UserContext) bool {
	if user.DeviceType == "" {
		return false
	}
	for _, d := range devices {
		if d == user.DeviceType {
			return true
		}
	}
	return false
}

// keywordPoints awards KeywordWeight in proportion to the share of rule
// keywords present in the user's keywords, truncating.
func keywordPoints(ruleKeywords, userKeywords []string) int {
	if len(userKeywords) == 0 {
		return 0
	}
	want := foldSet(ruleKeywords)
	have := foldSet(userKeywords)
	var hits int
	for k := range want {
		if _, ok := have[k]; ok {
			hits++
		}
	}
	return KeywordWeight * hits / len(want)
}

func foldSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
