package crew

import (
	"regexp"
	"strings"
)

// DefaultCity is used when the selection output has no usable bullet.
const DefaultCity = "Paris"

// A "•" bullet, optional markdown bold, then a run of capitalised words.
var cityBulletRe = regexp.MustCompile(`•\s*\**\s*([A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*)*)`)

// ExtractCity picks the first bulleted city name from city-selection output.
// Later bullets are ignored even when they also look like cities.
func ExtractCity(text string) string {
	m := cityBulletRe.FindStringSubmatch(text)
	if m == nil {
		return DefaultCity
	}
	city := strings.TrimSpace(m[1])
	if city == "" {
		return DefaultCity
	}
	return city
}

// CustomCityAck is the city-selection text used when the user named the city.
func CustomCityAck(city string) string {
	return "User manually entered destination: **" + city + "**"
}
