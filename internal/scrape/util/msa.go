package util

import (
	"sort"
	"strings"
)

// msaByCity maps a lowercase city to its Metropolitan Statistical Area.
var msaByCity = map[string]string{
	"new york":       "New York-Newark-Jersey City, NY-NJ-PA",
	"brooklyn":       "New York-Newark-Jersey City, NY-NJ-PA",
	"jersey city":    "New York-Newark-Jersey City, NY-NJ-PA",
	"newark":         "New York-Newark-Jersey City, NY-NJ-PA",
	"los angeles":    "Los Angeles-Long Beach-Anaheim, CA",
	"long beach":     "Los Angeles-Long Beach-Anaheim, CA",
	"irvine":         "Los Angeles-Long Beach-Anaheim, CA",
	"chicago":        "Chicago-Naperville-Elgin, IL-IN-WI",
	"dallas":         "Dallas-Fort Worth-Arlington, TX",
	"fort worth":     "Dallas-Fort Worth-Arlington, TX",
	"plano":          "Dallas-Fort Worth-Arlington, TX",
	"houston":        "Houston-The Woodlands-Sugar Land, TX",
	"washington":     "Washington-Arlington-Alexandria, DC-VA-MD-WV",
	"arlington, va":  "Washington-Arlington-Alexandria, DC-VA-MD-WV",
	"miami":          "Miami-Fort Lauderdale-Pompano Beach, FL",
	"philadelphia":   "Philadelphia-Camden-Wilmington, PA-NJ-DE-MD",
	"atlanta":        "Atlanta-Sandy Springs-Alpharetta, GA",
	"boston":         "Boston-Cambridge-Newton, MA-NH",
	"cambridge, ma":  "Boston-Cambridge-Newton, MA-NH",
	"phoenix":        "Phoenix-Mesa-Chandler, AZ",
	"san francisco":  "San Francisco-Oakland-Berkeley, CA",
	"oakland":        "San Francisco-Oakland-Berkeley, CA",
	"san jose":       "San Jose-Sunnyvale-Santa Clara, CA",
	"sunnyvale":      "San Jose-Sunnyvale-Santa Clara, CA",
	"santa clara":    "San Jose-Sunnyvale-Santa Clara, CA",
	"mountain view":  "San Jose-Sunnyvale-Santa Clara, CA",
	"palo alto":      "San Jose-Sunnyvale-Santa Clara, CA",
	"seattle":        "Seattle-Tacoma-Bellevue, WA",
	"bellevue":       "Seattle-Tacoma-Bellevue, WA",
	"redmond":        "Seattle-Tacoma-Bellevue, WA",
	"minneapolis":    "Minneapolis-St. Paul-Bloomington, MN-WI",
	"san diego":      "San Diego-Chula Vista-Carlsbad, CA",
	"denver":         "Denver-Aurora-Lakewood, CO",
	"boulder":        "Boulder, CO",
	"austin":         "Austin-Round Rock-Georgetown, TX",
	"portland":       "Portland-Vancouver-Hillsboro, OR-WA",
	"raleigh":        "Raleigh-Cary, NC",
	"durham":         "Durham-Chapel Hill, NC",
	"salt lake city": "Salt Lake City, UT",
	"nashville":      "Nashville-Davidson--Murfreesboro--Franklin, TN",
	"pittsburgh":     "Pittsburgh, PA",
}

// msaOrder is longest key first so "arlington, va" is tried before shorter keys.
var msaOrder = sortedMSAKeys()

// MSAForLocation returns the MSA a location belongs to, or "".
func MSAForLocation(location string) string {
	loc := strings.ToLower(CleanText(location))
	if loc == "" {
		return ""
	}
	for _, city := range msaOrder {
		if strings.Contains(loc, city) {
			return msaByCity[city]
		}
	}
	return ""
}

func sortedMSAKeys() []string {
	keys := make([]string, 0, len(msaByCity))
	for k := range msaByCity {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
