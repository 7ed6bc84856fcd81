package catalog

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Jurisdiction struct {
	Abbr string `json:"abbr" yaml:"abbr"`
	Name string `json:"name" yaml:"name"`
}

var states = []Jurisdiction{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AR", "Arkansas"}, {"AZ", "Arizona"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"},
	{"DC", "District of Columbia"}, {"DE", "Delaware"}, {"FL", "Florida"},
	{"GA", "Georgia"}, {"HI", "Hawaii"}, {"ID", "Idaho"}, {"IL", "Illinois"},
	{"IN", "Indiana"}, {"IA", "Iowa"}, {"KS", "Kansas"}, {"KY", "Kentucky"},
	{"LA", "Louisiana"}, {"ME", "Maine"}, {"MD", "Maryland"},
	{"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"},
	{"MS", "Mississippi"}, {"MO", "Missouri"}, {"MT", "Montana"},
	{"NE", "Nebraska"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"},
	{"NM", "New Mexico"}, {"NY", "New York"}, {"NC", "North Carolina"},
	{"NV", "Nevada"}, {"ND", "North Dakota"}, {"OH", "Ohio"}, {"OK", "Oklahoma"},
	{"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"},
	{"SC", "South Carolina"}, {"SD", "South Dakota"}, {"TN", "Tennessee"},
	{"TX", "Texas"}, {"UT", "Utah"}, {"VT", "Vermont"}, {"VA", "Virginia"},
	{"WA", "Washington"}, {"WV", "West Virginia"}, {"WI", "Wisconsin"},
	{"WY", "Wyoming"},
}

var jurisdictions = sync.OnceValue(func() []Jurisdiction {
	out := make([]Jurisdiction, 0, len(states)+256)
	seen := make(map[Jurisdiction]bool)
	add := func(j Jurisdiction) {
		j.Abbr = strings.ToUpper(j.Abbr)
		j.Name = strings.ToUpper(j.Name)
		if seen[j] {
			return
		}
		seen[j] = true
		out = append(out, j)
	}
	for _, s := range states {
		add(s)
	}
	for _, c := range countries() {
		add(c)
	}
	return out
})

// countries lists ISO-3166 country codes with their English names, in code order.
func countries() []Jurisdiction {
	namer := display.English.Regions()
	var out []Jurisdiction
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			region, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil || !region.IsCountry() {
				continue
			}
			if region.String() != string([]rune{a, b}) {
				continue
			}
			name := namer.Name(region)
			if name == "" {
				continue
			}
			out = append(out, Jurisdiction{Abbr: region.String(), Name: name})
		}
	}
	return out
}

// Jurisdictions returns a copy of the jurisdiction catalog: US states and DC first,
// then countries. Everything is upper case.
func Jurisdictions() []Jurisdiction {
	src := jurisdictions()
	out := make([]Jurisdiction, len(src))
	copy(out, src)
	return out
}
