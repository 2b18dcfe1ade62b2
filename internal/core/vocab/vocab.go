// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

/*
Package vocab holds the controlled vocabularies of the Litoral directory.

It defines the fixed sets a request parameter may legally reference: beach
tags, coastal municipalities, amenities, and the three condition scales
(sargassum, surf, wind). The sets are compiled into the binary and never
mutate at runtime, so membership tests are lock-free map lookups.

Filter normalization depends on this package to silently discard values
outside the vocabulary instead of erroring.
*/
package vocab

// # Beach Tags

// TagSlugs lists every recognised beach tag, grouped by rough theme.
// The slugs mirror the rows seeded into core.tag.
var TagSlugs = []string{
	// Activities
	"snorkeling",
	"surfing",
	"kayaking",
	"diving",
	"fishing",
	"camping",

	// Character
	"family-friendly",
	"hidden-gem",
	"secluded",
	"calm-waters",
	"natural-pools",
	"bioluminescent",

	// Setting
	"urban",
	"palm-groves",
	"cliffs",
	"black-sand",
	"dog-friendly",
	"nude-friendly",
}

// # Coastal Municipalities

// Municipalities lists the coastal municipalities of Puerto Rico, including
// the island municipalities of Vieques and Culebra.
var Municipalities = []string{
	"Aguada", "Aguadilla", "Añasco", "Arecibo", "Arroyo",
	"Barceloneta", "Cabo Rojo", "Camuy", "Carolina", "Cataño",
	"Ceiba", "Culebra", "Dorado", "Fajardo", "Guánica",
	"Guayama", "Guayanilla", "Guaynabo", "Hatillo", "Humacao",
	"Isabela", "Juana Díaz", "Lajas", "Loíza", "Luquillo",
	"Manatí", "Maunabo", "Mayagüez", "Naguabo", "Patillas",
	"Peñuelas", "Ponce", "Quebradillas", "Rincón", "Río Grande",
	"Salinas", "San Juan", "Santa Isabel", "Toa Baja", "Vega Alta",
	"Vega Baja", "Vieques", "Yabucoa", "Yauco",
}

// # Amenities

// AmenitySlugs lists every recognised beach amenity.
var AmenitySlugs = []string{
	"restrooms",
	"showers",
	"parking",
	"lifeguard-tower",
	"food-kiosks",
	"picnic-tables",
	"wheelchair-access",
	"rentals",
	"gazebos",
}

// # Condition Scales

// Sargassum levels, from clear water to unswimmable shoreline.
var SargassumLevels = []string{"none", "light", "moderate", "heavy"}

// Surf strength levels.
var SurfLevels = []string{"calm", "moderate", "strong", "dangerous"}

// Wind strength levels.
var WindLevels = []string{"light", "breezy", "windy", "strong"}

// # Membership Tests

var (
	tagSet          = toSet(TagSlugs)
	municipalitySet = toSet(Municipalities)
	amenitySet      = toSet(AmenitySlugs)
	sargassumSet    = toSet(SargassumLevels)
	surfSet         = toSet(SurfLevels)
	windSet         = toSet(WindLevels)
)

// IsTag reports whether slug is a recognised beach tag.
func IsTag(slug string) bool {
	_, ok := tagSet[slug]
	return ok
}

// IsMunicipality reports whether name exactly matches a coastal municipality.
// Matching is case- and accent-sensitive: "san juan" is not "San Juan".
func IsMunicipality(name string) bool {
	_, ok := municipalitySet[name]
	return ok
}

// IsAmenity reports whether slug is a recognised amenity.
func IsAmenity(slug string) bool {
	_, ok := amenitySet[slug]
	return ok
}

// IsSargassumLevel reports whether level is a valid sargassum reading.
func IsSargassumLevel(level string) bool {
	_, ok := sargassumSet[level]
	return ok
}

// IsSurfLevel reports whether level is a valid surf reading.
func IsSurfLevel(level string) bool {
	_, ok := surfSet[level]
	return ok
}

// IsWindLevel reports whether level is a valid wind reading.
func IsWindLevel(level string) bool {
	_, ok := windSet[level]
	return ok
}

// toSet builds a lookup set from a slice of values.
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
