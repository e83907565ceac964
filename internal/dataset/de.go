package dataset

// de is a partial dataset; tables left empty fall back to the base locale
// when resolved.
var de = Dataset{
	FirstNames: []string{
		"Lukas", "Emma", "Finn", "Mia", "Jonas", "Hannah",
		"Leon", "Emilia", "Elias", "Lina", "Paul", "Marie",
		"Noah", "Lena", "Ben", "Charlotte", "Felix", "Clara",
		"Maximilian", "Johanna", "Moritz", "Frieda", "Anton", "Greta",
	},
	LastNames: []string{
		"Mueller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer",
		"Wagner", "Becker", "Schulz", "Hoffmann", "Koch", "Bauer",
		"Richter", "Klein", "Wolf", "Schroeder", "Neumann", "Schwarz",
		"Zimmermann", "Braun", "Krueger", "Hofmann", "Hartmann", "Lange",
	},
	NamePrefixes: []string{"Herr", "Frau", "Dr.", "Prof. Dr."},
	FullNamePatterns: []Weighted{
		{Value: "{first} {last}", Weight: 9},
		{Value: "{prefix} {first} {last}", Weight: 1},
	},

	CompanySuffixes: []string{"GmbH", "AG", "KG", "und Soehne", "e.V."},
	CompanyPatterns: []Weighted{
		{Value: "{last} {suffix}", Weight: 4},
		{Value: "{last}-{last}", Weight: 1},
	},

	EmailProviders: []string{
		"gmail.com", "web.de", "gmx.de", "t-online.de", "posteo.de",
	},
}
