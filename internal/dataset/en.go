package dataset

// en is the base dataset. Every table must be populated here, since all
// other locales fall back to it.
var en = Dataset{
	FirstNames: []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer",
		"Michael", "Linda", "David", "Elizabeth", "William", "Barbara",
		"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
		"Charles", "Karen", "Daniel", "Lisa", "Matthew", "Nancy",
		"Anthony", "Betty", "Mark", "Margaret", "Paul", "Sandra",
		"Amara", "Kofi", "Mei", "Ravi", "Sofia", "Omar",
		"Yuki", "Priya", "Diego", "Layla", "Kenji", "Zara",
	},
	LastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson",
		"Martin", "Lee", "Thompson", "White", "Harris", "Clark",
		"Nguyen", "Patel", "Kim", "Chen", "Singh", "Okafor",
		"Tanaka", "Kowalski", "Ivanov", "Santos", "Haddad", "Andersson",
	},
	NamePrefixes: []string{"Mr.", "Mrs.", "Ms.", "Dr."},
	NameSuffixes: []string{"Jr.", "Sr.", "II", "III", "IV", "MD", "PhD"},
	FullNamePatterns: []Weighted{
		{Value: "{first} {last}", Weight: 49},
		{Value: "{prefix} {first} {last}", Weight: 7},
		{Value: "{first} {last} {suffix}", Weight: 7},
	},

	CompanySuffixes: []string{"Inc", "LLC", "Group", "and Sons", "Holdings", "Labs"},
	CompanyPatterns: []Weighted{
		{Value: "{last} {suffix}", Weight: 6},
		{Value: "{last}-{last}", Weight: 3},
		{Value: "{last}, {last} and {last}", Weight: 1},
	},
	BuzzAdjectives: []string{
		"adaptive", "automated", "balanced", "centralized", "compatible",
		"configurable", "distributed", "enhanced", "ergonomic", "focused",
		"integrated", "managed", "optimized", "progressive", "robust",
		"scalable", "seamless", "secure", "streamlined", "versatile",
	},
	BuzzNouns: []string{
		"alliance", "architecture", "bandwidth", "capability", "circuit",
		"framework", "infrastructure", "interface", "methodology", "middleware",
		"paradigm", "platform", "protocol", "solution", "synergy",
		"throughput", "toolset", "workforce",
	},

	Words: []string{
		"alias", "apparatus", "arcade", "beacon", "blossom", "canyon",
		"cascade", "cipher", "citadel", "compass", "crescent", "drift",
		"ember", "fathom", "glacier", "harbor", "horizon", "junction",
		"lantern", "meadow", "meridian", "mosaic", "nebula", "orchard",
		"pinnacle", "quarry", "ridge", "sable", "summit", "tempest",
		"thicket", "timber", "vertex", "voyage", "willow", "zenith",
	},

	EmailProviders: []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "proton.me",
	},
}
