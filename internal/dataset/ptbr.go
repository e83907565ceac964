package dataset

// ptBR is a partial dataset; tables left empty fall back to the base
// locale when resolved.
var ptBR = Dataset{
	FirstNames: []string{
		"Miguel", "Helena", "Arthur", "Alice", "Gael", "Laura",
		"Heitor", "Valentina", "Theo", "Sophia", "Davi", "Isabela",
		"Gabriel", "Luiza", "Bernardo", "Cecilia", "Samuel", "Eloa",
		"Pedro", "Lara", "Lucas", "Mariana", "Benicio", "Beatriz",
	},
	LastNames: []string{
		"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira",
		"Alves", "Pereira", "Lima", "Gomes", "Costa", "Ribeiro",
		"Martins", "Carvalho", "Almeida", "Lopes", "Soares", "Fernandes",
		"Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade",
	},
	NamePrefixes: []string{"Sr.", "Sra.", "Dr.", "Dra."},
	NameSuffixes: []string{"Filho", "Neto", "Junior"},
	FullNamePatterns: []Weighted{
		{Value: "{first} {last}", Weight: 9},
		{Value: "{prefix} {first} {last}", Weight: 1},
	},

	CompanySuffixes: []string{"Ltda", "S.A.", "e Filhos", "Comercial", "EIRELI"},
	CompanyPatterns: []Weighted{
		{Value: "{last} {suffix}", Weight: 4},
		{Value: "{last}-{last}", Weight: 1},
	},

	EmailProviders: []string{
		"gmail.com", "uol.com.br", "bol.com.br", "terra.com.br", "ig.com.br",
	},
}
