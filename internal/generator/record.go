package generator

import (
	"math/big"

	"github.com/fablegen/fable/internal/internet"
	"github.com/fablegen/fable/internal/number"
)

// Record is one generated fake identity.
type Record struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	UserName    string  `json:"user_name"`
	Company     string  `json:"company"`
	CatchPhrase string  `json:"catch_phrase"`
	IPAddress   string  `json:"ip_address"`
	MACAddress  string  `json:"mac_address"`
	Port        int64   `json:"port"`
	Age         int64   `json:"age"`
	Score       float64 `json:"score"`
	Serial      string  `json:"serial"`
	Cohort      string  `json:"cohort"`
	Bio         string  `json:"bio"`
}

// Record assembles the next fake identity, drawing every field from the
// shared session source in a fixed order.
func (g *Generator) Record() (Record, error) {
	var rec Record
	var err error

	if rec.FirstName, err = g.people.FirstName(); err != nil {
		return Record{}, err
	}
	if rec.LastName, err = g.people.LastName(); err != nil {
		return Record{}, err
	}
	if rec.UserName, err = g.net.UserName(rec.FirstName, rec.LastName); err != nil {
		return Record{}, err
	}
	if rec.Email, err = g.net.Email(rec.FirstName, rec.LastName); err != nil {
		return Record{}, err
	}
	if rec.Company, err = g.companies.Name(); err != nil {
		return Record{}, err
	}
	if rec.CatchPhrase, err = g.companies.CatchPhrase(); err != nil {
		return Record{}, err
	}
	if rec.IPAddress, err = g.net.IPv4(internet.IPv4Options{Network: g.preset.Network}); err != nil {
		return Record{}, err
	}
	if rec.MACAddress, err = g.net.MAC(); err != nil {
		return Record{}, err
	}
	if rec.Port, err = g.net.Port(); err != nil {
		return Record{}, err
	}

	age := int64(18)
	ageMax := int64(99)
	if rec.Age, err = g.numbers.Int(number.IntOptions{Min: &age, Max: &ageMax}); err != nil {
		return Record{}, err
	}

	scoreMax := 100.0
	digits := 2
	if rec.Score, err = g.numbers.Float(number.FloatOptions{Max: &scoreMax, FractionDigits: &digits}); err != nil {
		return Record{}, err
	}

	serialMin := big.NewInt(1)
	serial, err := g.numbers.BigInt(number.BigIntOptions{Min: serialMin})
	if err != nil {
		return Record{}, err
	}
	rec.Serial = serial.String()

	cohortMax := int64(50)
	if rec.Cohort, err = g.numbers.RomanNumeral(number.RomanOptions{Max: &cohortMax}); err != nil {
		return Record{}, err
	}

	if rec.Bio, err = g.filler.Sentence(g.preset.BioWordsMin, g.preset.BioWordsMax); err != nil {
		return Record{}, err
	}

	return rec, nil
}
