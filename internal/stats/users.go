package stats

import "github.com/ramy-ahmed/bikeshare/internal/trips"

// User types and genders counted by ComputeUsers
const (
	UserSubscriber = "Subscriber"
	UserCustomer   = "Customer"
	GenderMale     = "Male"
	GenderFemale   = "Female"
)

// UserStats holds the demographic breakdown of a table. Gender and birth
// year fields are only meaningful when the matching Has flag is set.
type UserStats struct {
	Subscribers int
	Customers   int

	HasGender bool
	Male      int
	Female    int

	HasBirthYear   bool
	BirthYearKnown bool // at least one row has a birth year
	Earliest       int
	MostRecent     int
	MostCommon     Popular[int]
}

// ComputeUsers counts user types, genders and birth years.
func ComputeUsers(table *trips.Table) UserStats {
	if table == nil {
		return UserStats{}
	}
	s := UserStats{
		HasGender:    table.Schema.HasGender,
		HasBirthYear: table.Schema.HasBirthYear,
	}

	var years []int
	for _, t := range table.Trips {
		switch t.UserType {
		case UserSubscriber:
			s.Subscribers++
		case UserCustomer:
			s.Customers++
		}

		if s.HasGender {
			switch t.Gender {
			case GenderMale:
				s.Male++
			case GenderFemale:
				s.Female++
			}
		}

		if s.HasBirthYear && t.BirthYear != 0 {
			years = append(years, t.BirthYear)
		}
	}

	if len(years) > 0 {
		s.BirthYearKnown = true
		s.Earliest, s.MostRecent = years[0], years[0]
		for _, y := range years[1:] {
			s.Earliest = min(s.Earliest, y)
			s.MostRecent = max(s.MostRecent, y)
		}
		s.MostCommon, _ = Mode(years)
	}

	return s
}
