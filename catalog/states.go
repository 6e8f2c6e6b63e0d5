package catalog

import "strconv"

// State maps a US state to its congressional district count
type State struct {
	Code      string
	Name      string
	Districts int
}

// States lists every US state with its 2020-apportionment district count.
var States = []State{
	{Code: "AL", Name: "Alabama", Districts: 7},
	{Code: "AK", Name: "Alaska", Districts: 1},
	{Code: "AZ", Name: "Arizona", Districts: 9},
	{Code: "AR", Name: "Arkansas", Districts: 4},
	{Code: "CA", Name: "California", Districts: 52},
	{Code: "CO", Name: "Colorado", Districts: 8},
	{Code: "CT", Name: "Connecticut", Districts: 5},
	{Code: "DE", Name: "Delaware", Districts: 1},
	{Code: "FL", Name: "Florida", Districts: 28},
	{Code: "GA", Name: "Georgia", Districts: 14},
	{Code: "HI", Name: "Hawaii", Districts: 2},
	{Code: "ID", Name: "Idaho", Districts: 2},
	{Code: "IL", Name: "Illinois", Districts: 17},
	{Code: "IN", Name: "Indiana", Districts: 9},
	{Code: "IA", Name: "Iowa", Districts: 4},
	{Code: "KS", Name: "Kansas", Districts: 4},
	{Code: "KY", Name: "Kentucky", Districts: 6},
	{Code: "LA", Name: "Louisiana", Districts: 6},
	{Code: "ME", Name: "Maine", Districts: 2},
	{Code: "MD", Name: "Maryland", Districts: 8},
	{Code: "MA", Name: "Massachusetts", Districts: 9},
	{Code: "MI", Name: "Michigan", Districts: 13},
	{Code: "MN", Name: "Minnesota", Districts: 8},
	{Code: "MS", Name: "Mississippi", Districts: 4},
	{Code: "MO", Name: "Missouri", Districts: 8},
	{Code: "MT", Name: "Montana", Districts: 2},
	{Code: "NE", Name: "Nebraska", Districts: 3},
	{Code: "NV", Name: "Nevada", Districts: 4},
	{Code: "NH", Name: "New Hampshire", Districts: 2},
	{Code: "NJ", Name: "New Jersey", Districts: 12},
	{Code: "NM", Name: "New Mexico", Districts: 3},
	{Code: "NY", Name: "New York", Districts: 26},
	{Code: "NC", Name: "North Carolina", Districts: 14},
	{Code: "ND", Name: "North Dakota", Districts: 1},
	{Code: "OH", Name: "Ohio", Districts: 15},
	{Code: "OK", Name: "Oklahoma", Districts: 5},
	{Code: "OR", Name: "Oregon", Districts: 6},
	{Code: "PA", Name: "Pennsylvania", Districts: 17},
	{Code: "RI", Name: "Rhode Island", Districts: 2},
	{Code: "SC", Name: "South Carolina", Districts: 7},
	{Code: "SD", Name: "South Dakota", Districts: 1},
	{Code: "TN", Name: "Tennessee", Districts: 9},
	{Code: "TX", Name: "Texas", Districts: 38},
	{Code: "UT", Name: "Utah", Districts: 4},
	{Code: "VT", Name: "Vermont", Districts: 1},
	{Code: "VA", Name: "Virginia", Districts: 11},
	{Code: "WA", Name: "Washington", Districts: 10},
	{Code: "WV", Name: "West Virginia", Districts: 2},
	{Code: "WI", Name: "Wisconsin", Districts: 8},
	{Code: "WY", Name: "Wyoming", Districts: 1},
}

// StateByCode looks up a state by its two-letter code or full name
func StateByCode(code string) (State, bool) {
	for _, s := range States {
		if s.Code == code || s.Name == code {
			return s, true
		}
	}
	return State{}, false
}

// ValidDistrict reports whether district is a valid congressional
// district number for the given state. Districts are stored as positive
// integer strings ("1".."52").
func ValidDistrict(stateCode, district string) bool {
	state, ok := StateByCode(stateCode)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(district)
	if err != nil {
		return false
	}
	return n >= 1 && n <= state.Districts
}
