package model

// Parameter names in declaration order. The order is part of the URL contract.
const (
	ParamDevice   = "device"
	ParamLang     = "lang"
	ParamTimezone = "timezone"
	ParamWeekends = "weekends"
)

// ParamNames lists every parameter in declaration order.
var ParamNames = [...]string{ParamDevice, ParamLang, ParamTimezone, ParamWeekends}

// ParameterSet is a snapshot of the four rendering parameters.
// The zero value is valid: every name maps to the empty string.
type ParameterSet struct {
	Device   string
	Lang     string
	Timezone string
	Weekends string
}

// Get returns the value for a parameter name and whether the name is known.
func (p ParameterSet) Get(name string) (string, bool) {
	switch name {
	case ParamDevice:
		return p.Device, true
	case ParamLang:
		return p.Lang, true
	case ParamTimezone:
		return p.Timezone, true
	case ParamWeekends:
		return p.Weekends, true
	default:
		return "", false
	}
}

// With returns a copy of p with the named parameter replaced.
// Unknown names leave the set unchanged.
func (p ParameterSet) With(name, value string) ParameterSet {
	switch name {
	case ParamDevice:
		p.Device = value
	case ParamLang:
		p.Lang = value
	case ParamTimezone:
		p.Timezone = value
	case ParamWeekends:
		p.Weekends = value
	}
	return p
}

// Pairs returns name/value pairs in declaration order.
func (p ParameterSet) Pairs() [][2]string {
	pairs := make([][2]string, 0, len(ParamNames))
	for _, name := range ParamNames {
		v, _ := p.Get(name)
		pairs = append(pairs, [2]string{name, v})
	}
	return pairs
}
