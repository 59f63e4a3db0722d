// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

// Name is a vCard N value (RFC 2426 §3.1.2): five semicolon-separated
// components, each itself a comma-separated list of TEXT values.
type Name struct {
	Family     []string
	Given      []string
	Additional []string
	Prefixes   []string
	Suffixes   []string
}

// ParseName parses an N value.
func ParseName(s string) (Name, error) {
	fields, err := splitStructured(s, 5)
	if err != nil {
		return Name{}, err
	}
	return Name{
		Family:     fields[0],
		Given:      fields[1],
		Additional: fields[2],
		Prefixes:   fields[3],
		Suffixes:   fields[4],
	}, nil
}

// FormatName renders n back to its wire form.
func FormatName(n Name) string {
	return joinStructured([][]string{n.Family, n.Given, n.Additional, n.Prefixes, n.Suffixes})
}

// Address is a vCard ADR value (RFC 2426 §3.2.1): seven semicolon-separated
// components, each a comma-separated list of TEXT values.
type Address struct {
	POBox           []string
	ExtendedAddress []string
	StreetAddress   []string
	Locality        []string
	Region          []string
	PostalCode      []string
	Country         []string
}

// ParseAddress parses an ADR value.
func ParseAddress(s string) (Address, error) {
	fields, err := splitStructured(s, 7)
	if err != nil {
		return Address{}, err
	}
	return Address{
		POBox:           fields[0],
		ExtendedAddress: fields[1],
		StreetAddress:   fields[2],
		Locality:        fields[3],
		Region:          fields[4],
		PostalCode:      fields[5],
		Country:         fields[6],
	}, nil
}

// FormatAddress renders a back to its wire form.
func FormatAddress(a Address) string {
	return joinStructured([][]string{a.POBox, a.ExtendedAddress, a.StreetAddress, a.Locality, a.Region, a.PostalCode, a.Country})
}

// Org is a vCard ORG value (RFC 2426 §3.5.5): the organization name
// followed by zero or more organizational unit names, semicolon-separated.
type Org struct {
	Name  string
	Units []string
}

// ParseOrg parses an ORG value.
func ParseOrg(s string) (Org, error) {
	parts := splitUnescaped(s, ';')
	if len(parts) == 0 {
		return Org{}, ErrBadStructured
	}
	name, err := UnescapeText(parts[0])
	if err != nil {
		return Org{}, err
	}
	units := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		u, err := UnescapeText(p)
		if err != nil {
			return Org{}, err
		}
		units = append(units, u)
	}
	return Org{Name: name, Units: units}, nil
}

// FormatOrg renders o back to its wire form.
func FormatOrg(o Org) string {
	escaped := make([]string, 0, len(o.Units)+1)
	escaped = append(escaped, EscapeText(o.Name))
	for _, u := range o.Units {
		escaped = append(escaped, EscapeText(u))
	}
	return joinSemicolon(escaped)
}

// splitStructured splits s into exactly n semicolon-separated fields, each
// further split into a comma-separated, unescaped list. Missing trailing
// fields (fewer than n semicolons) are treated as empty.
func splitStructured(s string, n int) ([][]string, error) {
	raw := splitUnescaped(s, ';')
	fields := make([][]string, n)
	for i := 0; i < n; i++ {
		if i >= len(raw) {
			continue
		}
		parts, err := SplitMultiText(raw[i])
		if err != nil {
			return nil, err
		}
		if len(parts) == 1 && parts[0] == "" {
			continue
		}
		fields[i] = parts
	}
	return fields, nil
}

func joinStructured(fields [][]string) string {
	joined := make([]string, len(fields))
	for i, f := range fields {
		joined[i] = JoinMultiText(f)
	}
	return joinSemicolon(joined)
}

func joinSemicolon(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ";"
		}
		out += p
	}
	return out
}
