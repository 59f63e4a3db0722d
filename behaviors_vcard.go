// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"github.com/malpanez/vobject/value"
)

// newNameProperty builds the N Behavior: native form is value.Name.
func newNameProperty() *propertyBehavior {
	return &propertyBehavior{
		name: "N",
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			n, err := value.ParseName(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(n)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			n, _ := v.(value.Name)
			cl.Value = value.Raw(value.FormatName(n))
			return nil
		},
	}
}

// newAddressProperty builds the ADR Behavior: native form is value.Address.
func newAddressProperty() *propertyBehavior {
	return &propertyBehavior{
		name: "ADR",
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			a, err := value.ParseAddress(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(a)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			a, _ := v.(value.Address)
			cl.Value = value.Raw(value.FormatAddress(a))
			return nil
		},
	}
}

// newOrgProperty builds the ORG Behavior: native form is value.Org.
func newOrgProperty() *propertyBehavior {
	return &propertyBehavior{
		name: "ORG",
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			o, err := value.ParseOrg(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(o)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			o, _ := v.(value.Org)
			cl.Value = value.Raw(value.FormatOrg(o))
			return nil
		},
	}
}

// newBinaryProperty builds a Behavior for a base64-encoded binary property
// (PHOTO, LOGO, SOUND when ENCODING=b): native form is []byte.
func newBinaryProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			if enc, _ := cl.Param("ENCODING"); enc != "B" && enc != "b" && !cl.HasSingletonParam("BASE64") {
				return nil
			}
			raw, _ := cl.Value.RawText()
			b, err := value.DecodeBinary(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(b)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			b, _ := v.([]byte)
			cl.Value = value.Raw(value.EncodeBinary(b))
			return nil
		},
	}
}

func registerVCardBehaviors(reg *Registry) {
	reg.RegisterBehavior(&componentBehavior{
		name:      "VCARD",
		sortFirst: []string{"VERSION", "N", "FN"},
		knownChildren: map[string]ChildSpec{
			"N": {Max: 1}, "FN": {Min: 1, Max: 1}, "VERSION": {Min: 1, Max: 1},
		},
		implicit: func(c *Component, reg *Registry) error {
			ensureVersion(c, reg, "3.0")
			return nil
		},
	})

	reg.RegisterBehavior(newNameProperty())
	reg.RegisterBehavior(newAddressProperty())
	reg.RegisterBehavior(newOrgProperty())
	for _, name := range []string{"PHOTO", "LOGO", "SOUND", "KEY"} {
		reg.RegisterBehavior(newBinaryProperty(name))
	}
	for _, name := range []string{
		"FN", "TEL", "EMAIL", "TITLE", "ROLE", "NOTE", "NICKNAME", "URL",
		"BDAY", "REV", "UID", "VERSION", "MAILER", "TZ", "LABEL", "SORT-STRING",
	} {
		reg.RegisterBehavior(newTextProperty(name))
	}
}
