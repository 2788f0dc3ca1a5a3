package config

import (
	"errors"
	"fmt"

	"github.com/appetrosyan/partial-config/internal/convert"
	"github.com/appetrosyan/partial-config/partial"
)

// ErrUnknownSetting is returned by [CheckSetting] for a name no field reads.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingNames lists the settings table rows [Load] reads, in field order.
func SettingNames() ([]string, error) {
	refs, err := settingFields()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Tag.Get("setting"))
	}
	return names, nil
}

// CheckSetting reports whether value would load into the field backed by
// the setting name.
func CheckSetting(name, value string) error {
	refs, err := settingFields()
	if err != nil {
		return err
	}

	for _, ref := range refs {
		if ref.Tag.Get("setting") != name {
			continue
		}
		typ := ref.Slot.ElemType()
		if _, err := convert.Parse(typ, value); err != nil {
			return &partial.ParseFieldError{Field: ref.Name, Type: typ.String(), Err: err}
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
}

func settingFields() ([]partial.FieldRef, error) {
	var p PartialServerConfig
	refs, err := partial.Fields(&p)
	if err != nil {
		return nil, err
	}

	tagged := refs[:0]
	for _, ref := range refs {
		if name := ref.Tag.Get("setting"); name != "" && name != "-" {
			tagged = append(tagged, ref)
		}
	}
	return tagged, nil
}
