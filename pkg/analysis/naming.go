package analysis

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	ErrUnnamedFault   = errors.New("fault has no MIB name")
	ErrAlertNameClash = errors.New("fault names map to the same alert")
)

const alertPrefix = "apic"

// AlertName turns a MIB fault name into an alert name, e.g.
// fltFabricSelectorIssuesConfigFailed -> apicFltFabricSelectorIssuesConfigFailed.
func AlertName(faultName string) (string, error) {
	if faultName == "" {
		return "", ErrUnnamedFault
	}
	r, size := utf8.DecodeRuneInString(faultName)
	if r == utf8.RuneError && size == 1 {
		return "", errors.Wrapf(ErrUnnamedFault, "invalid name %q", faultName)
	}
	return alertPrefix + string(unicode.ToUpper(r)) + faultName[size:], nil
}

// alertNames tracks which group claimed each alert name.
type alertNames map[string]string

func (n alertNames) claim(alertName, groupName string) error {
	if prev, ok := n[alertName]; ok && prev != groupName {
		return errors.Wrapf(ErrAlertNameClash, "%q and %q both become %s", prev, groupName, alertName)
	}
	n[alertName] = groupName
	return nil
}
