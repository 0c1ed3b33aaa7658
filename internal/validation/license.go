package validation

const (
	LicenseLength       = 8
	licensePrefixLength = 3
	MsgLicenseLength    = "License number should consist of 8 characters"
	MsgLicensePrefix    = "First 3 characters should be uppercase letters"
	MsgLicenseDigits    = "Last 5 characters should be digits"
)

// LicenseNumberRules returns the rules for a driver license number such as "TST12345".
// Length is measured in bytes so that only ASCII input can pass the later rules.
// Each rule stands on its own and never indexes past the end of short input.
func LicenseNumberRules() []Rule {
	return []Rule{
		{
			Check:   func(v string) bool { return len(v) == LicenseLength },
			Message: MsgLicenseLength,
		},
		{
			Check:   func(v string) bool { return len(v) >= licensePrefixLength && isUpperASCII(v[:licensePrefixLength]) },
			Message: MsgLicensePrefix,
		},
		{
			Check:   func(v string) bool { return len(v) > licensePrefixLength && isDigits(v[licensePrefixLength:]) },
			Message: MsgLicenseDigits,
		},
	}
}

// LicenseNumber reports the first license rule the value breaks, or nil.
func LicenseNumber(value string) error {
	return Validate(value, LicenseNumberRules()...)
}

func isUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
