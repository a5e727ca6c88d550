package monitoring

import "strings"

// segmentNameFromFunc turns a runtime function name such as
// "github.com/x/y/services.(*trustAccountService).Create" into "services.trustAccountService.Create".
func segmentNameFromFunc(fullName string) string {
	if fullName == "" {
		return LayerUnknown
	}

	// keep the last path element only, the import path is noise on newrelic
	if idx := strings.LastIndex(fullName, "/"); idx >= 0 {
		fullName = fullName[idx+1:]
	}

	parts := strings.Split(fullName, ".")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "(*)")
		if p != "" {
			names = append(names, p)
		}
	}

	if len(names) == 0 {
		return fullName
	}

	return strings.Join(names, ".")
}
