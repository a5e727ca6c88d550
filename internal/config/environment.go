package config

import (
	"strings"
)

type Environment int32

const (
	UNDEFINED_ENV Environment = iota
	LOCAL_ENV
	DEV_ENV
	UAT_ENV
	PROD_ENV
)

var environmentNames = map[Environment]string{
	LOCAL_ENV: "local",
	DEV_ENV:   "dev",
	UAT_ENV:   "uat",
	PROD_ENV:  "prod",
}

func StringToEnvironment(s string) Environment {
	for env, name := range environmentNames {
		if strings.EqualFold(s, name) {
			return env
		}
	}
	return UNDEFINED_ENV
}

func EnvironmentToString(e Environment) string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return "UNDEFINED"
}

// IsDeployed reports whether the app runs on a shared environment, where debug logging is off.
func (c Config) IsDeployed() bool {
	switch StringToEnvironment(c.App.Env) {
	case DEV_ENV, UAT_ENV, PROD_ENV:
		return true
	}
	return false
}

func (c Config) IsProduction() bool {
	return StringToEnvironment(c.App.Env) == PROD_ENV
}
