package cmd

import "github.com/spf13/pflag"

// Flag getters for flags registered by this package; lookup errors cannot
// happen for known names.

func getInt(f *pflag.FlagSet, name string) int {
	v, _ := f.GetInt(name)
	return v
}

func getString(f *pflag.FlagSet, name string) string {
	v, _ := f.GetString(name)
	return v
}

func getBool(f *pflag.FlagSet, name string) bool {
	v, _ := f.GetBool(name)
	return v
}
