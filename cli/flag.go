package cli

import (
	"github.com/spf13/pflag"
)

// tokenFlag records whether --token was explicitly set so an empty
// value can be distinguished from an absent flag.
type tokenFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (f *tokenFlag) String() string {
	return f.Value
}

func (f *tokenFlag) Set(value string) error {
	f.Value = value
	f.IsSet = true
	return nil
}

func (f *tokenFlag) Type() string {
	return "token"
}

var _ pflag.Value = &tokenFlag{}
