// Package options contains the program options.
package options

// Program options of the command line interface.
type Program struct {
	InesFile string
	CdlFile  string
	Output   string

	Debug bool
	Quiet bool
}
