package main

import "flag"

// cliFlags holds the parsed command line arguments.
type cliFlags struct {
	originalFile  string
	modifiedFile  string
	decisionsFile string
	configFile    string
	outputFormat  string
}

func parseFlags() cliFlags {
	originalFile := flag.String("original", "", "Path to the original HTML fragment.")
	originalAlias := flag.String("a", "", "Alias for -original")

	modifiedFile := flag.String("modified", "", "Path to the modified HTML fragment.")
	modifiedAlias := flag.String("b", "", "Alias for -modified")

	decisionsFile := flag.String("decisions", "", "Path to a JSON file mapping node ids to accept/reject decisions. Missing ids stay undecided.")
	decisionsAlias := flag.String("d", "", "Alias for -decisions")

	configFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	configAlias := flag.String("gc", "", "Alias for -globalconfig")

	outputFormat := flag.String("format", "", "Output format: json (annotated tree) or resolved (merged markup). Overrides the config file if set.")
	outputAlias := flag.String("f", "", "Alias for -format")

	flag.Parse()

	// Consolidate alias flags
	flags := cliFlags{
		originalFile:  *originalFile,
		modifiedFile:  *modifiedFile,
		decisionsFile: *decisionsFile,
		configFile:    *configFile,
		outputFormat:  *outputFormat,
	}
	if flags.originalFile == "" {
		flags.originalFile = *originalAlias
	}
	if flags.modifiedFile == "" {
		flags.modifiedFile = *modifiedAlias
	}
	if flags.decisionsFile == "" {
		flags.decisionsFile = *decisionsAlias
	}
	if flags.configFile == "" {
		flags.configFile = *configAlias
	}
	if flags.outputFormat == "" {
		flags.outputFormat = *outputAlias
	}
	return flags
}
