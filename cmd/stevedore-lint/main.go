// Package main provides the stevedore-lint binary that validates
// create-server-group description files without starting the service.
//
// Each file is decoded (JSON or YAML, picked by extension), run through
// the same validation engine the service uses, and reported as one JSON
// document per file on stdout:
//
//	{"file":"web.json","valid":false,"findings":[{"field":"containerPort",...}]}
//
// Usage:
//
//	stevedore-lint [flags] <file>...
//
// Flags:
//
//	-accounts <file>  accounts file; enables credential resolution
//	-quiet            only report files that are invalid
//
// Exit codes:
//
//	0 - every file decoded and passed validation
//	1 - at least one file failed to decode or had findings
//	2 - usage or accounts file error
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/artpar/stevedore/internal/core/lint"
	"github.com/artpar/stevedore/internal/core/validation"
)

const exitUsage = 2

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("stevedore-lint", flag.ContinueOnError)
	flags.SetOutput(stderr)
	accountsPath := flags.String("accounts", "", "Accounts file; enables credential resolution")
	quiet := flags.Bool("quiet", false, "Only report files that are invalid")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	files := flags.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "usage: stevedore-lint [flags] <file>...")
		flags.PrintDefaults()
		return exitUsage
	}

	// Without an accounts file only the presence of credentials is
	// checked, same as running the engine with no registry.
	var credentials validation.CredentialsValidator
	if *accountsPath != "" {
		registry, err := loadAccounts(*accountsPath)
		if err != nil {
			fmt.Fprintf(stderr, "accounts error: %v\n", err)
			return exitUsage
		}
		credentials = validation.DefaultCredentialsValidator{Accounts: registry}
	}
	validator := validation.NewServerGroupValidator(credentials, nil)

	reports := lintFiles(validator, files)

	enc := json.NewEncoder(stdout)
	for _, r := range reports {
		if *quiet && r.Valid {
			continue
		}
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(stderr, "write report: %v\n", err)
			return exitUsage
		}
	}

	return lint.ExitCode(reports)
}
