package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"library-desk/library"
)

var errRejected = errors.New("fixture has rejected items")

type report struct {
	Path     string   `json:"path"`
	Accepted int      `json:"accepted"`
	Rejected []string `json:"rejected"`
	Books    []string `json:"books"`
	Members  []string `json:"members"`
}

func main() {
	if err := newCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd(stdout, stderr io.Writer) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:           "check_fixture FILE",
		Short:         "Load a seed catalog into a scratch session and report what it would contain",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := check(args[0])
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return err
			}
			if asJSON {
				enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(r); err != nil {
					return err
				}
			} else {
				printReport(stdout, r)
			}
			if len(r.Rejected) > 0 {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func check(path string) (*report, error) {
	mgr, err := library.NewLibraryManager()
	if err != nil {
		return nil, err
	}
	defer mgr.Close()

	outcomes, err := mgr.LoadFixture(path)
	if err != nil {
		return nil, err
	}

	r := &report{Path: path, Rejected: []string{}}
	for _, out := range outcomes {
		if out.OK() {
			r.Accepted++
		} else {
			r.Rejected = append(r.Rejected, out.Message)
		}
	}
	r.Books = mgr.DisplayBooks()
	r.Members = mgr.DisplayMembers()
	return r, nil
}

func printReport(w io.Writer, r *report) {
	fmt.Fprintf(w, "Checked %s\n", r.Path)
	fmt.Fprintf(w, "Accepted: %d\n", r.Accepted)
	fmt.Fprintf(w, "Rejected: %d\n", len(r.Rejected))
	for _, msg := range r.Rejected {
		fmt.Fprintf(w, "  - %s\n", msg)
	}

	fmt.Fprintln(w, "\nBooks:")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, line := range r.Books {
		fmt.Fprintln(w, truncateString(line, 60))
	}
	fmt.Fprintln(w, "\nMembers:")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, line := range r.Members {
		fmt.Fprintln(w, truncateString(line, 60))
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
