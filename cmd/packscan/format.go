package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jward/packscan"
)

// Report is the JSON envelope. The shape is frozen for compatibility with
// existing consumers; do not add or rename fields.
type Report struct {
	Repository           string          `json:"repository"`
	ScanTimestamp        string          `json:"scan_timestamp"`
	TotalPackagesChecked int             `json:"total_packages_checked"`
	FoundPackages        []ReportPackage `json:"found_packages"`
	NotFoundPackages     []ReportPackage `json:"not_found_packages"`
}

// ReportPackage is one package entry in the JSON report.
type ReportPackage struct {
	Name string `json:"name"`
	Spec string `json:"spec"`
}

// buildReport converts a scan result to the frozen JSON shape. Both package
// lists are always present, empty rather than null.
func buildReport(result *packscan.ScanResult) Report {
	report := Report{
		Repository:           result.Repository,
		ScanTimestamp:        result.Timestamp.UTC().Format(time.RFC3339),
		TotalPackagesChecked: result.TotalChecked,
		FoundPackages:        []ReportPackage{},
		NotFoundPackages:     []ReportPackage{},
	}
	for _, f := range result.Found {
		report.FoundPackages = append(report.FoundPackages, ReportPackage{
			Name: f.Target.Name,
			Spec: f.Target.String(),
		})
	}
	for _, t := range result.NotFound {
		report.NotFoundPackages = append(report.NotFoundPackages, ReportPackage{
			Name: t.Name,
			Spec: t.String(),
		})
	}
	return report
}

// renderJSON writes the report as indented JSON.
func renderJSON(w io.Writer, result *packscan.ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildReport(result))
}

const banner = "=== Compromised Package Scan ==="

// renderText writes the human-readable report: banner, repository, date,
// total, then the found (✓) and not-found (✗) sections, one spec per line.
func renderText(w io.Writer, result *packscan.ScanResult) {
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Repository: %s\n", result.Repository)
	fmt.Fprintf(w, "Scan date:  %s\n", result.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Checked:    %d packages\n", result.TotalChecked)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Found (%d):\n", len(result.Found))
	if len(result.Found) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, f := range result.Found {
		fmt.Fprintf(w, "  ✓ %s  [%s]\n", f.Target, describeClassification(f.Classification))
		for _, ev := range f.Evidence {
			if ev.Path != "" {
				fmt.Fprintf(w, "      %s (%s)\n", ev.Detail, ev.Path)
			} else {
				fmt.Fprintf(w, "      %s\n", ev.Detail)
			}
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Not found (%d):\n", len(result.NotFound))
	for _, t := range result.NotFound {
		fmt.Fprintf(w, "  ✗ %s\n", t)
	}
}

func describeClassification(c packscan.Classification) string {
	switch c {
	case packscan.ExactVersionMatch:
		return "exact version"
	case packscan.VersionMismatch:
		return "version mismatch"
	case packscan.SourceOnlyMatch:
		return "source reference only"
	default:
		return string(c)
	}
}

// validFormats lists accepted values for --format.
var validFormats = []string{"text", "json"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
