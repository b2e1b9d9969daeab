package toolchain

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Tool describes one external tool in the bundle.
type Tool struct {
	Name       string
	MinVersion string // lowest accepted version, empty means any
}

// Bundle returns the tools the mogpack style expects on PATH.
func Bundle() []Tool {
	return []Tool{
		{Name: "nitpick", MinVersion: "0.35.0"},
		{Name: "ruff", MinVersion: "0.4.0"},
		{Name: "mypy", MinVersion: "1.8.0"},
		{Name: "pytest", MinVersion: "8.0.0"},
	}
}

// Status classifies the outcome of a single tool check.
type Status int

const (
	StatusOK Status = iota
	StatusMissing
	StatusOutdated
	StatusUnknown // found, but version could not be determined
)

// CheckResult is the outcome of checking one tool.
type CheckResult struct {
	Tool    Tool
	Status  Status
	Path    string
	Version string
}

// CheckTool looks the tool up on PATH and compares its reported version
// against the bundle minimum.
func CheckTool(tool Tool) CheckResult {
	res := CheckResult{Tool: tool}

	path, err := exec.LookPath(tool.Name)
	if err != nil {
		res.Status = StatusMissing
		return res
	}
	res.Path = path

	out, err := exec.Command(path, "--version").CombinedOutput()
	if err != nil {
		res.Status = StatusUnknown
		return res
	}

	version := ExtractVersion(string(out))
	if version == "" {
		res.Status = StatusUnknown
		return res
	}
	res.Version = version

	if tool.MinVersion == "" {
		res.Status = StatusOK
		return res
	}

	ok, err := IsAtLeast(version, tool.MinVersion)
	switch {
	case err != nil:
		res.Status = StatusUnknown
	case ok:
		res.Status = StatusOK
	default:
		res.Status = StatusOutdated
	}
	return res
}

// Check verifies every tool in the bundle and writes a report line per tool.
// It returns the number of tools that are missing or outdated.
func Check(w io.Writer, tools []Tool) int {
	fmt.Fprintln(w, "Tool check:")

	problems := 0
	for _, tool := range tools {
		res := CheckTool(tool)
		switch res.Status {
		case StatusOK:
			fmt.Fprintf(w, "  [ OK ] %s %s at %s\n", tool.Name, res.Version, res.Path)
		case StatusMissing:
			fmt.Fprintf(w, "  [MISS] %s not found on PATH\n", tool.Name)
			problems++
		case StatusOutdated:
			fmt.Fprintf(w, "  [ OLD] %s %s at %s (want >= %s)\n", tool.Name, res.Version, res.Path, tool.MinVersion)
			problems++
		case StatusUnknown:
			fmt.Fprintf(w, "  [ ?? ] %s at %s (version not recognized)\n", tool.Name, res.Path)
		}
	}

	if problems > 0 {
		names := make([]string, 0, len(tools))
		for _, tool := range tools {
			names = append(names, tool.Name)
		}
		fmt.Fprintf(w, "\n  %d tool(s) missing or outdated. The bundle expects: %s.\n", problems, strings.Join(names, ", "))
	} else {
		fmt.Fprintf(w, "  [ OK ] All %d bundle tools found\n", len(tools))
	}

	return problems
}
