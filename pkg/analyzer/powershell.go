package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/runbookops/runbook-guard/pkg/logger"
)

var psLog = logger.New("analyzer:powershell")

// parseScript extracts the top-level param block names and syntax errors
// using the PowerShell language parser. Output is a single JSON object so
// the Go side never scrapes console text.
const parseScript = `
$tokens = $null
$errors = $null
$ast = [System.Management.Automation.Language.Parser]::ParseFile($args[0], [ref]$tokens, [ref]$errors)
$parameters = @()
if ($null -ne $ast.ParamBlock) {
    $parameters = @($ast.ParamBlock.Parameters | ForEach-Object { $_.Name.VariablePath.UserPath })
}
$issues = @($errors | ForEach-Object { @{ line = $_.Extent.StartLineNumber; message = $_.Message } })
@{ parameters = $parameters; errors = $issues } | ConvertTo-Json -Depth 4
`

// analyzeScript runs PSScriptAnalyzer without a severity filter: parse-level
// findings arrive under their own severity bucket and a pre-filter would
// silently drop them.
const analyzeScript = `
$findings = @(Invoke-ScriptAnalyzer -Path $args[0] | ForEach-Object {
    @{ severity = $_.Severity.ToString(); ruleName = $_.RuleName; line = $_.Line; message = $_.Message }
})
ConvertTo-Json -InputObject $findings -Depth 4
`

// PowerShellEngine runs the PowerShell host as a subprocess for parsing and
// PSScriptAnalyzer invocation. The zero value is not usable; construct with
// NewPowerShellEngine.
type PowerShellEngine struct {
	executable string
}

// NewPowerShellEngine creates an engine that invokes the given PowerShell
// executable (typically "pwsh").
func NewPowerShellEngine(executable string) *PowerShellEngine {
	return &PowerShellEngine{executable: executable}
}

// Parse implements Engine using the PowerShell language parser.
func (e *PowerShellEngine) Parse(ctx context.Context, path string) (*ParseResult, error) {
	psLog.Printf("Parsing runbook: path=%s", path)
	output, err := e.run(ctx, parseScript, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var result ParseResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("decoding parser output for %s: %w", path, err)
	}
	psLog.Printf("Parse complete: path=%s, parameters=%d, errors=%d", path, len(result.Parameters), len(result.Errors))
	return &result, nil
}

// Analyze implements Engine using Invoke-ScriptAnalyzer. All severities are
// requested; classification happens at the check site.
func (e *PowerShellEngine) Analyze(ctx context.Context, path string) ([]Finding, error) {
	psLog.Printf("Analyzing runbook: path=%s", path)
	output, err := e.run(ctx, analyzeScript, path)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	findings, err := decodeFindings(output)
	if err != nil {
		return nil, fmt.Errorf("decoding analyzer output for %s: %w", path, err)
	}
	psLog.Printf("Analysis complete: path=%s, findings=%d", path, len(findings))
	return findings, nil
}

func (e *PowerShellEngine) run(ctx context.Context, script string, args ...string) ([]byte, error) {
	cmdArgs := append([]string{"-NoProfile", "-NonInteractive", "-Command", script}, args...)
	cmd := exec.CommandContext(ctx, e.executable, cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("%s failed: %w: %s", e.executable, err, detail)
		}
		return nil, fmt.Errorf("%s failed: %w", e.executable, err)
	}
	return bytes.TrimSpace(stdout.Bytes()), nil
}

// decodeFindings tolerates the ConvertTo-Json shape quirks: an empty
// result, a single object, or an array.
func decodeFindings(data []byte) ([]Finding, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var findings []Finding
	if err := json.Unmarshal(data, &findings); err == nil {
		return findings, nil
	}

	var single Finding
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []Finding{single}, nil
}
