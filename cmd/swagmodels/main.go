// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

// swagmodels generates Dart model sources from OpenAPI and Swagger schemas.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/AlexGalitsky/swagmodels"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/AlexGalitsky/swagmodels"
	_buildTime string
)

// cliOptions describes swagmodels CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate Dart model sources from a schema document"`
	Lint     lintCommand     `command:"lint" description:"Check a schema document without writing artifacts"`
	Report   reportCommand   `command:"report" description:"Render a markdown index of a generation run"`
	Styles   stylesCommand   `command:"styles" description:"List available rendering styles"`
}

// generateFlags groups artifact generation flags.
type generateFlags struct {
	OutputDir   string `short:"o" long:"output" description:"Output directory for generated artifacts (default: config output or .)"`
	Style       string `short:"s" long:"style" description:"Rendering style (default: config style or plain)" choice:"plain" choice:"json_serializable"`
	ChangedOnly bool   `long:"changed-only" description:"Skip schemas whose content hash is unchanged since the last run"`
	CacheFile   string `long:"cache-file" description:"Path to the incremental cache file (default: <output>/.swagmodels.cache.json)"`
	KeepGoing   bool   `short:"k" long:"keep-going" description:"Continue after per-schema failures"`
	DryRun      bool   `short:"n" long:"dry-run" description:"Resolve and render without writing files"`
	Prune       bool   `long:"prune" description:"Remove artifacts of schemas deleted from the document"`
}

// projectConfigFlags groups project configuration flags.
type projectConfigFlags struct {
	ConfigPath    string            `short:"c" long:"config" description:"Path to project configuration YAML"`
	LintOverrides map[string]string `short:"L" long:"lint" description:"Override lint rule severity (rule:severity)"`
}

// reportRenderFlags groups markdown report rendering flags.
type reportRenderFlags struct {
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom report template (.gotmpl)"`
}

// generateCommand renders Dart model artifacts from one schema document.
type generateCommand struct {
	runner *cliRunner

	GenerateFlags generateFlags      `group:"Generation"`
	ConfigFlags   projectConfigFlags `group:"Project Config"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Schema document path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command.GenerateFlags, command.ConfigFlags, command.Args.Input)
}

// lintCommand checks one schema document and prints findings.
type lintCommand struct {
	runner *cliRunner

	ConfigFlags projectConfigFlags `group:"Project Config"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Schema document path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs lint subcommand.
func (command *lintCommand) Execute(_ []string) error {
	return command.runner.runLint(command.ConfigFlags, command.Args.Input)
}

// reportCommand renders a markdown index describing one generation run.
type reportCommand struct {
	runner *cliRunner

	GenerateFlags generateFlags      `group:"Generation"`
	ConfigFlags   projectConfigFlags `group:"Project Config"`
	RenderFlags   reportRenderFlags  `group:"Report Render"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Schema document path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs report subcommand.
func (command *reportCommand) Execute(_ []string) error {
	return command.runner.runReport(command.GenerateFlags, command.ConfigFlags, command.RenderFlags, command.Args.Input, command.Args.Output)
}

// stylesCommand lists registered rendering styles.
type stylesCommand struct {
	runner *cliRunner
}

// Execute runs styles subcommand.
func (command *stylesCommand) Execute(_ []string) error {
	for _, name := range swagmodels.DefaultBackends().StyleNames() {
		if _, err := fmt.Fprintln(command.runner.stdout, name); err != nil {
			return fmt.Errorf("write styles to stdout: %w", err)
		}
	}

	return nil
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "swagmodels"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate executes the generation flow and reports per-schema outcomes.
func (runner *cliRunner) runGenerate(generation generateFlags, configFlags projectConfigFlags, inputPath string) error {
	doc, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return err
	}

	config, err := loadProjectConfig(configFlags)
	if err != nil {
		return err
	}

	report, err := swagmodels.Generate(doc, generationOptions(generation, config, false))
	if err != nil {
		return err
	}

	runner.printReport(report)
	if report.Failed() {
		return fmt.Errorf("generation failed: %s", report.Summary())
	}

	return nil
}

// runLint executes the lint flow and prints every finding.
func (runner *cliRunner) runLint(configFlags projectConfigFlags, inputPath string) error {
	doc, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return err
	}

	config, err := loadProjectConfig(configFlags)
	if err != nil {
		return err
	}

	report, err := swagmodels.Lint(doc, config)
	if err != nil {
		return err
	}

	if len(report.Diagnostics) == 0 {
		_, _ = fmt.Fprintln(runner.stdout, "no findings")
		return nil
	}

	for _, diagnostic := range report.Diagnostics {
		_, _ = fmt.Fprintln(runner.stdout, diagnostic.String())
	}

	if report.Failed() {
		return errors.New("lint found error-severity findings")
	}

	return nil
}

// runReport renders the markdown run index to stdout or a file.
func (runner *cliRunner) runReport(generation generateFlags, configFlags projectConfigFlags, render reportRenderFlags, inputPath, outputPath string) error {
	doc, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return err
	}

	config, err := loadProjectConfig(configFlags)
	if err != nil {
		return err
	}

	report, err := swagmodels.Generate(doc, generationOptions(generation, config, true))
	if err != nil {
		return err
	}

	templateText := ""
	if path := strings.TrimSpace(render.TemplatePath); path != "" {
		custom, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", path, err)
		}

		templateText = string(custom)
	}

	rendered, err := swagmodels.RenderModelIndex(report, templateText)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, rendered); err != nil {
			return fmt.Errorf("write report to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0o600); err != nil {
		return fmt.Errorf("write report file %q: %w", outputPath, err)
	}

	return nil
}

// printReport writes per-schema outcomes to stdout and findings to stderr.
func (runner *cliRunner) printReport(report *swagmodels.Report) {
	for _, result := range report.Results {
		if result.Action == swagmodels.ActionFailed {
			_, _ = fmt.Fprintf(runner.stderr, "%-9s %s (%s): %v\n", result.Action, result.Artifact, result.Schema, result.Err)
			continue
		}

		_, _ = fmt.Fprintf(runner.stdout, "%-9s %s (%s)\n", result.Action, result.Artifact, result.Schema)
	}

	for _, diagnostic := range report.Diagnostics {
		_, _ = fmt.Fprintln(runner.stderr, diagnostic.String())
	}

	if len(report.Deleted) > 0 {
		_, _ = fmt.Fprintf(runner.stderr, "schemas removed from the document: %s\n", strings.Join(report.Deleted, ", "))
	}

	_, _ = fmt.Fprintln(runner.stdout, report.Summary())
}

// generationOptions maps CLI flags onto library options.
func generationOptions(generation generateFlags, config *swagmodels.Config, dryRun bool) swagmodels.Options {
	return swagmodels.Options{
		OutputDir:   generation.OutputDir,
		Style:       generation.Style,
		Config:      config,
		CacheFile:   generation.CacheFile,
		ChangedOnly: generation.ChangedOnly,
		KeepGoing:   generation.KeepGoing,
		DryRun:      generation.DryRun || dryRun,
		Prune:       generation.Prune,
	}
}

// loadProjectConfig loads configuration and applies lint severity overrides.
func loadProjectConfig(configFlags projectConfigFlags) (*swagmodels.Config, error) {
	config := &swagmodels.Config{}
	if path := strings.TrimSpace(configFlags.ConfigPath); path != "" {
		loaded, err := swagmodels.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		config = loaded
	}

	if len(configFlags.LintOverrides) > 0 {
		if config.Lint == nil {
			config.Lint = make(map[string]string, len(configFlags.LintOverrides))
		}

		for rule, severity := range configFlags.LintOverrides {
			config.Lint[rule] = severity
		}
	}

	return config, nil
}

// readDocumentInput reads the schema document from file path or stdin.
func (runner *cliRunner) readDocumentInput(path string) (*swagmodels.Document, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return swagmodels.LoadDocument(path)
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read document from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read document from stdin: empty input")
	}

	return swagmodels.ParseDocument(data)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Lint.runner = runner
	options.Report.runner = runner
	options.Styles.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate Dart model sources from an OpenAPI or Swagger document.
Reads the document from the file argument or stdin and writes one artifact per
named schema into the output directory. Artifacts carry a marked generated
region; edits outside it survive regeneration.

Examples:
> $ %s generate -o lib/models api.yaml
> $ %s generate -s json_serializable -c swagmodels.yaml --changed-only api.yaml
> $ cat api.json | %s generate -o lib/models --dry-run
`, programName, programName, programName)),
		"lint": strings.TrimSpace(fmt.Sprintf(`
Check a schema document and print findings without writing artifacts.
Severity overrides use rule:severity pairs with severities off, warning or
error.

Examples:
> $ %s lint api.yaml
> $ %s lint -L missing_ref_target:error -L suspicious_id_field:off api.yaml
`, programName, programName)),
		"report": strings.TrimSpace(fmt.Sprintf(`
Render a markdown index describing what a generation run would produce.
The run is a dry run; no artifacts or cache entries are written.

Examples:
> $ %s report api.yaml > MODELS.md
> $ %s report -o lib/models -f custom.gotmpl api.yaml docs/models.md
`, programName, programName)),
		"styles": strings.TrimSpace(fmt.Sprintf(`
List rendering styles accepted by the --style flag.

Examples:
> $ %s styles
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
