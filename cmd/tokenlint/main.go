package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	j "github.com/goccy/go-json"

	tokenlint "github.com/tokenlint/tokenlint"
	"github.com/tokenlint/tokenlint/i18n"
	reportschema "github.com/tokenlint/tokenlint/jsonschema"
)

var cli struct {
	Lang string `help:"Message language (en/ja)." default:"en"`

	Validate validateCmd `cmd:"" help:"Validate a token document and report issues."`
	Fix      fixCmd      `cmd:"" help:"Rewrite a token document into conformant shape."`
	Schema   schemaCmd   `cmd:"" help:"Print the JSON Schema of the validation report."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("tokenlint"),
		kong.Description("Validate and normalize design-token documents."),
		kong.UsageOnError(),
	)
	i18n.SetLanguage(cli.Lang)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tokenlint: "+err.Error())
		os.Exit(1)
	}
}

type validateCmd struct {
	Input  string `arg:"" optional:"" help:"Token document path (stdin when omitted)." type:"path"`
	Format string `help:"Input format: json or yaml (default: by extension)." enum:"json,yaml," default:""`
	JSON   bool   `help:"Emit the full report as JSON."`
}

func (c *validateCmd) Run() error {
	doc, err := readDocument(c.Input, c.Format)
	if err != nil {
		return err
	}
	res := tokenlint.Validate(doc)
	if c.JSON {
		out, err := j.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		renderReport(os.Stdout, res)
	}
	if !res.Valid {
		return fmt.Errorf("document is invalid (%d errors)", len(res.Errors))
	}
	return nil
}

type fixCmd struct {
	Input     string `arg:"" optional:"" help:"Token document path (stdin when omitted)." type:"path"`
	Output    string `help:"Output path (stdout when omitted)." short:"o" type:"path"`
	Format    string `help:"Input format: json or yaml (default: by extension)." enum:"json,yaml," default:""`
	KebabKeys bool   `help:"Rewrite group and token keys to kebab-case."`
}

func (c *fixCmd) Run() error {
	doc, err := readDocument(c.Input, c.Format)
	if err != nil {
		return err
	}
	fixed := tokenlint.AutoFix(doc, tokenlint.Options{KebabKeys: c.KebabKeys})
	out, err := j.MarshalIndent(fixed, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if c.Output != "" {
		if err := os.WriteFile(c.Output, out, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", c.Output)
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

type schemaCmd struct {
	Target string `arg:"" optional:"" help:"Schema target: report or fixes." enum:"report,fixes" default:"report"`
}

func (c *schemaCmd) Run() error {
	var v any
	switch c.Target {
	case "fixes":
		v = reportschema.Fixes()
	default:
		v = reportschema.Report()
	}
	out, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// readDocument loads a JSON or YAML token document from a file or stdin. The
// format defaults from the file extension; stdin defaults to JSON.
func readDocument(path, format string) (any, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("empty input")
	}
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	if format == "yaml" {
		return tokenlint.DecodeYAML(data)
	}
	return tokenlint.DecodeJSON(data)
}

func renderReport(w io.Writer, res tokenlint.Result) {
	fmt.Fprintln(w, res.Summary())
	for _, is := range res.Errors {
		renderIssue(w, is)
	}
	for _, is := range res.Warnings {
		renderIssue(w, is)
	}
	for _, si := range res.StructureIssues {
		fmt.Fprintf(w, "  structure %s at %s: %s\n", si.Issue, si.Path, si.Description)
		fmt.Fprintf(w, "    suggestion: %s\n", si.Suggestion)
	}
}

func renderIssue(w io.Writer, is tokenlint.Issue) {
	fmt.Fprintf(w, "  %s %s at %s: %s\n", is.Severity, is.Code, is.Path, is.Message)
	if is.Hint != "" {
		fmt.Fprintf(w, "    hint: %s\n", is.Hint)
	}
}
