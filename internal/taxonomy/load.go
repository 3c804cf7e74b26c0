package taxonomy

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/geodyn/hefestoxml/internal/ctxlog"
)

//go:embed default.hcl
var defaultHCL []byte

// letBlock decodes a `let "name" { ... }` block.
type letBlock struct {
	Name  string    `hcl:"name,label"`
	Unit  string    `hcl:"unit,optional"`
	Value cty.Value `hcl:"value"`
}

// solutionBlock decodes a `solution "code" { ... }` block.
type solutionBlock struct {
	Code           string `hcl:"code,label"`
	Name           string `hcl:"name"`
	Model          string `hcl:"model"`
	AllowsNegative bool   `hcl:"allows_negative,optional"`
	OutputID       string `hcl:"output_id,optional"`
}

// fileRoot decodes the top-level structure of a taxonomy file. Unknown blocks
// or attributes are rejected so that mistakes in an override file surface
// immediately instead of silently changing the output.
type fileRoot struct {
	Lets       []*letBlock      `hcl:"let,block"`
	Solutions  []*solutionBlock `hcl:"solution,block"`
	Standalone []string         `hcl:"standalone,optional"`
}

// Default returns the built-in taxonomy compiled into the binary.
func Default() *Taxonomy {
	tax, err := parse("default.hcl", defaultHCL)
	if err != nil {
		// The embedded default is fixed at build time; failing to parse it
		// is a programmer error.
		panic(err)
	}
	return tax
}

// LoadFile loads a taxonomy override from an HCL file, replacing the built-in
// table entirely.
func LoadFile(ctx context.Context, path string) (*Taxonomy, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	tax, err := parse(path, src)
	if err != nil {
		return nil, err
	}

	logger.Debug("Taxonomy override loaded.", "path", path, "solutions", len(tax.Solutions), "standalone", len(tax.Standalone))
	return tax, nil
}

func parse(filename string, src []byte) (*Taxonomy, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode taxonomy file %s: %w", filename, diags)
	}

	tax := &Taxonomy{Standalone: root.Standalone}
	for _, l := range root.Lets {
		tax.Lets = append(tax.Lets, HeaderLet{Name: l.Name, Unit: l.Unit, Value: l.Value})
	}
	for _, s := range root.Solutions {
		tax.Solutions = append(tax.Solutions, Solution{
			Code:           s.Code,
			Name:           s.Name,
			Model:          s.Model,
			AllowsNegative: s.AllowsNegative,
			OutputID:       s.OutputID,
		})
	}
	return tax, nil
}
