package builder

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/geodyn/hefestoxml/internal/ctxlog"
	"github.com/geodyn/hefestoxml/internal/formula"
	"github.com/geodyn/hefestoxml/internal/hefesto"
	"github.com/geodyn/hefestoxml/internal/taxonomy"
)

// Namespace is the XML namespace of the generated database.
const Namespace = "http://chust.org/eos"

// Model type tags of the equation-of-state engine.
const (
	debyeSolidType = "EoS.DebyeModel.DebyeSolid, EoS.DebyeModel"
	landauType     = "EoS.DebyeModel.LandauModification, EoS.DebyeModel"
)

const blurbTemplate = `
    Thermodynamic dataset: %s
    Parameter set 010123 for use with HeFESTo

    Reference:
    Stixrude, L. and C. Lithgow-Bertelloni,
    Thermodynamics of mantle minerals - III. The role of iron,
    Geophysical Journal International, in press, 2024.
  `

// Inputs carries everything one Build call consumes.
type Inputs struct {
	DatasetID   string
	DatasetName string
	Minerals    map[string]*hefesto.ParameterRecord
	Phases      map[string]*hefesto.InteractionTable
}

// Builder assembles output documents according to the taxonomy it was
// constructed with.
type Builder struct {
	tax *taxonomy.Taxonomy
}

// New creates a builder for the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Builder {
	return &Builder{tax: tax}
}

// Build assembles the complete document tree. It never fails: taxonomy
// entries without parsed data are omitted from the output.
func (b *Builder) Build(ctx context.Context, in *Inputs) *etree.Document {
	logger := ctxlog.FromContext(ctx)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	root := doc.CreateElement("module")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("id", in.DatasetID)

	root.CreateElement("blurb").SetText(fmt.Sprintf(blurbTemplate, in.DatasetName))
	for _, let := range b.tax.Lets {
		addLet(root, let.Name, let.Unit, let.Text())
	}

	for _, sol := range b.tax.Solutions {
		table, ok := in.Phases[sol.Code]
		if !ok {
			logger.Debug("No interaction table for solution, omitting.", "code", sol.Code)
			continue
		}
		addSolution(root, sol, table, in.Minerals)
	}

	for _, id := range b.tax.Standalone {
		rec, ok := in.Minerals[id]
		if !ok {
			logger.Debug("No parameter record for standalone mineral, omitting.", "id", id)
			continue
		}
		addMineral(root, rec)
	}

	return doc
}

// addSolution emits one solution phase group: blurb, optional negative
// components flag, one mineral phase per endmember with a record, then the
// interaction nodes.
func addSolution(parent *etree.Element, sol taxonomy.Solution, table *hefesto.InteractionTable, minerals map[string]*hefesto.ParameterRecord) {
	el := parent.CreateElement("phase")
	el.CreateAttr("type", sol.Model)
	el.CreateAttr("id", sol.EmitID())
	el.CreateElement("blurb").SetText(sol.Name)

	if sol.AllowsNegative {
		flag := el.CreateElement("let")
		flag.CreateAttr("name", "allows-negative-components")
		flag.SetText("True")
	}

	for _, id := range table.Endmembers {
		rec, ok := minerals[id]
		if !ok {
			continue
		}
		addMineral(el, rec)
	}

	for _, w := range table.Interactions {
		inter := el.CreateElement("interaction")
		inter.CreateAttr("unit", "J/mol")
		// Stored W values are kJ/mol by dataset convention.
		inter.CreateAttr("value", formatScalar(w.W, 1, "e3"))
		inter.CreateElement("phase").CreateAttr("ref", w.MemberA)
		inter.CreateElement("phase").CreateAttr("ref", w.MemberB)
	}
}

// addMineral emits one mineral phase node under parent, wrapping it in a
// Landau transition node when the record defines a positive critical
// temperature.
func addMineral(parent *etree.Element, rec *hefesto.ParameterRecord) {
	tCrit := rec.Values[hefesto.QtyTCrit]

	var phase *etree.Element
	if tCrit > 0 {
		outer := parent.CreateElement("phase")
		outer.CreateAttr("type", landauType)
		outer.CreateAttr("id", rec.ID)
		outer.CreateElement("blurb").SetText(rec.Title())

		addLet(outer, "TC0", "K", formatScalar(tCrit, 5, ""))
		addLet(outer, "SD", "J/mol/K", formatScalar(rec.Values[hefesto.QtySCrit], 3, ""))
		addLet(outer, "VD", "m^3/mol", formatScalar(rec.Values[hefesto.QtyVCrit], 3, "e-6"))

		phase = outer.CreateElement("phase")
		phase.CreateAttr("type", debyeSolidType)
		phase.CreateAttr("id", rec.ID+"/nolandau")
		phase.CreateElement("blurb").SetText(rec.Title() + " (no Landau)")
	} else {
		phase = parent.CreateElement("phase")
		phase.CreateAttr("type", debyeSolidType)
		phase.CreateAttr("id", rec.ID)
		phase.CreateElement("blurb").SetText(rec.Title())
	}

	phase.CreateElement("formula").SetText(formula.Normalize(rec.FormulaRaw))

	for _, spec := range scalarSpecs {
		v, ok := rec.Values[spec.Quantity]
		if !ok {
			// Partial records are valid; absent quantities emit nothing.
			continue
		}
		addLet(phase, spec.Name, spec.Unit, formatScalar(v, spec.Decimals, spec.Suffix))
	}
}

// addLet emits a <let> assignment. The unit attribute is omitted when empty.
func addLet(parent *etree.Element, name, unit, value string) {
	el := parent.CreateElement("let")
	el.CreateAttr("name", name)
	if unit != "" {
		el.CreateAttr("unit", unit)
	}
	el.SetText(value)
}
