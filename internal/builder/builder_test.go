package builder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodyn/hefestoxml/internal/ctxlog"
	"github.com/geodyn/hefestoxml/internal/hefesto"
	"github.com/geodyn/hefestoxml/internal/taxonomy"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// testTaxonomy is a small injected taxonomy covering the structural variants:
// a plain solution, one with the negative-components flag, one with an
// alternate output id, one with no interaction table, and standalone ids with
// and without records.
func testTaxonomy() *taxonomy.Taxonomy {
	return &taxonomy.Taxonomy{
		Solutions: []taxonomy.Solution{
			{Code: "ol", Name: "Olivine", Model: "EoS.Phases.RegularSolution, EoS.Core"},
			{Code: "opx", Name: "Orthopyroxene", Model: "EoS.Phases.RegularSolution, EoS.Core", AllowsNegative: true},
			{Code: "sp", Name: "Spinel", Model: "EoS.Phases.RegularSolution, EoS.Core", OutputID: "sps"},
			{Code: "gt", Name: "Garnet", Model: "EoS.Phases.RegularSolution, EoS.Core"},
		},
		Standalone: []string{"st", "qtz"},
	}
}

func testInputs() *Inputs {
	return &Inputs{
		DatasetID:   "SLB24",
		DatasetName: "Test dataset",
		Minerals: map[string]*hefesto.ParameterRecord{
			"fo": {
				ID:          "fo",
				FormulaRaw:  "Mg_2Si_1O_4",
				DisplayName: "Forsterite",
				Values: map[hefesto.Quantity]float64{
					hefesto.QtyF0: -2055.40,
					hefesto.QtyV0: 43.60,
					hefesto.QtyK0: 127.96,
				},
			},
			"fa": {
				ID:          "fa",
				FormulaRaw:  "Fe_2Si_1O_4",
				DisplayName: "Fayalite",
				Values: map[hefesto.Quantity]float64{
					hefesto.QtyK0: 130.0,
				},
			},
			"sp": {
				ID:          "sp",
				FormulaRaw:  "(Mg_3Fe_1)Al_8O_16",
				DisplayName: "Spinel",
				Values:      map[hefesto.Quantity]float64{},
			},
			"st": {
				ID:          "st",
				FormulaRaw:  "Si_1O_2",
				DisplayName: "Stishovite",
				Values: map[hefesto.Quantity]float64{
					hefesto.QtyK0:    305.9,
					hefesto.QtyTCrit: 800.0,
					hefesto.QtySCrit: 0.012,
				},
			},
			// Present in the parameter set but referenced by nothing.
			"zz": {
				ID:         "zz",
				FormulaRaw: "Fe_1",
				Values:     map[hefesto.Quantity]float64{},
			},
		},
		Phases: map[string]*hefesto.InteractionTable{
			"ol": {
				ID:         "ol",
				Endmembers: []string{"fo", "fa", "ghost"},
				Interactions: []hefesto.Interaction{
					{MemberA: "fo", MemberB: "fa", W: 7.6},
				},
			},
			"opx": {
				ID:         "opx",
				Endmembers: []string{"fo"},
			},
			"sp": {
				ID:         "sp",
				Endmembers: []string{"sp"},
			},
		},
	}
}

func build(t *testing.T) *etree.Document {
	t.Helper()
	return New(testTaxonomy()).Build(testContext(), testInputs())
}

func TestBuild_Header(t *testing.T) {
	t.Parallel()

	tax := testTaxonomy()
	tax.Lets = taxonomy.Default().Lets

	doc := New(tax).Build(testContext(), testInputs())
	root := doc.Root()
	require.NotNil(t, root)

	assert.Equal(t, "module", root.Tag)
	assert.Equal(t, "http://chust.org/eos", root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "SLB24", root.SelectAttrValue("id", ""))

	blurb := root.SelectElement("blurb")
	require.NotNil(t, blurb)
	assert.Contains(t, blurb.Text(), "Test dataset")

	lets := root.SelectElements("let")
	require.Len(t, lets, 4)
	assert.Equal(t, "T0", lets[0].SelectAttrValue("name", ""))
	assert.Equal(t, "K", lets[0].SelectAttrValue("unit", ""))
	assert.Equal(t, "300.0", lets[0].Text())
	assert.Equal(t, "False", lets[1].Text())
}

func TestBuild_SolutionGroups(t *testing.T) {
	t.Parallel()

	doc := build(t)

	ol := doc.FindElement("//phase[@id='ol']")
	require.NotNil(t, ol)
	assert.Equal(t, "EoS.Phases.RegularSolution, EoS.Core", ol.SelectAttrValue("type", ""))
	assert.Equal(t, "Olivine", ol.SelectElement("blurb").Text())

	// Endmembers in table order; "ghost" has no record and is omitted.
	var memberIDs []string
	for _, member := range ol.SelectElements("phase") {
		memberIDs = append(memberIDs, member.SelectAttrValue("id", ""))
	}
	assert.Equal(t, []string{"fo", "fa"}, memberIDs)

	// The gt solution has no interaction table at all and must not appear.
	assert.Nil(t, doc.FindElement("//phase[@id='gt']"))
}

func TestBuild_NegativeComponentsFlag(t *testing.T) {
	t.Parallel()

	doc := build(t)

	opx := doc.FindElement("//phase[@id='opx']")
	require.NotNil(t, opx)
	flag := opx.SelectElement("let")
	require.NotNil(t, flag)
	assert.Equal(t, "allows-negative-components", flag.SelectAttrValue("name", ""))
	assert.Equal(t, "True", flag.Text())

	ol := doc.FindElement("//phase[@id='ol']")
	require.NotNil(t, ol)
	assert.Nil(t, ol.SelectElement("let"))
}

func TestBuild_AlternateSolutionID(t *testing.T) {
	t.Parallel()

	doc := build(t)

	sps := doc.FindElement("//phase[@id='sps']")
	require.NotNil(t, sps)
	assert.Equal(t, "Spinel", sps.SelectElement("blurb").Text())

	// The endmember keeps the colliding id inside the renamed group.
	member := sps.SelectElement("phase")
	require.NotNil(t, member)
	assert.Equal(t, "sp", member.SelectAttrValue("id", ""))
}

func TestBuild_UnitConversion(t *testing.T) {
	t.Parallel()

	doc := build(t)

	fo := doc.FindElement("//phase[@id='fo']")
	require.NotNil(t, fo)
	assert.Equal(t, "(Mg)2(Si)(O)4", fo.SelectElement("formula").Text())

	values := make(map[string]string)
	units := make(map[string]string)
	for _, let := range fo.SelectElements("let") {
		name := let.SelectAttrValue("name", "")
		values[name] = let.Text()
		units[name] = let.SelectAttrValue("unit", "")
	}

	assert.Equal(t, "-2055.400e3", values["F0"])
	assert.Equal(t, "J/mol", units["F0"])
	assert.Equal(t, "43.6000e-6", values["V0"])
	assert.Equal(t, "m^3/mol", units["V0"])
	assert.Equal(t, "127.96000e9", values["K0"])
	assert.Equal(t, "Pa", units["K0"])

	// Quantities absent from the record produce no assignment at all.
	assert.NotContains(t, values, "θ0")
	assert.NotContains(t, values, "G0")

	fa := doc.FindElement("//phase[@id='fa']")
	require.NotNil(t, fa)
	k0 := fa.FindElement("let[@name='K0']")
	require.NotNil(t, k0)
	assert.Equal(t, "130.00000e9", k0.Text())
}

func TestBuild_LandauWrapping(t *testing.T) {
	t.Parallel()

	doc := build(t)

	// st has T_crit > 0 and is wrapped: outer transition node, inner base
	// model under a distinct id.
	outer := doc.FindElement("//phase[@id='st']")
	require.NotNil(t, outer)
	assert.Equal(t, "EoS.DebyeModel.LandauModification, EoS.DebyeModel", outer.SelectAttrValue("type", ""))
	assert.Equal(t, "Stishovite", outer.SelectElement("blurb").Text())

	crit := make(map[string]string)
	for _, let := range outer.SelectElements("let") {
		crit[let.SelectAttrValue("name", "")] = let.Text()
	}
	assert.Equal(t, "800.00000", crit["TC0"])
	assert.Equal(t, "0.012", crit["SD"])
	// V_crit is absent from the record and defaults to zero.
	assert.Equal(t, "0.000e-6", crit["VD"])

	inner := outer.SelectElement("phase")
	require.NotNil(t, inner)
	assert.Equal(t, "st/nolandau", inner.SelectAttrValue("id", ""))
	assert.Equal(t, "EoS.DebyeModel.DebyeSolid, EoS.DebyeModel", inner.SelectAttrValue("type", ""))
	assert.Equal(t, "Stishovite (no Landau)", inner.SelectElement("blurb").Text())

	// Formula and scalars live on the inner base model, not the wrapper.
	require.NotNil(t, inner.SelectElement("formula"))
	assert.Nil(t, outer.SelectElement("formula"))
	require.NotNil(t, inner.FindElement("let[@name='K0']"))
}

func TestBuild_FlatMineralWithoutTransition(t *testing.T) {
	t.Parallel()

	doc := build(t)

	fo := doc.FindElement("//phase[@id='fo']")
	require.NotNil(t, fo)
	assert.Equal(t, "EoS.DebyeModel.DebyeSolid, EoS.DebyeModel", fo.SelectAttrValue("type", ""))
	// No nested phase node for minerals without a transition.
	assert.Nil(t, fo.SelectElement("phase"))
}

func TestBuild_Interactions(t *testing.T) {
	t.Parallel()

	doc := build(t)

	ol := doc.FindElement("//phase[@id='ol']")
	require.NotNil(t, ol)

	inters := ol.SelectElements("interaction")
	require.Len(t, inters, 1)
	assert.Equal(t, "J/mol", inters[0].SelectAttrValue("unit", ""))
	assert.Equal(t, "7.6e3", inters[0].SelectAttrValue("value", ""))

	refs := inters[0].SelectElements("phase")
	require.Len(t, refs, 2)
	assert.Equal(t, "fo", refs[0].SelectAttrValue("ref", ""))
	assert.Equal(t, "fa", refs[1].SelectAttrValue("ref", ""))
}

func TestBuild_InteractionRefsAreEmittedMembers(t *testing.T) {
	t.Parallel()

	doc := build(t)

	// Every interaction in every group references only endmember ids that
	// are also emitted as mineral phases of that same group.
	for _, group := range doc.Root().SelectElements("phase") {
		members := make(map[string]bool)
		for _, member := range group.SelectElements("phase") {
			members[member.SelectAttrValue("id", "")] = true
		}
		for _, inter := range group.SelectElements("interaction") {
			for _, ref := range inter.SelectElements("phase") {
				id := ref.SelectAttrValue("ref", "")
				assert.True(t, members[id], "interaction in %q references unemitted endmember %q",
					group.SelectAttrValue("id", ""), id)
			}
		}
	}
}

func TestBuild_UnreferencedMineralIsDropped(t *testing.T) {
	t.Parallel()

	doc := build(t)

	// zz exists in the parameter set but no phase or standalone entry names
	// it; it must not appear anywhere in the output.
	assert.Nil(t, doc.FindElement("//phase[@id='zz']"))
}

func TestBuild_StandaloneMinerals(t *testing.T) {
	t.Parallel()

	doc := build(t)
	root := doc.Root()

	// st has a record and is emitted at top level; qtz has none and is
	// silently omitted.
	var topIDs []string
	for _, phase := range root.SelectElements("phase") {
		topIDs = append(topIDs, phase.SelectAttrValue("id", ""))
	}
	assert.Contains(t, topIDs, "st")
	assert.NotContains(t, topIDs, "qtz")
}
