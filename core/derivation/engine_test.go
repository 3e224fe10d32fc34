package derivation

import (
	"math"
	"testing"

	"construct-cost/core/catalog"
)

func mustFind(t *testing.T, id string) catalog.StandardItem {
	t.Helper()
	item, ok := catalog.Default().FindByID(id)
	if !ok {
		t.Fatalf("catalog item %s missing", id)
	}
	return item
}

func TestResolveParams(t *testing.T) {
	item := mustFind(t, "terra_trench")

	tests := []struct {
		name      string
		overrides map[string]float64
		want      map[string]float64
	}{
		{
			name:      "all defaults",
			overrides: nil,
			want:      map[string]float64{"width": 2.0, "depth": 1.5, "slope": 0},
		},
		{
			name:      "sparse override",
			overrides: map[string]float64{"depth": 2.4},
			want:      map[string]float64{"width": 2.0, "depth": 2.4, "slope": 0},
		},
		{
			name:      "unknown keys dropped",
			overrides: map[string]float64{"depth": 2.4, "bogus": 9},
			want:      map[string]float64{"width": 2.0, "depth": 2.4, "slope": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveParams(item, tt.overrides)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d params, got %d", len(tt.want), len(got))
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("param %s: expected %v, got %v", k, v, got[k])
				}
			}
		})
	}
}

func TestDeriveEarthwork(t *testing.T) {
	item := mustFind(t, "terra_trench")

	t.Run("with slope", func(t *testing.T) {
		res := Derive(item, map[string]float64{"width": 2, "depth": 1.5, "slope": 0.3}, 10, "m")
		if res.FinalQty != 34.5 {
			t.Errorf("expected 34.5, got %v", res.FinalQty)
		}
	})

	t.Run("slope zero equals slope absent", func(t *testing.T) {
		withZero := Derive(item, map[string]float64{"width": 2, "depth": 1.5, "slope": 0}, 10, "m")
		absent := Derive(item, map[string]float64{"width": 2, "depth": 1.5}, 10, "m")

		if withZero.FinalQty != absent.FinalQty {
			t.Errorf("slope=0 gave %v, slope absent gave %v", withZero.FinalQty, absent.FinalQty)
		}
		if withZero.Derivation != absent.Derivation {
			t.Errorf("derivation strings differ:\n%s\n%s", withZero.Derivation, absent.Derivation)
		}
		if withZero.FinalQty != 30 {
			t.Errorf("expected 30, got %v", withZero.FinalQty)
		}
	})
}

func TestDerivePipeline(t *testing.T) {
	item := mustFind(t, "pipe_hume")

	res := Derive(item, map[string]float64{"unit_len": 2.5}, 100, "m")
	if res.FinalQty != 40 {
		t.Errorf("expected 40 sections, got %v", res.FinalQty)
	}

	// Division by a zero section length is unguarded by policy.
	inf := Derive(item, map[string]float64{"unit_len": 0}, 100, "m")
	if !math.IsInf(inf.FinalQty, 1) {
		t.Errorf("expected +Inf for unit_len=0, got %v", inf.FinalQty)
	}
}

func TestDerivePaving(t *testing.T) {
	item := mustFind(t, "pave_ascon")

	res := Derive(item, nil, 100, "m")
	// defaults: width 3.0, thickness 0.05
	if res.FinalQty != 15 {
		t.Errorf("expected 15, got %v", res.FinalQty)
	}
}

func TestDeriveStructure(t *testing.T) {
	item := mustFind(t, "struct_retain")

	res := Derive(item, map[string]float64{"width": 0.4, "height": 2}, 50, "m")
	if res.FinalQty != 40 {
		t.Errorf("expected 40, got %v", res.FinalQty)
	}
}

func TestDeriveManual(t *testing.T) {
	item := mustFind(t, catalog.ManualInputID)

	res := Derive(item, map[string]float64{"custom_val": 0.2}, 12, "m2")
	if res.FinalQty != 2.4 {
		t.Errorf("expected 2.4, got %v", res.FinalQty)
	}
}

func TestDeriveGenericProduct(t *testing.T) {
	item := catalog.StandardItem{
		ID:    "test_generic",
		Group: "시험",
		Name:  "시험 항목",
		Kind:  catalog.FormulaGeneric,
		Requirements: []catalog.ParamRequirement{
			{ID: "a", Name: "계수A", Default: 1},
			{ID: "b", Name: "계수B", Default: 1},
		},
		OutputUnit: "m3",
	}

	params := map[string]float64{"a": 1.2, "b": 3.4}
	res := Derive(item, params, 10, "m")

	// Round-trip property: base x product of every declared parameter.
	want := Round3(10 * 1.2 * 3.4)
	if res.FinalQty != want {
		t.Errorf("expected %v, got %v", want, res.FinalQty)
	}
}

func TestDeriveZeroRequirementsPassthrough(t *testing.T) {
	item := mustFind(t, "misc_fitting")

	res := Derive(item, nil, 55.5, "m")
	if res.FinalQty != 55.5 {
		t.Errorf("expected passthrough 55.5, got %v", res.FinalQty)
	}
	if res.Derivation != "55.5m = 55.500 m" {
		t.Errorf("unexpected derivation %q", res.Derivation)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	item := mustFind(t, "terra_trench")
	params := map[string]float64{"width": 2.2, "depth": 1.8, "slope": 0.3}

	first := Derive(item, params, 123.456, "m")
	second := Derive(item, params, 123.456, "m")

	if first.Derivation != second.Derivation {
		t.Errorf("derivation strings differ:\n%s\n%s", first.Derivation, second.Derivation)
	}
	if first.FinalQty != second.FinalQty {
		t.Errorf("quantities differ: %v vs %v", first.FinalQty, second.FinalQty)
	}
}

func TestFinalQtyRoundedToThreeDecimals(t *testing.T) {
	item := catalog.StandardItem{
		ID:   "test_round",
		Kind: catalog.FormulaGeneric,
		Requirements: []catalog.ParamRequirement{
			{ID: "k", Name: "계수", Default: 1.03},
		},
	}

	res := Derive(item, nil, 1.56, "m")
	if res.FinalQty != 1.607 {
		t.Errorf("expected 1.607, got %v", res.FinalQty)
	}
}
