// Package catalog - default standard item set
package catalog

// ManualInputID is the catalog ID of the free-form entry item. It is the
// one item whose name and unit come from the caller instead of the
// catalog, and statement acceptance requires both to be non-empty.
const ManualInputID = "manual_input"

// Default returns the built-in standard item set for civil works.
func Default() *Catalog {
	return New(
		StandardItem{
			ID:    "terra_trench",
			Group: "토공사",
			Name:  "터파기(토사)",
			Kind:  FormulaEarthwork,
			Basis: "토목공사 표준품셈 [2-1-1] 인력터파기 및 되메우기 기준 적용",
			Requirements: []ParamRequirement{
				{ID: "width", Name: "폭", Unit: "m", Default: 2.0},
				{ID: "depth", Name: "깊이", Unit: "m", Default: 1.5},
				{ID: "slope", Name: "여유폭", Unit: "m", Default: 0},
			},
			OutputUnit: "m3",
		},
		StandardItem{
			ID:    "terra_backfill",
			Group: "토공사",
			Name:  "되메우기 및 다짐",
			Kind:  FormulaEarthwork,
			Basis: "토목공사 표준품셈 [2-1-1] 인력터파기 및 되메우기 기준 적용",
			Requirements: []ParamRequirement{
				{ID: "width", Name: "폭", Unit: "m", Default: 2.0},
				{ID: "depth", Name: "깊이", Unit: "m", Default: 1.2},
			},
			OutputUnit: "m3",
		},
		StandardItem{
			ID:    "pipe_hume",
			Group: "관로공사",
			Name:  "흄관 부설 (D300)",
			Kind:  FormulaPipeline,
			Basis: "토목공사 표준품셈 [6-3-2] 관 부설 기준 적용",
			Requirements: []ParamRequirement{
				{ID: "unit_len", Name: "본당 길이", Unit: "m", Default: 2.5},
			},
			OutputUnit: "본",
		},
		StandardItem{
			ID:    "pipe_pvc",
			Group: "관로공사",
			Name:  "PVC 이중벽관 부설 (D200)",
			Kind:  FormulaPipeline,
			Basis: "토목공사 표준품셈 [6-3-2] 관 부설 기준 적용",
			Requirements: []ParamRequirement{
				{ID: "unit_len", Name: "본당 길이", Unit: "m", Default: 4.0},
			},
			OutputUnit: "본",
		},
		StandardItem{
			ID:    "pave_ascon",
			Group: "포장공사",
			Name:  "아스콘 포장 (표층)",
			Kind:  FormulaPaving,
			Basis: "도로공사 표준시방서 제5장 아스팔트 콘크리트 포장공사 기준 적용",
			Requirements: []ParamRequirement{
				{ID: "width", Name: "포장폭", Unit: "m", Default: 3.0},
				{ID: "thickness", Name: "두께", Unit: "m", Default: 0.05},
			},
			OutputUnit: "m3",
		},
		StandardItem{
			ID:    "struct_retain",
			Group: "골조공사",
			Name:  "RC 옹벽",
			Kind:  FormulaStructure,
			Basis: "건축공사 표준품셈 철근콘크리트 구조물 기준 적용",
			Requirements: []ParamRequirement{
				{ID: "width", Name: "벽체두께", Unit: "m", Default: 0.4},
				{ID: "height", Name: "높이", Unit: "m", Default: 2.0},
			},
			OutputUnit: "m3",
		},
		StandardItem{
			ID:    "gutter_side",
			Group: "배수공사",
			Name:  "콘크리트 측구 설치",
			Kind:  FormulaGeneric,
			Basis: "토목공사 표준품셈 [4-2-1] 콘크리트 측구 설치 기준 적용",
			Requirements: []ParamRequirement{
				{ID: "section_area", Name: "단면적", Unit: "m2", Default: 0.09},
			},
			OutputUnit: "m3",
		},
		StandardItem{
			ID:           "misc_fitting",
			Group:        "기타",
			Name:         "잡철물 설치",
			Kind:         FormulaGeneric,
			Basis:        "현장 실측 수량 적용",
			Requirements: nil,
			OutputUnit:   "m",
		},
		StandardItem{
			ID:    ManualInputID,
			Group: "기타",
			Name:  "직접 입력",
			Kind:  FormulaManual,
			Basis: "사용자 정의 산출 근거",
			Requirements: []ParamRequirement{
				{ID: "custom_val", Name: "환산 계수", Unit: "-", Default: 1.0},
			},
			OutputUnit: "",
		},
	)
}
