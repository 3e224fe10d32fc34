// Package wbs - numbering pipeline stages
package wbs

import (
	"fmt"
	"strings"

	"construct-cost/core/types"
)

// DefaultProjectCode is the numbering prefix used when none is
// configured.
const DefaultProjectCode = "PRJ26"

// DefaultSpaceFacet is the space label used when a BoQ row carries no
// space facet.
const DefaultSpaceFacet = "공통"

// Marker words recognised by code assignment.
var (
	commonMarkers       = []string{"공통", "일반"}
	unclassifiedMarkers = []string{"기타", "미분류"}
)

// Fixed node IDs of the base template.
const (
	rootNodeID      = "wbs_root"
	templateTempID  = "wbs_100"
	templateFrameID = "wbs_200"
	templateFinID   = "wbs_300"
)

// Pipeline runs the four WBS generation stages under one project code.
type Pipeline struct {
	// ProjectCode prefixes every assigned PNS code
	ProjectCode string
}

// NewPipeline returns a pipeline with the default project code.
func NewPipeline() *Pipeline {
	return &Pipeline{ProjectCode: DefaultProjectCode}
}

// ExtractTemplate returns the base tree for a project profile: the root
// plus the fixed level-2 category nodes. The template is currently
// constant regardless of profile; the profile argument is the seam for
// matching against historical templates later.
func (p *Pipeline) ExtractTemplate(profile Profile) []Node {
	_ = profile
	return []Node{
		{ID: rootNodeID, ParentID: "", Name: "프로젝트 전체", Level: 1},
		{ID: templateTempID, ParentID: rootNodeID, Name: "가설 및 토공사", Level: 2},
		{ID: templateFrameID, ParentID: rootNodeID, Name: "골조공사", Level: 2},
		{ID: templateFinID, ParentID: rootNodeID, Name: "마감공사", Level: 2},
	}
}

// ExpandFacetMatrix synthesizes one level-3 leaf per BoQ row that
// carries both an element and a work-type facet, named by joining the
// space/element/work-type facets. Rows lacking either facet are
// skipped, not defaulted. Leaves carry the row's total cost and parent
// under the frame category node.
func (p *Pipeline) ExpandFacetMatrix(nodes []Node, rows []types.BoQRow) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)

	leafSeq := 1
	for _, row := range rows {
		if row.FacetElement == "" || row.FacetWorkType == "" {
			continue
		}
		space := row.FacetSpace
		if space == "" {
			space = DefaultSpaceFacet
		}

		out = append(out, Node{
			ID:           fmt.Sprintf("wbs_leaf_%d", leafSeq),
			ParentID:     templateFrameID,
			Name:         space + " - " + row.FacetElement + " - " + row.FacetWorkType,
			Level:        3,
			AssignedCost: row.TotalCost,
			HasCost:      true,
		})
		leafSeq++
	}

	return out
}

// AssignCodes assigns every node a PNS code of the form
// <projectCode>-<segment>: "00-0" for common/general names, "ZZ-Z" for
// other/unclassified names, else "A<level>-<seq>" with a zero-padded
// running index in traversal order. Re-running the stage on an already
// coded list reassigns fresh, consistent codes.
func (p *Pipeline) AssignCodes(nodes []Node) []Node {
	code := p.ProjectCode
	if code == "" {
		code = DefaultProjectCode
	}

	out := make([]Node, len(nodes))
	for i, node := range nodes {
		switch {
		case containsAny(node.Name, commonMarkers):
			node.PnsCode = code + "-00-0"
		case containsAny(node.Name, unclassifiedMarkers):
			node.PnsCode = code + "-ZZ-Z"
		default:
			node.PnsCode = fmt.Sprintf("%s-A%d-%03d", code, node.Level, i+1)
		}
		out[i] = node
	}
	return out
}

// RollupSchedule attaches schedule data to every node above level 1 by
// positional pairing: node i takes scheduleRows[i % len(scheduleRows)],
// wrapping when there are fewer rows than nodes. Positional pairing is
// a placeholder for a real matching key (name or WBS code); keep the
// wrap behavior until the matching rule is decided.
func (p *Pipeline) RollupSchedule(nodes []Node, rows []types.ScheduleRow) []Node {
	if len(rows) == 0 {
		return nodes
	}

	out := make([]Node, len(nodes))
	for i, node := range nodes {
		if node.Level > 1 {
			row := rows[i%len(rows)]
			node.Schedule = &NodeSchedule{
				StartDate:    row.StartDate,
				EndDate:      row.EndDate,
				DurationDays: row.DurationDays,
			}
		}
		out[i] = node
	}
	return out
}

// RunFullPipeline composes the four stages in order: template, facet
// expansion, code assignment, schedule rollup.
func (p *Pipeline) RunFullPipeline(profile Profile, boq []types.BoQRow, schedule []types.ScheduleRow) []Node {
	nodes := p.ExtractTemplate(profile)
	nodes = p.ExpandFacetMatrix(nodes, boq)
	nodes = p.AssignCodes(nodes)
	nodes = p.RollupSchedule(nodes, schedule)
	return nodes
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
