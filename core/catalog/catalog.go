// Package catalog defines the standard work-item table used for quantity
// derivation. Items are immutable and registered at process start; each
// item carries an explicit formula kind so the derivation engine never
// has to pattern-match on the free-text group label.
package catalog

// FormulaKind selects the derivation formula for an item.
type FormulaKind string

const (
	// FormulaGeneric multiplies the base quantity by every declared
	// parameter. An item with zero requirements passes the base
	// quantity through unchanged.
	FormulaGeneric FormulaKind = "generic"

	// FormulaEarthwork computes an excavation volume from width, depth
	// and an optional slope allowance.
	FormulaEarthwork FormulaKind = "earthwork"

	// FormulaPipeline converts a linear run into a count of discrete
	// pipe sections via the per-section length.
	FormulaPipeline FormulaKind = "pipeline"

	// FormulaPaving computes a paving volume from width and thickness.
	FormulaPaving FormulaKind = "paving"

	// FormulaStructure computes a structural volume from width and height.
	FormulaStructure FormulaKind = "structure"

	// FormulaManual multiplies the base quantity by a user-supplied
	// conversion factor; the item name and unit come from the user.
	FormulaManual FormulaKind = "manual"
)

// ParamRequirement declares one adjustable parameter of a standard item.
type ParamRequirement struct {
	// ID is the parameter key, unique within the item
	ID string `json:"id"`

	// Name is the display label
	Name string `json:"name"`

	// Unit is the parameter unit
	Unit string `json:"unit"`

	// Default is the value used when the caller supplies none
	Default float64 `json:"default"`
}

// StandardItem is one named formula in the catalog.
type StandardItem struct {
	// ID uniquely identifies the item
	ID string `json:"id"`

	// Group is the category label for UI enumeration
	Group string `json:"group"`

	// Name is the item name
	Name string `json:"name"`

	// Kind selects the derivation formula
	Kind FormulaKind `json:"kind"`

	// Basis is the standard estimating reference (opaque citation)
	Basis string `json:"basis"`

	// Requirements are the adjustable parameters, in declaration order
	Requirements []ParamRequirement `json:"requirements"`

	// OutputUnit is the unit of the derived quantity
	OutputUnit string `json:"output_unit"`
}

// Requirement returns the declared requirement with the given ID.
func (it StandardItem) Requirement(id string) (ParamRequirement, bool) {
	for _, r := range it.Requirements {
		if r.ID == id {
			return r, true
		}
	}
	return ParamRequirement{}, false
}

// Catalog is a read-only, insertion-ordered lookup of standard items.
type Catalog struct {
	items   []StandardItem
	byID    map[string]int
	groups  []string
	byGroup map[string][]int
}

// New builds a catalog from the given items. Later duplicates of an ID
// are ignored; group enumeration preserves first-seen order.
func New(items ...StandardItem) *Catalog {
	c := &Catalog{
		byID:    make(map[string]int),
		byGroup: make(map[string][]int),
	}
	for _, it := range items {
		if _, dup := c.byID[it.ID]; dup {
			continue
		}
		idx := len(c.items)
		c.items = append(c.items, it)
		c.byID[it.ID] = idx
		if _, seen := c.byGroup[it.Group]; !seen {
			c.groups = append(c.groups, it.Group)
		}
		c.byGroup[it.Group] = append(c.byGroup[it.Group], idx)
	}
	return c
}

// FindByID returns the item with the given ID. A miss is not an error:
// callers treat it as an unmapped layer, not a failure.
func (c *Catalog) FindByID(id string) (StandardItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return StandardItem{}, false
	}
	return c.items[idx], true
}

// Items returns every item in registration order.
func (c *Catalog) Items() []StandardItem {
	out := make([]StandardItem, len(c.items))
	copy(out, c.items)
	return out
}

// Groups returns the group labels in first-seen order.
func (c *Catalog) Groups() []string {
	out := make([]string, len(c.groups))
	copy(out, c.groups)
	return out
}

// ItemsInGroup returns the items of one group in registration order.
func (c *Catalog) ItemsInGroup(group string) []StandardItem {
	idxs := c.byGroup[group]
	out := make([]StandardItem, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.items[i])
	}
	return out
}

// Len returns the number of registered items.
func (c *Catalog) Len() int {
	return len(c.items)
}
