// Package cmd - derive command
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"construct-cost/core/catalog"
	"construct-cost/core/derivation"
	"construct-cost/core/output"
	"construct-cost/internal/logging"
)

var (
	deriveItemID     string
	deriveBaseQty    float64
	deriveBaseUnit   string
	deriveParams     []string
	deriveLayer      string
	deriveSpec       string
	deriveCustomName string
	deriveCustomUnit string
	deriveListItems  bool
)

// deriveCmd represents the derive command
var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive an engineering quantity from a drawing measurement",
	Long: `Apply a standard item formula to a raw drawing measurement.

Parameters not supplied with --param fall back to the item defaults.
Use --list to enumerate the available standard items by group.

Examples:
  construct-cost derive --list
  construct-cost derive --item terra_trench --qty 120 --unit m --param width=2 --param depth=1.5 --param slope=0.3
  construct-cost derive --item manual_input --qty 12 --unit m2 --param custom_val=0.2 --custom-name 방수 보호몰탈 --custom-unit m3`,
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().StringVarP(&deriveItemID, "item", "i", "", "standard item ID")
	deriveCmd.Flags().Float64VarP(&deriveBaseQty, "qty", "q", 0, "base quantity from the drawing layer")
	deriveCmd.Flags().StringVarP(&deriveBaseUnit, "unit", "u", "m", "base quantity unit")
	deriveCmd.Flags().StringArrayVarP(&deriveParams, "param", "p", nil, "parameter override as id=value (repeatable)")
	deriveCmd.Flags().StringVar(&deriveLayer, "layer", "", "originating CAD layer name")
	deriveCmd.Flags().StringVar(&deriveSpec, "spec", "", "specification label")
	deriveCmd.Flags().StringVar(&deriveCustomName, "custom-name", "", "item name for manual entries")
	deriveCmd.Flags().StringVar(&deriveCustomUnit, "custom-unit", "", "unit for manual entries")
	deriveCmd.Flags().BoolVar(&deriveListItems, "list", false, "list standard items and exit")
}

func runDerive(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()

	if deriveListItems {
		listItems(cat)
		return nil
	}

	item, ok := cat.FindByID(deriveItemID)
	if !ok {
		// Unmapped selection is a needs-mapping state, not a failure.
		logging.Warn("standard item not mapped", zap.String("item", deriveItemID))
		fmt.Printf("no standard item %q: layer needs mapping (run with --list to enumerate items)\n", deriveItemID)
		return nil
	}

	params, err := parseParamOverrides(deriveParams)
	if err != nil {
		return err
	}

	result := derivation.Derive(item, params, deriveBaseQty, deriveBaseUnit)
	line, err := derivation.NewStatementLine(derivation.LineInput{
		Item:       item,
		Result:     result,
		BaseQty:    deriveBaseQty,
		BaseUnit:   deriveBaseUnit,
		Params:     params,
		Layer:      deriveLayer,
		Spec:       deriveSpec,
		CustomName: deriveCustomName,
		CustomUnit: deriveCustomUnit,
	})
	if err != nil {
		return err
	}

	formatter, err := output.New(output.Format(resolveFormat()))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.Report{
		GeneratedAt: time.Now().UTC(),
		Statement:   []derivation.StatementLine{line},
	})
}

func listItems(cat *catalog.Catalog) {
	for _, group := range cat.Groups() {
		fmt.Printf("%s\n", group)
		for _, item := range cat.ItemsInGroup(group) {
			fmt.Printf("  %-14s %s", item.ID, item.Name)
			if len(item.Requirements) > 0 {
				var ids []string
				for _, r := range item.Requirements {
					ids = append(ids, fmt.Sprintf("%s=%s", r.ID, strconv.FormatFloat(r.Default, 'f', -1, 64)))
				}
				fmt.Printf("  (%s)", strings.Join(ids, ", "))
			}
			fmt.Println()
		}
	}
}

// parseParamOverrides parses repeated id=value flags.
func parseParamOverrides(raw []string) (map[string]float64, error) {
	params := make(map[string]float64, len(raw))
	for _, kv := range raw {
		id, val, found := strings.Cut(kv, "=")
		if !found || id == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected id=value", kv)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter value in %q: %w", kv, err)
		}
		params[id] = f
	}
	return params, nil
}
