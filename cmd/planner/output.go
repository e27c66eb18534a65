package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaunaqR66996/finplan/pkg/planner"
)

// OutputConfig controls how planning results are rendered.
type OutputConfig struct {
	Format    string
	OutputDir string
	Verbose   bool
	PlanTime  time.Duration
}

// generateOutput renders the plan in the configured format.
func generateOutput(in planner.Input, out planner.Output, config OutputConfig) error {
	switch config.Format {
	case "text":
		return generateTextOutput(in, out, config)
	case "json":
		return generateJSONOutput(in, out, config)
	case "csv":
		return generateCSVOutput(out, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// plannedValue prices every booked line at the item's unit cost.
func plannedValue(in planner.Input, out planner.Output) decimal.Decimal {
	costs := make(map[string]decimal.Decimal, len(in.Items))
	for _, item := range in.Items {
		costs[item.SKU] = item.UnitCost
	}

	total := decimal.Zero
	for _, line := range out.Lines {
		total = total.Add(line.Quantity.Mul(costs[line.SKU]))
	}
	return total
}

func generateTextOutput(in planner.Input, out planner.Output, config OutputConfig) error {
	var output string

	output += "═══════════════════════════════════════════════════════════════\n"
	output += "                 PRODUCTION PLAN RESULTS\n"
	output += "═══════════════════════════════════════════════════════════════\n\n"

	alertCounts := make(map[planner.AlertType]int)
	for _, alert := range out.Alerts {
		alertCounts[alert.Type]++
	}

	output += "SUMMARY\n"
	output += fmt.Sprintf("  Plan: %s  Org: %s\n", in.PlanID, in.OrgID)
	output += fmt.Sprintf("  Planning Time: %v\n", config.PlanTime)
	output += fmt.Sprintf("  Plan Lines: %d\n", len(out.Lines))
	output += fmt.Sprintf("  Planned Value: %s\n", plannedValue(in, out).StringFixed(2))
	output += fmt.Sprintf("  Alerts: %d\n", len(out.Alerts))
	for _, alertType := range []planner.AlertType{
		planner.AlertCapacityOverload,
		planner.AlertStockoutPredicted,
		planner.AlertStockBlocked,
		planner.AlertBottleneckWarning,
		planner.AlertMaterialShortage,
		planner.AlertLateOrder,
	} {
		if count := alertCounts[alertType]; count > 0 {
			output += fmt.Sprintf("    %-20s %d\n", alertType, count)
		}
	}
	output += "\n"

	if len(out.Lines) > 0 {
		output += "PLAN LINES\n"
		output += "────────────────────────────────────────────────────────────────\n"
		for _, line := range out.Lines {
			output += fmt.Sprintf("Item: %-16s Qty: %8s  WC: %s\n",
				line.SKU, line.Quantity.String(), line.WorkCenterID)
			output += fmt.Sprintf("  %s -> %s\n",
				line.Start.Format("2006-01-02 15:04"),
				line.End.Format("2006-01-02 15:04"))
			output += fmt.Sprintf("  Reason: %s\n", line.Reason.Msg)
			if line.Reason.ConstraintHit != "" {
				output += fmt.Sprintf("  Constraint Hit: %s\n", line.Reason.ConstraintHit)
			}
			output += "\n"
		}
	}

	if len(out.Alerts) > 0 {
		output += "ALERTS\n"
		output += "────────────────────────────────────────────────────────────────\n"
		for _, alert := range out.Alerts {
			output += fmt.Sprintf("[%s] %s\n", alert.Type, alert.Message)
		}
		output += "\n"
	}

	output += "═══════════════════════════════════════════════════════════════\n"

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "plan_results.txt")
		if err := os.WriteFile(filename, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
		if config.Verbose {
			fmt.Printf("Text output written to: %s\n", filename)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

func generateJSONOutput(in planner.Input, out planner.Output, config OutputConfig) error {
	jsonResult := struct {
		Metadata struct {
			OrgID        string `json:"org_id"`
			PlanID       string `json:"plan_id"`
			PlanningTime string `json:"planning_time"`
			GeneratedAt  string `json:"generated_at"`
		} `json:"metadata"`
		Summary struct {
			LineCount    int    `json:"line_count"`
			AlertCount   int    `json:"alert_count"`
			PlannedValue string `json:"planned_value"`
		} `json:"summary"`
		Lines  []planner.PlanLine `json:"lines"`
		Alerts []planner.Alert    `json:"alerts"`
	}{
		Lines:  out.Lines,
		Alerts: out.Alerts,
	}

	jsonResult.Metadata.OrgID = in.OrgID
	jsonResult.Metadata.PlanID = in.PlanID
	jsonResult.Metadata.PlanningTime = config.PlanTime.String()
	jsonResult.Metadata.GeneratedAt = time.Now().Format(time.RFC3339)
	jsonResult.Summary.LineCount = len(out.Lines)
	jsonResult.Summary.AlertCount = len(out.Alerts)
	jsonResult.Summary.PlannedValue = plannedValue(in, out).StringFixed(2)

	jsonBytes, err := json.MarshalIndent(jsonResult, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "plan_results.json")
		if err := os.WriteFile(filename, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
		if config.Verbose {
			fmt.Printf("JSON output written to: %s\n", filename)
		}
	} else {
		fmt.Printf("%s\n", jsonBytes)
	}

	return nil
}

func generateCSVOutput(out planner.Output, config OutputConfig) error {
	if config.OutputDir == "" {
		return fmt.Errorf("CSV output requires an output directory (-output)")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if len(out.Lines) > 0 {
		filename := filepath.Join(config.OutputDir, "plan_lines.csv")
		if err := writeLinesCSV(out.Lines, filename); err != nil {
			return fmt.Errorf("failed to write plan lines CSV: %w", err)
		}
		if config.Verbose {
			fmt.Printf("Plan lines CSV written to: %s\n", filename)
		}
	}

	if len(out.Alerts) > 0 {
		filename := filepath.Join(config.OutputDir, "alerts.csv")
		if err := writeAlertsCSV(out.Alerts, filename); err != nil {
			return fmt.Errorf("failed to write alerts CSV: %w", err)
		}
		if config.Verbose {
			fmt.Printf("Alerts CSV written to: %s\n", filename)
		}
	}

	return nil
}

func writeLinesCSV(lines []planner.PlanLine, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"id", "item_id", "work_center_id", "start", "end", "quantity", "decision", "constraint_hit", "msg"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, line := range lines {
		record := []string{
			line.ID,
			line.SKU,
			line.WorkCenterID,
			line.Start.Format(time.RFC3339),
			line.End.Format(time.RFC3339),
			line.Quantity.String(),
			line.Reason.Decision,
			line.Reason.ConstraintHit,
			line.Reason.Msg,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeAlertsCSV(alerts []planner.Alert, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"id", "type", "message", "data"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, alert := range alerts {
		data, err := json.Marshal(alert.Data)
		if err != nil {
			return err
		}
		record := []string{
			alert.ID,
			string(alert.Type),
			alert.Message,
			string(data),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
