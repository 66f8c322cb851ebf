package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/paddydoc/internal/config"
	"github.com/verdant-labs/paddydoc/internal/logging"
	"github.com/verdant-labs/paddydoc/pkg/paddydoc"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "paddydoc",
		Short: "Rice leaf disease diagnosis from the command line",
		Long: `Paddydoc diagnoses rice leaf diseases from photos using an on-device
ONNX image classifier. Point it at a leaf photo and it prints the disease,
confidence, severity, and remediation advice. Without a model artifact it
runs in a degraded synthetic mode so the workflow stays testable offline.`,
		SilenceUsage: true,
	}
	root.AddCommand(newDiagnoseCmd(), newLabelsCmd())
	return root
}

func newDiagnoseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "diagnose <image>",
		Short: "Diagnose a rice leaf photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logging.Init(cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

			p, err := paddydoc.New(
				paddydoc.WithModelPath(cfg.Model.Path),
				paddydoc.WithORTLibrary(cfg.Model.ORTLibrary),
				paddydoc.WithConfidenceGate(cfg.Engine.ConfidenceGate),
			)
			if err != nil {
				return err
			}
			defer p.Close()

			d, err := p.Predict(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			printDiagnosis(d)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the diagnosis as JSON")
	return cmd
}

func newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List the diagnosable diseases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range paddydoc.Labels() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func printDiagnosis(d paddydoc.Diagnosis) {
	fmt.Printf("Diagnosis:  %s", d.Label)
	if d.Synthetic {
		fmt.Print("  (synthetic, no model available)")
	}
	fmt.Println()
	fmt.Printf("Confidence: %.1f%%\n", d.Confidence*100)
	fmt.Printf("Severity:   %s\n", d.Severity)
	fmt.Printf("\n%s\n\nRecommendations:\n", d.Description)
	for i, rec := range d.Recommendations {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}
}
