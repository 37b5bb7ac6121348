// Package main provides the utplan binary entry point. Utplan turns a part
// description into an inspection plan: a calibration block recommendation,
// a scan patch layout, and an OEM rule check, printed as JSON for the
// report/CAD layers downstream.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"ut-planner/internal/calblock"
	"ut-planner/internal/oemrules"
	"ut-planner/internal/planner"
	"ut-planner/internal/project"
	"ut-planner/internal/solidspec"
	"ut-planner/internal/version"
)

const appName = "utplan"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Ultrasonic inspection planning engine",
		Long: `Utplan plans ultrasonic inspections from a part description.

Given a request file (YAML or JSON) describing the part, the applicable
code, and the scan setup, it recommends a calibration block, tiles the
part into scan patches, and validates the setup against OEM rules.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(planCmd())
	cmd.AddCommand(calblockCmd())
	cmd.AddCommand(patchesCmd())
	cmd.AddCommand(validateCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, version.Version, version.BuildTime)
		},
	})

	return cmd
}

func planCmd() *cobra.Command {
	var (
		outPath     string
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "plan <request-file>",
		Short: "Run the full planning pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(args[0])
			if err != nil {
				return err
			}

			result, err := planner.Plan(req)
			if err != nil {
				return err
			}

			if projectPath != "" {
				if err := recordProject(projectPath, args[0], outPath, req); err != nil {
					return err
				}
			}
			return writeResult(outPath, result)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the plan to a file instead of stdout")
	cmd.Flags().StringVar(&projectPath, "project", "", "Record this run in a .utproj project file")
	return cmd
}

func calblockCmd() *cobra.Command {
	var (
		outPath     string
		drawingPath string
	)

	cmd := &cobra.Command{
		Use:   "calblock <request-file>",
		Short: "Recommend a calibration block for the part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(args[0])
			if err != nil {
				return err
			}

			rec := calblock.SelectBlock(blockRequest(req))

			if drawingPath != "" {
				// A purchased pattern block (IIW) has no drawing; the
				// recommendation still gets written.
				spec, err := solidspec.ForBlock("CAL-"+string(rec.Primary.Category), rec.Primary)
				if err != nil {
					log.Printf("No drawing emitted: %v", err)
				} else {
					if err := spec.Validate(); err != nil {
						return fmt.Errorf("emit block drawing: %w", err)
					}
					if err := writeResult(drawingPath, spec); err != nil {
						return err
					}
					log.Printf("Wrote block drawing spec to %s", drawingPath)
				}
			}
			return writeResult(outPath, rec)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the recommendation to a file instead of stdout")
	cmd.Flags().StringVar(&drawingPath, "drawing", "", "Also emit the block solid spec for the CAD layer")
	return cmd
}

func patchesCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "patches <request-file>",
		Short: "Generate the scan patch layout only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(args[0])
			if err != nil {
				return err
			}

			result, err := planner.Plan(req)
			if err != nil {
				return err
			}
			return writeResult(outPath, result.Patches)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the patch plan to a file instead of stdout")
	return cmd
}

func validateCmd() *cobra.Command {
	var (
		outPath  string
		coverage float64
	)

	cmd := &cobra.Command{
		Use:   "validate <request-file>",
		Short: "Check the requested setup against OEM rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(args[0])
			if err != nil {
				return err
			}

			vendor := req.Vendor
			if vendor == "" {
				vendor = oemrules.VendorForStandard(req.Standard)
			}

			setup := oemrules.Setup{
				Overlap:      optional(req.OverlapRequired),
				Frequency:    optional(req.Frequency),
				TransducerID: req.TransducerID,
				HasDAC:       req.HasDAC,
				HasTCG:       req.HasTCG,
				PartCategory: req.PartCategory,
			}
			if coverage > 0 {
				setup.Coverage = &coverage
			}

			result := oemrules.Validate(vendor, setup)
			return writeResult(outPath, result)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the validation result to a file instead of stdout")
	cmd.Flags().Float64Var(&coverage, "coverage", 0, "Achieved coverage percentage to validate")
	return cmd
}

func blockRequest(req planner.Request) calblock.Request {
	return calblock.Request{
		Material:        req.Material,
		MaterialSpec:    req.MaterialSpec,
		PartType:        req.PartType,
		Standard:        req.Standard,
		Thickness:       req.Thickness,
		Length:          req.Length,
		Width:           req.Width,
		OuterDiameter:   req.OuterDiameter,
		InnerDiameter:   req.InnerDiameter,
		AcceptanceClass: req.AcceptanceClass,
		BeamType:        req.BeamType,
		Angles:          req.Angles,
		Frequency:       req.Frequency,
		ScanDirections:  req.ScanDirections,
	}
}

func recordProject(projectPath, requestPath, planPath string, req planner.Request) error {
	proj, err := project.Load(projectPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("load project: %w", err)
		}
		proj = project.New(projectName(projectPath), req.Standard)
	}

	proj.SetRequest(projectPath, requestPath)
	if planPath != "" {
		proj.SetPlan(projectPath, planPath)
	}
	if err := proj.Save(projectPath); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

func optional(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
