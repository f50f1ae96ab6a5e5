package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
	"github.com/yusufkecer/obesity-advisor/internal/predictor"
	"github.com/yusufkecer/obesity-advisor/internal/report"
	"github.com/yusufkecer/obesity-advisor/internal/service"
)

type runOptions struct {
	in           domain.InputRecord
	inputPath    string
	asJSON       bool
	modelURL     string
	modelTimeout time.Duration
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Assess one set of survey answers",
		Long: "Assess one set of survey answers given as flags, or as a JSON record with --input.\n" +
			"Flags set explicitly override values read from the record.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.record(cmd)
			if err != nil {
				return err
			}
			return assess(cmd, opts, in)
		},
	}

	f := cmd.Flags()
	f.StringVar((*string)(&opts.in.Gender), "gender", "", "Male or Female")
	f.IntVar(&opts.in.Age, "age", 0, "age in years (10-100)")
	f.Float64Var(&opts.in.Height, "height", 0, "height in centimetres")
	f.Float64Var(&opts.in.Weight, "weight", 0, "weight in kilograms")
	f.StringVar((*string)(&opts.in.FamilyHistory), "family-history", string(domain.No), "family history with overweight (yes/no)")
	f.StringVar((*string)(&opts.in.FAVC), "favc", string(domain.No), "frequent high calorie food (yes/no)")
	f.IntVar(&opts.in.FCVC, "fcvc", 2, "vegetable consumption (0-3)")
	f.IntVar(&opts.in.NCP, "ncp", 3, "main meals per day (1-5)")
	f.StringVar((*string)(&opts.in.CAEC), "caec", string(domain.Sometimes), "eating between meals (no, Sometimes, Frequently, Always)")
	f.StringVar((*string)(&opts.in.Smoke), "smoke", string(domain.No), "smoker (yes/no)")
	f.Float64Var(&opts.in.CH2O, "ch2o", 2, "daily water in litres (0-10)")
	f.StringVar((*string)(&opts.in.SCC), "scc", string(domain.No), "monitors calories (yes/no)")
	f.IntVar(&opts.in.FAF, "faf", 1, "physical activity frequency (0-3)")
	f.IntVar(&opts.in.TUE, "tue", 1, "time using technology (0-3)")
	f.StringVar((*string)(&opts.in.CALC), "calc", string(domain.Never), "alcohol (no, Sometimes, Frequently, Always)")
	f.StringVar((*string)(&opts.in.MTRANS), "mtrans", string(domain.PublicTransportation), "usual transport")

	f.StringVar(&opts.inputPath, "input", "", "read the record from a JSON file (- for stdin)")
	f.BoolVar(&opts.asJSON, "json", false, "print the assessment as JSON")
	f.StringVar(&opts.modelURL, "model-url", "", "base URL of the model server")
	f.DurationVar(&opts.modelTimeout, "model-timeout", 2*time.Second, "model server timeout")
	return cmd
}

// flagFields maps flag names to the JSON field they override.
var flagFields = map[string]string{
	"gender":         "Gender",
	"age":            "Age",
	"height":         "Height",
	"weight":         "Weight",
	"family-history": "family_history_with_overweight",
	"favc":           "FAVC",
	"fcvc":           "FCVC",
	"ncp":            "NCP",
	"caec":           "CAEC",
	"smoke":          "SMOKE",
	"ch2o":           "CH2O",
	"scc":            "SCC",
	"faf":            "FAF",
	"tue":            "TUE",
	"calc":           "CALC",
	"mtrans":         "MTRANS",
}

func (o *runOptions) record(cmd *cobra.Command) (domain.InputRecord, error) {
	if o.inputPath == "" {
		return o.in, nil
	}

	data, err := readInput(cmd, o.inputPath)
	if err != nil {
		return domain.InputRecord{}, err
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.InputRecord{}, fmt.Errorf("parse input: %w", err)
	}

	flagValues, err := json.Marshal(o.in)
	if err != nil {
		return domain.InputRecord{}, err
	}
	fromFlags := map[string]interface{}{}
	if err := json.Unmarshal(flagValues, &fromFlags); err != nil {
		return domain.InputRecord{}, err
	}
	for flag, field := range flagFields {
		if cmd.Flags().Changed(flag) {
			fields[field] = fromFlags[field]
		}
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return domain.InputRecord{}, err
	}
	var in domain.InputRecord
	if err := json.Unmarshal(merged, &in); err != nil {
		return domain.InputRecord{}, fmt.Errorf("parse input: %w", err)
	}
	return in, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func assess(cmd *cobra.Command, opts *runOptions, in domain.InputRecord) error {
	svc := service.NewAssessmentService(predictor.New(opts.modelURL, opts.modelTimeout), nil, nil, nil)

	a, err := svc.Assess(cmd.Context(), in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}
	_, err = io.WriteString(out, report.Text(a))
	return err
}
