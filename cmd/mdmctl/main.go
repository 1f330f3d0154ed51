// Command mdmctl runs the data-quality flows from the terminal against the
// configured model provider.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agenthands/mdm/internal/config"
	"github.com/agenthands/mdm/internal/core"
	"github.com/agenthands/mdm/internal/core/model"
	"github.com/agenthands/mdm/internal/llm"
	"github.com/agenthands/mdm/internal/logging"
)

// newMDM is replaced in tests.
var newMDM = func(ctx context.Context) (*core.MDM, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	client, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return core.NewMDM(client, cfg)
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by the subcommands.
type app struct {
	logLevel string
	log      *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "mdmctl",
		Short:        "Master data cleansing and duplicate checks",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logging.New(config.LoggingConfig{Level: a.logLevel, Format: "text", Output: "stderr"})
			a.log.SetOutput(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level written to stderr")
	root.AddCommand(a.newCleanseCmd(), a.newDuplicatesCmd())
	return root
}

// run opens the flows, runs fn and prints its result as JSON.
func (a *app) run(cmd *cobra.Command, flow string, fn func(context.Context, *core.MDM) (any, error)) error {
	log := a.log.WithField("flow", flow)

	m, err := newMDM(cmd.Context())
	if err != nil {
		log.WithError(err).Error("failed to initialize")
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.WithError(err).Warn("failed to close LLM client")
		}
	}()

	log.Debug("calling model")
	result, err := fn(cmd.Context(), m)
	if err != nil {
		log.WithError(err).Error("flow failed")
		return err
	}
	log.Debug("flow completed")
	return printJSON(cmd.OutOrStdout(), result)
}

func (a *app) newCleanseCmd() *cobra.Command {
	var dataType, rules string

	cmd := &cobra.Command{
		Use:   "cleanse <raw data>",
		Short: "Cleanse and standardize one material or service record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "cleansing", func(ctx context.Context, m *core.MDM) (any, error) {
				return m.Cleanse(ctx, model.CleansingRequest{
					RawData:  args[0],
					DataType: model.DataType(dataType),
					Rules:    rules,
				})
			})
		},
	}
	cmd.Flags().StringVarP(&dataType, "type", "t", string(model.DataTypeMaterial), "data type: material or service")
	cmd.Flags().StringVarP(&rules, "rules", "r", "", "optional cleansing rules")
	return cmd
}

func (a *app) newDuplicatesCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "duplicates <record1> <record2>",
		Short: "Check whether two records are duplicates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "duplicates", func(ctx context.Context, m *core.MDM) (any, error) {
				return m.DetectDuplicates(ctx, model.DuplicateCheckRequest{
					Record1:         args[0],
					Record2:         args[1],
					AutomationLevel: model.AutomationLevel(level),
				})
			})
		},
	}
	cmd.Flags().StringVarP(&level, "automation", "a", string(model.AutomationLow), "automation level: low, medium or high")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
