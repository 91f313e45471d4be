package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/Iron-Ham/playground/internal/config"
	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List available scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenarios,
}

var stateCmd = &cobra.Command{
	Use:   "state <scenario-id>",
	Short: "Print the current state snapshot of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runState,
}

var triggerCmd = &cobra.Command{
	Use:   "trigger <scenario-id> <action-id>",
	Short: "Trigger an action on a scenario",
	Long: `Trigger an action on a scenario.

The backend applies the action asynchronously; use 'playground state' to see
its effect.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrigger,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(triggerCmd)
}

// withClient loads configuration and runs fn with a ready client.
func withClient(fn func(c *api.Client) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	client, err := newClient(cfg, logger.With("command", "cli"))
	if err != nil {
		return err
	}
	return fn(client)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	return withClient(func(c *api.Client) error {
		scenarios, err := c.ListScenarios(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list scenarios: %w", err)
		}
		if len(scenarios) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No scenarios available.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY")
		for _, sc := range scenarios {
			fmt.Fprintf(w, "%s\t%s\t%s\n", sc.ID, sc.Title, sc.Category)
		}
		return w.Flush()
	})
}

func runState(cmd *cobra.Command, args []string) error {
	return withClient(func(c *api.Client) error {
		snap, err := c.GetState(cmd.Context(), args[0])
		if err != nil {
			if api.IsNotFound(err) {
				return fmt.Errorf("scenario %q not found", args[0])
			}
			return fmt.Errorf("failed to get state: %w", err)
		}
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	})
}

func runTrigger(cmd *cobra.Command, args []string) error {
	id, actionID := args[0], args[1]
	return withClient(func(c *api.Client) error {
		res, err := c.TriggerAction(cmd.Context(), id, actionID)
		if err != nil {
			return fmt.Errorf("failed to trigger %s on %s: %w", actionID, id, err)
		}
		msg := res.Message
		if msg == "" {
			msg = "Action sent."
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	})
}
