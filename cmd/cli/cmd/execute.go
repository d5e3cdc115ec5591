package cmd

import (
	"context"
	"fmt"

	"github.com/landscapectl/landscapectl/internal/api"
	"github.com/landscapectl/landscapectl/internal/client"
	"github.com/landscapectl/landscapectl/internal/client/output"

	"github.com/spf13/cobra"
)

var executeScriptCmd = &cobra.Command{
	Use:   "execute-script <title> <query>",
	Short: "Run a stored script on hosts matching a query",
	Long: `Run the stored script whose title starts with the given prefix on
every host matching the Landscape query expression.

Execution is asynchronous: the service records an activity and runs the
script in the background. The activity record is printed on acceptance.`,
	Args: cobra.ExactArgs(2),
	Run:  runExecuteScript,
}

func init() {
	rootCmd.AddCommand(executeScriptCmd)
	executeScriptCmd.Flags().StringP("username", "u", "", "Run the script as this user (default: the script's own setting)")
	executeScriptCmd.Flags().Int("time-limit", 0, "Override the script's time limit in seconds")
}

func runExecuteScript(cmd *cobra.Command, args []string) {
	c, err := newClientFromContext(cmd)
	if err != nil {
		output.Errorf("failed to create API client: %v", err)
		return
	}

	username := cmd.Flag("username").Value.String()
	timeLimit, _ := cmd.Flags().GetInt("time-limit")

	service := NewExecuteService(c, NewOutputWrapper())
	if err = service.Execute(cmd.Context(), args[0], args[1], username, timeLimit); err != nil {
		output.Errorf(err.Error())
	}
}

// ExecuteService handles script execution logic
type ExecuteService struct {
	client client.Interface
	output OutputInterface
}

// NewExecuteService creates a new ExecuteService with the provided dependencies
func NewExecuteService(apiClient client.Interface, outputter OutputInterface) *ExecuteService {
	return &ExecuteService{
		client: apiClient,
		output: outputter,
	}
}

// Execute resolves the script by title prefix and schedules it on all hosts
// matching the query, printing the resulting activity record.
func (s *ExecuteService) Execute(ctx context.Context, title, query, username string, timeLimit int) error {
	script, err := s.client.GetScript(ctx, title)
	if err != nil {
		return err
	}

	s.output.Infof("Executing %s on hosts matching %s", s.output.Bold(script.Title), s.output.Bold(query))

	activity, err := s.client.ExecuteScript(ctx, api.ExecuteScript{
		ScriptID:  script.ID,
		Query:     query,
		Username:  username,
		TimeLimit: timeLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to execute script: %w", err)
	}

	s.output.Successf("Execution scheduled")
	s.output.Blank()
	s.output.KeyValue("Activity ID", fmt.Sprintf("%d", activity.ID))
	s.output.KeyValue("Created", activity.CreationTime)
	s.output.KeyValue("Summary", activity.Summary)

	return nil
}
