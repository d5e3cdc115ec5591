package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/landscapectl/landscapectl/internal/api"
	"github.com/landscapectl/landscapectl/internal/client"
	"github.com/landscapectl/landscapectl/internal/client/output"

	"github.com/spf13/cobra"
)

var getScriptsCmd = &cobra.Command{
	Use:   "get-scripts",
	Short: "List all stored scripts",
	Args:  cobra.NoArgs,
	Run:   runGetScripts,
}

var getScriptCmd = &cobra.Command{
	Use:   "get-script <title>",
	Short: "Show a stored script by title",
	Long: `Show the stored script whose title starts with the given prefix.

The first stored script whose title matches the prefix is shown; a
prefix that matches no script is an error.`,
	Args: cobra.ExactArgs(1),
	Run:  runGetScript,
}

func init() {
	rootCmd.AddCommand(getScriptsCmd)
	rootCmd.AddCommand(getScriptCmd)
	getScriptsCmd.Flags().Int("limit", 0, "Maximum number of scripts to return")
	getScriptsCmd.Flags().Int("offset", 0, "Offset into the script listing")
}

func runGetScripts(cmd *cobra.Command, _ []string) {
	c, err := newClientFromContext(cmd)
	if err != nil {
		output.Errorf("failed to create API client: %v", err)
		return
	}

	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	service := NewScriptsService(c, NewOutputWrapper())
	if err = service.ListScripts(cmd.Context(), api.GetScripts{Limit: limit, Offset: offset}); err != nil {
		output.Errorf(err.Error())
	}
}

func runGetScript(cmd *cobra.Command, args []string) {
	c, err := newClientFromContext(cmd)
	if err != nil {
		output.Errorf("failed to create API client: %v", err)
		return
	}

	service := NewScriptsService(c, NewOutputWrapper())
	if err = service.ShowScript(cmd.Context(), args[0]); err != nil {
		output.Errorf(err.Error())
	}
}

// ScriptsService handles stored script listing and lookup logic
type ScriptsService struct {
	client client.Interface
	output OutputInterface
}

// NewScriptsService creates a new ScriptsService with the provided dependencies
func NewScriptsService(apiClient client.Interface, outputter OutputInterface) *ScriptsService {
	return &ScriptsService{
		client: apiClient,
		output: outputter,
	}
}

// ListScripts fetches stored scripts and renders them as a table.
func (s *ScriptsService) ListScripts(ctx context.Context, action api.GetScripts) error {
	scripts, err := s.client.GetScripts(ctx, action)
	if err != nil {
		return fmt.Errorf("failed to list scripts: %w", err)
	}

	if len(scripts) == 0 {
		s.output.Warningf("No stored scripts found")
		return nil
	}

	rows := make([][]string, 0, len(scripts))
	for i := range scripts {
		sc := &scripts[i]
		rows = append(rows, []string{
			strconv.Itoa(sc.ID),
			sc.Title,
			sc.Creator.Email,
			sc.Username,
			strconv.Itoa(sc.TimeLimit),
			strconv.Itoa(len(sc.Attachments)),
		})
	}

	s.output.Table([]string{"ID", "Title", "Creator", "Run As", "Time Limit", "Attachments"}, rows)
	s.output.Blank()
	s.output.Successf("%d script(s) stored", len(scripts))

	return nil
}

// ShowScript looks up a stored script by title prefix and prints the full
// record as JSON.
func (s *ScriptsService) ShowScript(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("script title is required")
	}

	script, err := s.client.GetScript(ctx, title)
	if err != nil {
		return err
	}

	s.output.JSON(script)
	return nil
}
