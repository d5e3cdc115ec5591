package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/landscapectl/landscapectl/internal/api"
	"github.com/landscapectl/landscapectl/internal/client"
	"github.com/landscapectl/landscapectl/internal/client/output"

	"github.com/spf13/cobra"
)

var getAllHostsCmd = &cobra.Command{
	Use:   "get-all-hosts",
	Short: "Get information about all registered hosts",
	Long: `Get information about all hosts registered with the Landscape account.

Hosts can be narrowed down with a Landscape query expression, e.g.
"tag:web" or "hostname:web-01".`,
	Args: cobra.NoArgs,
	Run:  runGetAllHosts,
}

func init() {
	rootCmd.AddCommand(getAllHostsCmd)
	getAllHostsCmd.Flags().StringP("query", "q", "", "Query to filter hosts (e.g. tag:web)")
	getAllHostsCmd.Flags().Int("limit", 0, "Maximum number of hosts to return")
	getAllHostsCmd.Flags().Int("offset", 0, "Offset into the host listing")
	getAllHostsCmd.Flags().Bool("with-annotations", false, "Include host annotations")
	getAllHostsCmd.Flags().Bool("json", false, "Print full host records as JSON")
}

func runGetAllHosts(cmd *cobra.Command, _ []string) {
	c, err := newClientFromContext(cmd)
	if err != nil {
		output.Errorf("failed to create API client: %v", err)
		return
	}

	query := cmd.Flag("query").Value.String()
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	withAnnotations, _ := cmd.Flags().GetBool("with-annotations")
	asJSON, _ := cmd.Flags().GetBool("json")

	service := NewHostsService(c, NewOutputWrapper())
	action := api.GetComputers{
		Query:           query,
		Limit:           limit,
		Offset:          offset,
		WithAnnotations: withAnnotations,
	}
	if err = service.ListHosts(cmd.Context(), action, asJSON); err != nil {
		output.Errorf(err.Error())
	}
}

// HostsService handles host listing logic
type HostsService struct {
	client client.Interface
	output OutputInterface
}

// NewHostsService creates a new HostsService with the provided dependencies
func NewHostsService(apiClient client.Interface, outputter OutputInterface) *HostsService {
	return &HostsService{
		client: apiClient,
		output: outputter,
	}
}

// ListHosts fetches registered hosts and displays them, preserving the order
// the service returned them in.
func (s *HostsService) ListHosts(ctx context.Context, action api.GetComputers, asJSON bool) error {
	if action.Query != "" {
		s.output.Infof("Querying hosts matching %s", s.output.Bold(action.Query))
	} else {
		s.output.Infof("Querying all registered hosts")
	}

	computers, err := s.client.GetComputers(ctx, action)
	if err != nil {
		return fmt.Errorf("failed to list hosts: %w", err)
	}

	if asJSON {
		s.output.JSON(computers)
		return nil
	}

	if len(computers) == 0 {
		s.output.Warningf("No hosts found")
		return nil
	}

	rows := make([][]string, 0, len(computers))
	for i := range computers {
		c := &computers[i]
		distribution := ""
		if c.Distribution != nil {
			distribution = *c.Distribution
		}
		lastPing := ""
		if c.LastPingTime != nil {
			lastPing = *c.LastPingTime
		}
		reboot := ""
		if c.RebootRequiredFlag {
			reboot = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.DisplayName(),
			distribution,
			lastPing,
			reboot,
		})
	}

	s.output.Table([]string{"ID", "Host", "Distribution", "Last Ping", "Reboot Required"}, rows)
	s.output.Blank()
	s.output.Successf("%d host(s) registered", len(computers))

	return nil
}
