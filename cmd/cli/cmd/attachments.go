package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/landscapectl/landscapectl/internal/api"
	"github.com/landscapectl/landscapectl/internal/client"
	"github.com/landscapectl/landscapectl/internal/client/output"

	"github.com/spf13/cobra"
)

var getScriptAttachmentsCmd = &cobra.Command{
	Use:   "get-script-attachments <title>",
	Short: "List the attachments of a stored script",
	Args:  cobra.ExactArgs(1),
	Run:   runGetScriptAttachments,
}

var createScriptAttachmentCmd = &cobra.Command{
	Use:   "create-script-attachment <title> <file>",
	Short: "Attach a local file to a stored script",
	Args:  cobra.ExactArgs(2),
	Run:   runCreateScriptAttachment,
}

var removeScriptAttachmentCmd = &cobra.Command{
	Use:   "remove-script-attachment <title> <filename>",
	Short: "Remove an attachment from a stored script",
	Args:  cobra.ExactArgs(2),
	Run:   runRemoveScriptAttachment,
}

func init() {
	rootCmd.AddCommand(getScriptAttachmentsCmd)
	rootCmd.AddCommand(createScriptAttachmentCmd)
	rootCmd.AddCommand(removeScriptAttachmentCmd)
}

func runGetScriptAttachments(cmd *cobra.Command, args []string) {
	c, err := newClientFromContext(cmd)
	if err != nil {
		output.Errorf("failed to create API client: %v", err)
		return
	}

	service := NewAttachmentsService(c, NewOutputWrapper())
	if err = service.ListAttachments(cmd.Context(), args[0]); err != nil {
		output.Errorf(err.Error())
	}
}

func runCreateScriptAttachment(cmd *cobra.Command, args []string) {
	c, err := newClientFromContext(cmd)
	if err != nil {
		output.Errorf("failed to create API client: %v", err)
		return
	}

	content, err := os.ReadFile(args[1])
	if err != nil {
		output.Errorf("failed to read attachment file: %v", err)
		return
	}

	service := NewAttachmentsService(c, NewOutputWrapper())
	if err = service.CreateAttachment(cmd.Context(), args[0], filepath.Base(args[1]), content); err != nil {
		output.Errorf(err.Error())
	}
}

func runRemoveScriptAttachment(cmd *cobra.Command, args []string) {
	c, err := newClientFromContext(cmd)
	if err != nil {
		output.Errorf("failed to create API client: %v", err)
		return
	}

	service := NewAttachmentsService(c, NewOutputWrapper())
	if err = service.RemoveAttachment(cmd.Context(), args[0], args[1]); err != nil {
		output.Errorf(err.Error())
	}
}

// AttachmentsService handles script attachment management logic
type AttachmentsService struct {
	client client.Interface
	output OutputInterface
}

// NewAttachmentsService creates a new AttachmentsService with the provided dependencies
func NewAttachmentsService(apiClient client.Interface, outputter OutputInterface) *AttachmentsService {
	return &AttachmentsService{
		client: apiClient,
		output: outputter,
	}
}

// ListAttachments prints the attachment filenames of the script matching the
// given title prefix.
func (s *AttachmentsService) ListAttachments(ctx context.Context, title string) error {
	attachments, err := s.client.GetScriptAttachments(ctx, title)
	if err != nil {
		return err
	}

	if len(attachments) == 0 {
		s.output.Warningf("Script has no attachments")
		return nil
	}

	for _, name := range attachments {
		s.output.Infof("%s", name)
	}
	s.output.Blank()
	s.output.Successf("%d attachment(s)", len(attachments))

	return nil
}

// CreateAttachment resolves the script by title prefix and uploads the file
// content under the given filename.
func (s *AttachmentsService) CreateAttachment(ctx context.Context, title, filename string, content []byte) error {
	script, err := s.client.GetScript(ctx, title)
	if err != nil {
		return err
	}

	s.output.Infof("Attaching %s to script %s", s.output.Bold(filename), s.output.Bold(script.Title))

	id, err := s.client.CreateScriptAttachment(ctx, api.CreateScriptAttachment{
		ScriptID: script.ID,
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	s.output.Successf("Attachment created with ID %d", id)
	return nil
}

// RemoveAttachment resolves the script by title prefix and removes the named
// attachment from it.
func (s *AttachmentsService) RemoveAttachment(ctx context.Context, title, filename string) error {
	script, err := s.client.GetScript(ctx, title)
	if err != nil {
		return err
	}

	if err := s.client.RemoveScriptAttachment(ctx, api.RemoveScriptAttachment{
		ScriptID: script.ID,
		Filename: filename,
	}); err != nil {
		return fmt.Errorf("failed to remove attachment: %w", err)
	}

	s.output.Successf("Removed %s from script %s", filename, script.Title)
	return nil
}
