package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunarbyte/openaikit"
	"github.com/lunarbyte/openaikit/config"
)

var (
	// Flags
	baseURL     string
	org         string
	model       string
	maxTokens   int
	temperature float32
	system      string
	instruction string
	verbose     bool

	rootCmd = &cobra.Command{
		Use:   "openaikit",
		Short: "Talk to the OpenAI API from the command line",
		Long:  "openaikit exercises the client library: model listing, text completions, chat completions, and edits.",
	}

	modelsCmd = &cobra.Command{
		Use:   "models [id]",
		Short: "List available models, or show one by ID",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runModels,
	}

	completeCmd = &cobra.Command{
		Use:   "complete [prompt]",
		Short: "Generate a text completion for a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runComplete,
	}

	chatCmd = &cobra.Command{
		Use:   "chat [message]",
		Short: "Send a single chat turn",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runChat,
	}

	editCmd = &cobra.Command{
		Use:   "edit [input]",
		Short: "Rewrite input text according to an instruction",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().StringVar(&org, "org", "", "organization ID")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests")

	completeCmd.Flags().StringVarP(&model, "model", "m", "", "model to use")
	completeCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "maximum tokens to generate")
	completeCmd.Flags().Float32VarP(&temperature, "temperature", "t", 0, "sampling temperature")

	chatCmd.Flags().StringVarP(&model, "model", "m", "", "model to use")
	chatCmd.Flags().StringVar(&system, "system", "", "system prompt")

	editCmd.Flags().StringVarP(&model, "model", "m", "", "model to use (default text-davinci-edit-001)")
	editCmd.Flags().StringVarP(&instruction, "instruction", "i", "", "how to edit the input")
	_ = editCmd.MarkFlagRequired("instruction")

	rootCmd.AddCommand(modelsCmd, completeCmd, chatCmd, editCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient resolves settings and builds the client, with flags taking
// precedence over the environment and config file.
func newClient() (*openaikit.Client, *config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	opts := []openaikit.Option{
		openaikit.WithTimeout(settings.Timeout),
	}
	if baseURL != "" {
		settings.BaseURL = baseURL
	}
	if settings.BaseURL != "" {
		opts = append(opts, openaikit.WithBaseURL(settings.BaseURL))
	}
	if org != "" {
		settings.Organization = org
	}
	if settings.Organization != "" {
		opts = append(opts, openaikit.WithOrganization(settings.Organization))
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, openaikit.WithLogger(logger))
	}

	client, err := openaikit.New(settings.APIKey, opts...)
	if err != nil {
		return nil, nil, err
	}
	return client, settings, nil
}

func runModels(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if len(args) == 1 {
		m, err := client.GetModel(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\towned by %s\n", m.ID, m.OwnedBy)
		return nil
	}

	models, err := client.ListModels(ctx)
	if err != nil {
		return err
	}
	for _, m := range models {
		fmt.Println(m.ID)
	}
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	client, settings, err := newClient()
	if err != nil {
		return err
	}

	if model == "" {
		model = settings.DefaultModel
	}

	resp, err := client.CreateCompletion(context.Background(), openaikit.CompletionRequest{
		Model:       model,
		Prompt:      []string{strings.Join(args, " ")},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return err
	}

	for _, choice := range resp.Choices {
		fmt.Println(choice.Text)
	}
	if resp.Usage != nil {
		fmt.Fprintf(os.Stderr, "[%d prompt + %d completion = %d tokens]\n",
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
	}
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	client, settings, err := newClient()
	if err != nil {
		return err
	}

	if model == "" {
		model = settings.DefaultModel
	}

	var messages []openaikit.ChatMessage
	if system != "" {
		messages = append(messages, openaikit.ChatMessage{Role: openaikit.RoleSystem, Content: system})
	}
	messages = append(messages, openaikit.ChatMessage{Role: openaikit.RoleUser, Content: strings.Join(args, " ")})

	resp, err := client.CreateChatCompletion(context.Background(), openaikit.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return err
	}

	for _, choice := range resp.Choices {
		fmt.Println(choice.Message.Content)
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	if model == "" {
		model = "text-davinci-edit-001"
	}

	resp, err := client.CreateEdit(context.Background(), openaikit.EditRequest{
		Model:       model,
		Instruction: instruction,
		Input:       args[0],
	})
	if err != nil {
		return err
	}

	for _, choice := range resp.Choices {
		fmt.Println(choice.Text)
	}
	return nil
}
