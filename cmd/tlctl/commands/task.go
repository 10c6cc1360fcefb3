package commands

import (
	"context"
	"fmt"

	"tasklink/cmd/tlctl/client"
	"tasklink/cmd/tlctl/config"
	"tasklink/cmd/tlctl/output"

	"github.com/urfave/cli/v3"
)

// TaskCommand returns the task command with subcommands
func TaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage task records",
		Commands: []*cli.Command{
			createTaskCommand(),
			listTaskCommand(),
			getTaskCommand(),
			updateTaskCommand(),
			deleteTaskCommand(),
		},
	}
}

// createTaskCommand returns the create subcommand
func createTaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new task record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "Task title",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Task description",
			},
			&cli.IntFlag{
				Name:  "priority",
				Usage: "Task priority (1-10, highest first)",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Task status (done, undone or progress)",
			},
		},
		Action: createTaskAction,
	}
}

// createTaskAction handles the create task command
func createTaskAction(ctx context.Context, c *cli.Command) error {
	if err := validateCreateFlags(c); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	httpClient := client.NewHTTPClient(serverURL)

	req := &client.CreateTaskRequest{
		Title:       c.String("title"),
		Description: c.String("description"),
		Status:      c.String("status"),
	}
	if c.IsSet("priority") {
		priority := c.Int("priority")
		req.Priority = &priority
	}

	task, err := httpClient.CreateTask(req)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(task)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

// validateCreateFlags validates the create command flags
func validateCreateFlags(c *cli.Command) error {
	if !c.IsSet("title") {
		return fmt.Errorf("must provide the --title flag")
	}

	if !c.IsSet("status") {
		return fmt.Errorf("must provide the --status flag")
	}

	return nil
}

// listTaskCommand returns the list subcommand
func listTaskCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List task records",
		Action: listTaskAction,
	}
}

// listTaskAction handles the list task command
func listTaskAction(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	httpClient := client.NewHTTPClient(serverURL)

	tasks, err := httpClient.ListTasks()
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(tasks)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

// getTaskCommand returns the get subcommand
func getTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get a task record",
		ArgsUsage: "<task-id>",
		Action:    getTaskAction,
	}
}

// getTaskAction handles the get task command
func getTaskAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("task ID is required")
	}

	taskID := c.Args().Get(0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	httpClient := client.NewHTTPClient(serverURL)

	task, err := httpClient.GetTask(taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(task)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

// updateTaskCommand returns the update subcommand
func updateTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update fields of a task record",
		ArgsUsage: "<task-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "New task title",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "New task description",
			},
			&cli.IntFlag{
				Name:  "priority",
				Usage: "New task priority (1-10, highest first)",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "New task status (done, undone or progress)",
			},
		},
		Action: updateTaskAction,
	}
}

// updateTaskAction handles the update task command
func updateTaskAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("task ID is required")
	}

	taskID := c.Args().Get(0)

	req := buildUpdateRequest(c)
	if req == nil {
		return fmt.Errorf("must provide at least one of --title, --description, --priority or --status")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	httpClient := client.NewHTTPClient(serverURL)

	task, err := httpClient.UpdateTask(taskID, req)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(task)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

// buildUpdateRequest collects the set flags into an update payload. It
// returns nil when no updatable flag was given.
func buildUpdateRequest(c *cli.Command) *client.UpdateTaskRequest {
	req := &client.UpdateTaskRequest{}
	set := false

	if c.IsSet("title") {
		title := c.String("title")
		req.Title = &title
		set = true
	}
	if c.IsSet("description") {
		description := c.String("description")
		req.Description = &description
		set = true
	}
	if c.IsSet("priority") {
		priority := c.Int("priority")
		req.Priority = &priority
		set = true
	}
	if c.IsSet("status") {
		status := c.String("status")
		req.Status = &status
		set = true
	}

	if !set {
		return nil
	}
	return req
}

// deleteTaskCommand returns the delete subcommand
func deleteTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a task record",
		ArgsUsage: "<task-id>",
		Action:    deleteTaskAction,
	}
}

// deleteTaskAction handles the delete task command
func deleteTaskAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("task ID is required")
	}

	taskID := c.Args().Get(0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	httpClient := client.NewHTTPClient(serverURL)

	if err := httpClient.DeleteTask(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
