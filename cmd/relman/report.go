package main

import (
	"fmt"
	"os"

	"github.com/lerenn/release-manager/pkg/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	jobFile string
	filters []string
)

// loadJob reads the CI job status from the aggregated status file.
func loadJob() (report.Job, error) {
	data, err := os.ReadFile(jobFile)
	if err != nil {
		return report.Job{}, fmt.Errorf("failed to read job file: %w", err)
	}

	var job report.Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return report.Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}

	return job, nil
}

func createReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Render CI job reports",
		Long:  `Render the per-task status of a CI job to console, email or PR-comment targets.`,
	}

	reportCmd.PersistentFlags().StringVarP(&jobFile, "job-file", "j", "",
		"Path of the aggregated CI job status file")
	reportCmd.PersistentFlags().StringArrayVarP(&filters, "filter", "f", nil,
		"Glob patterns filtering tasks by name")
	_ = reportCmd.MarkPersistentFlagRequired("job-file")

	reportCmd.AddCommand(
		createReportConsoleCmd(),
		createReportEmailCmd(),
		createReportCommentCmd(),
	)

	return reportCmd
}

func createReportConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Render the CI job report as a console table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			job, err := loadJob()
			if err != nil {
				return err
			}

			return report.NewConsoleReporter().Render(os.Stdout, job, filters...)
		},
	}
}

func createReportEmailCmd() *cobra.Command {
	var send bool

	emailCmd := &cobra.Command{
		Use:   "email [--send]",
		Short: "Render the CI job report as an email digest",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()

			job, err := loadJob()
			if err != nil {
				return err
			}

			reporter := report.NewEmailReporter()
			if !send {
				return reporter.Render(os.Stdout, job)
			}

			return reporter.Send(report.SendParams{
				Host:     cfg.SMTP.Host,
				Port:     cfg.SMTP.Port,
				Username: cfg.SMTP.Username,
				Password: os.Getenv(cfg.SMTP.PasswordEnv),
				From:     cfg.SMTP.From,
				To:       cfg.SMTP.To,
				Subject:  fmt.Sprintf("CI report for job %s", job.Name),
				Job:      job,
			})
		},
	}

	emailCmd.Flags().BoolVar(&send, "send", false, "Deliver the digest over SMTP instead of printing it")

	return emailCmd
}

func createReportCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment",
		Short: "Render the CI job report as a PR-comment markdown table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()

			job, err := loadJob()
			if err != nil {
				return err
			}

			repo := fmt.Sprintf("%s/%s", cfg.GithubOwner, cfg.GithubRepo)
			return report.NewCommentReporter(repo).Render(os.Stdout, job, filters...)
		},
	}
}
