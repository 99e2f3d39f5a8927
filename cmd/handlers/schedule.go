package handlers

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"promocast/internal/config"
	"promocast/internal/core"
	"promocast/internal/scheduler"
)

// NewScheduleCmd creates the schedule command family for managing recurring
// generation jobs.
func NewScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage recurring generation jobs",
	}

	cmd.AddCommand(newScheduleCreateCmd())
	cmd.AddCommand(newScheduleListCmd())
	cmd.AddCommand(newScheduleStopCmd())
	cmd.AddCommand(newScheduleResumeCmd())
	cmd.AddCommand(newScheduleTriggerCmd())
	cmd.AddCommand(newScheduleDeleteCmd())

	return cmd
}

func newScheduleCreateCmd() *cobra.Command {
	var (
		name        string
		cronExpr    string
		timezone    string
		niches      []string
		tones       []string
		templates   []string
		platforms   []string
		model       string
		format      string
		affiliateID string
		inactive    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recurring generation job",
		Long: `Create a recurring generation job. The job is validated and persisted;
its timer registers when the serve daemon starts. A daemon that is already
running picks the job up on its next restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if affiliateID == "" {
				affiliateID = config.Get().Affiliate.DefaultTag
			}

			// Validate before touching the store so a bad expression is
			// rejected synchronously.
			if err := scheduler.ValidateCron(cronExpr, timezone); err != nil {
				return err
			}

			templateTypes := make([]core.TemplateType, 0, len(templates))
			for _, t := range templates {
				templateTypes = append(templateTypes, core.TemplateType(t))
			}

			job := &core.ScheduledJob{
				JobName:        name,
				CronExpression: cronExpr,
				Timezone:       timezone,
				Niches:         niches,
				Tones:          tones,
				Templates:      templateTypes,
				Platforms:      platforms,
				AIModel:        model,
				ContentFormat:  core.ContentFormat(format),
				AffiliateID:    affiliateID,
				IsActive:       !inactive,
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			// Persist only: the timer registers when `serve` starts.
			job.ID = uuid.NewString()
			if err := st.CreateJob(job); err != nil {
				return err
			}

			fmt.Printf("Created job %s (%s)\n", job.JobName, job.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "job name (required)")
	cmd.Flags().StringVar(&cronExpr, "cron", "0 9 * * *", "standard 5-field cron expression")
	cmd.Flags().StringVar(&timezone, "tz", "UTC", "IANA timezone for the cron expression")
	cmd.Flags().StringSliceVar(&niches, "niches", []string{"beauty"}, "niches to generate for, in order")
	cmd.Flags().StringSliceVar(&tones, "tones", []string{"enthusiastic"}, "tones to pick from at random")
	cmd.Flags().StringSliceVar(&templates, "templates", []string{string(core.TemplateVideoScript)}, "template types to pick from at random")
	cmd.Flags().StringSliceVar(&platforms, "platforms", []string{"tiktok", "instagram"}, "target platforms")
	cmd.Flags().StringVar(&model, "model", "", "AI model override")
	cmd.Flags().StringVar(&format, "format", string(core.FormatStandard), "content format (standard, spartan)")
	cmd.Flags().StringVar(&affiliateID, "affiliate", "", "Amazon Associates tag (defaults to config)")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the job without activating it")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newScheduleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheduled jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			jobs, err := st.ListJobs()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCRON\tACTIVE\tFAILURES\tLAST RUN\tNEXT RUN\tLAST ERROR")
			for _, job := range jobs {
				lastRun := "never"
				if job.LastRun != nil {
					lastRun = job.LastRun.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%d\t%s\t%s\t%s\n",
					job.ID, job.JobName, job.CronExpression, job.IsActive,
					job.ConsecutiveFailures, lastRun, nextRunDisplay(job), job.LastError)
			}
			return w.Flush()
		},
	}
}

func newScheduleStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <job-id>",
		Short: "Deactivate a job (manual override, regardless of failure count)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScheduler(func(svc *scheduler.Service) error {
				return svc.StopJob(args[0])
			})
		},
	}
}

func newScheduleResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <job-id>",
		Short: "Reactivate a stopped or auto-disabled job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScheduler(func(svc *scheduler.Service) error {
				return svc.ResumeJob(args[0])
			})
		},
	}
}

func newScheduleTriggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger <job-id>",
		Short: "Run a job's tick immediately, bypassing the timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScheduler(func(svc *scheduler.Service) error {
				return svc.TriggerJob(args[0])
			})
		},
	}
}

func newScheduleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <job-id>",
		Short: "Delete a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScheduler(func(svc *scheduler.Service) error {
				return svc.DeleteJob(args[0])
			})
		},
	}
}

// nextRunDisplay computes the next firing time from the cron expression.
// NextRun is not persisted: it is a pure function of the expression, the
// timezone and the clock.
func nextRunDisplay(job *core.ScheduledJob) string {
	if !job.IsActive {
		return "-"
	}
	sched, err := cron.ParseStandard(job.CronExpression)
	if err != nil {
		return "-"
	}
	now := time.Now()
	if job.Timezone != "" {
		if loc, err := time.LoadLocation(job.Timezone); err == nil {
			now = now.In(loc)
		}
	}
	return sched.Next(now).Format("2006-01-02 15:04 MST")
}

// withScheduler wires a scheduler service around the store for one-shot
// administrative commands.
func withScheduler(fn func(*scheduler.Service) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	svc, client, err := newSchedulerService(st)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	return fn(svc)
}
