package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/issuepulse/issuepulse/pkg/cli/config"
	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/issuepulse/issuepulse/pkg/service/jira"
	"github.com/issuepulse/issuepulse/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		jiraCfg     config.Jira
		classifyCfg config.Classify
		projectKey  string
		startDate   string
		endDate     string
		mineOnly    bool
	)

	flags := joinFlags(
		jiraCfg.Flags(),
		classifyCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "project",
				Usage:       "Project key to report on",
				Required:    true,
				Destination: &projectKey,
			},
			&cli.StringFlag{
				Name:        "start-date",
				Usage:       "Creation date window start (YYYY-MM-DD, defaults to first of month)",
				Destination: &startDate,
			},
			&cli.StringFlag{
				Name:        "end-date",
				Usage:       "Creation date window end (YYYY-MM-DD, defaults to today)",
				Destination: &endDate,
			},
			&cli.BoolFlag{
				Name:        "mine",
				Usage:       "Restrict to issues assigned to the authenticated user",
				Destination: &mineOnly,
			},
		},
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Fetch issues once and print the KPI dashboard as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			classifier, err := classifyCfg.Configure()
			if err != nil {
				return err
			}

			client := jira.New()
			dashboardUC := usecase.NewDashboard(client, usecase.WithClassifier(classifier))

			input := usecase.DashboardInput{
				Credentials: jiraCfg.Credentials(),
				ProjectKey:  types.ProjectKey(projectKey),
				DateRange: model.DateRange{
					StartDate: startDate,
					EndDate:   endDate,
				},
			}

			var dashboard *model.Dashboard
			if mineOnly {
				dashboard, err = dashboardUC.GetMyDashboard(ctx, input)
			} else {
				dashboard, err = dashboardUC.GetProjectDashboard(ctx, input)
			}
			if err != nil {
				return goerr.Wrap(err, "report query failed")
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(dashboard); err != nil {
				return goerr.Wrap(err, "failed to encode report")
			}
			return nil
		},
	}
}
