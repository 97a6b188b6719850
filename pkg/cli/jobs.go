package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func jobsCommand() *cli.Command {
	return &cli.Command{
		Name:  "jobs",
		Usage: "List built-in jobs",
		Action: func(ctx context.Context, c *cli.Command) error {
			return printJobs(os.Stdout)
		},
	}
}

func printJobs(w io.Writer) error {
	for _, name := range model.SyncJobNames() {
		job := model.SyncJobs[name]
		if _, err := fmt.Fprintf(w, "sync\t%s\t%s\t%s\t(+%d supplemental)\n", job.Name, job.Schedule, job.ManifestURL, len(job.Supplemental)); err != nil {
			return err
		}
	}
	for _, name := range model.ExportJobNames() {
		job := model.ExportJobs[name]
		if _, err := fmt.Fprintf(w, "export\t%s\t%s\t%s\t-> %s\n", job.Name, job.Schedule, job.ManifestURL, job.Destination.Path()); err != nil {
			return err
		}
	}
	return nil
}
